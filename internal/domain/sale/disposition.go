package sale

import "strings"

// Success dispositions. The literal space in "HW- Xfer" and its absence in
// "HW-IBXfer" come from the dialer export and must never be normalized.
const (
	DispositionTransfer        = "HW- Xfer"
	DispositionInboundTransfer = "HW-IBXfer"
)

// Dispositions is the vocabulary offered by the dialer. Status derivation
// only distinguishes the two transfer codes from everything else.
var Dispositions = []string{
	DispositionTransfer,
	DispositionInboundTransfer,
	"Unsuccessful",
	"HUWT",
	"DNC",
	"DNQ",
	"DNQ-Dup",
	"HW-Xfer-CDR",
	"DNQ-Webform",
	"Review Pending",
}

// DeriveStatus maps a disposition code to a sale status. This is the single
// source of truth: creation, edits, bulk import, and reclassification all
// call through here so the status column can never drift from the code list.
func DeriveStatus(disposition string) Status {
	switch strings.TrimSpace(disposition) {
	case DispositionTransfer, DispositionInboundTransfer:
		return StatusSale
	}
	return StatusUnsuccessful
}

// IsSuccessful reports whether a disposition counts as a completed sale.
func IsSuccessful(disposition string) bool {
	return DeriveStatus(disposition) == StatusSale
}
