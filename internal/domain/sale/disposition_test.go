package sale

import "testing"

func TestDeriveStatus(t *testing.T) {
	cases := []struct {
		disposition string
		want        Status
	}{
		{"HW- Xfer", StatusSale},
		{"HW-IBXfer", StatusSale},
		{"  HW- Xfer  ", StatusSale},
		{"\tHW-IBXfer\n", StatusSale},
		{"HW-Xfer", StatusUnsuccessful}, // missing the literal space
		{"hw- xfer", StatusUnsuccessful},
		{"HW-Xfer-CDR", StatusUnsuccessful},
		{"DNC", StatusUnsuccessful},
		{"DNQ-Dup", StatusUnsuccessful},
		{"Review Pending", StatusUnsuccessful},
		{"", StatusUnsuccessful},
		{"   ", StatusUnsuccessful},
	}
	for _, c := range cases {
		got := DeriveStatus(c.disposition)
		if got != c.want {
			t.Errorf("DeriveStatus(%q) = %q, want %q", c.disposition, got, c.want)
		}
	}
}

func TestDeriveStatus_Idempotent(t *testing.T) {
	// Re-deriving from an already-derived status string never upgrades it.
	for _, d := range Dispositions {
		first := DeriveStatus(d)
		second := DeriveStatus(string(first))
		if second != StatusUnsuccessful {
			t.Errorf("DeriveStatus(%q) after first pass = %q, want Unsuccessful", first, second)
		}
	}
}

func TestDispositionVocabularyContainsSuccessCodes(t *testing.T) {
	found := 0
	for _, d := range Dispositions {
		if IsSuccessful(d) {
			found++
		}
	}
	if found != 2 {
		t.Errorf("expected exactly 2 success dispositions in vocabulary, got %d", found)
	}
}
