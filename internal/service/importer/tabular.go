package importer

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/sale"
	"github.com/xuri/excelize/v2"
)

// ParseDelimitedText splits exported text into trimmed field rows: lines on
// newlines, blank lines dropped, fields on commas. It is deliberately naive
// and does not honor quoted fields; spreadsheet uploads are decoded through
// DecodeRows instead, which normalizes cells before reaching this path.
func ParseDelimitedText(text string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		rows = append(rows, fields)
	}
	return rows
}

// DecodeRows turns an uploaded file into field rows. Spreadsheets are read
// through excelize (first worksheet only), empty cells normalized to empty
// strings, and each row rejoined with commas so both formats share the same
// downstream parsing.
func DecodeRows(filename string, data []byte) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm", ".xls":
		file, err := excelize.OpenReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
		}
		defer func() { _ = file.Close() }()

		sheetName := file.GetSheetName(0)
		if sheetName == "" {
			return nil, fmt.Errorf("no worksheet found")
		}
		cells, err := file.GetRows(sheetName)
		if err != nil {
			return nil, fmt.Errorf("failed to read worksheet: %w", err)
		}

		var lines []string
		for _, row := range cells {
			lines = append(lines, strings.Join(row, ","))
		}
		return ParseDelimitedText(strings.Join(lines, "\n")), nil
	default:
		return ParseDelimitedText(string(data)), nil
	}
}

// AgentRow is one agent-creation payload from the positional import format:
// Name, Team, Shift/Center, BaseSalary, <unused>, CNIC, then the optional
// HR columns FatherName, BankName, AccountNumber, JoiningDate. The format
// is versioned by position, not by header matching.
type AgentRow struct {
	Name          string
	Team          string
	Center        string
	BaseSalary    int64
	CNIC          string
	FatherName    string
	BankName      string
	AccountNumber string
	JoiningDate   string
}

// MapAgentRows maps data rows to agent payloads. The header row and any row
// with a blank name are dropped silently.
func MapAgentRows(rows [][]string) []AgentRow {
	var payloads []AgentRow
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		name := cellAt(row, 0)
		if name == "" {
			continue
		}

		salary, err := strconv.ParseInt(cellAt(row, 3), 10, 64)
		if err != nil {
			salary = 0
		}

		payloads = append(payloads, AgentRow{
			Name:          name,
			Team:          cellAt(row, 1),
			Center:        cellAt(row, 2),
			BaseSalary:    salary,
			CNIC:          cellAt(row, 5),
			FatherName:    cellAt(row, 6),
			BankName:      cellAt(row, 7),
			AccountNumber: cellAt(row, 8),
			JoiningDate:   cellAt(row, 9),
		})
	}
	return payloads
}

// SaleRow is one sale-creation payload from the 21-column dialer export.
type SaleRow struct {
	Timestamp          string
	AgentName          string
	CustomerName       string
	PhoneNumber        string
	State              string
	Zip                string
	Address            string
	CampaignType       string
	Center             string
	TeamLead           string
	Comments           string
	ListID             string
	Disposition        string
	Status             sale.Status
	Duration           string
	XferTime           string
	XferAttempts       string
	FeedbackBeforeXfer string
	FeedbackAfterXfer  string
	Grading            string
	DockDetails        string
	Evaluator          string
	CycleLabel         string
}

// MapSaleRows maps data rows to sale payloads for the named cycle. The
// header row and rows missing the agent name are dropped silently. Every
// imported sale is stamped with today's date and the caller's cycle label;
// any date inside the file is ignored, so historical imports land in the
// cycle active at import time.
func MapSaleRows(rows [][]string, cycleLabel string) []SaleRow {
	var payloads []SaleRow
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		agentName := cellAt(row, 1)
		if agentName == "" {
			continue
		}

		disposition := cellAt(row, 12)
		payloads = append(payloads, SaleRow{
			Timestamp:          cellAt(row, 0),
			AgentName:          agentName,
			CustomerName:       cellAt(row, 2),
			PhoneNumber:        cellAt(row, 3),
			State:              cellAt(row, 4),
			Zip:                cellAt(row, 5),
			Address:            cellAt(row, 6),
			CampaignType:       cellAt(row, 7),
			Center:             cellAt(row, 8),
			TeamLead:           cellAt(row, 9),
			Comments:           cellAt(row, 10),
			ListID:             cellAt(row, 11),
			Disposition:        disposition,
			Status:             sale.DeriveStatus(disposition),
			Duration:           cellAt(row, 13),
			XferTime:           cellAt(row, 14),
			XferAttempts:       cellAt(row, 15),
			FeedbackBeforeXfer: cellAt(row, 16),
			FeedbackAfterXfer:  cellAt(row, 17),
			Grading:            cellAt(row, 18),
			DockDetails:        cellAt(row, 19),
			Evaluator:          cellAt(row, 20),
			CycleLabel:         cycleLabel,
		})
	}
	return payloads
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
