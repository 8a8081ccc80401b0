package importer

import (
	"strings"
	"testing"

	"github.com/hexaline-bpo/agentpay-backend-go/internal/domain/sale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDelimitedText(t *testing.T) {
	text := "a, b ,c\n\n1,2,3\r\n\r\nx,y\n"

	rows := ParseDelimitedText(text)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"a", "b", "c"}, rows[0])
	assert.Equal(t, []string{"1", "2", "3"}, rows[1])
	assert.Equal(t, []string{"x", "y"}, rows[2])
}

func TestParseDelimitedText_Empty(t *testing.T) {
	assert.Nil(t, ParseDelimitedText(""))
	assert.Nil(t, ParseDelimitedText("\n\n  \n"))
}

func TestMapAgentRows(t *testing.T) {
	rows := [][]string{
		{"Name", "Team", "Shift", "Salary", "X", "CNIC"},
		{"Ali Khan", "Alpha", "Night", "30000", "", "3520212345671"},
		{"", "Beta", "Day", "25000", "", "3520212345672"}, // blank name, dropped
		{"Sara", "Beta", "Day", "not-a-number", "", "3520212345673"},
		{"Bilal", "Gamma", "Day", "28000", "", "3520212345674", "Akbar", "HBL", "001122", "2025-06-01"},
	}

	payloads := MapAgentRows(rows)

	require.Len(t, payloads, 3)
	assert.Equal(t, "Ali Khan", payloads[0].Name)
	assert.Equal(t, int64(30000), payloads[0].BaseSalary)
	assert.Equal(t, "3520212345671", payloads[0].CNIC)

	// Unparseable salary defaults to zero rather than failing the row.
	assert.Equal(t, int64(0), payloads[1].BaseSalary)

	assert.Equal(t, "Akbar", payloads[2].FatherName)
	assert.Equal(t, "HBL", payloads[2].BankName)
	assert.Equal(t, "2025-06-01", payloads[2].JoiningDate)
}

func saleLine(agentName, disposition string) string {
	cols := make([]string, 21)
	cols[0] = "2026-01-05 10:00"
	cols[1] = agentName
	cols[2] = "Customer"
	cols[3] = "555-0100"
	cols[12] = disposition
	return strings.Join(cols, ",")
}

func TestMapSaleRows_RowSkipping(t *testing.T) {
	// 5 lines: 1 header + 4 data of which 1 has a blank agent name -> 3 payloads.
	lines := []string{
		"Timestamp,AgentName,CustomerName,PhoneNumber,State,Zip,Address,CampaignType,Center,TeamLead,Comments,ListId,Disposition,Duration,XferTime,XferAttempts,FeedbackBeforeXfer,FeedbackAfterXfer,Grading,DockDetails,Evaluator",
		saleLine("Ali", "HW- Xfer"),
		saleLine("", "HW- Xfer"),
		saleLine("Sara", "DNC"),
		saleLine("Bilal", "HW-IBXfer"),
	}
	rows := ParseDelimitedText(strings.Join(lines, "\n"))

	payloads := MapSaleRows(rows, "January 2026")

	require.Len(t, payloads, 3)
}

func TestMapSaleRows_StatusDerivation(t *testing.T) {
	lines := []string{
		"header",
		saleLine("Ali", "HW- Xfer"),
		saleLine("Sara", "DNC"),
		saleLine("Bilal", "HW-Xfer-CDR"),
	}
	rows := ParseDelimitedText(strings.Join(lines, "\n"))

	payloads := MapSaleRows(rows, "January 2026")

	require.Len(t, payloads, 3)
	assert.Equal(t, sale.StatusSale, payloads[0].Status)
	assert.Equal(t, sale.StatusUnsuccessful, payloads[1].Status)
	assert.Equal(t, sale.StatusUnsuccessful, payloads[2].Status)
	for _, p := range payloads {
		assert.Equal(t, "January 2026", p.CycleLabel)
	}
}

func TestMapSaleRows_PositionalColumns(t *testing.T) {
	cols := make([]string, 21)
	for i := range cols {
		cols[i] = "c" + string(rune('0'+i%10))
	}
	cols[1] = "Ali"
	cols[12] = "HW-IBXfer"
	cols[19] = "late transfer note"
	cols[20] = "QA Lead"
	rows := [][]string{{"header"}, cols}

	payloads := MapSaleRows(rows, "March 2026")

	require.Len(t, payloads, 1)
	p := payloads[0]
	assert.Equal(t, "Ali", p.AgentName)
	assert.Equal(t, "HW-IBXfer", p.Disposition)
	assert.Equal(t, sale.StatusSale, p.Status)
	assert.Equal(t, "late transfer note", p.DockDetails)
	assert.Equal(t, "QA Lead", p.Evaluator)
}

func TestDecodeRows_PlainTextFallsThrough(t *testing.T) {
	rows, err := DecodeRows("agents.csv", []byte("Name,Team\nAli,Alpha\n"))

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Ali", "Alpha"}, rows[1])
}
