package hr

import "time"

// Record is an agent's employment file. Orthogonal to payroll math; kept
// alongside the roster for the HR tab and the extended agent import columns.
type Record struct {
	ID            string
	AgentCNIC     string
	Name          string
	Designation   string
	Contact       string
	FatherName    string
	BankName      string
	AccountNumber string
	JoiningDate   *time.Time
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
