package domain

import "github.com/shopspring/decimal"

// LoanInput is the body sent to /api/loans/simulate and /api/loans/calculate-cost.
type LoanInput struct {
	RequestedAmount decimal.Decimal `json:"requestedAmount"`
	InterestRate    decimal.Decimal `json:"interestRate"`
	Term            int             `json:"term"`
}

type Loan struct {
	ID                int64           `json:"id,omitempty"`
	User              *User           `json:"user,omitempty"`
	PropertyType      PropertyType    `json:"propertyType,omitempty"`
	RequestedAmount   decimal.Decimal `json:"requestedAmount"`
	Term              int             `json:"term"`
	InterestRate      decimal.Decimal `json:"interestRate"`
	MonthlyPayment    decimal.Decimal `json:"monthlyPayment"`
	InsuranceCost     decimal.Decimal `json:"insuranceCost"`
	AdministrativeFee decimal.Decimal `json:"administrativeFee"`
	TotalCost         decimal.Decimal `json:"totalCost"`
	SimulationDate    LocalDateTime   `json:"simulationDate,omitzero"`
}

// LoanResult is what the simulator shows after both backend calls succeed.
type LoanResult struct {
	LoanType       PropertyType    `json:"loanType"`
	Amount         decimal.Decimal `json:"amount"`
	Term           int             `json:"term"`
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	InterestRate   decimal.Decimal `json:"interestRate"`
	TotalCost      decimal.Decimal `json:"totalCost"`
}
