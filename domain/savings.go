package domain

import "github.com/shopspring/decimal"

type SavingsRecord struct {
	ID                           int64           `json:"id,omitempty"`
	User                         *User           `json:"user,omitempty"`
	AccountNumber                string          `json:"accountNumber"`
	CurrentBalance               decimal.Decimal `json:"currentBalance"`
	OpeningDate                  LocalDateTime   `json:"openingDate,omitzero"`
	LastTransactionDate          LocalDateTime   `json:"lastTransactionDate,omitzero"`
	MonthlyDepositsCount         int             `json:"monthlyDepositsCount"`
	MonthlyDepositsAmount        decimal.Decimal `json:"monthlyDepositsAmount"`
	LargestWithdrawalLast6Months decimal.Decimal `json:"largestWithdrawalLast6Months"`
	LargestWithdrawalDate        LocalDateTime   `json:"largestWithdrawalDate,omitzero"`
	ConsecutiveMonthsWithBalance int             `json:"consecutiveMonthsWithBalance"`
	SignificantWithdrawalsCount  int             `json:"significantWithdrawalsCount"`
	LastSixMonthsAverageBalance  decimal.Decimal `json:"lastSixMonthsAverageBalance"`
	MeetsSavingsCriteria         bool            `json:"meetsSavingsCriteria"`
}
