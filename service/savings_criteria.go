package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"prestabanco/domain"
)

type CriterionCode string

const (
	CriterionMinimumBalance    CriterionCode = "R71"
	CriterionConsistentHistory CriterionCode = "R72"
	CriterionPeriodicDeposits  CriterionCode = "R73"
	CriterionBalanceSeniority  CriterionCode = "R74"
	CriterionRecentWithdrawals CriterionCode = "R75"
)

// CriterionResult is the outcome of one savings-capacity check.
// Threshold is the amount the check compared against, zero when it counts months.
type CriterionResult struct {
	Code        CriterionCode   `json:"code"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Threshold   decimal.Decimal `json:"threshold"`
	Passed      bool            `json:"passed"`
}

// SavingsAssessment groups the five checks. Meets mirrors the backend rule of
// at least three criteria met; it is informative only.
type SavingsAssessment struct {
	Criteria []CriterionResult `json:"criteria"`
	Met      int               `json:"met"`
	Meets    bool              `json:"meets"`
}

// AssessSavings runs every criterion against the application and savings account.
func AssessSavings(app domain.LoanApplication, savings domain.SavingsRecord) SavingsAssessment {
	criteria := []CriterionResult{
		MinimumBalance(app, savings),
		ConsistentHistory(savings),
		PeriodicDeposits(app, savings),
		BalanceSeniority(app, savings),
		RecentWithdrawals(savings),
	}
	met := 0
	for _, c := range criteria {
		if c.Passed {
			met++
		}
	}
	return SavingsAssessment{
		Criteria: criteria,
		Met:      met,
		Meets:    met >= MinSavingsCriteriaRequired,
	}
}

// MinimumBalance: balance >= 10% of the requested amount.
func MinimumBalance(app domain.LoanApplication, savings domain.SavingsRecord) CriterionResult {
	threshold := domain.Percent(app.RequestedAmount, MinBalancePercent)
	return CriterionResult{
		Code:        CriterionMinimumBalance,
		Title:       "Saldo Mínimo",
		Description: fmt.Sprintf("El saldo debe ser al menos el %d%% del monto solicitado (%s)", MinBalancePercent, FormatAmount(threshold)),
		Threshold:   threshold,
		Passed:      savings.CurrentBalance.GreaterThanOrEqual(threshold),
	}
}

// ConsistentHistory: 12 consecutive months with balance and no significant withdrawals.
func ConsistentHistory(savings domain.SavingsRecord) CriterionResult {
	return CriterionResult{
		Code:        CriterionConsistentHistory,
		Title:       "Historial de Ahorro Consistente",
		Description: fmt.Sprintf("%d meses con balance y sin retiros significativos", ConsistentHistoryMonths),
		Passed: savings.ConsecutiveMonthsWithBalance >= ConsistentHistoryMonths &&
			savings.SignificantWithdrawalsCount == 0,
	}
}

// PeriodicDeposits: monthly deposits >= 5% of monthly income.
func PeriodicDeposits(app domain.LoanApplication, savings domain.SavingsRecord) CriterionResult {
	threshold := domain.Percent(app.MonthlyIncome, MinDepositPercent)
	return CriterionResult{
		Code:        CriterionPeriodicDeposits,
		Title:       "Depósitos Periódicos",
		Description: fmt.Sprintf("Depósitos mensuales deben ser al menos %d%% del ingreso (%s)", MinDepositPercent, FormatAmount(threshold)),
		Threshold:   threshold,
		Passed:      savings.MonthlyDepositsAmount.GreaterThanOrEqual(threshold),
	}
}

// BalanceSeniority: balance >= 20% of the requested amount, relaxed to 10%
// once the account reaches 24 consecutive months with balance.
func BalanceSeniority(app domain.LoanApplication, savings domain.SavingsRecord) CriterionResult {
	pct := int64(JuniorBalancePercent)
	if savings.ConsecutiveMonthsWithBalance >= SeniorAccountMonths {
		pct = SeniorBalancePercent
	}
	threshold := domain.Percent(app.RequestedAmount, pct)
	return CriterionResult{
		Code:        CriterionBalanceSeniority,
		Title:       "Relación Saldo/Años",
		Description: fmt.Sprintf("Saldo debe ser al menos %d%% del monto (%s)", pct, FormatAmount(threshold)),
		Threshold:   threshold,
		Passed:      savings.CurrentBalance.GreaterThanOrEqual(threshold),
	}
}

// RecentWithdrawals: largest withdrawal of the last 6 months <= 30% of the balance.
func RecentWithdrawals(savings domain.SavingsRecord) CriterionResult {
	threshold := domain.Percent(savings.CurrentBalance, MaxWithdrawalPercent)
	return CriterionResult{
		Code:        CriterionRecentWithdrawals,
		Title:       "Retiros Recientes",
		Description: fmt.Sprintf("Mayor retiro no debe superar %d%% del saldo actual (%s)", MaxWithdrawalPercent, FormatAmount(threshold)),
		Threshold:   threshold,
		Passed:      savings.LargestWithdrawalLast6Months.LessThanOrEqual(threshold),
	}
}
