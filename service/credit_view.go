package service

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"prestabanco/client"
	"prestabanco/domain"
)

const evaluationFailed = "Error al realizar la evaluación"

// CreditEvaluation is the executive's view of one application.
// Savings and Assessment are nil when the applicant has no savings account on
// record; EvaluationError is set when the backend evaluation failed.
type CreditEvaluation struct {
	Application     ApplicationSummary       `json:"application"`
	Savings         *domain.SavingsRecord    `json:"savings"`
	Assessment      *SavingsAssessment       `json:"assessment"`
	Evaluation      *domain.EvaluationResult `json:"evaluation"`
	EvaluationError string                   `json:"evaluationError,omitempty"`
	TotalCost       decimal.Decimal          `json:"totalCost"`
	TotalCostText   string                   `json:"totalCostText"`
}

type CreditView struct {
	applications ApplicationsAPI
	savings      SavingsAPI
	loans        LoansAPI
}

func NewCreditView(applications ApplicationsAPI, savings SavingsAPI, loans LoansAPI) *CreditView {
	return &CreditView{applications: applications, savings: savings, loans: loans}
}

// Load gathers application, savings, backend evaluation and total cost.
// Only the application fetch is fatal.
func (v *CreditView) Load(ctx context.Context, id int64) (CreditEvaluation, error) {
	app, err := v.applications.Get(ctx, id)
	if err != nil {
		return CreditEvaluation{}, alert("Error al cargar los datos", err)
	}

	view := CreditEvaluation{Application: Summarize(app)}

	if app.User != nil && app.User.ID != 0 {
		savings, err := v.savings.GetByUser(ctx, app.User.ID)
		switch {
		case err == nil:
			view.Savings = &savings
		case client.IsNotFound(err):
			log.Printf("No hay datos de ahorro previos para el usuario %d", app.User.ID)
		default:
			log.Printf("Warning: failed to load savings for user %d: %v", app.User.ID, err)
		}
	}

	result, err := v.applications.Evaluate(ctx, id)
	if err != nil {
		log.Printf("Error: %s: %v", evaluationFailed, err)
		view.EvaluationError = evaluationFailed
	} else {
		view.Evaluation = &result
	}

	cost, err := v.loans.CalculateCost(ctx, domain.LoanInput{
		RequestedAmount: app.RequestedAmount,
		InterestRate:    app.InterestRate,
		Term:            app.Term,
	})
	if err != nil {
		log.Printf("Warning: failed to calculate total cost for application %d: %v", id, err)
	} else {
		view.TotalCost = cost.TotalCost
		view.TotalCostText = FormatAmount(cost.TotalCost)
	}

	if view.Savings != nil && view.Savings.AccountNumber != "" {
		assessment := AssessSavings(app, *view.Savings)
		view.Assessment = &assessment
	}
	return view, nil
}

// WhatIf assesses a savings record that is not stored.
func (v *CreditView) WhatIf(ctx context.Context, id int64, savings domain.SavingsRecord) (SavingsAssessment, error) {
	app, err := v.applications.Get(ctx, id)
	if err != nil {
		return SavingsAssessment{}, alert("Error al cargar los datos", err)
	}
	return AssessSavings(app, savings), nil
}

// SaveSavings stores the applicant's savings record, creating it when it has no id,
// and returns it with its assessment.
func (v *CreditView) SaveSavings(ctx context.Context, id int64, rec domain.SavingsRecord) (domain.SavingsRecord, SavingsAssessment, error) {
	if rec.AccountNumber == "" {
		return domain.SavingsRecord{}, SavingsAssessment{}, &ValidationError{Fields: map[string]string{
			"accountNumber": "Ingrese el número de cuenta",
		}}
	}
	app, err := v.applications.Get(ctx, id)
	if err != nil {
		return domain.SavingsRecord{}, SavingsAssessment{}, alert("Error al cargar los datos", err)
	}
	if app.User != nil {
		owner := app.User.Public()
		rec.User = &owner
	}

	assessment := AssessSavings(app, rec)
	rec.MeetsSavingsCriteria = assessment.Meets

	var saved domain.SavingsRecord
	if rec.ID == 0 {
		saved, err = v.savings.Create(ctx, rec)
	} else {
		saved, err = v.savings.Update(ctx, rec.ID, rec)
	}
	if err != nil {
		return domain.SavingsRecord{}, SavingsAssessment{}, alert("Error al guardar los datos de ahorro", err)
	}
	return saved, assessment, nil
}
