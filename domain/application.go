package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type ApplicationStatus string

const (
	StatusInReview         ApplicationStatus = "IN_REVIEW"
	StatusPendingDocuments ApplicationStatus = "PENDING_DOCUMENTS"
	StatusInEvaluation     ApplicationStatus = "IN_EVALUATION"
	StatusPreApproved      ApplicationStatus = "PRE_APPROVED"
	StatusFinalApproval    ApplicationStatus = "FINAL_APPROVAL"
	StatusApproved         ApplicationStatus = "APPROVED"
	StatusRejected         ApplicationStatus = "REJECTED"
	StatusCancelled        ApplicationStatus = "CANCELLED"
	StatusInDisbursement   ApplicationStatus = "IN_DISBURSEMENT"
)

// Statuses lists the lifecycle in the order the review console offers it.
var Statuses = []ApplicationStatus{
	StatusInReview,
	StatusPendingDocuments,
	StatusInEvaluation,
	StatusPreApproved,
	StatusFinalApproval,
	StatusApproved,
	StatusRejected,
	StatusCancelled,
	StatusInDisbursement,
}

func (s ApplicationStatus) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

type PropertyType string

const (
	FirstHome  PropertyType = "FIRST_HOME"
	SecondHome PropertyType = "SECOND_HOME"
	Commercial PropertyType = "COMMERCIAL"
	Remodeling PropertyType = "REMODELING"
)

var PropertyTypes = []PropertyType{FirstHome, SecondHome, Commercial, Remodeling}

// ParsePropertyType accepts the backend names and the RENOVATION alias.
func ParsePropertyType(s string) (PropertyType, bool) {
	switch v := PropertyType(strings.ToUpper(strings.TrimSpace(s))); v {
	case FirstHome, SecondHome, Commercial, Remodeling:
		return v, true
	case "RENOVATION":
		return Remodeling, true
	}
	return "", false
}

type LoanApplication struct {
	ID                    int64             `json:"id,omitempty"`
	User                  *User             `json:"user,omitempty"`
	PropertyType          PropertyType      `json:"propertyType,omitempty"`
	RequestedAmount       decimal.Decimal   `json:"requestedAmount"`
	Term                  int               `json:"term"`
	InterestRate          decimal.Decimal   `json:"interestRate"`
	Status                ApplicationStatus `json:"status,omitempty"`
	MonthlyIncome         decimal.Decimal   `json:"monthlyIncome"`
	EmploymentYears       int               `json:"employmentYears"`
	CurrentDebt           decimal.Decimal   `json:"currentDebt"`
	PropertyValue         decimal.Decimal   `json:"propertyValue"`
	DocumentationComplete bool              `json:"documentationComplete"`
	Documents             string            `json:"documents,omitempty"`
}

// ClientName is the applicant's full name, empty when the backend omitted the user.
func (a LoanApplication) ClientName() string {
	if a.User == nil {
		return ""
	}
	return a.User.FullName()
}

type StatusUpdate struct {
	Status ApplicationStatus `json:"status"`
}
