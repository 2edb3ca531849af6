package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"prestabanco/domain"
)

const (
	StepEmployment = iota
	StepLoanDetails
	StepDocuments
	StepConfirmation
)

// ApplicationSteps are the titles of the four form steps, in order.
var ApplicationSteps = []string{
	"Información Laboral",
	"Detalles del Préstamo",
	"Documentación",
	"Confirmación",
}

var ErrUnknownStep = errors.New("paso de formulario desconocido")

// ApplicationForm is what the applicant fills in across the steps.
// EmploymentYears is a pointer so an unanswered field differs from zero years.
type ApplicationForm struct {
	MonthlyIncome   decimal.Decimal    `json:"monthlyIncome"`
	EmploymentYears *int               `json:"employmentYears"`
	PropertyType    string             `json:"propertyType"`
	PropertyValue   decimal.Decimal    `json:"propertyValue"`
	RequestedAmount decimal.Decimal    `json:"requestedAmount"`
	Term            int                `json:"term"`
	InterestRate    decimal.Decimal    `json:"interestRate"`
	CurrentDebt     decimal.Decimal    `json:"currentDebt"`
	Documents       domain.DocumentSet `json:"documents"`
}

// ValidateStep returns field -> message for one step; an empty map means the step is complete.
func ValidateStep(step int, form ApplicationForm) (map[string]string, error) {
	fields := map[string]string{}
	switch step {
	case StepEmployment:
		if !form.MonthlyIncome.IsPositive() {
			fields["monthlyIncome"] = "Ingrese un ingreso mensual válido"
		}
		if form.EmploymentYears == nil || *form.EmploymentYears < 0 {
			fields["employmentYears"] = "Ingrese años de empleo válidos"
		}

	case StepLoanDetails:
		pt, ok := domain.ParsePropertyType(form.PropertyType)
		if !ok {
			fields["propertyType"] = "Seleccione un tipo de propiedad"
		}
		if !form.PropertyValue.IsPositive() {
			fields["propertyValue"] = "Ingrese el valor total de la propiedad"
		}
		if !form.RequestedAmount.IsPositive() {
			fields["requestedAmount"] = "Ingrese un monto válido"
		} else if form.PropertyValue.IsPositive() && form.RequestedAmount.GreaterThan(form.PropertyValue) {
			fields["requestedAmount"] = "El monto solicitado no puede ser mayor al valor de la propiedad"
		}
		switch {
		case form.Term <= 0:
			fields["term"] = "Ingrese un plazo válido"
		case form.Term > MaxTermYears:
			fields["term"] = "El plazo máximo es de 30 años"
		}
		if !form.InterestRate.IsPositive() {
			fields["interestRate"] = "Ingrese una tasa de interés válida"
		} else if band, found := RateRangeFor(pt); ok && found && !band.Contains(form.InterestRate) {
			fields["interestRate"] = "La tasa debe estar entre " + FormatRate(band.Min) + " y " + FormatRate(band.Max)
		}

	case StepDocuments:
		pt, _ := domain.ParsePropertyType(form.PropertyType)
		for _, doc := range RequiredDocuments(pt) {
			attached, ok := form.Documents[doc.Key]
			if !ok || attached.Content == "" {
				fields["document_"+doc.Key] = fmt.Sprintf("El documento %s es requerido", doc.Label)
				continue
			}
			if err := ValidateAttachment(attached); err != nil {
				fields["document_"+doc.Key] = err.Error()
			}
		}

	case StepConfirmation:
		// Solo resumen.

	default:
		return nil, ErrUnknownStep
	}
	return fields, nil
}

type ApplicationFormService struct {
	applications ApplicationsAPI
}

func NewApplicationFormService(applications ApplicationsAPI) *ApplicationFormService {
	return &ApplicationFormService{applications: applications}
}

// CheckStep validates one step; the error is a *ValidationError when fields fail.
func (s *ApplicationFormService) CheckStep(step int, form ApplicationForm) error {
	fields, err := ValidateStep(step, form)
	if err != nil {
		return err
	}
	return validationOrNil(fields)
}

// Build turns a complete form into the application payload the backend expects.
func Build(user domain.User, form ApplicationForm) (domain.LoanApplication, error) {
	fields := map[string]string{}
	for step := StepEmployment; step <= StepDocuments; step++ {
		stepFields, err := ValidateStep(step, form)
		if err != nil {
			return domain.LoanApplication{}, err
		}
		for k, v := range stepFields {
			fields[k] = v
		}
	}
	if err := validationOrNil(fields); err != nil {
		return domain.LoanApplication{}, err
	}

	documents, err := form.Documents.Encode()
	if err != nil {
		return domain.LoanApplication{}, fmt.Errorf("encode documents: %w", err)
	}
	if len(documents) > MaxDocumentPayloadBytes {
		return domain.LoanApplication{}, &ValidationError{Fields: map[string]string{
			"documents": "Los documentos son demasiado grandes. El límite es 10MB.",
		}}
	}

	pt, _ := domain.ParsePropertyType(form.PropertyType)
	applicant := user.Public()
	return domain.LoanApplication{
		User:                  &applicant,
		PropertyType:          pt,
		RequestedAmount:       form.RequestedAmount,
		Term:                  form.Term,
		InterestRate:          form.InterestRate,
		Status:                domain.StatusInReview,
		MonthlyIncome:         form.MonthlyIncome,
		EmploymentYears:       *form.EmploymentYears,
		CurrentDebt:           form.CurrentDebt,
		PropertyValue:         form.PropertyValue,
		DocumentationComplete: true,
		Documents:             documents,
	}, nil
}

// Submit sends the application for the logged-in user.
func (s *ApplicationFormService) Submit(ctx context.Context, user domain.User, form ApplicationForm) (domain.LoanApplication, error) {
	app, err := Build(user, form)
	if err != nil {
		return domain.LoanApplication{}, err
	}
	created, err := s.applications.Create(ctx, app)
	if err != nil {
		return domain.LoanApplication{}, alert("Error al enviar la solicitud", err)
	}
	return created, nil
}
