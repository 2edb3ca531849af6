package service

import (
	"context"
	"errors"
	"log"

	"github.com/shopspring/decimal"

	"prestabanco/domain"
)

var ErrDocumentNotFound = errors.New("documento no encontrado")

// DocumentEntry is an attached file as listed next to an application.
type DocumentEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Name  string `json:"name"`
	Type  string `json:"type"`
}

// ApplicationSummary is a loan application ready for listing.
type ApplicationSummary struct {
	ID                  int64               `json:"id"`
	ClientName          string              `json:"clientName"`
	ClientEmail         string              `json:"clientEmail,omitempty"`
	PropertyType        domain.PropertyType `json:"propertyType"`
	PropertyTypeLabel   string              `json:"propertyTypeLabel"`
	RequestedAmount     decimal.Decimal     `json:"requestedAmount"`
	RequestedAmountText string              `json:"requestedAmountText"`
	PropertyValue       decimal.Decimal     `json:"propertyValue"`
	MonthlyIncome       decimal.Decimal     `json:"monthlyIncome"`
	EmploymentYears     int                 `json:"employmentYears"`
	Term                int                 `json:"term"`
	InterestRate        decimal.Decimal     `json:"interestRate"`
	InterestRateText    string              `json:"interestRateText"`
	Status              StatusInfo          `json:"status"`
	Documents           []DocumentEntry     `json:"documents"`
}

// Summarize builds the listing view of an application. A documents field that
// does not parse is logged and shown as no documents.
func Summarize(app domain.LoanApplication) ApplicationSummary {
	summary := ApplicationSummary{
		ID:                  app.ID,
		ClientName:          app.ClientName(),
		PropertyType:        app.PropertyType,
		PropertyTypeLabel:   PropertyTypeName(app.PropertyType),
		RequestedAmount:     app.RequestedAmount,
		RequestedAmountText: FormatAmount(app.RequestedAmount),
		PropertyValue:       app.PropertyValue,
		MonthlyIncome:       app.MonthlyIncome,
		EmploymentYears:     app.EmploymentYears,
		Term:                app.Term,
		InterestRate:        app.InterestRate,
		InterestRateText:    FormatRate(app.InterestRate),
		Status:              StatusInfoFor(app.Status),
		Documents:           []DocumentEntry{},
	}
	if app.User != nil {
		summary.ClientEmail = app.User.Email
	}

	docs, err := domain.ParseDocumentSet(app.Documents)
	if err != nil {
		log.Printf("Warning: application %d has unreadable documents: %v", app.ID, err)
		return summary
	}
	for _, key := range docs.Keys() {
		doc := docs[key]
		summary.Documents = append(summary.Documents, DocumentEntry{
			Key:   key,
			Label: DocumentLabel(key),
			Name:  doc.Name,
			Type:  doc.Type,
		})
	}
	return summary
}

func summarizeAll(apps []domain.LoanApplication) []ApplicationSummary {
	out := make([]ApplicationSummary, 0, len(apps))
	for _, app := range apps {
		out = append(out, Summarize(app))
	}
	return out
}

// ApplicationsView backs the status page of a client and the executive management list.
type ApplicationsView struct {
	applications ApplicationsAPI
}

func NewApplicationsView(applications ApplicationsAPI) *ApplicationsView {
	return &ApplicationsView{applications: applications}
}

// ForUser lists the applications of one client.
func (v *ApplicationsView) ForUser(ctx context.Context, userID int64) ([]ApplicationSummary, error) {
	apps, err := v.applications.ListByUser(ctx, userID)
	if err != nil {
		return nil, alert("Error al cargar las solicitudes", err)
	}
	return summarizeAll(apps), nil
}

// All lists every application, for executives.
func (v *ApplicationsView) All(ctx context.Context) ([]ApplicationSummary, error) {
	apps, err := v.applications.List(ctx)
	if err != nil {
		return nil, alert("Error al cargar las solicitudes", err)
	}
	return summarizeAll(apps), nil
}

func (v *ApplicationsView) ByStatus(ctx context.Context, status domain.ApplicationStatus) ([]ApplicationSummary, error) {
	if !status.Valid() {
		return nil, &ValidationError{Fields: map[string]string{"status": "Estado inválido"}}
	}
	apps, err := v.applications.ListByStatus(ctx, status)
	if err != nil {
		return nil, alert("Error al cargar las solicitudes", err)
	}
	return summarizeAll(apps), nil
}

// ChangeStatus moves an application to a new lifecycle status.
func (v *ApplicationsView) ChangeStatus(ctx context.Context, id int64, status domain.ApplicationStatus) (ApplicationSummary, error) {
	if !status.Valid() {
		return ApplicationSummary{}, &ValidationError{Fields: map[string]string{"status": "Estado inválido"}}
	}
	updated, err := v.applications.UpdateStatus(ctx, id, status)
	if err != nil {
		return ApplicationSummary{}, alert("Error al actualizar el estado", err)
	}
	return Summarize(updated), nil
}

// Document returns one attachment of an application, decoded.
func (v *ApplicationsView) Document(ctx context.Context, id int64, key string) (domain.Document, []byte, error) {
	app, err := v.applications.Get(ctx, id)
	if err != nil {
		return domain.Document{}, nil, alert("Error al cargar los datos", err)
	}
	docs, err := domain.ParseDocumentSet(app.Documents)
	if err != nil {
		return domain.Document{}, nil, ErrDocumentData
	}
	doc, ok := docs[key]
	if !ok || doc.Content == "" {
		return domain.Document{}, nil, ErrDocumentNotFound
	}
	data, mediaType, err := DecodeAttachment(doc)
	if err != nil {
		return domain.Document{}, nil, err
	}
	doc.Type = mediaType
	doc.Size = int64(len(data))
	return doc, data, nil
}
