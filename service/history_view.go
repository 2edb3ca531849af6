package service

import (
	"context"

	"prestabanco/domain"
)

// ClientHistory is the closed applications of one client.
type ClientHistory struct {
	Client    string               `json:"client"`
	Approved  []ApplicationSummary `json:"approved"`
	Rejected  []ApplicationSummary `json:"rejected"`
	Cancelled []ApplicationSummary `json:"cancelled"`
}

// GroupHistory groups applications by client full name, clients in order of
// first appearance. Applications still in progress count towards no group
// but still register the client.
func GroupHistory(apps []domain.LoanApplication) []ClientHistory {
	var out []ClientHistory
	index := map[string]int{}
	for _, app := range apps {
		name := app.ClientName()
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, ClientHistory{
				Client:    name,
				Approved:  []ApplicationSummary{},
				Rejected:  []ApplicationSummary{},
				Cancelled: []ApplicationSummary{},
			})
		}
		group := &out[i]
		switch app.Status {
		case domain.StatusApproved, domain.StatusInDisbursement:
			group.Approved = append(group.Approved, Summarize(app))
		case domain.StatusRejected:
			group.Rejected = append(group.Rejected, Summarize(app))
		case domain.StatusCancelled:
			group.Cancelled = append(group.Cancelled, Summarize(app))
		}
	}
	if out == nil {
		out = []ClientHistory{}
	}
	return out
}

type HistoryView struct {
	applications ApplicationsAPI
}

func NewHistoryView(applications ApplicationsAPI) *HistoryView {
	return &HistoryView{applications: applications}
}

func (v *HistoryView) Load(ctx context.Context) ([]ClientHistory, error) {
	apps, err := v.applications.List(ctx)
	if err != nil {
		return nil, alert("Error al cargar el historial", err)
	}
	return GroupHistory(apps), nil
}
