package repository

import "prestabanco/domain"

// SimulationRecord is one simulator run kept for the session that made it.
type SimulationRecord struct {
	Owner  string            `json:"-"`
	Result domain.LoanResult `json:"result"`
}

type SimulationRepository interface {
	Save(record SimulationRecord) error
	ListByOwner(owner string) ([]SimulationRecord, error)
}
