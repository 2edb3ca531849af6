package repository

import "sync"

// maxSimulationsPerOwner bounds the history kept for a single owner.
const maxSimulationsPerOwner = 50

// SimulationRepositoryMemory is an in-memory implementation of SimulationRepository.
type SimulationRepositoryMemory struct {
	mu   sync.Mutex
	data map[string][]SimulationRecord
}

// NewSimulationRepositoryMemory creates a new in-memory simulation repository.
func NewSimulationRepositoryMemory() *SimulationRepositoryMemory {
	return &SimulationRepositoryMemory{
		data: map[string][]SimulationRecord{},
	}
}

// Save stores the simulation in memory, dropping the oldest past the cap.
func (r *SimulationRepositoryMemory) Save(record SimulationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := append(r.data[record.Owner], record)
	if len(records) > maxSimulationsPerOwner {
		records = records[len(records)-maxSimulationsPerOwner:]
	}
	r.data[record.Owner] = records
	return nil
}

// ListByOwner returns the owner's simulations, newest first.
func (r *SimulationRepositoryMemory) ListByOwner(owner string) ([]SimulationRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records := r.data[owner]
	out := make([]SimulationRecord, len(records))
	for i, rec := range records {
		out[len(records)-1-i] = rec
	}
	return out, nil
}
