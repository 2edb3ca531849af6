package service

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"prestabanco/domain"
	"prestabanco/repository"
)

// SimulationRequest is the simulator form. A nil InterestRate takes the
// band minimum of the loan type.
type SimulationRequest struct {
	LoanType     string           `json:"loanType"`
	Amount       decimal.Decimal  `json:"amount"`
	Term         int              `json:"term"`
	InterestRate *decimal.Decimal `json:"interestRate,omitempty"`
}

type SimulationView struct {
	Result             domain.LoanResult `json:"result"`
	MonthlyPaymentText string            `json:"monthlyPaymentText"`
	TotalCostText      string            `json:"totalCostText"`
	InterestRateText   string            `json:"interestRateText"`
	Cached             bool              `json:"cached"`
}

type cachedSimulation struct {
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	TotalCost      decimal.Decimal `json:"totalCost"`
}

type SimulatorService struct {
	loans    LoansAPI
	repo     repository.SimulationRepository
	cache    repository.CacheRepository
	cacheTTL time.Duration
}

func NewSimulatorService(
	loans LoansAPI,
	repo repository.SimulationRepository,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
) *SimulatorService {
	if cacheTTL <= 0 {
		cacheTTL = DefaultSimulationCacheTTL
	}
	return &SimulatorService{loans: loans, repo: repo, cache: cache, cacheTTL: cacheTTL}
}

// ValidateSimulation checks the form and resolves the loan type and rate.
func ValidateSimulation(req SimulationRequest) (domain.PropertyType, decimal.Decimal, error) {
	fields := map[string]string{}

	pt, ok := domain.ParsePropertyType(req.LoanType)
	if !ok {
		fields["loanType"] = "Seleccione un tipo de préstamo"
	}

	switch {
	case req.Amount.IsZero():
		fields["amount"] = "Ingrese el monto del préstamo"
	case req.Amount.IsNegative():
		fields["amount"] = "El monto del préstamo debe ser mayor a 0"
	}

	switch {
	case req.Term == 0:
		fields["term"] = "Ingrese el plazo del préstamo"
	case req.Term < 0:
		fields["term"] = "El plazo debe ser mayor a 0"
	case req.Term > MaxTermYears:
		fields["term"] = "El plazo máximo es de 30 años"
	}

	rate := DefaultRate(pt)
	if ok && req.InterestRate != nil {
		rate = *req.InterestRate
		if band, _ := RateRangeFor(pt); !band.Contains(rate) {
			fields["interestRate"] = "La tasa debe estar entre " + FormatRate(band.Min) + " y " + FormatRate(band.Max)
		}
	}

	return pt, rate, validationOrNil(fields)
}

// Simulate asks the backend for the monthly payment and the total cost.
// owner keys the simulation history; empty skips recording.
func (s *SimulatorService) Simulate(ctx context.Context, owner string, req SimulationRequest) (SimulationView, error) {
	pt, rate, err := ValidateSimulation(req)
	if err != nil {
		return SimulationView{}, err
	}

	input := domain.LoanInput{
		RequestedAmount: req.Amount,
		InterestRate:    rate,
		Term:            req.Term,
	}

	figures, cached := s.fromCache(ctx, input)
	if !cached {
		simulated, err := s.loans.Simulate(ctx, input)
		if err != nil {
			return SimulationView{}, alert("Error al procesar la simulación. Por favor, intente nuevamente.", err)
		}
		cost, err := s.loans.CalculateCost(ctx, input)
		if err != nil {
			return SimulationView{}, alert("Error al procesar la simulación. Por favor, intente nuevamente.", err)
		}
		figures = cachedSimulation{MonthlyPayment: simulated.MonthlyPayment, TotalCost: cost.TotalCost}
		s.toCache(ctx, input, figures)
	}

	result := domain.LoanResult{
		LoanType:       pt,
		Amount:         req.Amount,
		Term:           req.Term,
		MonthlyPayment: figures.MonthlyPayment,
		InterestRate:   rate,
		TotalCost:      figures.TotalCost,
	}

	// Guardar el resultado (no crítico si falla)
	if owner != "" {
		if err := s.repo.Save(repository.SimulationRecord{Owner: owner, Result: result}); err != nil {
			log.Printf("Warning: failed to save simulation: %v", err)
		}
	}

	return SimulationView{
		Result:             result,
		MonthlyPaymentText: FormatAmount(result.MonthlyPayment),
		TotalCostText:      FormatAmount(result.TotalCost),
		InterestRateText:   FormatRate(rate),
		Cached:             cached,
	}, nil
}

// History returns the owner's past simulations, newest first.
func (s *SimulatorService) History(owner string) ([]domain.LoanResult, error) {
	records, err := s.repo.ListByOwner(owner)
	if err != nil {
		return nil, err
	}
	out := make([]domain.LoanResult, 0, len(records))
	for _, r := range records {
		out = append(out, r.Result)
	}
	return out, nil
}

func simulationKey(in domain.LoanInput) string {
	return "simulation:" + in.RequestedAmount.String() + ":" + in.InterestRate.String() + ":" + strconv.Itoa(in.Term)
}

func (s *SimulatorService) fromCache(ctx context.Context, in domain.LoanInput) (cachedSimulation, bool) {
	raw, ok := s.cache.Get(ctx, simulationKey(in))
	if !ok {
		return cachedSimulation{}, false
	}
	var figures cachedSimulation
	if err := json.Unmarshal([]byte(raw), &figures); err != nil {
		log.Printf("Warning: discarding unreadable cached simulation: %v", err)
		return cachedSimulation{}, false
	}
	return figures, true
}

func (s *SimulatorService) toCache(ctx context.Context, in domain.LoanInput, figures cachedSimulation) {
	raw, err := json.Marshal(figures)
	if err != nil {
		log.Printf("Warning: failed to encode simulation for cache: %v", err)
		return
	}
	if err := s.cache.Set(ctx, simulationKey(in), string(raw), s.cacheTTL); err != nil {
		log.Printf("Warning: failed to cache simulation: %v", err)
	}
}
