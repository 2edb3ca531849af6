package service

import "time"

const (
	MaxTermYears = 30

	MaxDocumentBytes        = 5 * 1024 * 1024  // 5MB por archivo
	MaxDocumentPayloadBytes = 10 * 1024 * 1024 // 10MB para todos los documentos serializados

	// Criterios de capacidad de ahorro, en porcentaje.
	MinBalancePercent          = 10
	MinDepositPercent          = 5
	SeniorBalancePercent       = 10
	JuniorBalancePercent       = 20
	MaxWithdrawalPercent       = 30
	ConsistentHistoryMonths    = 12
	SeniorAccountMonths        = 24
	MinSavingsCriteriaRequired = 3

	DefaultSimulationCacheTTL = 10 * time.Minute
	DefaultSessionTTL         = 8 * time.Hour
)
