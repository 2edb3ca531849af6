package domain

type EvaluationDetail struct {
	Rule        string `json:"rule"`
	Passed      bool   `json:"passed"`
	Description string `json:"description"`
}

// EvaluationResult is the backend's verdict for POST /api/applications/{id}/evaluate.
type EvaluationResult struct {
	Approved          bool               `json:"approved"`
	EvaluationDetails []EvaluationDetail `json:"evaluationDetails"`
	Message           string             `json:"message"`
}
