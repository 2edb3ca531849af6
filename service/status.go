package service

import "prestabanco/domain"

// StatusInfo is how a lifecycle status is presented. Tone is a presentation
// hint (primary, warning, info, success, error, default).
type StatusInfo struct {
	Status      domain.ApplicationStatus `json:"status"`
	Label       string                   `json:"label"`
	Description string                   `json:"description"`
	Tone        string                   `json:"tone"`
}

var statusInfo = map[domain.ApplicationStatus]StatusInfo{
	domain.StatusInReview:         {Label: "En Revisión Inicial", Description: "Su solicitud está siendo revisada inicialmente.", Tone: "primary"},
	domain.StatusPendingDocuments: {Label: "Pendiente de Documentación", Description: "Se requieren documentos adicionales.", Tone: "warning"},
	domain.StatusInEvaluation:     {Label: "En Evaluación", Description: "Su solicitud está siendo evaluada por nuestro equipo.", Tone: "info"},
	domain.StatusPreApproved:      {Label: "Pre-Aprobada", Description: "Su solicitud ha sido pre-aprobada.", Tone: "success"},
	domain.StatusFinalApproval:    {Label: "En Aprobación Final", Description: "Su solicitud está en aprobación final.", Tone: "success"},
	domain.StatusApproved:         {Label: "Aprobada", Description: "Su solicitud ha sido aprobada.", Tone: "success"},
	domain.StatusRejected:         {Label: "Rechazada", Description: "Lo sentimos, su solicitud no cumple con los requisitos.", Tone: "error"},
	domain.StatusCancelled:        {Label: "Cancelada", Description: "La solicitud ha sido cancelada.", Tone: "default"},
	domain.StatusInDisbursement:   {Label: "En Desembolso", Description: "Se está procesando el desembolso de su préstamo.", Tone: "info"},
}

func StatusInfoFor(status domain.ApplicationStatus) StatusInfo {
	info, ok := statusInfo[status]
	if !ok {
		return StatusInfo{
			Status:      status,
			Label:       "Estado Desconocido",
			Description: "No se puede determinar el estado actual.",
			Tone:        "default",
		}
	}
	info.Status = status
	return info
}

// StatusOptions lists every status in lifecycle order, for the status picker.
func StatusOptions() []StatusInfo {
	out := make([]StatusInfo, 0, len(domain.Statuses))
	for _, s := range domain.Statuses {
		out = append(out, StatusInfoFor(s))
	}
	return out
}
