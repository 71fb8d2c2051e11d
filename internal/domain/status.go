package domain

// RequestStatus is the lifecycle state of a request. Admins assign any value
// directly; the only automatic transitions are the initial state and the
// forced move to QuoteSent when a quote is generated.
type RequestStatus string

const (
	StatusPending              RequestStatus = "pending"
	StatusContacted            RequestStatus = "contacted"
	StatusQuoteSent            RequestStatus = "quote_sent"
	StatusAppointmentScheduled RequestStatus = "appointment_scheduled"
	StatusRepaired             RequestStatus = "repaired"
	StatusRepairedInvoiced     RequestStatus = "repaired_invoiced"
	StatusCancelled            RequestStatus = "cancelled"

	// Coverage applications only
	StatusPreQualified RequestStatus = "pre_qualified"
	StatusManualReview RequestStatus = "manual_review"
	StatusSubmitted    RequestStatus = "submitted"
)

// AllRequestStatuses lists the closed set in display order
var AllRequestStatuses = []RequestStatus{
	StatusPending,
	StatusContacted,
	StatusQuoteSent,
	StatusAppointmentScheduled,
	StatusRepaired,
	StatusRepairedInvoiced,
	StatusCancelled,
	StatusPreQualified,
	StatusManualReview,
	StatusSubmitted,
}

// IsValid reports whether s belongs to the closed set of statuses
func (s RequestStatus) IsValid() bool {
	for _, known := range AllRequestStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further work is expected. Edits are still allowed.
func (s RequestStatus) IsTerminal() bool {
	return s == StatusRepaired || s == StatusRepairedInvoiced || s == StatusCancelled
}

// CountsAsRevenue reports whether reports treat the request as a completed, billable job
func (s RequestStatus) CountsAsRevenue() bool {
	return s == StatusRepaired || s == StatusRepairedInvoiced
}

// Label returns the Spanish display label used in documents and notifications
func (s RequestStatus) Label() string {
	switch s {
	case StatusPending:
		return "Pendiente"
	case StatusContacted:
		return "Contactado"
	case StatusQuoteSent:
		return "Presupuesto enviado"
	case StatusAppointmentScheduled:
		return "Turno agendado"
	case StatusRepaired:
		return "Reparado"
	case StatusRepairedInvoiced:
		return "Reparado y facturado"
	case StatusCancelled:
		return "Cancelado"
	case StatusPreQualified:
		return "Precalificado"
	case StatusManualReview:
		return "Revisión manual"
	case StatusSubmitted:
		return "Enviado"
	default:
		return string(s)
	}
}

// InitialStatus returns the state a new puntual or demo request starts in.
// Coverage applications get theirs from the pre-qualification rule.
func InitialStatus(line ServiceLine) RequestStatus {
	if line == ServiceLineCobertura {
		return StatusSubmitted
	}
	return StatusPending
}
