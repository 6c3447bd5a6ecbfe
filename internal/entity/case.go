package entity

import "time"

type ConsultationStatus string

const (
	ConsultationPending   ConsultationStatus = "pending"
	ConsultationScheduled ConsultationStatus = "scheduled"
	ConsultationCompleted ConsultationStatus = "completed"
	ConsultationCancelled ConsultationStatus = "cancelled"
)

type CaseStatus string

const (
	CaseActive    CaseStatus = "active"
	CaseSuspended CaseStatus = "suspended"
	CaseClosed    CaseStatus = "closed"
)

type HearingStatus string

const (
	HearingScheduled HearingStatus = "scheduled"
	HearingCompleted HearingStatus = "completed"
	HearingPostponed HearingStatus = "postponed"
	HearingCancelled HearingStatus = "cancelled"
)

type CaseNote struct {
	Date time.Time `json:"date"`
	Note string    `json:"note"`
	By   string    `json:"by,omitempty"`
}

type Consultation struct {
	ID           string             `json:"id"`
	ClientPhone  string             `json:"client_phone"`
	ClientName   string             `json:"client_name"`
	Issue        string             `json:"issue"`
	Urgency      string             `json:"urgency"`
	Status       ConsultationStatus `json:"status"`
	CreatedAt    time.Time          `json:"created_at"`
	ScheduledFor *time.Time         `json:"scheduled_for,omitempty"`
	CompletedAt  *time.Time         `json:"completed_at,omitempty"`
	Outcome      string             `json:"outcome,omitempty"`
	Notes        []CaseNote         `json:"notes"`
}

type ClientInfo struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type Hearing struct {
	ID       string        `json:"id"`
	Date     time.Time     `json:"date"`
	Type     string        `json:"type"`
	Location string        `json:"location"`
	Notes    string        `json:"notes,omitempty"`
	Status   HearingStatus `json:"status"`
	Result   string        `json:"result,omitempty"`
}

type LegalCase struct {
	ID             string     `json:"id"`
	ConsultationID string     `json:"consultation_id,omitempty"`
	CaseType       string     `json:"case_type"`
	Description    string     `json:"description"`
	EstimatedCost  float64    `json:"estimated_cost"`
	PaidAmount     float64    `json:"paid_amount"`
	FinalCost      float64    `json:"final_cost,omitempty"`
	Status         CaseStatus `json:"status"`
	Priority       string     `json:"priority"`
	Resolution     string     `json:"resolution,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
	Client         ClientInfo `json:"client"`
	Updates        []CaseNote `json:"updates"`
	Documents      []string   `json:"documents"`
	Hearings       []Hearing  `json:"hearings"`
}

// UpcomingHearing is a hearing joined with its owning case, as returned by
// the upcoming-hearings query.
type UpcomingHearing struct {
	Hearing
	CaseID   string     `json:"case_id"`
	CaseType string     `json:"case_type"`
	Client   ClientInfo `json:"client"`
}

type LedgerStats struct {
	TotalConsultations     int            `json:"total_consultations"`
	PendingConsultations   int            `json:"pending_consultations"`
	ScheduledConsultations int            `json:"scheduled_consultations"`
	TotalCases             int            `json:"total_cases"`
	ActiveCases            int            `json:"active_cases"`
	ClosedCases            int            `json:"closed_cases"`
	UrgentItems            int            `json:"urgent_items"`
	ConsultationsThisMonth int            `json:"consultations_this_month"`
	CasesByType            map[string]int `json:"cases_by_type"`
	TotalRevenue           float64        `json:"total_revenue"`
	UpcomingHearings       int            `json:"upcoming_hearings"`
}
