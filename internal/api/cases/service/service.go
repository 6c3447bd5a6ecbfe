package caseService

import (
	"time"

	caseRepository "DespachoJuridico/internal/api/cases/repository"
	"DespachoJuridico/internal/entity"
	"github.com/sirupsen/logrus"
)

type ICaseService interface {
	CreateConsultation(clientPhone, clientName, issue, urgency string) (entity.Consultation, error)
	ScheduleConsultation(consultationID string, when time.Time, notes string) error
	CompleteConsultation(consultationID string, outcome string) (entity.Consultation, error)
	CreateCase(consultationID, caseType, description string, estimatedCost float64, client entity.ClientInfo) (entity.LegalCase, error)
	AddCaseUpdate(caseID, update, by string) error
	AddHearing(caseID string, date time.Time, hearingType, location, notes string) (entity.Hearing, error)
	CloseCase(caseID, resolution string, finalCost float64) error
	ClientCases(clientPhone string) ClientCaseload
	PendingConsultations() []entity.Consultation
	UrgentItems() int
	UpcomingHearings(days int) []entity.UpcomingHearing
	Stats() entity.LedgerStats
}

type ClientCaseload struct {
	Consultations []entity.Consultation `json:"consultations"`
	Active        []entity.LegalCase    `json:"active"`
	Closed        []entity.LegalCase    `json:"closed"`
	TotalCases    int                   `json:"total_cases"`
}

type caseService struct {
	log  *logrus.Logger
	repo caseRepository.ICaseRepository
}

func NewCaseService(log *logrus.Logger, repo caseRepository.ICaseRepository) ICaseService {
	return &caseService{
		log:  log,
		repo: repo,
	}
}
