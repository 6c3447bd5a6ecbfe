package caseService

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"DespachoJuridico/internal/api/cases"
	caseRepository "DespachoJuridico/internal/api/cases/repository"
	"DespachoJuridico/internal/entity"
	"github.com/google/uuid"
)

func consultationID() string {
	return fmt.Sprintf("CONS-%s", strings.ToUpper(uuid.NewString()[:8]))
}

func caseID() string {
	return fmt.Sprintf("CASO-%s", strings.ToUpper(uuid.NewString()[:8]))
}

func hearingID() string {
	return uuid.NewString()[:8]
}

func (s *caseService) CreateConsultation(clientPhone, clientName, issue, urgency string) (entity.Consultation, error) {
	if urgency == "" {
		urgency = "normal"
	}

	consultation := entity.Consultation{
		ID:          consultationID(),
		ClientPhone: clientPhone,
		ClientName:  clientName,
		Issue:       issue,
		Urgency:     urgency,
		Status:      entity.ConsultationPending,
		CreatedAt:   time.Now(),
		Notes:       []entity.CaseNote{},
	}

	err := s.repo.Mutate(func(l *caseRepository.Ledger) error {
		l.Consultations = append(l.Consultations, consultation)
		l.Stats.TotalConsultations++
		return nil
	})
	if err != nil {
		return entity.Consultation{}, err
	}

	s.log.Infof("Consultation created: %s", consultation.ID)
	return consultation, nil
}

func (s *caseService) ScheduleConsultation(consultationID string, when time.Time, notes string) error {
	return s.repo.Mutate(func(l *caseRepository.Ledger) error {
		for i := range l.Consultations {
			if l.Consultations[i].ID != consultationID {
				continue
			}
			l.Consultations[i].ScheduledFor = &when
			l.Consultations[i].Status = entity.ConsultationScheduled
			if notes != "" {
				l.Consultations[i].Notes = append(l.Consultations[i].Notes, entity.CaseNote{
					Date: time.Now(),
					Note: notes,
				})
			}
			return nil
		}
		return cases.ErrConsultationNotFound
	})
}

func (s *caseService) CompleteConsultation(consultationID string, outcome string) (entity.Consultation, error) {
	var completed entity.Consultation

	err := s.repo.Mutate(func(l *caseRepository.Ledger) error {
		for i := range l.Consultations {
			if l.Consultations[i].ID != consultationID {
				continue
			}
			now := time.Now()
			l.Consultations[i].Status = entity.ConsultationCompleted
			l.Consultations[i].CompletedAt = &now
			l.Consultations[i].Outcome = outcome
			completed = l.Consultations[i]
			return nil
		}
		return cases.ErrConsultationNotFound
	})
	if err != nil {
		return entity.Consultation{}, err
	}

	return completed, nil
}

func (s *caseService) CreateCase(consultationID, caseType, description string, estimatedCost float64, client entity.ClientInfo) (entity.LegalCase, error) {
	legalCase := entity.LegalCase{
		ID:             caseID(),
		ConsultationID: consultationID,
		CaseType:       caseType,
		Description:    description,
		EstimatedCost:  estimatedCost,
		Status:         entity.CaseActive,
		Priority:       "normal",
		CreatedAt:      time.Now(),
		Client:         client,
		Updates:        []entity.CaseNote{},
		Documents:      []string{},
		Hearings:       []entity.Hearing{},
	}

	err := s.repo.Mutate(func(l *caseRepository.Ledger) error {
		l.Active = append(l.Active, legalCase)
		l.Stats.TotalCases++
		return nil
	})
	if err != nil {
		return entity.LegalCase{}, err
	}

	s.log.Infof("Case created: %s", legalCase.ID)
	return legalCase, nil
}

func (s *caseService) AddCaseUpdate(caseID, update, by string) error {
	if by == "" {
		by = "Sistema"
	}

	return s.repo.Mutate(func(l *caseRepository.Ledger) error {
		for i := range l.Active {
			if l.Active[i].ID != caseID {
				continue
			}
			l.Active[i].Updates = append(l.Active[i].Updates, entity.CaseNote{
				Date: time.Now(),
				Note: update,
				By:   by,
			})
			return nil
		}
		return cases.ErrCaseNotFound
	})
}

func (s *caseService) AddHearing(caseID string, date time.Time, hearingType, location, notes string) (entity.Hearing, error) {
	hearing := entity.Hearing{
		ID:       hearingID(),
		Date:     date,
		Type:     hearingType,
		Location: location,
		Notes:    notes,
		Status:   entity.HearingScheduled,
	}

	err := s.repo.Mutate(func(l *caseRepository.Ledger) error {
		for i := range l.Active {
			if l.Active[i].ID != caseID {
				continue
			}
			l.Active[i].Hearings = append(l.Active[i].Hearings, hearing)
			return nil
		}
		return cases.ErrCaseNotFound
	})
	if err != nil {
		return entity.Hearing{}, err
	}

	return hearing, nil
}

func (s *caseService) CloseCase(caseID, resolution string, finalCost float64) error {
	err := s.repo.Mutate(func(l *caseRepository.Ledger) error {
		for i := range l.Active {
			if l.Active[i].ID != caseID {
				continue
			}
			closed := l.Active[i]
			now := time.Now()
			closed.Status = entity.CaseClosed
			closed.Resolution = resolution
			closed.FinalCost = finalCost
			closed.ClosedAt = &now

			l.Stats.Revenue += finalCost
			l.Closed = append(l.Closed, closed)
			l.Active = append(l.Active[:i], l.Active[i+1:]...)
			return nil
		}
		return cases.ErrCaseNotFound
	})
	if err != nil {
		return err
	}

	s.log.Infof("Case closed: %s", caseID)
	return nil
}

func (s *caseService) ClientCases(clientPhone string) ClientCaseload {
	var caseload ClientCaseload

	s.repo.View(func(l caseRepository.Ledger) {
		for _, c := range l.Consultations {
			if c.ClientPhone == clientPhone {
				caseload.Consultations = append(caseload.Consultations, c)
			}
		}
		for _, lc := range l.Active {
			if lc.Client.Phone == clientPhone {
				caseload.Active = append(caseload.Active, lc)
			}
		}
		for _, lc := range l.Closed {
			if lc.Client.Phone == clientPhone {
				caseload.Closed = append(caseload.Closed, lc)
			}
		}
	})

	caseload.TotalCases = len(caseload.Active) + len(caseload.Closed)
	return caseload
}

func (s *caseService) PendingConsultations() []entity.Consultation {
	var pending []entity.Consultation

	s.repo.View(func(l caseRepository.Ledger) {
		for _, c := range l.Consultations {
			if c.Status == entity.ConsultationPending || c.Status == entity.ConsultationScheduled {
				pending = append(pending, c)
			}
		}
	})

	return pending
}

func (s *caseService) UrgentItems() int {
	count := 0

	s.repo.View(func(l caseRepository.Ledger) {
		for _, c := range l.Consultations {
			if c.Urgency == "urgent" {
				count++
			}
		}
		for _, lc := range l.Active {
			if lc.Priority == "urgent" || lc.Priority == "high" {
				count++
			}
		}
	})

	return count
}

func (s *caseService) UpcomingHearings(days int) []entity.UpcomingHearing {
	now := time.Now()
	horizon := now.AddDate(0, 0, days)

	var upcoming []entity.UpcomingHearing

	s.repo.View(func(l caseRepository.Ledger) {
		for _, lc := range l.Active {
			for _, h := range lc.Hearings {
				if h.Status != entity.HearingScheduled {
					continue
				}
				if h.Date.Before(now) || h.Date.After(horizon) {
					continue
				}
				upcoming = append(upcoming, entity.UpcomingHearing{
					Hearing:  h,
					CaseID:   lc.ID,
					CaseType: lc.CaseType,
					Client:   lc.Client,
				})
			}
		}
	})

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})

	return upcoming
}

func (s *caseService) Stats() entity.LedgerStats {
	now := time.Now()
	stats := entity.LedgerStats{
		CasesByType: map[string]int{},
	}

	s.repo.View(func(l caseRepository.Ledger) {
		stats.TotalConsultations = l.Stats.TotalConsultations
		stats.TotalCases = l.Stats.TotalCases
		stats.TotalRevenue = l.Stats.Revenue
		stats.ActiveCases = len(l.Active)
		stats.ClosedCases = len(l.Closed)

		for _, c := range l.Consultations {
			switch c.Status {
			case entity.ConsultationPending:
				stats.PendingConsultations++
			case entity.ConsultationScheduled:
				stats.ScheduledConsultations++
			}
			if c.CreatedAt.Month() == now.Month() && c.CreatedAt.Year() == now.Year() {
				stats.ConsultationsThisMonth++
			}
		}

		for _, lc := range l.Active {
			stats.CasesByType[lc.CaseType]++
		}
	})

	stats.UrgentItems = s.UrgentItems()
	stats.UpcomingHearings = len(s.UpcomingHearings(7))

	return stats
}
