package caseService

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"DespachoJuridico/internal/api/cases"
	caseRepository "DespachoJuridico/internal/api/cases/repository"
	"DespachoJuridico/internal/entity"
	"github.com/sirupsen/logrus"
)

func newTestLedger(t *testing.T) (ICaseService, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cases.json")
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	repo, err := caseRepository.New(path, logger)
	if err != nil {
		t.Fatalf("creating repository: %v", err)
	}

	return NewCaseService(logger, repo), path
}

func TestConsultationLifecycle(t *testing.T) {
	svc, _ := newTestLedger(t)

	consultation, err := svc.CreateConsultation("5214771234567", "María García", "Multa de tránsito", "")
	if err != nil {
		t.Fatalf("CreateConsultation: %v", err)
	}

	if !strings.HasPrefix(consultation.ID, "CONS-") || len(consultation.ID) != 13 {
		t.Errorf("consultation ID %q does not match CONS-XXXXXXXX", consultation.ID)
	}
	if consultation.Urgency != "normal" {
		t.Errorf("default urgency = %q, want normal", consultation.Urgency)
	}
	if consultation.Status != entity.ConsultationPending {
		t.Errorf("new consultation status = %q, want pending", consultation.Status)
	}

	when := time.Now().Add(48 * time.Hour)
	if err := svc.ScheduleConsultation(consultation.ID, when, "cliente prefiere la tarde"); err != nil {
		t.Fatalf("ScheduleConsultation: %v", err)
	}

	pending := svc.PendingConsultations()
	if len(pending) != 1 {
		t.Fatalf("pending = %d, want 1 (scheduled still counts)", len(pending))
	}
	if pending[0].Status != entity.ConsultationScheduled {
		t.Errorf("status = %q, want scheduled", pending[0].Status)
	}
	if len(pending[0].Notes) != 1 {
		t.Errorf("notes = %d, want 1", len(pending[0].Notes))
	}

	completed, err := svc.CompleteConsultation(consultation.ID, "convertida a caso")
	if err != nil {
		t.Fatalf("CompleteConsultation: %v", err)
	}
	if completed.CompletedAt == nil || completed.Outcome != "convertida a caso" {
		t.Error("completion did not record outcome and timestamp")
	}

	if len(svc.PendingConsultations()) != 0 {
		t.Error("completed consultation still listed as pending")
	}
}

func TestScheduleUnknownConsultation(t *testing.T) {
	svc, _ := newTestLedger(t)

	err := svc.ScheduleConsultation("CONS-NADIE", time.Now(), "")
	if err != cases.ErrConsultationNotFound {
		t.Errorf("err = %v, want ErrConsultationNotFound", err)
	}
}

func TestCaseLifecycleAndStats(t *testing.T) {
	svc, _ := newTestLedger(t)

	client := entity.ClientInfo{Name: "Pedro Ruiz", Phone: "5214770000001"}
	legalCase, err := svc.CreateCase("CONS-ABCD1234", "multas", "Impugnación de fotomulta", 2500, client)
	if err != nil {
		t.Fatalf("CreateCase: %v", err)
	}
	if !strings.HasPrefix(legalCase.ID, "CASO-") {
		t.Errorf("case ID %q does not match CASO- prefix", legalCase.ID)
	}

	if err := svc.AddCaseUpdate(legalCase.ID, "demanda presentada", ""); err != nil {
		t.Fatalf("AddCaseUpdate: %v", err)
	}

	hearingDate := time.Now().Add(72 * time.Hour)
	hearing, err := svc.AddHearing(legalCase.ID, hearingDate, "audiencia", "Juzgado Administrativo de León", "")
	if err != nil {
		t.Fatalf("AddHearing: %v", err)
	}
	if hearing.Status != entity.HearingScheduled {
		t.Errorf("hearing status = %q, want scheduled", hearing.Status)
	}

	upcoming := svc.UpcomingHearings(7)
	if len(upcoming) != 1 {
		t.Fatalf("upcoming hearings = %d, want 1", len(upcoming))
	}
	if upcoming[0].CaseID != legalCase.ID {
		t.Errorf("hearing joined to case %q, want %q", upcoming[0].CaseID, legalCase.ID)
	}

	// Outside the window it disappears.
	if got := svc.UpcomingHearings(1); len(got) != 0 {
		t.Errorf("hearings within 1 day = %d, want 0", len(got))
	}

	if err := svc.CloseCase(legalCase.ID, "multa anulada", 2500); err != nil {
		t.Fatalf("CloseCase: %v", err)
	}

	stats := svc.Stats()
	if stats.ActiveCases != 0 || stats.ClosedCases != 1 {
		t.Errorf("active/closed = %d/%d, want 0/1", stats.ActiveCases, stats.ClosedCases)
	}
	if stats.TotalRevenue != 2500 {
		t.Errorf("revenue = %v, want 2500", stats.TotalRevenue)
	}
	if stats.TotalCases != 1 {
		t.Errorf("total cases = %d, want 1", stats.TotalCases)
	}
}

func TestLedgerSurvivesReload(t *testing.T) {
	svc, path := newTestLedger(t)

	if _, err := svc.CreateConsultation("5214771234567", "Laura M", "despido injustificado", "urgent"); err != nil {
		t.Fatalf("CreateConsultation: %v", err)
	}

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	repo, err := caseRepository.New(path, logger)
	if err != nil {
		t.Fatalf("reloading repository: %v", err)
	}
	reloaded := NewCaseService(logger, repo)

	stats := reloaded.Stats()
	if stats.TotalConsultations != 1 {
		t.Errorf("reloaded total consultations = %d, want 1", stats.TotalConsultations)
	}
	if stats.UrgentItems != 1 {
		t.Errorf("reloaded urgent items = %d, want 1", stats.UrgentItems)
	}
	if stats.ConsultationsThisMonth != 1 {
		t.Errorf("reloaded consultations this month = %d, want 1", stats.ConsultationsThisMonth)
	}
}

func TestClientCaseload(t *testing.T) {
	svc, _ := newTestLedger(t)

	phone := "5214779999999"
	if _, err := svc.CreateConsultation(phone, "Cliente A", "multa", ""); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateCase("", "multas", "caso A", 2500, entity.ClientInfo{Name: "Cliente A", Phone: phone}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateConsultation("5214770000000", "Otro Cliente", "divorcio", ""); err != nil {
		t.Fatal(err)
	}

	caseload := svc.ClientCases(phone)
	if len(caseload.Consultations) != 1 {
		t.Errorf("consultations = %d, want 1", len(caseload.Consultations))
	}
	if caseload.TotalCases != 1 {
		t.Errorf("total cases = %d, want 1", caseload.TotalCases)
	}
}
