package documentService

import (
	"context"
	"os"
	"strings"
	"testing"

	"DespachoJuridico/internal/entity"
	"DespachoJuridico/pkg/utils"
	"github.com/sirupsen/logrus"
)

type stubMailer struct {
	sent []string
}

func (m *stubMailer) SendDocument(recipient, subject, body string) error {
	m.sent = append(m.sent, recipient)
	return nil
}

func newTestService(t *testing.T) (IDocumentService, string) {
	t.Helper()

	dir := t.TempDir()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	return NewDocumentService(logger, &stubMailer{}, utils.New(), dir), dir
}

func TestGenerateComplaintPopulatesRecord(t *testing.T) {
	svc, _ := newTestService(t)

	record := entity.RecordFromMap(map[string]string{
		"ticket_folio":     "F-778899",
		"infraction_date":  "10/03/2025",
		"plate_number":     "ABC-123",
		"vehicle_make":     "NISSAN",
		"vehicle_model":    "SENTRA",
		"officer_name":     "PEDRO RAMIREZ",
		"officer_badge_id": "4521",
	})

	complaint := svc.GenerateComplaint(record, "María García")

	for _, want := range []string{
		"MARÍA GARCÍA",
		"F-778899",
		"10 DE MARZO DE 2025",
		"ABC-123",
		"NISSAN",
		"SENTRA",
		"PEDRO RAMIREZ",
		"4521",
		"ACTO IMPUGNADO",
		"PRETENSIÓN INTENTADA EN TÉRMINOS DEL ARTÍCULO 255",
		"CONCEPTOS DE IMPUGNACIÓN",
		"SUSPENSIÓN",
	} {
		if !strings.Contains(complaint, want) {
			t.Errorf("complaint missing %q", want)
		}
	}
}

func TestGenerateComplaintToleratesSentinels(t *testing.T) {
	svc, _ := newTestService(t)

	complaint := svc.GenerateComplaint(entity.AllSentinelRecord(), "Juan Pérez")

	if !strings.Contains(complaint, entity.Sentinel) {
		t.Error("sentinel fields should render as their placeholder, not be dropped")
	}
	if !strings.Contains(complaint, "JUAN PÉREZ") {
		t.Error("client name missing from complaint")
	}
	// The document structure never collapses on sparse input.
	if !strings.Contains(complaint, "HECHOS") {
		t.Error("complaint is structurally incomplete")
	}
}

func TestSaveComplaintWritesFile(t *testing.T) {
	svc, dir := newTestService(t)

	record := entity.RecordFromMap(map[string]string{"ticket_folio": "12345"})
	complaint, path, err := svc.SaveComplaint(context.Background(), record, "Juan Pérez")
	if err != nil {
		t.Fatalf("SaveComplaint: %v", err)
	}

	if !strings.HasPrefix(path, dir) {
		t.Errorf("document written outside output dir: %s", path)
	}
	if !strings.Contains(path, "demanda-12345-") {
		t.Errorf("file name should carry the folio, got %s", path)
	}

	written, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading written document: %v", err)
	}
	if string(written) != complaint {
		t.Error("file content differs from returned document")
	}
}
