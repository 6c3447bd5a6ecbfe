package securityService

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"DespachoJuridico/internal/api/security"
	securityRepository "DespachoJuridico/internal/api/security/repository"
	"DespachoJuridico/pkg/nlp"
	"github.com/sirupsen/logrus"
)

type stubRedis struct {
	counts map[string]int64
	resets int
}

func (s *stubRedis) SetLastActivity(_ context.Context, _ string, _ time.Time) error { return nil }
func (s *stubRedis) GetLastActivity(_ context.Context, _ string) (time.Time, error) {
	return time.Time{}, nil
}
func (s *stubRedis) IncrSuspicionCount(_ context.Context, chatID string) (int64, error) {
	if s.counts == nil {
		s.counts = map[string]int64{}
	}
	s.counts[chatID]++
	return s.counts[chatID], nil
}
func (s *stubRedis) ResetSuspicionCount(_ context.Context, chatID string) error {
	delete(s.counts, chatID)
	s.resets++
	return nil
}

func newTestService(t *testing.T) (ISecurityService, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "blocked-numbers.json")
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	repo, err := securityRepository.New(path, logger)
	if err != nil {
		t.Fatalf("creating repository: %v", err)
	}

	return NewSecurityService(logger, repo, &stubRedis{}, nlp.NewProcessor()), path
}

func TestInspectFlagsExtortion(t *testing.T) {
	svc, _ := newTestService(t)

	cases := []struct {
		name    string
		text    string
		flagged bool
	}{
		{
			name:    "virtual kidnapping",
			text:    "Tenemos a tu hijo secuestrado, deposita ahora mismo o si no...",
			flagged: true,
		},
		{
			name:    "authority impersonation",
			text:    "Soy del ministerio publico, tienes una multa pendiente, transfiere inmediatamente",
			flagged: true,
		},
		{
			name:    "single hit is not enough",
			text:    "Me llegó una multa pendiente de tránsito",
			flagged: false,
		},
		{
			name:    "ordinary client message",
			text:    "Hola, quisiera una consulta sobre mi testamento",
			flagged: false,
		},
		{
			name:    "empty message",
			text:    "",
			flagged: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			check := svc.Inspect(tc.text)
			if check.Flagged != tc.flagged {
				t.Errorf("Flagged = %v (keywords %v), want %v", check.Flagged, check.Keywords, tc.flagged)
			}
			if check.Severity != len(check.Keywords) {
				t.Errorf("Severity = %d, want %d", check.Severity, len(check.Keywords))
			}
		})
	}
}

func TestInspectIgnoresAccentsAndCase(t *testing.T) {
	svc, _ := newTestService(t)

	check := svc.Inspect("DEPOSITA ya o te vamos a buscar, sabemos dónde vives")
	if !check.Flagged {
		t.Errorf("normalized match should flag, got keywords %v", check.Keywords)
	}
}

func TestBlockUnblockAndReport(t *testing.T) {
	svc, _ := newTestService(t)

	if !svc.ShouldRespond("5214771234567") {
		t.Fatal("fresh number should be answered")
	}

	if err := svc.Block("5214771234567", ""); err != nil {
		t.Fatalf("Block: %v", err)
	}
	if svc.ShouldRespond("5214771234567") {
		t.Error("blocked number should not be answered")
	}

	report := svc.Report()
	if report.BlockedCount != 1 {
		t.Fatalf("blocked count = %d, want 1", report.BlockedCount)
	}
	if report.BlockedNumbers[0].Reason != "Manual" {
		t.Errorf("default reason = %q, want Manual", report.BlockedNumbers[0].Reason)
	}

	if err := svc.Unblock("5214771234567"); err != nil {
		t.Fatalf("Unblock: %v", err)
	}
	if !svc.ShouldRespond("5214771234567") {
		t.Error("unblocked number should be answered again")
	}

	if err := svc.Unblock("5214771234567"); !errors.Is(err, security.ErrNumberNotBlocked) {
		t.Errorf("err = %v, want ErrNumberNotBlocked", err)
	}
}

func TestThreeStrikesAutoBlock(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for strike := int64(1); strike <= 2; strike++ {
		blocked, strikes, err := svc.MarkSuspicious(ctx, "5214779999999")
		if err != nil {
			t.Fatalf("MarkSuspicious: %v", err)
		}
		if blocked || strikes != strike {
			t.Fatalf("strike %d: blocked=%v strikes=%d", strike, blocked, strikes)
		}
	}

	blocked, strikes, err := svc.MarkSuspicious(ctx, "5214779999999")
	if err != nil {
		t.Fatalf("MarkSuspicious: %v", err)
	}
	if !blocked || strikes != 3 {
		t.Fatalf("third strike: blocked=%v strikes=%d, want blocked at 3", blocked, strikes)
	}

	if svc.ShouldRespond("5214779999999") {
		t.Error("auto-blocked number should not be answered")
	}
}

func TestBlocklistSurvivesReload(t *testing.T) {
	svc, path := newTestService(t)

	if err := svc.Block("5214770000001", "extorsión"); err != nil {
		t.Fatalf("Block: %v", err)
	}

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	repo, err := securityRepository.New(path, logger)
	if err != nil {
		t.Fatalf("reloading repository: %v", err)
	}

	reloaded := NewSecurityService(logger, repo, &stubRedis{}, nlp.NewProcessor())
	if reloaded.ShouldRespond("5214770000001") {
		t.Error("block should survive a restart")
	}
}

func TestWarningMessageSeverity(t *testing.T) {
	svc, _ := newTestService(t)

	if got := svc.WarningMessage(3); got != severeWarningCopy {
		t.Error("severity 3 should use the severe warning")
	}
	if got := svc.WarningMessage(2); got != mildWarningCopy {
		t.Error("severity 2 should use the mild warning")
	}
}
