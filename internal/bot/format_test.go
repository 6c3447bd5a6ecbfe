package bot

import (
	"strings"
	"testing"
	"time"

	"DespachoJuridico/internal/entity"
)

func TestIsRelevant(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"Hola, me llegó una multa", true},
		{"¿Cuánto cuesta un testamento?", true},
		{"necesito AYUDA urgente", true},
		{"gana dinero desde casa, clic aquí", false},
		{"😀😀😀", false},
	}

	for _, tc := range cases {
		if got := isRelevant(tc.text); got != tc.want {
			t.Errorf("isRelevant(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestIsSimpleGreeting(t *testing.T) {
	cases := []struct {
		text string
		want bool
	}{
		{"hola", true},
		{"Buenas tardes", true},
		{"buen día licenciado", true},
		{"hola, me llegó una multa de tránsito", false},
		{"necesito un abogado", false},
	}

	for _, tc := range cases {
		if got := isSimpleGreeting(tc.text); got != tc.want {
			t.Errorf("isSimpleGreeting(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}

func TestResponseDelayRanges(t *testing.T) {
	for i := 0; i < 50; i++ {
		if d := responseDelay(true, false); d < 3*time.Second || d >= 8*time.Second {
			t.Fatalf("first-contact delay %v out of [3s,8s)", d)
		}
		if d := responseDelay(false, true); d < time.Second || d >= 3*time.Second {
			t.Fatalf("active delay %v out of [1s,3s)", d)
		}
		if d := responseDelay(false, false); d < 2*time.Second || d >= 5*time.Second {
			t.Fatalf("idle delay %v out of [2s,5s)", d)
		}
	}
}

func TestExtensionFromMime(t *testing.T) {
	cases := []struct {
		mime string
		want string
	}{
		{"image/jpeg", "jpeg"},
		{"image/png", "png"},
		{"application/pdf", "pdf"},
		{"weird", "bin"},
		{"", "bin"},
	}

	for _, tc := range cases {
		if got := extensionFromMime(tc.mime); got != tc.want {
			t.Errorf("extensionFromMime(%q) = %q, want %q", tc.mime, got, tc.want)
		}
	}
}

func TestFormatStats(t *testing.T) {
	msg := formatStats(entity.LedgerStats{
		TotalConsultations:     12,
		PendingConsultations:   3,
		ScheduledConsultations: 2,
		TotalCases:             7,
		ActiveCases:            4,
		ClosedCases:            3,
	})

	for _, want := range []string{
		"Consultas totales: 12",
		"├─ Pendientes: 3",
		"└─ Agendadas: 2",
		"Casos totales: 7",
		"├─ Activos: 4",
		"└─ Cerrados: 3",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("stats message missing %q:\n%s", want, msg)
		}
	}
}

func TestFormatPending(t *testing.T) {
	if got := formatPending(nil); got != "✅ No hay consultas pendientes" {
		t.Errorf("empty pending = %q", got)
	}

	msg := formatPending([]entity.Consultation{
		{ID: "CONS-AAAA1111", ClientName: "María", ClientPhone: "5214771234567", Issue: "Multa de tránsito"},
		{ID: "CONS-BBBB2222", ClientName: "Pedro", ClientPhone: "5214779876543", Issue: "Despido"},
	})

	for _, want := range []string{"(2)", "1. *CONS-AAAA1111*", "2. *CONS-BBBB2222*", "Asunto: Despido"} {
		if !strings.Contains(msg, want) {
			t.Errorf("pending message missing %q:\n%s", want, msg)
		}
	}
}

func TestFormatHearings(t *testing.T) {
	if got := formatHearings(nil); got != "✅ No hay audiencias programadas" {
		t.Errorf("empty hearings = %q", got)
	}

	date := time.Date(2025, 3, 14, 10, 0, 0, 0, time.Local)
	msg := formatHearings([]entity.UpcomingHearing{
		{
			Hearing:  entity.Hearing{Date: date, Type: "inicial"},
			CaseID:   "CASO-CCCC3333",
			Client:   entity.ClientInfo{Name: "María"},
			CaseType: "multa",
		},
	})

	for _, want := range []string{"(1)", "14/03/2025", "Caso: CASO-CCCC3333", "Cliente: María"} {
		if !strings.Contains(msg, want) {
			t.Errorf("hearings message missing %q:\n%s", want, msg)
		}
	}
}
