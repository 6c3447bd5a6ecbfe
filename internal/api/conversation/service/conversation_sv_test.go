package conversationService

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"DespachoJuridico/internal/api/conversation"
	conversationRepository "DespachoJuridico/internal/api/conversation/repository"
	"DespachoJuridico/internal/entity"
	"DespachoJuridico/pkg/groq"
	"DespachoJuridico/pkg/nlp"
	"github.com/sirupsen/logrus"
)

type stubGroq struct {
	reply string
	err   error
	calls int
}

func (s *stubGroq) CreateChatCompletion(_ context.Context, _, _ string, _ groq.CompletionParams) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func newTestService(t *testing.T, groqClient groq.IGroq) (IConversationService, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "conversations.json")
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	repo, err := conversationRepository.New(path, logger)
	if err != nil {
		t.Fatalf("creating repository: %v", err)
	}

	return NewConversationService(logger, repo, groqClient, nlp.NewProcessor()), path
}

func TestTrackingAndStats(t *testing.T) {
	svc, _ := newTestService(t, &stubGroq{})

	intent := svc.TrackIncoming("5214771234567", "María", "Hola, me llegó una multa de tránsito")
	if intent == nil || intent.Intent != "multa" {
		t.Fatalf("intent = %v, want multa", intent)
	}
	svc.TrackOutgoing("5214771234567", "Mándame foto de ambos lados")

	svc.TrackIncoming("5214779876543", "Pedro", "Buenos días")
	svc.TrackOutgoing("5214779876543", "Hola, ¿qué necesitas?")

	if err := svc.MarkConverted("5214771234567", "CASO-ABC12345"); err != nil {
		t.Fatalf("MarkConverted: %v", err)
	}

	stats := svc.Stats()
	if stats.Total != 2 {
		t.Errorf("total = %d, want 2", stats.Total)
	}
	if stats.Active != 1 {
		t.Errorf("active = %d, want 1", stats.Active)
	}
	if stats.Converted != 1 {
		t.Errorf("converted = %d, want 1", stats.Converted)
	}
	if stats.ConversionRate != 50 {
		t.Errorf("conversion rate = %v, want 50", stats.ConversionRate)
	}
	if stats.TotalMessages != 4 {
		t.Errorf("total messages = %d, want 4", stats.TotalMessages)
	}
	if stats.AvgMessagesPerConversation != 2 {
		t.Errorf("avg messages = %v, want 2", stats.AvgMessagesPerConversation)
	}
	if stats.CommonIntents["multa"] != 1 {
		t.Errorf("common intents = %v, want multa counted once", stats.CommonIntents)
	}
}

func TestMarkConvertedUnknownUser(t *testing.T) {
	svc, _ := newTestService(t, &stubGroq{})

	if err := svc.MarkConverted("5210000000000", "CASO-XYZ"); !errors.Is(err, conversation.ErrConversationNotFound) {
		t.Fatalf("err = %v, want ErrConversationNotFound", err)
	}
}

func TestGenerateReplyUsesModelOutput(t *testing.T) {
	stub := &stubGroq{reply: "  ¿De qué tipo es la multa?  "}
	svc, _ := newTestService(t, stub)

	reply := svc.GenerateReply(context.Background(), "521477", "Me llegó una multa", &nlp.IntentResult{Intent: "multa"})
	if reply != "¿De qué tipo es la multa?" {
		t.Errorf("reply = %q, want trimmed model output", reply)
	}
	if stub.calls != 1 {
		t.Errorf("groq calls = %d, want 1", stub.calls)
	}
}

func TestGenerateReplyFallsBackOnProviderError(t *testing.T) {
	svc, _ := newTestService(t, &stubGroq{err: errors.New("rate limited")})

	cases := []struct {
		message string
		want    string
	}{
		{"Me llegó una multa", "Mándame foto."},
		{"¿Cuál es el precio?", "¿De qué?"},
		{"Tengo un problema laboral", "Cuéntame qué pasó."},
		{"hola", "Hola, ¿qué necesitas?"},
		{"necesito ayuda con algo", "¿En qué te ayudo?"},
	}

	for _, tc := range cases {
		if got := svc.GenerateReply(context.Background(), "521477", tc.message, nil); got != tc.want {
			t.Errorf("fallback for %q = %q, want %q", tc.message, got, tc.want)
		}
	}
}

func TestAnalyzeSentiment(t *testing.T) {
	cases := []struct {
		text string
		want entity.Sentiment
	}{
		{"Muchas gracias, excelente servicio", entity.SentimentPositive},
		{"Esto es injusto, estoy muy molesto", entity.SentimentNegative},
		{"¿A qué hora abren?", entity.SentimentNeutral},
	}

	for _, tc := range cases {
		if got := analyzeSentiment(tc.text); got != tc.want {
			t.Errorf("analyzeSentiment(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestBookSurvivesReload(t *testing.T) {
	svc, path := newTestService(t, &stubGroq{})

	svc.TrackIncoming("5214771234567", "María", "Hola")
	svc.TrackOutgoing("5214771234567", "Buenas, dime")

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	repo, err := conversationRepository.New(path, logger)
	if err != nil {
		t.Fatalf("reloading repository: %v", err)
	}

	reloaded := NewConversationService(logger, repo, &stubGroq{}, nlp.NewProcessor())
	stats := reloaded.Stats()
	if stats.Total != 1 || stats.TotalMessages != 2 {
		t.Errorf("reloaded stats = %+v, want 1 conversation with 2 messages", stats)
	}

	if !strings.Contains(reloaded.(*conversationService).history("5214771234567"), "Buenas, dime") {
		t.Error("history should include the assistant reply after reload")
	}
}
