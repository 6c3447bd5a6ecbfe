package ticketService

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"DespachoJuridico/internal/entity"
	"DespachoJuridico/pkg/groq"
	"github.com/sirupsen/logrus"
)

type stubVision struct {
	text  string
	err   error
	calls int
}

func (s *stubVision) DetectText(ctx context.Context, image []byte) (string, error) {
	s.calls++
	return s.text, s.err
}

type stubGroq struct {
	response string
	err      error
	calls    int
}

func (s *stubGroq) CreateChatCompletion(ctx context.Context, systemPrompt, userMessage string, params groq.CompletionParams) (string, error) {
	s.calls++
	return s.response, s.err
}

type stubGemini struct {
	response string
	err      error
	calls    int
}

func (s *stubGemini) AnalyzeImage(ctx context.Context, base64Image, mimeType, prompt string) (string, error) {
	s.calls++
	return s.response, s.err
}

type testUtils struct{}

func (testUtils) NewULIDFromTimestamp(t time.Time) (string, error) { return "01STUB", nil }

func (testUtils) ValidateImageFile(file *multipart.FileHeader) error { return nil }

func (testUtils) ConvertFileToBase64(file multipart.File) (string, error) { return "", nil }

func (testUtils) MimeTypeFromFilename(filename string) string { return "image/jpeg" }

func (testUtils) TruncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func newTestService(v *stubVision, g *stubGroq, gm *stubGemini) *ticketService {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return &ticketService{
		log:          logger,
		visionClient: v,
		groqClient:   g,
		geminiClient: gm,
		utils:        testUtils{},
	}
}

func populatedRecord() entity.TicketRecord {
	return entity.TicketRecord{
		InfractorName:  entity.Field("JUAN PEREZ LOPEZ"),
		TicketFolio:    entity.Field("12345"),
		InfractionDate: entity.Field("10/03/2025"),
		KnowledgeDate:  entity.Field("12/03/2025"),
		PlateNumber:    entity.Field("ABC-123"),
		VehicleMake:    entity.Field("NISSAN"),
		VehicleModel:   entity.Field("SENTRA"),
		OfficerName:    entity.Field("PEDRO RAMIREZ"),
		OfficerBadgeID: entity.Field("4521"),
		Precinct:       entity.Field("DIRECCIÓN DE POLICÍA VIAL"),
		Shift:          entity.Field("PRIMER TURNO"),
		Sector:         entity.Field("SECTOR 1"),
		TimeOfDay:      entity.Field("14:35"),
		Location:       entity.Field("BLVD. LÓPEZ MATEOS 1500, LEÓN"),
		InfractionType: entity.Field("EXCESO DE VELOCIDAD"),
		LegalArticle:   entity.Field("ART. 45 FRACC. II"),
		AmountDue:      entity.Field("2500"),
	}
}

func TestScoreBounds(t *testing.T) {
	tests := []struct {
		name          string
		record        entity.TicketRecord
		wantPopulated int
		wantPercent   int
	}{
		{
			name:          "all sentinel scores zero",
			record:        entity.AllSentinelRecord(),
			wantPopulated: 0,
			wantPercent:   0,
		},
		{
			name:          "fully populated scores hundred",
			record:        populatedRecord(),
			wantPopulated: 12,
			wantPercent:   100,
		},
		{
			name: "three of twelve required scores twenty five",
			record: entity.TicketRecord{
				TicketFolio:    entity.Field("12345"),
				PlateNumber:    entity.Field("ABC-123"),
				InfractionDate: entity.Field("10/03/2025"),
			},
			wantPopulated: 3,
			wantPercent:   25,
		},
		{
			name: "non-required fields do not count",
			record: entity.TicketRecord{
				Location:       entity.Field("BLVD. CAMPESTRE 100"),
				InfractionType: entity.Field("ESTACIONARSE EN LUGAR PROHIBIDO"),
				AmountDue:      entity.Field("1800"),
			},
			wantPopulated: 0,
			wantPercent:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := Score(tt.record)
			if score.Populated != tt.wantPopulated {
				t.Errorf("Populated = %d, want %d", score.Populated, tt.wantPopulated)
			}
			if score.Percent != tt.wantPercent {
				t.Errorf("Percent = %d, want %d", score.Percent, tt.wantPercent)
			}
			if score.Percent < 0 || score.Percent > 100 {
				t.Errorf("Percent %d out of [0,100]", score.Percent)
			}
			if score.Required != len(entity.RequiredTicketKeys) {
				t.Errorf("Required = %d, want %d", score.Required, len(entity.RequiredTicketKeys))
			}
		})
	}
}

func TestScoreAndFormatAreDeterministic(t *testing.T) {
	record := populatedRecord()

	first := Score(record)
	second := Score(record)
	if first != second {
		t.Errorf("Score not deterministic: %+v vs %+v", first, second)
	}

	summaryA := FormatSummary(record, first)
	summaryB := FormatSummary(record, second)
	if summaryA != summaryB {
		t.Error("FormatSummary not deterministic for identical inputs")
	}
}

func TestFormatSummaryContent(t *testing.T) {
	record := entity.TicketRecord{
		TicketFolio:    entity.Field("12345"),
		PlateNumber:    entity.Field("ABC-123"),
		InfractionDate: entity.Field("10/03/2025"),
	}
	summary := FormatSummary(record, Score(record))

	for _, want := range []string{"12345", "ABC-123", "25%", "3/12", ServicePriceCopy, SuccessRateCopy} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q", want)
		}
	}

	// Sentinel fields still render; the layout never collapses.
	if !strings.Contains(summary, entity.Sentinel) {
		t.Error("summary should render sentinel for unspecified fields")
	}
}

func TestFormatSummaryAllSentinel(t *testing.T) {
	record := entity.AllSentinelRecord()
	summary := FormatSummary(record, Score(record))

	if !strings.Contains(summary, "0% (0/12 campos)") {
		t.Errorf("all-sentinel summary should read 0%% (0/12 campos), got:\n%s", summary)
	}
}

func TestParseCompletionResponse(t *testing.T) {
	valid := `{"infractor_name":"Not specified","ticket_folio":"12345","infraction_date":"10/03/2025","knowledge_date":"Not specified","plate_number":"ABC-123","vehicle_make":"Not specified","vehicle_model":"Not specified","officer_name":"Not specified","officer_badge_id":"Not specified","precinct":"Not specified","shift":"Not specified","sector":"Not specified","time_of_day":"Not specified","location":"Not specified","infraction_type":"Not specified","legal_article":"Not specified","amount_due":"Not specified"}`

	tests := []struct {
		name     string
		response string
		wantErr  bool
	}{
		{"bare json", valid, false},
		{"json wrapped in prose", "Aquí está el resultado:\n" + valid + "\nEspero que ayude.", false},
		{"no json at all", "no pude procesar la imagen", true},
		{"unbalanced braces", "}{", true},
		{"missing schema key", `{"ticket_folio":"12345"}`, true},
		{"invalid json in span", "{this is not json}", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := parseCompletionResponse(tt.response)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := record.TicketFolio.String(); got != "12345" {
				t.Errorf("TicketFolio = %q, want 12345", got)
			}
			if record.InfractorName.IsSet() {
				t.Error("sentinel field should parse as unspecified")
			}
		})
	}
}

func TestExtractFieldsFallsBackOnMalformedOutput(t *testing.T) {
	groqStub := &stubGroq{response: "lo siento, no hay JSON aquí"}
	svc := newTestService(&stubVision{}, groqStub, &stubGemini{})

	record := svc.ExtractFields(context.Background(), "FOLIO 12345")

	for _, key := range entity.TicketSchemaKeys {
		if record.ByKey(key).IsSet() {
			t.Fatalf("fallback record should be all sentinel, %q is set", key)
		}
	}
}

func TestExtractFieldsFallsBackOnProviderError(t *testing.T) {
	groqStub := &stubGroq{err: errors.New("rate limited")}
	svc := newTestService(&stubVision{}, groqStub, &stubGemini{})

	record := svc.ExtractFields(context.Background(), "FOLIO 12345")

	if Score(record).Percent != 0 {
		t.Error("provider failure should degrade to 0% completeness, not fail")
	}
}

func TestSchemaTotality(t *testing.T) {
	records := []entity.TicketRecord{
		entity.AllSentinelRecord(),
		populatedRecord(),
		{TicketFolio: entity.Field("999")},
	}

	for _, record := range records {
		m := record.ToMap()
		if len(m) != len(entity.TicketSchemaKeys) {
			t.Fatalf("serialized record has %d keys, want %d", len(m), len(entity.TicketSchemaKeys))
		}
		for _, key := range entity.TicketSchemaKeys {
			v, ok := m[key]
			if !ok {
				t.Errorf("key %q absent from serialized record", key)
			}
			if v == "" {
				t.Errorf("key %q serialized empty, want value or sentinel", key)
			}
		}
	}
}

func TestAnalyzeShortCircuitsOnOcrFailure(t *testing.T) {
	visionStub := &stubVision{err: errors.New("connection refused")}
	groqStub := &stubGroq{}
	svc := newTestService(visionStub, groqStub, &stubGemini{})

	result := svc.Analyze(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg")

	if result.Success {
		t.Fatal("OCR failure must produce a failure result")
	}
	if result.Reason != "connection refused" {
		t.Errorf("Reason = %q, want provider error message", result.Reason)
	}
	if groqStub.calls != 0 {
		t.Errorf("completion provider called %d times after OCR failure, want 0", groqStub.calls)
	}
}

func TestAnalyzeEndToEnd(t *testing.T) {
	extractorOutput := `{"infractor_name":"Not specified","ticket_folio":"12345","infraction_date":"10/03/2025","knowledge_date":"Not specified","plate_number":"ABC-123","vehicle_make":"Not specified","vehicle_model":"Not specified","officer_name":"Not specified","officer_badge_id":"Not specified","precinct":"Not specified","shift":"Not specified","sector":"Not specified","time_of_day":"Not specified","location":"Not specified","infraction_type":"Not specified","legal_article":"Not specified","amount_due":"Not specified"}`

	visionStub := &stubVision{text: "FOLIO 12345 PLACAS ABC-123 FECHA 10/03/2025"}
	groqStub := &stubGroq{response: extractorOutput}
	svc := newTestService(visionStub, groqStub, &stubGemini{})

	result := svc.Analyze(context.Background(), []byte{0xFF, 0xD8}, "image/jpeg")

	if !result.Success {
		t.Fatalf("expected success, got failure: %s", result.Reason)
	}
	if visionStub.calls != 1 || groqStub.calls != 1 {
		t.Errorf("provider calls = (%d vision, %d groq), want (1, 1)", visionStub.calls, groqStub.calls)
	}
	if result.Record["ticket_folio"] != "12345" {
		t.Errorf("ticket_folio = %q, want 12345", result.Record["ticket_folio"])
	}
	if result.Completeness.Percent != 25 {
		t.Errorf("Percent = %d, want 25", result.Completeness.Percent)
	}
	if result.RawText != visionStub.text {
		t.Error("raw OCR text must pass through to the result")
	}
	for _, want := range []string{"12345", "ABC-123", "25%"} {
		if !strings.Contains(result.Summary, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestBusinessDaysBefore(t *testing.T) {
	tests := []struct {
		name string
		ref  time.Time
		n    int
		want time.Time
	}{
		{
			// Fri, Thu, Wed counted; weekend between ref and Fri skipped
			name: "monday minus three lands on wednesday",
			ref:  time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC),
			n:    3,
			want: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "tuesday minus three crosses the weekend to thursday",
			ref:  time.Date(2025, 3, 18, 0, 0, 0, 0, time.UTC),
			n:    3,
			want: time.Date(2025, 3, 13, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "zero days returns reference unchanged",
			ref:  time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			n:    0,
			want: time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "saturday reference walks into the week",
			ref:  time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC),
			n:    1,
			want: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BusinessDaysBefore(tt.ref, tt.n)
			if !got.Equal(tt.want) {
				t.Errorf("BusinessDaysBefore(%s, %d) = %s, want %s",
					tt.ref.Format("2006-01-02"), tt.n, got.Format("2006-01-02"), tt.want.Format("2006-01-02"))
			}
		})
	}
}

func TestFormatLongDate(t *testing.T) {
	d := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

	if got := FormatLongDate(d); got != "14 de marzo de 2025" {
		t.Errorf("FormatLongDate = %q", got)
	}
	if got := FormatUpperLongDate(d); got != "14 DE MARZO DE 2025" {
		t.Errorf("FormatUpperLongDate = %q", got)
	}
}

func TestDetectDefects(t *testing.T) {
	svc := newTestService(&stubVision{}, &stubGroq{}, &stubGemini{})

	defects := svc.DetectDefects(entity.AllSentinelRecord())
	if len(defects) != 6 {
		t.Errorf("all-sentinel record should list 6 defects, got %d: %v", len(defects), defects)
	}

	defects = svc.DetectDefects(populatedRecord())
	if len(defects) != 0 {
		t.Errorf("complete record should list no defects, got %v", defects)
	}
}
