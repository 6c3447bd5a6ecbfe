package ticketService

import (
	"DespachoJuridico/internal/entity"
	"DespachoJuridico/pkg/gemini"
	"DespachoJuridico/pkg/groq"
	"DespachoJuridico/pkg/utils"
	"DespachoJuridico/pkg/vision"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ITicketService interface {
	Analyze(ctx context.Context, image []byte, mimeType string) entity.AnalysisResult
	AnalyzeDirect(ctx context.Context, base64Image string, mimeType string) entity.AnalysisResult
	ExtractFields(ctx context.Context, rawText string) entity.TicketRecord
	DetectDefects(record entity.TicketRecord) []string
}

type ticketService struct {
	log          *logrus.Logger
	visionClient vision.ItfVision
	groqClient   groq.IGroq
	geminiClient gemini.IGemini
	utils        utils.IUtils
}

func NewTicketService(
	log *logrus.Logger,
	visionClient vision.ItfVision,
	groqClient groq.IGroq,
	geminiClient gemini.IGemini,
	utils utils.IUtils,
) ITicketService {
	return &ticketService{
		log:          log,
		visionClient: visionClient,
		groqClient:   groqClient,
		geminiClient: geminiClient,
		utils:        utils,
	}
}
