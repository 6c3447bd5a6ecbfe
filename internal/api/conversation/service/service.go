package conversationService

import (
	"DespachoJuridico/internal/api/conversation/repository"
	"DespachoJuridico/internal/entity"
	"DespachoJuridico/pkg/groq"
	"DespachoJuridico/pkg/nlp"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IConversationService interface {
	TrackIncoming(userID, userName, text string) *nlp.IntentResult
	TrackOutgoing(userID, text string)
	MarkConverted(userID, caseID string) error
	GenerateReply(ctx context.Context, userID, message string, intent *nlp.IntentResult) string
	Stats() entity.ConversationStats
}

type conversationService struct {
	log              *logrus.Logger
	conversationRp   conversationRepository.IConversationRepository
	groqClient       groq.IGroq
	nlpProcessor     nlp.INLPProcessor
	contactExtractor *nlp.ContactExtractor
}

func NewConversationService(
	log *logrus.Logger,
	conversationRp conversationRepository.IConversationRepository,
	groqClient groq.IGroq,
	nlpProcessor nlp.INLPProcessor,
) IConversationService {
	return &conversationService{
		log:              log,
		conversationRp:   conversationRp,
		groqClient:       groqClient,
		nlpProcessor:     nlpProcessor,
		contactExtractor: nlp.NewContactExtractor(),
	}
}
