package documentService

import (
	"DespachoJuridico/internal/entity"
	"DespachoJuridico/pkg/smtp"
	"DespachoJuridico/pkg/utils"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IDocumentService interface {
	GenerateComplaint(record entity.TicketRecord, clientName string) string
	SaveComplaint(ctx context.Context, record entity.TicketRecord, clientName string) (string, string, error)
	EmailComplaint(recipient string, complaint string) error
}

type documentService struct {
	log        *logrus.Logger
	smtpMailer smtp.ItfSmtp
	utils      utils.IUtils
	outputDir  string
}

func NewDocumentService(
	log *logrus.Logger,
	smtpMailer smtp.ItfSmtp,
	utils utils.IUtils,
	outputDir string,
) IDocumentService {
	if outputDir == "" {
		outputDir = "storage/documents"
	}

	return &documentService{
		log:        log,
		smtpMailer: smtpMailer,
		utils:      utils,
		outputDir:  outputDir,
	}
}
