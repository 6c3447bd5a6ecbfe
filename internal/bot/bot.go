// Package bot routes inbound WhatsApp traffic: it screens senders, analyzes
// ticket photos, answers owner commands, and drives the AI assistant for
// everything else.
package bot

import (
	"os"

	caseService "DespachoJuridico/internal/api/cases/service"
	conversationService "DespachoJuridico/internal/api/conversation/service"
	securityService "DespachoJuridico/internal/api/security/service"
	ticketService "DespachoJuridico/internal/api/ticket/service"
	"DespachoJuridico/internal/assets"
	"DespachoJuridico/pkg/redis"
	"DespachoJuridico/pkg/s3"
	"DespachoJuridico/pkg/utils"
	"DespachoJuridico/pkg/whatsapp"
	"github.com/sirupsen/logrus"
)

const defaultOwnerPhone = "5214777244259"

type Bot struct {
	log                 *logrus.Logger
	whatsappClient      whatsapp.IWhatsappClient
	ticketService       ticketService.ITicketService
	caseService         caseService.ICaseService
	conversationService conversationService.IConversationService
	securityService     securityService.ISecurityService
	redisClient         redis.IRedis
	s3Client            s3.ItfS3
	catalog             assets.ICatalog
	utils               utils.IUtils

	ownerPhone string
	firmName   string
}

func New(
	log *logrus.Logger,
	whatsappClient whatsapp.IWhatsappClient,
	ts ticketService.ITicketService,
	cs caseService.ICaseService,
	conv conversationService.IConversationService,
	ss securityService.ISecurityService,
	redisClient redis.IRedis,
	s3Client s3.ItfS3,
	catalog assets.ICatalog,
	utils utils.IUtils,
) *Bot {
	ownerPhone := os.Getenv("OWNER_PHONE")
	if ownerPhone == "" {
		ownerPhone = defaultOwnerPhone
	}

	firmName := os.Getenv("DESPACHO_NOMBRE")
	if firmName == "" {
		firmName = "JPS Despacho Jurídico"
	}

	return &Bot{
		log:                 log,
		whatsappClient:      whatsappClient,
		ticketService:       ts,
		caseService:         cs,
		conversationService: conv,
		securityService:     ss,
		redisClient:         redisClient,
		s3Client:            s3Client,
		catalog:             catalog,
		utils:               utils,
		ownerPhone:          ownerPhone,
		firmName:            firmName,
	}
}

// Start hooks the router into the WhatsApp event stream.
func (b *Bot) Start() {
	b.whatsappClient.AddMessageHandler(b.handleMessage)
	b.log.WithField("firm", b.firmName).Info("Bot listening for WhatsApp messages")
}

func (b *Bot) isOwner(phone string) bool {
	return phone == b.ownerPhone
}
