package bot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"DespachoJuridico/internal/api/ticket"
	"DespachoJuridico/internal/assets"
	"DespachoJuridico/pkg/log"
	"go.mau.fi/whatsmeow/types"
	"go.mau.fi/whatsmeow/types/events"
)

const (
	handleTimeout        = 60 * time.Second
	activeWindow         = 2 * time.Minute
	contextualImageDelay = 2 * time.Second
)

func (b *Bot) handleMessage(evt *events.Message) {
	if evt.Info.IsFromMe || evt.Info.IsGroup {
		return
	}
	if evt.Info.Chat.Server == types.BroadcastServer {
		return
	}
	if evt.Message.GetStickerMessage() != nil ||
		evt.Message.GetAudioMessage() != nil ||
		evt.Message.GetVideoMessage() != nil {
		return
	}

	phone := evt.Info.Sender.User
	name := evt.Info.PushName
	if name == "" {
		name = "Cliente"
	}

	if !b.securityService.ShouldRespond(phone) {
		b.log.WithField("phone", phone).Debug("Ignoring filtered sender")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	if img := evt.Message.GetImageMessage(); img != nil {
		b.handleTicketImage(ctx, evt, phone, name)
		return
	}

	text := evt.Message.GetConversation()
	if text == "" {
		text = evt.Message.GetExtendedTextMessage().GetText()
	}
	if text == "" {
		return
	}

	b.log.WithFields(log.Fields{
		"phone": phone,
	}).Info("Message received")

	check := b.securityService.Inspect(text)
	if check.Flagged {
		b.handleExtortionAttempt(ctx, phone, check.Severity, check.Keywords)
		return
	}

	if b.isOwner(phone) && strings.HasPrefix(strings.TrimSpace(text), "!") {
		b.handleOwnerCommand(ctx, phone, strings.TrimSpace(strings.ToLower(text)))
		return
	}

	if !isRelevant(text) {
		b.log.WithField("phone", phone).Debug("Irrelevant message ignored")
		return
	}

	intent := b.conversationService.TrackIncoming(phone, name, text)

	firstContact := b.waitLikeAHuman(ctx, phone)

	// A bare greeting gets the welcome image instead of a chat reply. New
	// numbers also get the presentation text first, so clients can tell the
	// real assistant from an impersonator.
	if intent.Intent == "saludo" && isSimpleGreeting(text) {
		if firstContact {
			welcome := b.securityService.WelcomeMessage()
			b.reply(ctx, phone, welcome)
			b.conversationService.TrackOutgoing(phone, welcome)
		}
		b.sendCatalogImage(ctx, phone, assets.ImageWelcome)
		return
	}

	reply := b.conversationService.GenerateReply(ctx, phone, text, intent)

	b.simulateTyping(phone, 2*time.Second)
	if err := b.whatsappClient.SendMessage(ctx, phone, reply); err != nil {
		b.log.WithError(err).Error("Failed to send reply")
		return
	}
	b.conversationService.TrackOutgoing(phone, reply)

	if intent.Intent == "precios" {
		time.Sleep(contextualImageDelay)
		b.sendCatalogImage(ctx, phone, assets.ImagePricing)
	} else if key, ok := b.catalog.KeyForMessage(text); ok && key != assets.ImageFineDefense {
		time.Sleep(contextualImageDelay)
		b.sendCatalogImage(ctx, phone, key)
	}
}

// handleTicketImage runs the photo through the analysis pipeline: archive
// the original, OCR and extract, then answer with the structured summary.
func (b *Bot) handleTicketImage(ctx context.Context, evt *events.Message, phone, name string) {
	data, mimeType, err := b.whatsappClient.DownloadImage(evt.Message.GetImageMessage())
	if err != nil {
		b.log.WithError(err).Error("Failed to download ticket image")
		b.reply(ctx, phone, "Hubo un error al recibir el archivo. ¿Puedes enviarlo de nuevo?")
		return
	}

	fileName := fmt.Sprintf("tickets/%s_%d.%s", phone, time.Now().UnixMilli(), extensionFromMime(mimeType))
	if _, err := b.s3Client.UploadBytes(data, fileName, mimeType); err != nil {
		// Analysis still proceeds; the archive is not on the client's
		// critical path.
		b.log.WithError(err).Warn("Failed to archive ticket image")
	}

	b.conversationService.TrackIncoming(phone, name, fmt.Sprintf("[FOTO: %s]", fileName))

	b.simulateTyping(phone, 2*time.Second)

	analysis := b.ticketService.Analyze(ctx, data, mimeType)

	response := ticket.ResendPhotoCopy
	if analysis.Success {
		response = analysis.Summary
	}

	if err := b.whatsappClient.SendMessage(ctx, phone, response); err != nil {
		b.log.WithError(err).Error("Failed to send analysis result")
		return
	}
	b.conversationService.TrackOutgoing(phone, response)

	if analysis.Success {
		time.Sleep(contextualImageDelay)
		b.sendCatalogImage(ctx, phone, assets.ImageFineDefense)
	}
}

func (b *Bot) handleExtortionAttempt(ctx context.Context, phone string, severity int, keywords []string) {
	b.log.WithFields(log.Fields{
		"phone":    phone,
		"severity": severity,
		"keywords": keywords,
	}).Warn("Extortion attempt detected")

	b.reply(ctx, phone, b.securityService.WarningMessage(severity))

	blocked, strikes, err := b.securityService.MarkSuspicious(ctx, phone)
	if err != nil {
		b.log.WithError(err).Error("Failed to record suspicion strike")
		return
	}
	if blocked {
		b.log.WithFields(log.Fields{
			"phone":   phone,
			"strikes": strikes,
		}).Warn("Number auto-blocked")
	}
}

func (b *Bot) handleOwnerCommand(ctx context.Context, phone, command string) {
	switch command {
	case "!help", "help":
		b.reply(ctx, phone, ownerHelp())

	case "!casos":
		b.reply(ctx, phone, formatStats(b.caseService.Stats()))

	case "!pendientes":
		b.reply(ctx, phone, formatPending(b.caseService.PendingConsultations()))

	case "!audiencias":
		b.reply(ctx, phone, formatHearings(b.caseService.UpcomingHearings(30)))

	default:
		b.reply(ctx, phone, "Comando no reconocido. Usa `!help` para ver los comandos.")
	}
}

// waitLikeAHuman delays the response based on how hot the conversation is,
// so the bot does not answer at machine speed. Reports whether this looks
// like the number's first contact.
func (b *Bot) waitLikeAHuman(ctx context.Context, phone string) bool {
	now := time.Now()

	lastActivity, err := b.redisClient.GetLastActivity(ctx, phone)
	isFirst := err != nil || lastActivity.IsZero()
	isActive := !isFirst && now.Sub(lastActivity) < activeWindow

	if err := b.redisClient.SetLastActivity(ctx, phone, now); err != nil {
		b.log.WithError(err).Warn("Failed to record chat activity")
	}

	delay := responseDelay(isFirst, isActive)

	if err := b.whatsappClient.SendTyping(phone, true); err != nil {
		b.log.WithError(err).Debug("Failed to send typing presence")
	}
	time.Sleep(delay)

	return isFirst
}

func (b *Bot) simulateTyping(phone string, d time.Duration) {
	if err := b.whatsappClient.SendTyping(phone, true); err != nil {
		b.log.WithError(err).Debug("Failed to send typing presence")
	}
	time.Sleep(d)
	if err := b.whatsappClient.SendTyping(phone, false); err != nil {
		b.log.WithError(err).Debug("Failed to clear typing presence")
	}
}

func (b *Bot) reply(ctx context.Context, phone, message string) {
	if err := b.whatsappClient.SendMessage(ctx, phone, message); err != nil {
		b.log.WithError(err).Error("Failed to send message")
	}
}

func (b *Bot) sendCatalogImage(ctx context.Context, phone, key string) {
	path, ok := b.catalog.Path(key)
	if !ok {
		b.log.WithField("image", key).Debug("Marketing image not on disk, skipping")
		return
	}

	data, err := readImage(path)
	if err != nil {
		b.log.WithError(err).Warn("Failed to read marketing image")
		return
	}

	mimeType := b.utils.MimeTypeFromFilename(path)
	if err := b.whatsappClient.SendImage(ctx, phone, data, mimeType, b.catalog.Caption(key)); err != nil {
		b.log.WithError(err).Error("Failed to send marketing image")
	}
}
