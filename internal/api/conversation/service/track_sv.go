package conversationService

import (
	"fmt"
	"math"
	"strings"
	"time"

	"DespachoJuridico/internal/api/conversation"
	"DespachoJuridico/internal/api/conversation/repository"
	"DespachoJuridico/internal/entity"
	"DespachoJuridico/pkg/nlp"
)

const assistantSender = "JPS Asistente"

var positiveWords = []string{"gracias", "excelente", "perfecto", "genial", "bueno", "bien"}

var negativeWords = []string{"molesto", "injusto", "mal", "problema", "urgente", "coraje"}

// TrackIncoming records a client message, classifying its intent and
// sentiment on the way in. The returned intent drives the reply path.
func (s *conversationService) TrackIncoming(userID, userName, text string) *nlp.IntentResult {
	intent, err := s.nlpProcessor.ClassifyIntent(text)
	if err != nil {
		s.log.WithError(err).Warn("intent classification failed")
		intent = &nlp.IntentResult{Intent: "general"}
	}

	needs := detectNeeds(text)
	contact := s.contactExtractor.ExtractContact(text)

	err = s.conversationRp.Mutate(func(b *conversationRepository.Book) error {
		conv := getOrCreate(b, userID, userName)

		// Clients sometimes volunteer a name or a callback number mid-chat;
		// keep the first one we see for the consultation follow-up.
		if contact != nil {
			if conv.ContactName == "" && contact.Name != "" {
				conv.ContactName = contact.Name
			}
			if conv.ContactPhone == "" && contact.Phone != "" {
				conv.ContactPhone = contact.Phone
			}
		}

		conv.Messages = append(conv.Messages, entity.ConversationMessage{
			Timestamp: time.Now(),
			Sender:    userName,
			Text:      text,
			FromUser:  true,
			Intent:    intent.Intent,
			Sentiment: analyzeSentiment(text),
		})
		conv.LastMessageAt = time.Now()

		if !contains(conv.Intents, intent.Intent) {
			conv.Intents = append(conv.Intents, intent.Intent)
		}
		for _, need := range needs {
			if !contains(conv.DetectedNeeds, need) {
				conv.DetectedNeeds = append(conv.DetectedNeeds, need)
			}
		}

		return nil
	})
	if err != nil {
		s.log.WithError(err).Error("failed to persist conversation message")
	}

	return intent
}

// TrackOutgoing records a reply sent by the assistant.
func (s *conversationService) TrackOutgoing(userID, text string) {
	err := s.conversationRp.Mutate(func(b *conversationRepository.Book) error {
		conv, ok := b.Conversations[userID]
		if !ok {
			conv = getOrCreate(b, userID, "")
		}

		conv.Messages = append(conv.Messages, entity.ConversationMessage{
			Timestamp: time.Now(),
			Sender:    assistantSender,
			Text:      text,
			FromUser:  false,
			Sentiment: entity.SentimentNeutral,
		})
		conv.LastMessageAt = time.Now()

		return nil
	})
	if err != nil {
		s.log.WithError(err).Error("failed to persist assistant reply")
	}
}

// MarkConverted links a conversation to the case it produced.
func (s *conversationService) MarkConverted(userID, caseID string) error {
	return s.conversationRp.Mutate(func(b *conversationRepository.Book) error {
		conv, ok := b.Conversations[userID]
		if !ok {
			return conversation.ErrConversationNotFound
		}

		conv.ConvertedToCase = true
		conv.CaseID = caseID
		conv.Status = entity.ConversationConverted

		return nil
	})
}

func (s *conversationService) Stats() entity.ConversationStats {
	var stats entity.ConversationStats
	stats.CommonIntents = map[string]int{}

	s.conversationRp.View(func(b conversationRepository.Book) {
		for _, conv := range b.Conversations {
			stats.Total++
			if conv.Status == entity.ConversationActive {
				stats.Active++
			}
			if conv.ConvertedToCase {
				stats.Converted++
			}
			stats.TotalMessages += len(conv.Messages)
			for _, intent := range conv.Intents {
				stats.CommonIntents[intent]++
			}
		}
	})

	if stats.Total > 0 {
		stats.ConversionRate = math.Round(float64(stats.Converted)/float64(stats.Total)*10000) / 100
		stats.AvgMessagesPerConversation = math.Round(float64(stats.TotalMessages)/float64(stats.Total)*10) / 10
	}

	return stats
}

func getOrCreate(b *conversationRepository.Book, userID, userName string) *entity.Conversation {
	if conv, ok := b.Conversations[userID]; ok {
		if userName != "" && conv.UserName == "" {
			conv.UserName = userName
		}
		return conv
	}

	now := time.Now()
	conv := &entity.Conversation{
		ID:        fmt.Sprintf("conv_%s_%d", userID, now.UnixMilli()),
		UserID:    userID,
		UserName:  userName,
		StartedAt: now,
		Status:    entity.ConversationActive,
	}
	b.Conversations[userID] = conv

	return conv
}

func analyzeSentiment(text string) entity.Sentiment {
	lower := strings.ToLower(text)

	for _, word := range positiveWords {
		if strings.Contains(lower, word) {
			return entity.SentimentPositive
		}
	}
	for _, word := range negativeWords {
		if strings.Contains(lower, word) {
			return entity.SentimentNegative
		}
	}

	return entity.SentimentNeutral
}

func detectNeeds(text string) []string {
	lower := strings.ToLower(text)
	var needs []string

	if strings.Contains(lower, "multa") {
		needs = append(needs, "impugnacion_multa")
	}
	if strings.Contains(lower, "laboral") || strings.Contains(lower, "despido") {
		needs = append(needs, "laboral")
	}
	if strings.Contains(lower, "testamento") {
		needs = append(needs, "testamento")
	}
	if strings.Contains(lower, "urgente") {
		needs = append(needs, "urgencia")
	}
	if strings.Contains(lower, "consulta") {
		needs = append(needs, "consulta_legal")
	}

	return needs
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
