package entity

import "time"

type ConversationStatus string

const (
	ConversationActive    ConversationStatus = "active"
	ConversationConverted ConversationStatus = "converted"
	ConversationAbandoned ConversationStatus = "abandoned"
	ConversationResolved  ConversationStatus = "resolved"
)

type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

type ConversationMessage struct {
	Timestamp time.Time `json:"timestamp"`
	Sender    string    `json:"sender"`
	Text      string    `json:"text"`
	FromUser  bool      `json:"from_user"`
	Intent    string    `json:"intent,omitempty"`
	Sentiment Sentiment `json:"sentiment"`
}

type Conversation struct {
	ID              string                `json:"id"`
	UserID          string                `json:"user_id"`
	UserName        string                `json:"user_name"`
	StartedAt       time.Time             `json:"started_at"`
	LastMessageAt   time.Time             `json:"last_message_at"`
	Status          ConversationStatus    `json:"status"`
	Messages        []ConversationMessage `json:"messages"`
	Intents         []string              `json:"intents"`
	DetectedNeeds   []string              `json:"detected_needs"`
	ContactName     string                `json:"contact_name,omitempty"`
	ContactPhone    string                `json:"contact_phone,omitempty"`
	ConvertedToCase bool                  `json:"converted_to_case"`
	CaseID          string                `json:"case_id,omitempty"`
}

type ConversationStats struct {
	Total                      int            `json:"total"`
	Active                     int            `json:"active"`
	Converted                  int            `json:"converted"`
	ConversionRate             float64        `json:"conversion_rate"`
	TotalMessages              int            `json:"total_messages"`
	CommonIntents              map[string]int `json:"common_intents"`
	AvgMessagesPerConversation float64        `json:"avg_messages_per_conversation"`
}
