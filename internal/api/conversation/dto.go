package conversation

import "DespachoJuridico/internal/entity"

type StatsResponse struct {
	Data entity.ConversationStats `json:"data"`
}

type ReplyRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type ReplyResponse struct {
	Reply  string `json:"reply"`
	Intent string `json:"intent"`
}
