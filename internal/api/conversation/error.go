package conversation

import (
	"errors"
	"net/http"

	"DespachoJuridico/pkg/response"
)

var (
	ErrInternalServerError = response.NewError(http.StatusInternalServerError, "internal server error")
	ErrBadRequest          = response.NewError(http.StatusBadRequest, "bad request")

	ErrConversationNotFound = errors.New("conversation not found")
)
