package security

import (
	"errors"
	"net/http"

	"DespachoJuridico/pkg/response"
)

var (
	ErrInternalServerError = response.NewError(http.StatusInternalServerError, "internal server error")
	ErrBadRequest          = response.NewError(http.StatusBadRequest, "bad request")

	ErrNumberNotBlocked = errors.New("number is not blocked")
)
