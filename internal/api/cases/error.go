package cases

import (
	"errors"
	"net/http"

	"DespachoJuridico/pkg/response"
)

var (
	ErrInternalServerError = response.NewError(http.StatusInternalServerError, "internal server error")
	ErrBadRequest          = response.NewError(http.StatusBadRequest, "bad request")

	ErrConsultationNotFound = errors.New("consultation not found")
	ErrCaseNotFound         = errors.New("case not found")
)
