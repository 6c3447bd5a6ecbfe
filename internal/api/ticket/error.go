package ticket

import (
	"errors"
	"net/http"

	"DespachoJuridico/pkg/response"
)

var (
	ErrInternalServerError = response.NewError(http.StatusInternalServerError, "internal server error")
	ErrBadRequest          = response.NewError(http.StatusBadRequest, "bad request")

	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileTooLarge    = errors.New("file too large")
)

// ResendPhotoCopy is the business-facing fallback sent to the client when
// OCR fails for an image. Fixed copy, not derived from the error.
const ResendPhotoCopy = "❌ No pude analizar la multa. ¿Puedes enviar una foto más clara?"
