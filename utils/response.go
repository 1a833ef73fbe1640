package utils

import (
	"bytes"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"

	"gest35bi/apperrors"
	"gest35bi/logger"
	"gest35bi/models"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	MessageNotFound     = "Indicador não encontrado"
	MessageInvalidMonth = "Mês inválido"
	MessageInvalidID    = "ID de indicador inválido"
	MessageInvalidBody  = "Corpo da requisição inválido"
	MessageStoreFailure = "Erro interno ao acessar os indicadores"
)

// MaxBodyBytes caps request bodies read by DecodeJSON and DecodeBody.
const MaxBodyBytes = 1 << 20

const (
	messageEmptyBody    = "Corpo da requisição vazio"
	messageBodyTooLarge = "Corpo da requisição muito grande"
)

// FormDecoder is implemented by request types that can also be filled from
// an urlencoded form.
type FormDecoder interface {
	DecodeForm(values url.Values)
}

// DecodeBody decodes a form-encoded or JSON body into v, depending on the
// Content-Type. Forms are only accepted when v implements FormDecoder. A
// non-nil return means the response is already written.
func DecodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	formDecoder, ok := v.(FormDecoder)
	if mediaType != "application/x-www-form-urlencoded" || !ok {
		return DecodeJSON(w, r, v)
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	if err := r.ParseForm(); err != nil {
		writeDecodeError(w, err)
		return err
	}

	formDecoder.DecodeForm(r.PostForm)
	return nil
}

// DecodeJSON decodes exactly one JSON value from the request body into v,
// answering 400 on malformed input or trailing data and 413 when the body
// exceeds MaxBodyBytes. A non-nil return means the response is already
// written.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		writeDecodeError(w, err)
		return err
	}

	if len(bytes.TrimSpace(body)) == 0 {
		HandleErrorResponse(w, messageEmptyBody, http.StatusBadRequest)
		return io.EOF
	}

	// Unmarshal fails on anything but whitespace after the first value.
	if err := json.Unmarshal(body, v); err != nil {
		HandleErrorResponse(w, MessageInvalidBody, http.StatusBadRequest)
		return err
	}

	return nil
}

func writeDecodeError(w http.ResponseWriter, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		HandleErrorResponse(w, messageBodyTooLarge, http.StatusRequestEntityTooLarge)
		return
	}
	HandleErrorResponse(w, MessageInvalidBody, http.StatusBadRequest)
}

// HandleJSONResponse writes data as JSON with the given status.
func HandleJSONResponse(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.L.WithError(err).Error("failed to encode response")
	}
}

func HandleErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	HandleJSONResponse(w, models.NewErrorResponse(statusCode, message), statusCode)
}

func HandleValidationResponse(w http.ResponseWriter, err *apperrors.ValidationError) {
	HandleJSONResponse(w, models.NewValidationResponse(http.StatusBadRequest, err.Error(), err.Fields), http.StatusBadRequest)
}

// StatusFor maps a service error to its HTTP status and client message.
// Store failures get a generic message; the cause never leaves the server.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidMonth):
		return http.StatusBadRequest, MessageInvalidMonth
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, MessageNotFound
	default:
		return http.StatusInternalServerError, MessageStoreFailure
	}
}

// HandleServiceError writes the JSON error response for err. Unexpected
// errors are logged with the request context.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		HandleValidationResponse(w, validationErr)
		return
	}

	status, message := StatusFor(err)
	if status == http.StatusInternalServerError {
		logger.ForContext(r.Context()).WithError(err).WithFields(logger.Fields{
			"method": r.Method,
			"path":   r.URL.Path,
		}).Error("indicator operation failed")
	}
	HandleErrorResponse(w, message, status)
}
