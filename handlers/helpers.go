package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/Dosada05/court-booking/services"
	"github.com/go-chi/chi/v5"
)

const internalErrorMessage = "An error occurred while processing the request"

// envelope - единый формат всех ответов API.
type envelope struct {
	Success        bool        `json:"success"`
	Message        string      `json:"message"`
	ResponseObject interface{} `json:"responseObject"`
	StatusCode     int         `json:"statusCode"`
}

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return services.ErrBodyEmpty
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func successResponse(w http.ResponseWriter, r *http.Request, status int, message string, data interface{}) {
	env := envelope{Success: true, Message: message, ResponseObject: data, StatusCode: status}
	if err := writeJSON(w, status, env, nil); err != nil {
		slog.ErrorContext(r.Context(), "failed to write response", slog.Any("error", err))
	}
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	env := envelope{Success: false, Message: message, StatusCode: status}
	if err := writeJSON(w, status, env, nil); err != nil {
		slog.ErrorContext(r.Context(), "failed to write error response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "internal server error",
		slog.String("method", r.Method),
		slog.String("path", r.URL.Path),
		slog.Any("error", err),
	)
	errorResponse(w, r, http.StatusInternalServerError, internalErrorMessage)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, err.Error())
}

// serviceErrorStatus сопоставляет сентинелы сервисов со статусами. Клиент получает текст сентинела.
var serviceErrorStatus = []struct {
	err    error
	status int
}{
	{services.ErrPlayerNotFound, http.StatusNotFound},
	{services.ErrCourtNotFound, http.StatusNotFound},
	{services.ErrDiscountNotFound, http.StatusNotFound},
	{services.ErrExpenseNotFound, http.StatusNotFound},
	{services.ErrSessionNotFound, http.StatusNotFound},
	{services.ErrSessionPlayerNotFound, http.StatusNotFound},
	{services.ErrSessionDiscountNotFound, http.StatusNotFound},
	{services.ErrSessionExpenseNotFound, http.StatusNotFound},

	{services.ErrPlayerIdentityConflict, http.StatusConflict},
	{services.ErrPlayerInUse, http.StatusConflict},
	{services.ErrCourtInUse, http.StatusConflict},
	{services.ErrDiscountInUse, http.StatusConflict},
	{services.ErrExpenseInUse, http.StatusConflict},

	{services.ErrBodyEmpty, http.StatusBadRequest},
	{services.ErrInvalidImage, http.StatusBadRequest},
	{services.ErrResetTokenInvalid, http.StatusBadRequest},

	{services.ErrInvalidCredentials, http.StatusUnauthorized},
	{services.ErrRefreshTokenNotExist, http.StatusForbidden},
	{services.ErrRefreshTokenInvalid, http.StatusForbidden},

	{services.ErrStorageUnavailable, http.StatusServiceUnavailable},

	{services.ErrSessionNotCreated, http.StatusInternalServerError},
	{services.ErrSessionPlayerNotCreated, http.StatusInternalServerError},
	{services.ErrSessionDiscountNotCreated, http.StatusInternalServerError},
	{services.ErrSessionExpenseNotCreated, http.StatusInternalServerError},
}

// mapServiceErrorToHTTP преобразует ошибки сервисного слоя в HTTP-ответы
func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	var refErr *services.ReferenceError
	if errors.As(err, &refErr) {
		errorResponse(w, r, http.StatusBadRequest, refErr.Error())
		return
	}

	for _, m := range serviceErrorStatus {
		if errors.Is(err, m.err) {
			if m.status >= http.StatusInternalServerError {
				slog.ErrorContext(r.Context(), "request failed", slog.String("path", r.URL.Path), slog.Any("error", err))
			}
			errorResponse(w, r, m.status, m.err.Error())
			return
		}
	}

	serverErrorResponse(w, r, err)
}

func getIDFromURL(r *http.Request, paramName string) (int, error) {
	idStr := chi.URLParam(r, paramName)
	if idStr == "" {
		return 0, fmt.Errorf("Invalid: %s is required", paramName)
	}

	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("Invalid: %s is not a positive integer", paramName)
	}
	return id, nil
}
