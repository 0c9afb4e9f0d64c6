package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/slackbridge/slackbridge/internal/api"
	"github.com/slackbridge/slackbridge/internal/constants"
	apperrors "github.com/slackbridge/slackbridge/internal/errors"
)

// extractErrorInfo extracts statusCode, errorCode, and errorDetails from an error.
func extractErrorInfo(err error) (statusCode int, errorCode, errorDetails string) {
	return apperrors.GetStatusCode(err),
		apperrors.GetErrorCode(err),
		apperrors.GetErrorDetails(err)
}

// decodeRequestBody decodes JSON request body into the provided value.
// If decoding fails, writes an error response and returns the error.
func decodeRequestBody(w http.ResponseWriter, req *http.Request, v any) error {
	body := http.MaxBytesReader(w, req.Body, constants.MaxRequestBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		writeErrorResponseWithCode(w, http.StatusBadRequest, apperrors.ErrCodeInvalidEvent,
			"invalid request body", err.Error())
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set(constants.ContentTypeHeader, constants.ContentTypeJSON)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

func writeText(w http.ResponseWriter, statusCode int, body string) {
	w.Header().Set(constants.ContentTypeHeader, constants.ContentTypeText)
	w.WriteHeader(statusCode)
	_, _ = w.Write([]byte(body))
}

func writeErrorResponseWithCode(w http.ResponseWriter, statusCode int, code, message, details string) {
	writeJSON(w, statusCode, api.ErrorResponse{
		Error:   message,
		Code:    code,
		Details: details,
	})
}

// writeAppError renders err with its application status and code.
func writeAppError(w http.ResponseWriter, message string, err error) {
	statusCode, errorCode, errorDetails := extractErrorInfo(err)
	writeErrorResponseWithCode(w, statusCode, errorCode, message, errorDetails)
}
