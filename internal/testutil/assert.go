package testutil

import (
	stderrors "errors"
	"testing"

	apperrors "github.com/slackbridge/slackbridge/internal/errors"

	"github.com/stretchr/testify/assert"
)

// AssertErrorType checks if the error is of a specific type using errors.Is.
func AssertErrorType(t *testing.T, err, target error) bool {
	t.Helper()
	if !stderrors.Is(err, target) {
		return assert.Fail(t, "Error type mismatch", "Expected %v to match %v", err, target)
	}
	return true
}

// AssertAppErrorCode checks if the error has a specific error code.
func AssertAppErrorCode(t *testing.T, err error, expectedCode string) bool {
	t.Helper()
	code := apperrors.GetErrorCode(err)
	if code != expectedCode {
		return assert.Fail(t, "Error code mismatch", "Expected error code %q, got %q", expectedCode, code)
	}
	return true
}

// AssertAppErrorStatus checks if the error has a specific HTTP status code.
func AssertAppErrorStatus(t *testing.T, err error, expectedStatus int) bool {
	t.Helper()
	status := apperrors.GetStatusCode(err)
	if status != expectedStatus {
		return assert.Fail(t, "Status code mismatch", "Expected status %d, got %d", expectedStatus, status)
	}
	return true
}
