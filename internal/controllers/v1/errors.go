package v1

import (
	"errors"
	"net/http"

	"github.com/niaga/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"an ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrSessionInvalid) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

// Auth errors
var (
	errRegisterFieldsMissing = errors.New("name, mobile, email and password are all required")
	errLoginFieldsMissing    = errors.New("email and password are required")
	errInvalidCredentials    = errors.New("invalid credentials")
)

// Personalization errors
var errPersonalizationSelectionMissing = errors.New("the spendingPreference and lifestyle selections are required")

// Budget errors
var errBudgetDatesMissing = errors.New("the budgetStartDate and budgetEndDate fields are required")

// Transaction errors
var errTransactionFieldsMissing = errors.New("the title, amount and type fields are required")

// Bill errors
var errBillUserAndTitleRequired = errors.New("the userId and title fields are required")
