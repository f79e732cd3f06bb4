package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// User errors
var (
	ErrUserFieldsMissing = errors.New("name, mobile, email and password are required")
	ErrEmailNotUnique    = errors.New("a user with this email address already exists")
)

// Budget period errors
var (
	ErrBudgetTotalNotPositive = errors.New("the total budget must be larger than zero")
	ErrNoActiveBudget         = errors.New("no active budget to archive")
)

// Spending errors
var (
	ErrSpendingAmountNotPositive = errors.New("spending amounts must be larger than zero")
	ErrSpendingLabelEmpty        = errors.New("the spending label must not be empty")
	ErrSpendingWithoutBudget     = errors.New("spending can only be added while a budget is active")
)

// Transaction errors
var (
	ErrTransactionTitleEmpty        = errors.New("the transaction title must not be empty")
	ErrTransactionAmountNotPositive = errors.New("transaction amounts must be larger than zero")
	ErrTransactionTypeInvalid       = errors.New("the transaction type must be either income or expense")
)

// Bill errors
var (
	ErrBillTitleEmpty      = errors.New("the bill title must not be empty")
	ErrBillFileTypeInvalid = errors.New("the bill file type must be either image or pdf")
)

// Session errors
var ErrSessionInvalid = errors.New("the credential is missing, invalid or expired")
