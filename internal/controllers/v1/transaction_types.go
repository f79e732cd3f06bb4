package v1

import (
	"time"

	"github.com/google/uuid"
	"github.com/niaga/backend/internal/models"
	"github.com/shopspring/decimal"
)

// TransactionCreate is the payload for recording a transaction.
type TransactionCreate struct {
	Title  string          `json:"title" example:"Salary August"`            // Name of the transaction
	Amount decimal.Decimal `json:"amount" example:"1000"`                    // Amount, always positive
	Type   string          `json:"type" example:"income" enums:"income,expense"` // Whether the amount is added or subtracted
}

// TransactionV is a transaction as the API returns it.
type TransactionV struct {
	ID     uuid.UUID       `json:"id" example:"d0ebb255-c641-479b-9b95-502ebb2b7b31"`     // UUID for the transaction
	UserID uuid.UUID       `json:"userId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the user owning the transaction
	Title  string          `json:"title" example:"Salary August"`                         // Name of the transaction
	Amount decimal.Decimal `json:"amount" example:"1000"`                                 // Amount, always positive
	Type   string          `json:"type" example:"income"`                                 // Whether the amount is added or subtracted
	Date   time.Time       `json:"date" example:"2026-08-01T00:00:00Z"`                   // When the transaction happened
}

type TransactionResponse struct {
	Data  *TransactionV `json:"data"`  // The transaction
	Error *string       `json:"error"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data  []TransactionV `json:"data"`  // The list of transactions, newest first
	Error *string        `json:"error"` // The error, if any occurred
}

func newTransaction(transaction models.Transaction) TransactionV {
	return TransactionV{
		ID:     transaction.ID,
		UserID: transaction.UserID,
		Title:  transaction.Title,
		Amount: transaction.Amount,
		Type:   transaction.Type,
		Date:   transaction.Date,
	}
}

func newTransactions(transactions []models.Transaction) []TransactionV {
	data := make([]TransactionV, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(transaction))
	}

	return data
}
