package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SpendingEntry is a single dated spend.
//
// While BudgetArchiveID is unset the entry belongs to the user's active
// ledger. Archiving a budget sets the reference, which moves the entry into
// the history snapshot. Entries are never updated or deleted, so all
// validation happens on create.
type SpendingEntry struct {
	DefaultModel
	User            User            `json:"-"`
	UserID          uuid.UUID       `gorm:"index"`
	Amount          decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Label           string
	Date            time.Time
	BudgetArchiveID *uuid.UUID `gorm:"index"`
}

// BeforeCreate validates the entry and defaults the date to the current
// time.
func (s *SpendingEntry) BeforeCreate(tx *gorm.DB) error {
	_ = s.DefaultModel.BeforeCreate(tx)

	s.Label = strings.TrimSpace(s.Label)

	if !s.Amount.IsPositive() {
		return ErrSpendingAmountNotPositive
	}

	if s.Label == "" {
		return ErrSpendingLabelEmpty
	}

	if s.Date.IsZero() {
		s.Date = time.Now().In(time.UTC)
	} else {
		s.Date = s.Date.In(time.UTC)
	}

	toSave := tx.Statement.Dest.(*SpendingEntry)
	return s.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources
func (s *SpendingEntry) checkIntegrity(tx *gorm.DB, toSave SpendingEntry) error {
	return tx.First(&User{}, toSave.UserID).Error
}

// AfterFind updates the date to use UTC as timezone, see DefaultModel.
func (s *SpendingEntry) AfterFind(_ *gorm.DB) error {
	s.Date = s.Date.In(time.UTC)
	return nil
}
