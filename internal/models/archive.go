package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetArchive is the immutable snapshot of a closed budget period.
//
// It captures the period bounds, the allowance, the sum of everything spent
// and the full ledger at archive time. Records are only ever created by
// User.ArchiveBudget and never change afterwards.
type BudgetArchive struct {
	DefaultModel
	User        User      `json:"-"`
	UserID      uuid.UUID `gorm:"index"`
	StartDate   *time.Time
	EndDate     *time.Time
	TotalBudget decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DailyBudget decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TotalSpent  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	ArchivedAt  time.Time
	Entries     []SpendingEntry
}

func (a *BudgetArchive) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*BudgetArchive)
	return a.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources
func (a *BudgetArchive) checkIntegrity(tx *gorm.DB, toSave BudgetArchive) error {
	return tx.First(&User{}, toSave.UserID).Error
}

// AfterFind updates the archive timestamp to use UTC as timezone, see
// DefaultModel.
func (a *BudgetArchive) AfterFind(_ *gorm.DB) error {
	a.ArchivedAt = a.ArchivedAt.In(time.UTC)
	return nil
}
