package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction types. The balance shown by the mobile client adds income and
// subtracts expense amounts.
const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

// Transaction is a dated income or expense record.
//
// Transactions are independent of budget periods and the spending ledger,
// they feed the account balance on the client's home screen.
type Transaction struct {
	DefaultModel
	User   User            `json:"-"`
	UserID uuid.UUID       `gorm:"index"`
	Title  string
	Amount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Type   string
	Date   time.Time
}

// BeforeCreate validates the transaction and defaults the date to the
// current time.
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	_ = t.DefaultModel.BeforeCreate(tx)

	t.Title = strings.TrimSpace(t.Title)

	if t.Title == "" {
		return ErrTransactionTitleEmpty
	}

	if !t.Amount.IsPositive() {
		return ErrTransactionAmountNotPositive
	}

	if t.Type != TransactionTypeIncome && t.Type != TransactionTypeExpense {
		return ErrTransactionTypeInvalid
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	toSave := tx.Statement.Dest.(*Transaction)
	return t.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources
func (t *Transaction) checkIntegrity(tx *gorm.DB, toSave Transaction) error {
	return tx.First(&User{}, toSave.UserID).Error
}

// AfterFind updates the date to use UTC as timezone, see DefaultModel.
func (t *Transaction) AfterFind(_ *gorm.DB) error {
	t.Date = t.Date.In(time.UTC)
	return nil
}

// Transactions returns all transactions of the user, newest first.
func (u User) Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction

	err := db.
		Where("user_id = ?", u.ID).
		Order("datetime(date) DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}
