package models

import (
	"strings"
	"time"

	"github.com/niaga/backend/internal/budget"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// User represents an account with its personalization attributes and the
// currently active budget period.
//
// A user owns at most one active budget period at a time. The period fields
// live directly on the user, the active ledger is the set of SpendingEntry
// rows without an archive reference.
type User struct {
	DefaultModel
	Name         string
	Mobile       string
	Email        string `gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`

	// Personalization
	SpendingPreference string
	Lifestyle          string
	SecurityQuestion   string
	SecurityAnswer     string
	DevNote            string

	// Active budget period
	IsBudgetAssigned bool
	TotalBudget      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	BudgetStartDate  *time.Time
	BudgetEndDate    *time.Time
	DailyBudget      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

// Personalization is the set of attributes collected by the personalization
// flow. It always overwrites all fields, repeating the call with the same
// values is idempotent.
type Personalization struct {
	SpendingPreference string
	Lifestyle          string
	SecurityQuestion   string
	SecurityAnswer     string
	DevNote            string
}

// BeforeSave trims whitespace from all identity strings and normalizes the
// email for the unique index.
func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	u.Mobile = strings.TrimSpace(u.Mobile)
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	return nil
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	_ = u.DefaultModel.BeforeCreate(tx)

	if u.Name == "" || u.Mobile == "" || u.Email == "" || u.PasswordHash == "" {
		return ErrUserFieldsMissing
	}

	return nil
}

// IsPersonalized reports whether the personalization flow has been completed.
// The mobile client keys this off the spending preference being set.
func (u User) IsPersonalized() bool {
	return u.SpendingPreference != ""
}

// SetBudget opens a new budget period for the user.
//
// An end date before the start date is clamped to the start date, so every
// period covers at least one day. The daily allowance is derived from the
// total and the inclusive day count and stored rounded to two decimal places.
//
// Calling SetBudget while a period is already active replaces the period
// without archiving it; entries in the active ledger stay in the active
// ledger. Closing a period explicitly is what ArchiveBudget is for.
func (u *User) SetBudget(db *gorm.DB, total decimal.Decimal, start, end time.Time) error {
	if !total.IsPositive() {
		return ErrBudgetTotalNotPositive
	}

	if end.Before(start) {
		end = start
	}

	daily := budget.DailyAllowance(total, start, end)

	err := db.Model(u).
		Select("TotalBudget", "BudgetStartDate", "BudgetEndDate", "DailyBudget", "IsBudgetAssigned").
		Updates(User{
			TotalBudget:      total,
			BudgetStartDate:  &start,
			BudgetEndDate:    &end,
			DailyBudget:      daily,
			IsBudgetAssigned: true,
		}).Error
	if err != nil {
		return err
	}

	return nil
}

// AddSpending appends an entry to the active ledger.
//
// The append is a single row insert, concurrent appends for the same user
// cannot overwrite each other. The entry date defaults to the current time.
// No check against the period's date range is performed, entries dated before
// the start or after the end are accepted.
func (u *User) AddSpending(db *gorm.DB, amount decimal.Decimal, label string) (SpendingEntry, error) {
	if !u.IsBudgetAssigned {
		return SpendingEntry{}, ErrSpendingWithoutBudget
	}

	entry := SpendingEntry{
		UserID: u.ID,
		Amount: amount,
		Label:  label,
	}

	err := db.Create(&entry).Error
	if err != nil {
		return SpendingEntry{}, err
	}

	return entry, nil
}

// Ledger returns the active ledger for the user, oldest entry first.
func (u User) Ledger(db *gorm.DB) ([]SpendingEntry, error) {
	var entries []SpendingEntry

	err := db.
		Where("user_id = ? AND budget_archive_id IS NULL", u.ID).
		Order("date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// History returns all archived budget periods for the user, newest first,
// with their snapshotted entries.
func (u User) History(db *gorm.DB) ([]BudgetArchive, error) {
	var archives []BudgetArchive

	err := db.
		Preload("Entries").
		Where("user_id = ?", u.ID).
		Order("datetime(archived_at) DESC").
		Find(&archives).Error
	if err != nil {
		return nil, err
	}

	return archives, nil
}

// ArchiveBudget closes the active budget period.
//
// It snapshots the active ledger and its total into a BudgetArchive, moves
// the ledger entries into the archive and clears all active period fields.
// Everything happens in one database transaction so that no partial state
// (history recorded but ledger not cleared) can ever be observed.
func (u *User) ArchiveBudget(db *gorm.DB) error {
	if !u.IsBudgetAssigned {
		return ErrNoActiveBudget
	}

	return db.Transaction(func(tx *gorm.DB) error {
		entries, err := u.Ledger(tx)
		if err != nil {
			return err
		}

		totalSpent := decimal.Zero
		for _, entry := range entries {
			totalSpent = totalSpent.Add(entry.Amount)
		}

		archive := BudgetArchive{
			UserID:      u.ID,
			StartDate:   u.BudgetStartDate,
			EndDate:     u.BudgetEndDate,
			TotalBudget: u.TotalBudget,
			DailyBudget: u.DailyBudget,
			TotalSpent:  totalSpent,
			ArchivedAt:  time.Now().In(time.UTC),
		}

		err = tx.Create(&archive).Error
		if err != nil {
			return err
		}

		err = tx.Model(&SpendingEntry{}).
			Where("user_id = ? AND budget_archive_id IS NULL", u.ID).
			Update("budget_archive_id", archive.ID).Error
		if err != nil {
			return err
		}

		// With an explicit field selection gorm also writes the zero
		// values, which is exactly what clearing the period needs
		err = tx.Model(u).
			Select("TotalBudget", "BudgetStartDate", "BudgetEndDate", "DailyBudget", "IsBudgetAssigned").
			Updates(User{
				TotalBudget:      decimal.Zero,
				BudgetStartDate:  nil,
				BudgetEndDate:    nil,
				DailyBudget:      decimal.Zero,
				IsBudgetAssigned: false,
			}).Error
		if err != nil {
			return err
		}

		return nil
	})
}

// UpdatePersonalization overwrites all personalization fields.
func (u *User) UpdatePersonalization(db *gorm.DB, p Personalization) error {
	return db.Model(u).
		Select("SpendingPreference", "Lifestyle", "SecurityQuestion", "SecurityAnswer", "DevNote").
		Updates(User{
			SpendingPreference: p.SpendingPreference,
			Lifestyle:          p.Lifestyle,
			SecurityQuestion:   p.SecurityQuestion,
			SecurityAnswer:     p.SecurityAnswer,
			DevNote:            p.DevNote,
		}).Error
}

// Summary computes all derived budget figures for the user's active period.
// Without an active period all figures are zero.
func (u User) Summary(db *gorm.DB, now time.Time) (budget.Summary, error) {
	if !u.IsBudgetAssigned || u.BudgetStartDate == nil || u.BudgetEndDate == nil {
		return budget.Summary{
			DailyAllowance:    decimal.Zero,
			SpentToday:        decimal.Zero,
			Remaining:         decimal.Zero,
			PercentUsed:       decimal.Zero,
			TotalSpent:        decimal.Zero,
			AverageDailySpend: decimal.Zero,
		}, nil
	}

	entries, err := u.Ledger(db)
	if err != nil {
		return budget.Summary{}, err
	}

	ledger := make([]budget.Entry, 0, len(entries))
	for _, entry := range entries {
		ledger = append(ledger, budget.Entry{Amount: entry.Amount, Date: entry.Date})
	}

	period := budget.Period{
		Total: u.TotalBudget,
		Start: *u.BudgetStartDate,
		End:   *u.BudgetEndDate,
	}

	return budget.Compute(period, ledger, now), nil
}
