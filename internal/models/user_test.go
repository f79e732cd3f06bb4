package models_test

import (
	"sync"
	"time"

	"github.com/niaga/backend/internal/models"
	"github.com/shopspring/decimal"
)

func date(day int) time.Time {
	return time.Date(2026, 8, day, 0, 0, 0, 0, time.UTC)
}

func (suite *TestSuiteStandard) TestUserTrimWhitespace() {
	user := suite.createTestUser(models.User{
		Name:   " Ramesh Kumar ",
		Mobile: " 9876543210 ",
		Email:  " Ramesh@Example.com ",
	})

	suite.Assert().Equal("Ramesh Kumar", user.Name)
	suite.Assert().Equal("9876543210", user.Mobile)
	suite.Assert().Equal("ramesh@example.com", user.Email, "the email must be lowercased for the unique index")
}

func (suite *TestSuiteStandard) TestUserFieldsMissing() {
	err := models.DB.Create(&models.User{Name: "No Email", Mobile: "123", PasswordHash: "x"}).Error
	suite.Assert().ErrorIs(err, models.ErrUserFieldsMissing)
}

func (suite *TestSuiteStandard) TestUserDuplicateEmail() {
	_ = suite.createTestUser(models.User{Email: "ramesh@example.com"})

	err := models.DB.Create(&models.User{
		Name:         "Second",
		Mobile:       "123",
		Email:        "ramesh@example.com",
		PasswordHash: "x",
	}).Error
	suite.Assert().ErrorIs(err, models.ErrEmailNotUnique)
}

func (suite *TestSuiteStandard) TestIsPersonalized() {
	user := suite.createTestUser(models.User{})
	suite.Assert().False(user.IsPersonalized())

	err := user.UpdatePersonalization(models.DB, models.Personalization{
		SpendingPreference: "Essentials",
		Lifestyle:          "Student",
	})
	suite.Assert().NoError(err)
	suite.Assert().True(user.IsPersonalized())
}

func (suite *TestSuiteStandard) TestUpdatePersonalizationOverwrites() {
	user := suite.createTestUser(models.User{})

	err := user.UpdatePersonalization(models.DB, models.Personalization{
		SpendingPreference: "Essentials",
		Lifestyle:          "Student",
		SecurityQuestion:   "First pet?",
		SecurityAnswer:     "Simba",
		DevNote:            "beta",
	})
	suite.Assert().NoError(err)

	// A second call with fewer fields clears what it does not set
	err = user.UpdatePersonalization(models.DB, models.Personalization{
		SpendingPreference: "Lifestyle",
		Lifestyle:          "Working",
	})
	suite.Assert().NoError(err)

	var reloaded models.User
	suite.Assert().NoError(models.DB.First(&reloaded, user.ID).Error)
	suite.Assert().Equal("Lifestyle", reloaded.SpendingPreference)
	suite.Assert().Equal("Working", reloaded.Lifestyle)
	suite.Assert().Equal("", reloaded.SecurityQuestion)
	suite.Assert().Equal("", reloaded.DevNote)
}

func (suite *TestSuiteStandard) TestSetBudget() {
	user := suite.createTestUser(models.User{})

	err := user.SetBudget(models.DB, decimal.NewFromInt(3000), date(1), date(10))
	suite.Assert().NoError(err)

	var reloaded models.User
	suite.Assert().NoError(models.DB.First(&reloaded, user.ID).Error)
	suite.Assert().True(reloaded.IsBudgetAssigned)
	suite.Assert().True(reloaded.TotalBudget.Equal(decimal.NewFromInt(3000)))
	suite.Assert().True(reloaded.DailyBudget.Equal(decimal.NewFromInt(300)), "3000 over ten days is 300 per day, got %s", reloaded.DailyBudget)
	suite.Assert().True(reloaded.BudgetStartDate.Equal(date(1)))
	suite.Assert().True(reloaded.BudgetEndDate.Equal(date(10)))
}

func (suite *TestSuiteStandard) TestSetBudgetTotalNotPositive() {
	user := suite.createTestUser(models.User{})

	err := user.SetBudget(models.DB, decimal.Zero, date(1), date(10))
	suite.Assert().ErrorIs(err, models.ErrBudgetTotalNotPositive)

	err = user.SetBudget(models.DB, decimal.NewFromInt(-100), date(1), date(10))
	suite.Assert().ErrorIs(err, models.ErrBudgetTotalNotPositive)

	var reloaded models.User
	suite.Assert().NoError(models.DB.First(&reloaded, user.ID).Error)
	suite.Assert().False(reloaded.IsBudgetAssigned, "a rejected budget must not change the user")
}

func (suite *TestSuiteStandard) TestSetBudgetClampsEndDate() {
	user := suite.createTestUser(models.User{})

	err := user.SetBudget(models.DB, decimal.NewFromInt(250), date(10), date(1))
	suite.Assert().NoError(err)

	var reloaded models.User
	suite.Assert().NoError(models.DB.First(&reloaded, user.ID).Error)
	suite.Assert().True(reloaded.BudgetEndDate.Equal(date(10)), "an end before the start is clamped to the start")
	suite.Assert().True(reloaded.DailyBudget.Equal(decimal.NewFromInt(250)), "a single day period gets the full total")
}

func (suite *TestSuiteStandard) TestSetBudgetReplacesPeriod() {
	user := suite.createTestUser(models.User{})
	suite.Assert().NoError(user.SetBudget(models.DB, decimal.NewFromInt(3000), date(1), date(10)))

	_, err := user.AddSpending(models.DB, decimal.NewFromInt(120), "groceries")
	suite.Assert().NoError(err)

	// Replacing the period keeps the entry in the active ledger and does
	// not record any history
	suite.Assert().NoError(user.SetBudget(models.DB, decimal.NewFromInt(5000), date(11), date(20)))

	ledger, err := user.Ledger(models.DB)
	suite.Assert().NoError(err)
	suite.Assert().Len(ledger, 1)

	history, err := user.History(models.DB)
	suite.Assert().NoError(err)
	suite.Assert().Len(history, 0)
}

func (suite *TestSuiteStandard) TestAddSpendingWithoutBudget() {
	user := suite.createTestUser(models.User{})

	_, err := user.AddSpending(models.DB, decimal.NewFromInt(100), "groceries")
	suite.Assert().ErrorIs(err, models.ErrSpendingWithoutBudget)
}

func (suite *TestSuiteStandard) TestAddSpending() {
	user := suite.createTestUser(models.User{})
	suite.Assert().NoError(user.SetBudget(models.DB, decimal.NewFromInt(3000), date(1), date(10)))

	entry, err := user.AddSpending(models.DB, decimal.NewFromInt(120), "groceries")
	suite.Assert().NoError(err)
	suite.Assert().False(entry.Date.IsZero(), "the entry date defaults to the current time")

	// Two sequential appends must both be present, appends never overwrite
	_, err = user.AddSpending(models.DB, decimal.NewFromInt(50), "bus ticket")
	suite.Assert().NoError(err)

	ledger, err := user.Ledger(models.DB)
	suite.Assert().NoError(err)
	suite.Assert().Len(ledger, 2)
}

// Appends are single row inserts, so two of them racing for the same user
// must both end up in the ledger.
func (suite *TestSuiteStandard) TestAddSpendingConcurrent() {
	user := suite.createTestUser(models.User{})
	suite.Require().NoError(user.SetBudget(models.DB, decimal.NewFromInt(3000), date(1), date(10)))

	var wg sync.WaitGroup
	errs := make(chan error, 2)

	for _, label := range []string{"groceries", "bus ticket"} {
		wg.Add(1)
		go func(label string) {
			defer wg.Done()
			_, err := user.AddSpending(models.DB, decimal.NewFromInt(10), label)
			errs <- err
		}(label)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		suite.Assert().NoError(err)
	}

	ledger, err := user.Ledger(models.DB)
	suite.Assert().NoError(err)
	suite.Assert().Len(ledger, 2, "concurrent appends must not overwrite each other")
}

func (suite *TestSuiteStandard) TestLedgerOrder() {
	user := suite.createTestUser(models.User{})

	_ = suite.createTestSpendingEntry(models.SpendingEntry{
		UserID: user.ID,
		Amount: decimal.NewFromInt(50),
		Label:  "second",
		Date:   date(2),
	})
	_ = suite.createTestSpendingEntry(models.SpendingEntry{
		UserID: user.ID,
		Amount: decimal.NewFromInt(120),
		Label:  "first",
		Date:   date(1),
	})

	ledger, err := user.Ledger(models.DB)
	suite.Assert().NoError(err)
	suite.Require().Len(ledger, 2)
	suite.Assert().Equal("first", ledger[0].Label, "the ledger is ordered oldest entry first")
	suite.Assert().Equal("second", ledger[1].Label)
}

func (suite *TestSuiteStandard) TestArchiveBudgetWithoutBudget() {
	user := suite.createTestUser(models.User{})

	err := user.ArchiveBudget(models.DB)
	suite.Assert().ErrorIs(err, models.ErrNoActiveBudget)
}

func (suite *TestSuiteStandard) TestArchiveBudget() {
	user := suite.createTestUser(models.User{})
	suite.Assert().NoError(user.SetBudget(models.DB, decimal.NewFromInt(3000), date(1), date(10)))

	_, err := user.AddSpending(models.DB, decimal.NewFromInt(120), "groceries")
	suite.Assert().NoError(err)
	_, err = user.AddSpending(models.DB, decimal.NewFromInt(50), "bus ticket")
	suite.Assert().NoError(err)

	suite.Assert().NoError(user.ArchiveBudget(models.DB))

	// The active period is cleared
	var reloaded models.User
	suite.Assert().NoError(models.DB.First(&reloaded, user.ID).Error)
	suite.Assert().False(reloaded.IsBudgetAssigned)
	suite.Assert().True(reloaded.TotalBudget.IsZero())
	suite.Assert().True(reloaded.DailyBudget.IsZero())
	suite.Assert().Nil(reloaded.BudgetStartDate)
	suite.Assert().Nil(reloaded.BudgetEndDate)

	// The ledger moved into the history snapshot
	ledger, err := reloaded.Ledger(models.DB)
	suite.Assert().NoError(err)
	suite.Assert().Len(ledger, 0)

	history, err := reloaded.History(models.DB)
	suite.Assert().NoError(err)
	suite.Require().Len(history, 1)
	suite.Assert().True(history[0].TotalSpent.Equal(decimal.NewFromInt(170)), "the snapshot total is the sum of the ledger, got %s", history[0].TotalSpent)
	suite.Assert().True(history[0].TotalBudget.Equal(decimal.NewFromInt(3000)))
	suite.Assert().True(history[0].DailyBudget.Equal(decimal.NewFromInt(300)))
	suite.Assert().Len(history[0].Entries, 2)
}

func (suite *TestSuiteStandard) TestArchiveBudgetTwice() {
	user := suite.createTestUser(models.User{})
	suite.Assert().NoError(user.SetBudget(models.DB, decimal.NewFromInt(3000), date(1), date(10)))
	suite.Assert().NoError(user.ArchiveBudget(models.DB))

	var reloaded models.User
	suite.Assert().NoError(models.DB.First(&reloaded, user.ID).Error)

	err := reloaded.ArchiveBudget(models.DB)
	suite.Assert().ErrorIs(err, models.ErrNoActiveBudget)
}

func (suite *TestSuiteStandard) TestHistoryOrder() {
	user := suite.createTestUser(models.User{})

	suite.Assert().NoError(user.SetBudget(models.DB, decimal.NewFromInt(1000), date(1), date(5)))
	suite.Assert().NoError(user.ArchiveBudget(models.DB))

	suite.Assert().NoError(user.SetBudget(models.DB, decimal.NewFromInt(2000), date(6), date(10)))
	suite.Assert().NoError(user.ArchiveBudget(models.DB))

	history, err := user.History(models.DB)
	suite.Assert().NoError(err)
	suite.Require().Len(history, 2)
	suite.Assert().True(history[0].TotalBudget.Equal(decimal.NewFromInt(2000)), "the history is ordered newest first")
}

func (suite *TestSuiteStandard) TestSummaryWithoutBudget() {
	user := suite.createTestUser(models.User{})

	summary, err := user.Summary(models.DB, date(1))
	suite.Assert().NoError(err)
	suite.Assert().True(summary.DailyAllowance.IsZero())
	suite.Assert().True(summary.Remaining.IsZero())
	suite.Assert().False(summary.Overspending)
}

func (suite *TestSuiteStandard) TestSummary() {
	user := suite.createTestUser(models.User{})
	suite.Assert().NoError(user.SetBudget(models.DB, decimal.NewFromInt(3000), date(1), date(10)))

	_ = suite.createTestSpendingEntry(models.SpendingEntry{
		UserID: user.ID,
		Amount: decimal.NewFromInt(120),
		Label:  "groceries",
		Date:   date(1).Add(9 * time.Hour),
	})
	_ = suite.createTestSpendingEntry(models.SpendingEntry{
		UserID: user.ID,
		Amount: decimal.NewFromInt(50),
		Label:  "bus ticket",
		Date:   date(1).Add(20 * time.Hour),
	})

	var reloaded models.User
	suite.Assert().NoError(models.DB.First(&reloaded, user.ID).Error)

	summary, err := reloaded.Summary(models.DB, date(1).Add(21*time.Hour))
	suite.Assert().NoError(err)
	suite.Assert().True(summary.DailyAllowance.Equal(decimal.NewFromInt(300)))
	suite.Assert().True(summary.SpentToday.Equal(decimal.NewFromInt(170)))
	suite.Assert().True(summary.Remaining.Equal(decimal.NewFromInt(130)))
	suite.Assert().True(summary.PercentUsed.Equal(decimal.RequireFromString("56.67")))
	suite.Assert().Equal(int64(1), summary.DaysElapsed)
	suite.Assert().Equal(int64(9), summary.DaysRemaining)
}
