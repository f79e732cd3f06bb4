package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/niaga/backend/internal/budget"
	"github.com/niaga/backend/internal/models"
	"github.com/shopspring/decimal"
)

// Profile is the full representation of a user. It inlines the active ledger
// and the archived budget history so that the mobile client can bootstrap
// from a single request.
type Profile struct {
	ID     uuid.UUID `json:"id" example:"65392deb-5e92-4268-b114-297faad6cdce"` // UUID for the user
	Name   string    `json:"name" example:"Ramesh Kumar"`                       // Display name
	Mobile string    `json:"mobile" example:"9876543210"`                       // Contact number
	Email  string    `json:"email" example:"ramesh@example.com"`                // Email, the unique login identifier

	SpendingPreference string `json:"spendingPreference" example:"Essentials"`              // Personalization selection
	Lifestyle          string `json:"lifestyle" example:"Student"`                          // Personalization selection
	SecurityQuestion   string `json:"securityQuestion" example:"First pet?"`                // Recovery question
	SecurityAnswer     string `json:"securityAnswer" example:"Simba"`                       // Recovery answer
	DevNote            string `json:"devNote" example:"beta tester"`                        // Free-form note
	IsPersonalized     bool   `json:"isPersonalized" example:"true"`                        // Whether the personalization flow was completed
	IsBudgetAssigned   bool   `json:"isBudgetAssigned" example:"true"`                      // Whether a budget period is active

	TotalBudget     decimal.Decimal `json:"totalBudget" example:"3000"`                   // Total for the active period, 0 without one
	BudgetStartDate *time.Time      `json:"budgetStartDate" example:"2026-08-01T00:00:00Z"` // Start of the active period
	BudgetEndDate   *time.Time      `json:"budgetEndDate" example:"2026-08-10T00:00:00Z"`   // Inclusive end of the active period
	DailyBudget     decimal.Decimal `json:"dailyBudget" example:"300"`                    // Allowance per day of the active period

	DailySpending []Spending       `json:"dailySpending"` // Active ledger, oldest entry first
	BudgetHistory []ArchivedBudget `json:"budgetHistory"` // Closed periods, newest first

	Links ProfileLinks `json:"links"` // Links for the user
}

type ProfileLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/user/me"`                  // The profile itself
	Personalize  string `json:"personalize" example:"https://example.com/api/v1/user/personalize"`  // Personalization endpoint
	Budget       string `json:"budget" example:"https://example.com/api/v1/user/budget"`            // Budget period endpoint
	Spending     string `json:"spending" example:"https://example.com/api/v1/user/daily-spending"`  // Ledger append endpoint
	Archive      string `json:"archive" example:"https://example.com/api/v1/user/archive-budget"`   // Period close endpoint
	Summary      string `json:"summary" example:"https://example.com/api/v1/user/budget/summary"`   // Derived figures endpoint
}

// Spending is a single ledger entry as the API returns it.
type Spending struct {
	ID     uuid.UUID       `json:"id" example:"9b9cf286-a986-410a-ba55-c79f26462c0f"` // UUID for the entry
	Amount decimal.Decimal `json:"amount" example:"120"`                              // Amount spent
	Label  string          `json:"label" example:"groceries"`                         // What the money went to
	Date   time.Time       `json:"date" example:"2026-08-01T13:37:00Z"`               // When it was spent
}

// ArchivedBudget is a closed budget period as the API returns it, with the
// snapshotted ledger inline.
type ArchivedBudget struct {
	ID              uuid.UUID       `json:"id" example:"f3e93a54-89b6-4035-a2b6-da0bbb470ba4"` // UUID for the archive
	StartDate       *time.Time      `json:"startDate" example:"2026-07-01T00:00:00Z"`          // Start of the closed period
	EndDate         *time.Time      `json:"endDate" example:"2026-07-31T00:00:00Z"`            // Inclusive end of the closed period
	TotalBudget     decimal.Decimal `json:"totalBudget" example:"9000"`                        // Total of the closed period
	DailyBudget     decimal.Decimal `json:"dailyBudget" example:"290.32"`                      // Allowance per day of the closed period
	TotalSpent      decimal.Decimal `json:"totalSpent" example:"8421.5"`                       // Sum of the snapshotted entries
	ArchivedAt      time.Time       `json:"archivedAt" example:"2026-08-01T08:00:00Z"`         // When the period was closed
	SpendingEntries []Spending      `json:"spendingEntries"`                                   // Ledger snapshot of the period
}

type ProfileResponse struct {
	Data  *Profile `json:"data"`  // The user profile
	Error *string  `json:"error"` // The error, if any occurred
}

type LedgerResponse struct {
	Data  []Spending `json:"data"`  // The active ledger, oldest entry first
	Error *string    `json:"error"` // The error, if any occurred
}

type SummaryResponse struct {
	Data  *budget.Summary `json:"data"`  // The derived figures for the active period
	Error *string         `json:"error"` // The error, if any occurred
}

// PersonalizeRequest carries the personalization selections. All fields are
// overwritten on every call.
type PersonalizeRequest struct {
	SpendingPreference string `json:"spendingPreference" example:"Essentials"`
	Lifestyle          string `json:"lifestyle" example:"Student"`
	SecurityQuestion   string `json:"securityQuestion" example:"First pet?"`
	SecurityAnswer     string `json:"securityAnswer" example:"Simba"`
	DevNote            string `json:"devNote" example:"beta tester"`
}

// BudgetRequest opens a new budget period.
type BudgetRequest struct {
	TotalBudget     decimal.Decimal `json:"totalBudget" example:"3000"`
	BudgetStartDate *time.Time      `json:"budgetStartDate" example:"2026-08-01T00:00:00Z"`
	BudgetEndDate   *time.Time      `json:"budgetEndDate" example:"2026-08-10T00:00:00Z"`
}

// SpendingRequest appends an entry to the active ledger.
type SpendingRequest struct {
	Amount decimal.Decimal `json:"amount" example:"120"`
	Label  string          `json:"label" example:"groceries"`
}

func newSpending(entry models.SpendingEntry) Spending {
	return Spending{
		ID:     entry.ID,
		Amount: entry.Amount,
		Label:  entry.Label,
		Date:   entry.Date,
	}
}

func newSpendings(entries []models.SpendingEntry) []Spending {
	spendings := make([]Spending, 0, len(entries))
	for _, entry := range entries {
		spendings = append(spendings, newSpending(entry))
	}

	return spendings
}

func newArchivedBudget(archive models.BudgetArchive) ArchivedBudget {
	return ArchivedBudget{
		ID:              archive.ID,
		StartDate:       archive.StartDate,
		EndDate:         archive.EndDate,
		TotalBudget:     archive.TotalBudget,
		DailyBudget:     archive.DailyBudget,
		TotalSpent:      archive.TotalSpent,
		ArchivedAt:      archive.ArchivedAt,
		SpendingEntries: newSpendings(archive.Entries),
	}
}

func newProfile(c *gin.Context, user models.User, ledger []models.SpendingEntry, history []models.BudgetArchive) Profile {
	url := c.GetString(string(models.DBContextURL)) + "/v1/user"

	archives := make([]ArchivedBudget, 0, len(history))
	for _, archive := range history {
		archives = append(archives, newArchivedBudget(archive))
	}

	return Profile{
		ID:     user.ID,
		Name:   user.Name,
		Mobile: user.Mobile,
		Email:  user.Email,

		SpendingPreference: user.SpendingPreference,
		Lifestyle:          user.Lifestyle,
		SecurityQuestion:   user.SecurityQuestion,
		SecurityAnswer:     user.SecurityAnswer,
		DevNote:            user.DevNote,
		IsPersonalized:     user.IsPersonalized(),
		IsBudgetAssigned:   user.IsBudgetAssigned,

		TotalBudget:     user.TotalBudget,
		BudgetStartDate: user.BudgetStartDate,
		BudgetEndDate:   user.BudgetEndDate,
		DailyBudget:     user.DailyBudget,

		DailySpending: newSpendings(ledger),
		BudgetHistory: archives,

		Links: ProfileLinks{
			Self:        url + "/me",
			Personalize: url + "/personalize",
			Budget:      url + "/budget",
			Spending:    url + "/daily-spending",
			Archive:     url + "/archive-budget",
			Summary:     url + "/budget/summary",
		},
	}
}
