package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/niaga/backend/internal/httputil"
	"github.com/niaga/backend/internal/models"
)

// RegisterUserRoutes registers the user routes with the RouterGroup that is
// passed. All handlers except the OPTIONS ones require a valid credential,
// OPTIONS stays open so that preflight requests work without a token.
func RegisterUserRoutes(r *gin.RouterGroup) {
	authenticated := Authenticated()

	{
		r.OPTIONS("/me", OptionsMe)
		r.GET("/me", authenticated, GetMe)
	}
	{
		r.OPTIONS("/personalize", OptionsPersonalize)
		r.POST("/personalize", authenticated, Personalize)
	}
	{
		r.OPTIONS("/budget", OptionsBudget)
		r.POST("/budget", authenticated, SetBudget)
	}
	{
		r.OPTIONS("/daily-spending", OptionsDailySpending)
		r.POST("/daily-spending", authenticated, AddDailySpending)
	}
	{
		r.OPTIONS("/archive-budget", OptionsArchiveBudget)
		r.POST("/archive-budget", authenticated, ArchiveBudget)
	}
	{
		r.OPTIONS("/budget/summary", OptionsBudgetSummary)
		r.GET("/budget/summary", authenticated, GetBudgetSummary)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			User
// @Success		204
// @Router			/v1/user/me [options]
func OptionsMe(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			User
// @Success		204
// @Router			/v1/user/personalize [options]
func OptionsPersonalize(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			User
// @Success		204
// @Router			/v1/user/budget [options]
func OptionsBudget(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			User
// @Success		204
// @Router			/v1/user/daily-spending [options]
func OptionsDailySpending(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			User
// @Success		204
// @Router			/v1/user/archive-budget [options]
func OptionsArchiveBudget(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			User
// @Success		204
// @Router			/v1/user/budget/summary [options]
func OptionsBudgetSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get profile
// @Description	Returns the authenticated user with the active ledger and the budget history
// @Tags			User
// @Produce		json
// @Success		200	{object}	ProfileResponse
// @Failure		401	{object}	httpError
// @Failure		500	{object}	ProfileResponse
// @Param			x-auth-token	header	string	true	"Credential"
// @Router			/v1/user/me [get]
func GetMe(c *gin.Context) {
	respondWithProfile(c, currentUser(c), http.StatusOK)
}

// @Summary		Personalize
// @Description	Overwrites the personalization attributes of the authenticated user
// @Tags			User
// @Accept			json
// @Produce		json
// @Success		200				{object}	ProfileResponse
// @Failure		400				{object}	ProfileResponse
// @Failure		401				{object}	httpError
// @Failure		500				{object}	ProfileResponse
// @Param			x-auth-token	header		string				true	"Credential"
// @Param			selections		body		PersonalizeRequest	true	"Selections"
// @Router			/v1/user/personalize [post]
func Personalize(c *gin.Context) {
	var request PersonalizeRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	if request.SpendingPreference == "" || request.Lifestyle == "" {
		e := errPersonalizationSelectionMissing.Error()
		c.JSON(http.StatusBadRequest, ProfileResponse{
			Error: &e,
		})
		return
	}

	user := currentUser(c)
	err = user.UpdatePersonalization(models.DB, models.Personalization{
		SpendingPreference: request.SpendingPreference,
		Lifestyle:          request.Lifestyle,
		SecurityQuestion:   request.SecurityQuestion,
		SecurityAnswer:     request.SecurityAnswer,
		DevNote:            request.DevNote,
	})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	respondWithProfile(c, user, http.StatusOK)
}

// @Summary		Set budget
// @Description	Opens a new budget period for the authenticated user
// @Tags			User
// @Accept			json
// @Produce		json
// @Success		200				{object}	ProfileResponse
// @Failure		400				{object}	ProfileResponse
// @Failure		401				{object}	httpError
// @Failure		500				{object}	ProfileResponse
// @Param			x-auth-token	header		string			true	"Credential"
// @Param			budget			body		BudgetRequest	true	"Budget"
// @Router			/v1/user/budget [post]
func SetBudget(c *gin.Context) {
	var request BudgetRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	if request.BudgetStartDate == nil || request.BudgetEndDate == nil {
		e := errBudgetDatesMissing.Error()
		c.JSON(http.StatusBadRequest, ProfileResponse{
			Error: &e,
		})
		return
	}

	user := currentUser(c)
	err = user.SetBudget(models.DB, request.TotalBudget, *request.BudgetStartDate, *request.BudgetEndDate)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	respondWithProfile(c, user, http.StatusOK)
}

// @Summary		Add spending
// @Description	Appends an entry to the active ledger and returns the updated ledger
// @Tags			User
// @Accept			json
// @Produce		json
// @Success		201				{object}	LedgerResponse
// @Failure		400				{object}	LedgerResponse
// @Failure		401				{object}	httpError
// @Failure		500				{object}	LedgerResponse
// @Param			x-auth-token	header		string			true	"Credential"
// @Param			spending		body		SpendingRequest	true	"Spending"
// @Router			/v1/user/daily-spending [post]
func AddDailySpending(c *gin.Context) {
	var request SpendingRequest

	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &e,
		})
		return
	}

	user := currentUser(c)
	_, err = user.AddSpending(models.DB, request.Amount, request.Label)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &e,
		})
		return
	}

	ledger, err := user.Ledger(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, LedgerResponse{Data: newSpendings(ledger)})
}

// @Summary		Archive budget
// @Description	Closes the active budget period and moves its ledger into the history
// @Tags			User
// @Produce		json
// @Success		200				{object}	ProfileResponse
// @Failure		400				{object}	ProfileResponse
// @Failure		401				{object}	httpError
// @Failure		500				{object}	ProfileResponse
// @Param			x-auth-token	header	string	true	"Credential"
// @Router			/v1/user/archive-budget [post]
func ArchiveBudget(c *gin.Context) {
	user := currentUser(c)

	err := user.ArchiveBudget(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	// Re-read so the response reflects the cleared period
	err = models.DB.First(&user, user.ID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	respondWithProfile(c, user, http.StatusOK)
}

// @Summary		Budget summary
// @Description	Returns the derived figures for the active budget period
// @Tags			User
// @Produce		json
// @Success		200				{object}	SummaryResponse
// @Failure		401				{object}	httpError
// @Failure		500				{object}	SummaryResponse
// @Param			x-auth-token	header	string	true	"Credential"
// @Router			/v1/user/budget/summary [get]
func GetBudgetSummary(c *gin.Context) {
	user := currentUser(c)

	summary, err := user.Summary(models.DB, time.Now().In(time.UTC))
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}

// respondWithProfile loads the ledger and the history for the user and writes
// the full profile with the given status.
func respondWithProfile(c *gin.Context, user models.User, code int) {
	ledger, err := user.Ledger(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	history, err := user.History(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProfileResponse{
			Error: &e,
		})
		return
	}

	data := newProfile(c, user, ledger, history)
	c.JSON(code, ProfileResponse{Data: &data})
}
