package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/niaga/backend/internal/httputil"
	"github.com/niaga/backend/internal/models"
)

// RegisterTransactionRoutes registers the transaction routes with the
// RouterGroup that is passed. Both handlers require a valid credential, the
// transactions belong to the authenticated user.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	authenticated := Authenticated()

	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", authenticated, GetTransactions)
		r.POST("", authenticated, CreateTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		List transactions
// @Description	Returns all transactions of the authenticated user, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200				{object}	TransactionListResponse
// @Failure		401				{object}	httpError
// @Failure		500				{object}	TransactionListResponse
// @Param			x-auth-token	header	string	true	"Credential"
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	user := currentUser(c)

	transactions, err := user.Transactions(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: newTransactions(transactions)})
}

// @Summary		Record transaction
// @Description	Records an income or expense transaction for the authenticated user
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		201				{object}	TransactionResponse
// @Failure		400				{object}	TransactionResponse
// @Failure		401				{object}	httpError
// @Failure		500				{object}	TransactionResponse
// @Param			x-auth-token	header		string				true	"Credential"
// @Param			transaction		body		TransactionCreate	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var request TransactionCreate

	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	if request.Title == "" || request.Amount.IsZero() || request.Type == "" {
		e := errTransactionFieldsMissing.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{
			Error: &e,
		})
		return
	}

	transaction := models.Transaction{
		UserID: currentUser(c).ID,
		Title:  request.Title,
		Amount: request.Amount,
		Type:   request.Type,
	}

	err = models.DB.Create(&transaction).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(transaction)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}
