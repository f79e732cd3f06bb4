package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/niaga/backend/internal/httputil"
	"github.com/niaga/backend/internal/models"
)

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	{
		r.GET("", Get)
		r.OPTIONS("", Options)
	}

	RegisterAuthRoutes(r.Group("/auth"))
	RegisterUserRoutes(r.Group("/user"))
	RegisterTransactionRoutes(r.Group("/transactions"))
	RegisterBillRoutes(r.Group("/bills"))
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Auth         string `json:"auth" example:"https://example.com/api/v1/auth"`                 // URL of the authentication endpoints
	User         string `json:"user" example:"https://example.com/api/v1/user"`                 // URL of the user endpoints
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of the transaction endpoints
	Bills        string `json:"bills" example:"https://example.com/api/v1/bills"`               // URL of the bill endpoints
}

// @Summary		v1 API
// @Description	Returns general information about the v1 API
// @Tags			v1
// @Success		200	{object}	Response
// @Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL)) + "/v1"

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Auth:         url + "/auth",
			User:         url + "/user",
			Transactions: url + "/transactions",
			Bills:        url + "/bills",
		},
	})
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			v1
// @Success		204
// @Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
