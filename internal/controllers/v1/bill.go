package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/niaga/backend/internal/httputil"
	"github.com/niaga/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterBillRoutes registers the bill routes with the RouterGroup that is
// passed. The mobile client calls these without a credential, the bill store
// is scoped by the user ID in the request instead.
func RegisterBillRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/upload", OptionsBillUpload)
		r.POST("/upload", CreateBill)
	}
	{
		r.OPTIONS("/:id", OptionsBillDetail)
		r.GET("/:id", GetBills)
		r.DELETE("/:id", DeleteBill)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bills
// @Success		204
// @Router			/v1/bills/upload [options]
func OptionsBillUpload(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Bills
// @Success		204
// @Router			/v1/bills/{id} [options]
func OptionsBillDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("allow", "GET, DELETE")
	c.Status(http.StatusNoContent)
}

// @Summary		Upload bill
// @Description	Stores a bill for a user, optionally with an attached file
// @Tags			Bills
// @Accept			json
// @Produce		json
// @Success		201		{object}	BillResponse
// @Failure		400		{object}	BillResponse
// @Failure		404		{object}	BillResponse
// @Failure		500		{object}	BillResponse
// @Param			bill	body		BillCreate	true	"Bill"
// @Router			/v1/bills/upload [post]
func CreateBill(c *gin.Context) {
	var request BillCreate

	err := httputil.BindData(c, &request)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &e,
		})
		return
	}

	if request.UserID == uuid.Nil || request.Title == "" {
		e := errBillUserAndTitleRequired.Error()
		c.JSON(http.StatusBadRequest, BillResponse{
			Error: &e,
		})
		return
	}

	bill := models.Bill{
		UserID:      request.UserID,
		Title:       request.Title,
		Description: request.Description,
		Amount:      request.Amount,
		FileType:    request.FileType,
		FileData:    request.FileData,
		FileName:    request.FileName,
		MimeType:    request.MimeType,
	}
	if request.Date != nil {
		bill.Date = *request.Date
	}

	err = models.DB.Create(&bill).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillResponse{
			Error: &e,
		})
		return
	}

	data := newBill(c, bill)
	c.JSON(http.StatusCreated, BillResponse{Data: &data})
}

// @Summary		List bills
// @Description	Returns all bills of a user, newest first
// @Tags			Bills
// @Produce		json
// @Success		200		{object}	BillListResponse
// @Failure		400		{object}	BillListResponse
// @Failure		500		{object}	BillListResponse
// @Param			id			path	string	true	"ID of the user"
// @Param			title		query	string	false	"Filter by title"
// @Param			fileType	query	string	false	"Filter by file type"
// @Param			limit		query	int		false	"Maximum number of bills to return"
// @Param			offset		query	int		false	"Number of bills to skip"
// @Router			/v1/bills/{id} [get]
func GetBills(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BillListResponse{
			Error: &e,
		})
		return
	}

	var filter BillQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, BillListResponse{
			Error: &e,
		})
		return
	}

	if !slices.Contains([]string{"", models.BillFileTypeImage, models.BillFileTypePDF}, filter.FileType) {
		e := models.ErrBillFileTypeInvalid.Error()
		c.JSON(http.StatusBadRequest, BillListResponse{
			Error: &e,
		})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	query := models.DB.
		Where(&models.Bill{
			Title:    filter.Title,
			FileType: filter.FileType,
		}, queryFields...).
		Where("user_id = ?", uri.ID.UUID).
		Order("datetime(date) DESC")

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var bills []models.Bill
	err := query.Find(&bills).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BillListResponse{
			Error: &e,
		})
		return
	}

	data := make([]BillV, 0, len(bills))
	for _, bill := range bills {
		data = append(data, newBill(c, bill))
	}

	c.JSON(http.StatusOK, BillListResponse{Data: data})
}

// @Summary		Delete bill
// @Description	Deletes a bill
// @Tags			Bills
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path	string	true	"ID of the bill"
// @Router			/v1/bills/{id} [delete]
func DeleteBill(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: err.Error(),
		})
		return
	}

	var bill models.Bill
	err := models.DB.First(&bill, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&bill).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}
