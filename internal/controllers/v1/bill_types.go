package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/niaga/backend/internal/models"
	"github.com/shopspring/decimal"
)

// BillCreate is the payload for uploading a bill. The file fields are
// optional, fileData carries the base64 encoded payload.
type BillCreate struct {
	UserID      uuid.UUID       `json:"userId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the user owning the bill
	Title       string          `json:"title" example:"Electricity July"`                      // Name of the bill
	Description string          `json:"description" example:"monthly power bill"`              // Free-form note
	Amount      decimal.Decimal `json:"amount" example:"845.5"`                                // Billed amount
	Date        *time.Time      `json:"date" example:"2026-08-01T00:00:00Z"`                   // Bill date, defaults to now
	FileType    string          `json:"fileType" example:"image" enums:"image,pdf"`            // Type of the attached file
	FileData    string          `json:"fileData"`                                              // Base64 encoded file payload
	FileName    string          `json:"fileName" example:"bill-july.jpg"`                      // Original file name
	MimeType    string          `json:"mimeType" example:"image/jpeg"`                         // MIME type of the file
}

// BillQueryFilter contains the fields bills can be filtered by.
type BillQueryFilter struct {
	Title    string `form:"title"`                       // Exact title match
	FileType string `form:"fileType"`                    // Type of the attached file
	Limit    int    `form:"limit" filterField:"false"`   // Maximum number of bills to return
	Offset   int    `form:"offset" filterField:"false"`  // Number of bills to skip
}

// BillV is a bill as the API returns it.
type BillV struct {
	ID          uuid.UUID       `json:"id" example:"1474e6b8-3910-4d07-9a38-43eb0f9b8b80"`     // UUID for the bill
	UserID      uuid.UUID       `json:"userId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // ID of the user owning the bill
	Title       string          `json:"title" example:"Electricity July"`                      // Name of the bill
	Description string          `json:"description" example:"monthly power bill"`              // Free-form note
	Amount      decimal.Decimal `json:"amount" example:"845.5"`                                // Billed amount
	Date        time.Time       `json:"date" example:"2026-08-01T00:00:00Z"`                   // Bill date
	FileType    string          `json:"fileType" example:"image"`                              // Type of the attached file
	FileData    string          `json:"fileData"`                                              // Base64 encoded file payload
	FileName    string          `json:"fileName" example:"bill-july.jpg"`                      // Original file name
	MimeType    string          `json:"mimeType" example:"image/jpeg"`                         // MIME type of the file
	Links       BillLinks       `json:"links"`                                                 // Links for the bill
}

type BillLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/bills/1474e6b8-3910-4d07-9a38-43eb0f9b8b80"` // The bill itself
}

type BillResponse struct {
	Data  *BillV  `json:"data"`  // The bill
	Error *string `json:"error"` // The error, if any occurred
}

type BillListResponse struct {
	Data  []BillV `json:"data"`  // The list of bills, newest first
	Error *string `json:"error"` // The error, if any occurred
}

func newBill(c *gin.Context, bill models.Bill) BillV {
	url := c.GetString(string(models.DBContextURL))

	return BillV{
		ID:          bill.ID,
		UserID:      bill.UserID,
		Title:       bill.Title,
		Description: bill.Description,
		Amount:      bill.Amount,
		Date:        bill.Date,
		FileType:    bill.FileType,
		FileData:    bill.FileData,
		FileName:    bill.FileName,
		MimeType:    bill.MimeType,

		Links: BillLinks{
			Self: url + "/v1/bills/" + bill.ID.String(),
		},
	}
}
