package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Bill file types. An empty type means no file is attached.
const (
	BillFileTypeImage = "image"
	BillFileTypePDF   = "pdf"
)

// Bill is an uploaded bill, optionally with an attached file.
//
// Bills are independent of budget periods: they belong to a user, are created
// by the upload endpoint and deleted explicitly, nothing else touches them.
type Bill struct {
	DefaultModel
	User        User      `json:"-"`
	UserID      uuid.UUID `gorm:"index"`
	Title       string
	Description string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        time.Time

	// Attached file. FileData is the base64 encoded payload, kept as text
	// to match what the mobile client submits.
	FileType string
	FileData string
	FileName string
	MimeType string
}

// BeforeCreate validates the bill and defaults the upload date to the
// current time.
func (b *Bill) BeforeCreate(tx *gorm.DB) error {
	_ = b.DefaultModel.BeforeCreate(tx)

	b.Title = strings.TrimSpace(b.Title)
	b.Description = strings.TrimSpace(b.Description)

	if b.Title == "" {
		return ErrBillTitleEmpty
	}

	if b.FileType != "" && b.FileType != BillFileTypeImage && b.FileType != BillFileTypePDF {
		return ErrBillFileTypeInvalid
	}

	if b.Date.IsZero() {
		b.Date = time.Now().In(time.UTC)
	} else {
		b.Date = b.Date.In(time.UTC)
	}

	toSave := tx.Statement.Dest.(*Bill)
	return b.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources
func (b *Bill) checkIntegrity(tx *gorm.DB, toSave Bill) error {
	return tx.First(&User{}, toSave.UserID).Error
}

// AfterFind updates the upload date to use UTC as timezone, see DefaultModel.
func (b *Bill) AfterFind(_ *gorm.DB) error {
	b.Date = b.Date.In(time.UTC)
	return nil
}
