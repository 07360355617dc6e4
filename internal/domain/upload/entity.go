package upload

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// Category classifies a stored file by its MIME type.
type Category string

const (
	CategoryImage    Category = "image"
	CategoryVideo    Category = "video"
	CategoryDocument Category = "document"
	CategoryOther    Category = "other"
)

// Categories lists every valid category.
var Categories = []Category{CategoryImage, CategoryVideo, CategoryDocument, CategoryOther}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryImage, CategoryVideo, CategoryDocument, CategoryOther:
		return true
	}
	return false
}

// UploadRecord represents the uploads table. It describes a file stored on
// disk; the record is distinct from the file itself.
type UploadRecord struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Filename      string         `gorm:"uniqueIndex;not null"`
	OriginalName  string         `gorm:"not null"`
	MimeType      string         `gorm:"not null"`
	SizeBytes     int64          `gorm:"not null"`
	SizeFormatted string         `gorm:"not null"`
	Path          string         `gorm:"not null"`
	URL           string         `gorm:"not null"`
	Category      Category       `gorm:"type:varchar(20);not null;index"`
	UploadedBy    uuid.NullUUID  `gorm:"type:uuid"`
	FieldName     sql.NullString // set for mixed multi-field uploads
	UploadedAt    time.Time      `gorm:"default:CURRENT_TIMESTAMP"`
}

func (UploadRecord) TableName() string {
	return "uploads"
}

// CategoryStat is one row of the per-category aggregate.
type CategoryStat struct {
	Category Category
	Count    int64
}
