package settings

import (
	"time"

	"github.com/google/uuid"
)

// BasicSettings represents the basic_settings table. The table is expected
// to hold at most one authoritative row; creation is rejected once a row
// exists.
type BasicSettings struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	SiteName        string    `gorm:"not null"`
	Tagline         string
	ContactEmail    string
	ContactPhone    string
	ContactAddress  string
	FacebookURL     string
	TwitterURL      string
	InstagramURL    string
	YoutubeURL      string
	LinkedinURL     string
	MetaTitle       string
	MetaDescription string
	MetaKeywords    string
	GoogleAnalytics string
	CopyrightText   string
	MaintenanceMode bool          `gorm:"default:false"`
	LogoURL         string
	FaviconURL      string
	CreatedBy       uuid.NullUUID `gorm:"type:uuid"`
	UpdatedBy       uuid.NullUUID `gorm:"type:uuid"`
	CreatedAt       time.Time     `gorm:"default:CURRENT_TIMESTAMP"`
	UpdatedAt       time.Time     `gorm:"default:CURRENT_TIMESTAMP"`
}

func (BasicSettings) TableName() string {
	return "basic_settings"
}
