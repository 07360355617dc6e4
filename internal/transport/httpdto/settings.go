package httpdto

import (
	"time"

	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/settings"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/services"
)

// CreateSettingsRequest is used for POST /api/basic-settings
type CreateSettingsRequest struct {
	SiteName        string `json:"site_name" binding:"required"`
	Tagline         string `json:"tagline,omitempty"`
	ContactEmail    string `json:"contact_email,omitempty"`
	ContactPhone    string `json:"contact_phone,omitempty"`
	ContactAddress  string `json:"contact_address,omitempty"`
	FacebookURL     string `json:"facebook_url,omitempty"`
	TwitterURL      string `json:"twitter_url,omitempty"`
	InstagramURL    string `json:"instagram_url,omitempty"`
	YoutubeURL      string `json:"youtube_url,omitempty"`
	LinkedinURL     string `json:"linkedin_url,omitempty"`
	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
	MetaKeywords    string `json:"meta_keywords,omitempty"`
	GoogleAnalytics string `json:"google_analytics,omitempty"`
	CopyrightText   string `json:"copyright_text,omitempty"`
	MaintenanceMode bool   `json:"maintenance_mode,omitempty"`
}

// UpdateSettingsRequest is used for PUT /api/basic-settings/:id. Pointer
// fields distinguish "absent" from "set to empty"; absent fields keep their
// stored values.
type UpdateSettingsRequest struct {
	SiteName        *string `json:"site_name,omitempty"`
	Tagline         *string `json:"tagline,omitempty"`
	ContactEmail    *string `json:"contact_email,omitempty"`
	ContactPhone    *string `json:"contact_phone,omitempty"`
	ContactAddress  *string `json:"contact_address,omitempty"`
	FacebookURL     *string `json:"facebook_url,omitempty"`
	TwitterURL      *string `json:"twitter_url,omitempty"`
	InstagramURL    *string `json:"instagram_url,omitempty"`
	YoutubeURL      *string `json:"youtube_url,omitempty"`
	LinkedinURL     *string `json:"linkedin_url,omitempty"`
	MetaTitle       *string `json:"meta_title,omitempty"`
	MetaDescription *string `json:"meta_description,omitempty"`
	MetaKeywords    *string `json:"meta_keywords,omitempty"`
	GoogleAnalytics *string `json:"google_analytics,omitempty"`
	CopyrightText   *string `json:"copyright_text,omitempty"`
	MaintenanceMode *bool   `json:"maintenance_mode,omitempty"`
}

// ToInput converts the request into the service-level partial update.
func (r UpdateSettingsRequest) ToInput() services.UpdateSettingsInput {
	return services.UpdateSettingsInput{
		SiteName:        r.SiteName,
		Tagline:         r.Tagline,
		ContactEmail:    r.ContactEmail,
		ContactPhone:    r.ContactPhone,
		ContactAddress:  r.ContactAddress,
		FacebookURL:     r.FacebookURL,
		TwitterURL:      r.TwitterURL,
		InstagramURL:    r.InstagramURL,
		YoutubeURL:      r.YoutubeURL,
		LinkedinURL:     r.LinkedinURL,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		MetaKeywords:    r.MetaKeywords,
		GoogleAnalytics: r.GoogleAnalytics,
		CopyrightText:   r.CopyrightText,
		MaintenanceMode: r.MaintenanceMode,
	}
}

// SettingsDTO represents the settings row in API responses
type SettingsDTO struct {
	ID              string `json:"id"`
	SiteName        string `json:"site_name"`
	Tagline         string `json:"tagline,omitempty"`
	ContactEmail    string `json:"contact_email,omitempty"`
	ContactPhone    string `json:"contact_phone,omitempty"`
	ContactAddress  string `json:"contact_address,omitempty"`
	FacebookURL     string `json:"facebook_url,omitempty"`
	TwitterURL      string `json:"twitter_url,omitempty"`
	InstagramURL    string `json:"instagram_url,omitempty"`
	YoutubeURL      string `json:"youtube_url,omitempty"`
	LinkedinURL     string `json:"linkedin_url,omitempty"`
	MetaTitle       string `json:"meta_title,omitempty"`
	MetaDescription string `json:"meta_description,omitempty"`
	MetaKeywords    string `json:"meta_keywords,omitempty"`
	GoogleAnalytics string `json:"google_analytics,omitempty"`
	CopyrightText   string `json:"copyright_text,omitempty"`
	MaintenanceMode bool   `json:"maintenance_mode"`
	LogoURL         string `json:"logo_url,omitempty"`
	FaviconURL      string `json:"favicon_url,omitempty"`
	CreatedBy       string `json:"created_by,omitempty"`
	UpdatedBy       string `json:"updated_by,omitempty"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// FromSettings converts the domain settings row to SettingsDTO
func FromSettings(s settings.BasicSettings) SettingsDTO {
	dto := SettingsDTO{
		ID:              s.ID.String(),
		SiteName:        s.SiteName,
		Tagline:         s.Tagline,
		ContactEmail:    s.ContactEmail,
		ContactPhone:    s.ContactPhone,
		ContactAddress:  s.ContactAddress,
		FacebookURL:     s.FacebookURL,
		TwitterURL:      s.TwitterURL,
		InstagramURL:    s.InstagramURL,
		YoutubeURL:      s.YoutubeURL,
		LinkedinURL:     s.LinkedinURL,
		MetaTitle:       s.MetaTitle,
		MetaDescription: s.MetaDescription,
		MetaKeywords:    s.MetaKeywords,
		GoogleAnalytics: s.GoogleAnalytics,
		CopyrightText:   s.CopyrightText,
		MaintenanceMode: s.MaintenanceMode,
		LogoURL:         s.LogoURL,
		FaviconURL:      s.FaviconURL,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       s.UpdatedAt.Format(time.RFC3339),
	}
	if s.CreatedBy.Valid {
		dto.CreatedBy = s.CreatedBy.UUID.String()
	}
	if s.UpdatedBy.Valid {
		dto.UpdatedBy = s.UpdatedBy.UUID.String()
	}
	return dto
}
