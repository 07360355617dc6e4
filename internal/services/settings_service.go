package services

import (
	"context"
	"mime/multipart"
	"strings"
	"time"

	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/settings"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/repository"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/storage"
	portal_errors "github.com/moshiurrahmandeap11/server-news-portal/pkg/errors"
	"github.com/moshiurrahmandeap11/server-news-portal/pkg/logger"

	"github.com/google/uuid"
)

type SettingsService struct {
	repo    repository.SettingsRepository
	storage *storage.Manager
	logger  *logger.Logger
}

func NewSettingsService(repo repository.SettingsRepository, storage *storage.Manager, l *logger.Logger) *SettingsService {
	return &SettingsService{repo: repo, storage: storage, logger: l}
}

type CreateSettingsInput struct {
	SiteName        string
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
	MaintenanceMode bool
}

// UpdateSettingsInput carries a partial update; nil pointers leave the
// corresponding column untouched.
type UpdateSettingsInput struct {
	SiteName        *string
	Tagline         *string
	ContactEmail    *string
	ContactPhone    *string
	ContactAddress  *string
	FacebookURL     *string
	TwitterURL      *string
	InstagramURL    *string
	YoutubeURL      *string
	LinkedinURL     *string
	MetaTitle       *string
	MetaDescription *string
	MetaKeywords    *string
	GoogleAnalytics *string
	CopyrightText   *string
	MaintenanceMode *bool
}

// PublicInfo is the reduced field set safe for unauthenticated consumers.
type PublicInfo struct {
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
	CopyrightText   string `json:"copyright_text,omitempty"`
	MaintenanceMode bool   `json:"maintenance_mode"`
	LogoURL         string `json:"logo_url,omitempty"`
	FaviconURL      string `json:"favicon_url,omitempty"`
}

func (s *SettingsService) Create(ctx context.Context, in CreateSettingsInput, actor uuid.NullUUID) (settings.BasicSettings, error) {
	if strings.TrimSpace(in.SiteName) == "" {
		return settings.BasicSettings{}, portal_errors.ErrInvalidInput
	}

	row := &settings.BasicSettings{
		ID:              uuid.New(),
		SiteName:        in.SiteName,
		Tagline:         in.Tagline,
		ContactEmail:    in.ContactEmail,
		ContactPhone:    in.ContactPhone,
		ContactAddress:  in.ContactAddress,
		FacebookURL:     in.FacebookURL,
		TwitterURL:      in.TwitterURL,
		InstagramURL:    in.InstagramURL,
		YoutubeURL:      in.YoutubeURL,
		LinkedinURL:     in.LinkedinURL,
		MetaTitle:       in.MetaTitle,
		MetaDescription: in.MetaDescription,
		MetaKeywords:    in.MetaKeywords,
		GoogleAnalytics: in.GoogleAnalytics,
		CopyrightText:   in.CopyrightText,
		MaintenanceMode: in.MaintenanceMode,
		CreatedBy:       actor,
		UpdatedBy:       actor,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return settings.BasicSettings{}, err
	}
	return *row, nil
}

func (s *SettingsService) Get(ctx context.Context) (settings.BasicSettings, error) {
	return s.repo.Get(ctx)
}

func (s *SettingsService) Update(ctx context.Context, id uuid.UUID, in UpdateSettingsInput, actor uuid.NullUUID) (settings.BasicSettings, error) {
	fields := map[string]interface{}{}
	put := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	if in.SiteName != nil && strings.TrimSpace(*in.SiteName) == "" {
		return settings.BasicSettings{}, portal_errors.ErrInvalidInput
	}
	put("site_name", in.SiteName)
	put("tagline", in.Tagline)
	put("contact_email", in.ContactEmail)
	put("contact_phone", in.ContactPhone)
	put("contact_address", in.ContactAddress)
	put("facebook_url", in.FacebookURL)
	put("twitter_url", in.TwitterURL)
	put("instagram_url", in.InstagramURL)
	put("youtube_url", in.YoutubeURL)
	put("linkedin_url", in.LinkedinURL)
	put("meta_title", in.MetaTitle)
	put("meta_description", in.MetaDescription)
	put("meta_keywords", in.MetaKeywords)
	put("google_analytics", in.GoogleAnalytics)
	put("copyright_text", in.CopyrightText)
	if in.MaintenanceMode != nil {
		fields["maintenance_mode"] = *in.MaintenanceMode
	}
	if len(fields) == 0 {
		return s.repo.GetByID(ctx, id)
	}

	fields["updated_at"] = time.Now()
	if actor.Valid {
		fields["updated_by"] = actor.UUID
	}

	if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
		return settings.BasicSettings{}, err
	}
	return s.repo.GetByID(ctx, id)
}

// ReplaceLogo stores the new logo, updates the row, then deletes the
// superseded file. The row update commits before the physical delete so a
// failed delete can only orphan the old file, never dangle the reference.
func (s *SettingsService) ReplaceLogo(ctx context.Context, fh *multipart.FileHeader, actor uuid.NullUUID) (settings.BasicSettings, error) {
	return s.replaceAsset(ctx, storage.AssetLogo, fh, actor)
}

func (s *SettingsService) ReplaceFavicon(ctx context.Context, fh *multipart.FileHeader, actor uuid.NullUUID) (settings.BasicSettings, error) {
	return s.replaceAsset(ctx, storage.AssetFavicon, fh, actor)
}

func (s *SettingsService) replaceAsset(ctx context.Context, kind storage.AssetKind, fh *multipart.FileHeader, actor uuid.NullUUID) (settings.BasicSettings, error) {
	row, err := s.repo.Get(ctx)
	if err != nil {
		return settings.BasicSettings{}, err
	}

	stored, err := s.storage.SaveAsset(kind, fh)
	if err != nil {
		return settings.BasicSettings{}, err
	}

	column := "logo_url"
	previous := row.LogoURL
	if kind == storage.AssetFavicon {
		column = "favicon_url"
		previous = row.FaviconURL
	}

	fields := map[string]interface{}{
		column:       stored.URL,
		"updated_at": time.Now(),
	}
	if actor.Valid {
		fields["updated_by"] = actor.UUID
	}

	if err := s.repo.UpdateFields(ctx, row.ID, fields); err != nil {
		if rmErr := s.storage.Remove(stored.Path); rmErr != nil {
			s.logger.Errorf("failed to remove %s after update failure %s: %s", kind, stored.Path, rmErr)
		}
		return settings.BasicSettings{}, err
	}

	if previous != "" && previous != stored.URL {
		if rmErr := s.storage.Remove(s.storage.PathForURL(previous)); rmErr != nil {
			s.logger.Errorf("failed to delete previous %s %s: %s", kind, previous, rmErr)
		}
	}

	return s.repo.GetByID(ctx, row.ID)
}

// GetPublicInfo returns the reduced settings view with stored relative asset
// URLs rewritten absolute against the serving base URL.
func (s *SettingsService) GetPublicInfo(ctx context.Context, baseURL string) (PublicInfo, error) {
	row, err := s.repo.Get(ctx)
	if err != nil {
		return PublicInfo{}, err
	}

	return PublicInfo{
		SiteName:        row.SiteName,
		Tagline:         row.Tagline,
		ContactEmail:    row.ContactEmail,
		ContactPhone:    row.ContactPhone,
		ContactAddress:  row.ContactAddress,
		FacebookURL:     row.FacebookURL,
		TwitterURL:      row.TwitterURL,
		InstagramURL:    row.InstagramURL,
		YoutubeURL:      row.YoutubeURL,
		LinkedinURL:     row.LinkedinURL,
		CopyrightText:   row.CopyrightText,
		MaintenanceMode: row.MaintenanceMode,
		LogoURL:         absoluteURL(baseURL, row.LogoURL),
		FaviconURL:      absoluteURL(baseURL, row.FaviconURL),
	}, nil
}

func absoluteURL(baseURL, stored string) string {
	if stored == "" || strings.HasPrefix(stored, "http://") || strings.HasPrefix(stored, "https://") {
		return stored
	}
	return strings.TrimSuffix(baseURL, "/") + stored
}
