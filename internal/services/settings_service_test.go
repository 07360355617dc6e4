package services

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	portal_errors "github.com/moshiurrahmandeap11/server-news-portal/pkg/errors"

	"github.com/google/uuid"
)

func createTestSettings(t *testing.T, svc *SettingsService) uuid.UUID {
	t.Helper()
	row, err := svc.Create(context.Background(), CreateSettingsInput{
		SiteName:     "Daily Portal",
		Tagline:      "News as it happens",
		ContactEmail: "desk@dailyportal.example",
	}, uuid.NullUUID{})
	if err != nil {
		t.Fatalf("Create settings: %v", err)
	}
	return row.ID
}

func TestCreateSettingsSingleton(t *testing.T) {
	svc, _ := newTestSettingsService(t)
	createTestSettings(t, svc)

	_, err := svc.Create(context.Background(), CreateSettingsInput{SiteName: "Second Site"}, uuid.NullUUID{})
	if !errors.Is(err, portal_errors.ErrAlreadyExists) {
		t.Fatalf("second Create err = %v, want ErrAlreadyExists", err)
	}

	row, err := svc.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if row.SiteName != "Daily Portal" {
		t.Fatalf("site name = %q, first row must survive", row.SiteName)
	}
}

func TestCreateSettingsRequiresSiteName(t *testing.T) {
	svc, _ := newTestSettingsService(t)

	if _, err := svc.Create(context.Background(), CreateSettingsInput{SiteName: "   "}, uuid.NullUUID{}); !errors.Is(err, portal_errors.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestGetSettingsBeforeCreate(t *testing.T) {
	svc, _ := newTestSettingsService(t)

	if _, err := svc.Get(context.Background()); !errors.Is(err, portal_errors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateSettingsPartialMerge(t *testing.T) {
	svc, _ := newTestSettingsService(t)
	id := createTestSettings(t, svc)

	tagline := "Updated tagline"
	maintenance := true
	updated, err := svc.Update(context.Background(), id, UpdateSettingsInput{
		Tagline:         &tagline,
		MaintenanceMode: &maintenance,
	}, uuid.NullUUID{})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Tagline != "Updated tagline" {
		t.Fatalf("tagline = %q", updated.Tagline)
	}
	if !updated.MaintenanceMode {
		t.Fatalf("maintenance mode not applied")
	}
	if updated.SiteName != "Daily Portal" {
		t.Fatalf("site name clobbered: %q", updated.SiteName)
	}
	if updated.ContactEmail != "desk@dailyportal.example" {
		t.Fatalf("contact email clobbered: %q", updated.ContactEmail)
	}

	empty := ""
	if _, err := svc.Update(context.Background(), id, UpdateSettingsInput{SiteName: &empty}, uuid.NullUUID{}); !errors.Is(err, portal_errors.ErrInvalidInput) {
		t.Fatalf("blank site name err = %v, want ErrInvalidInput", err)
	}

	// No fields set is a no-op returning the current row.
	same, err := svc.Update(context.Background(), id, UpdateSettingsInput{}, uuid.NullUUID{})
	if err != nil {
		t.Fatalf("empty Update: %v", err)
	}
	if same.Tagline != "Updated tagline" {
		t.Fatalf("no-op update changed row: %q", same.Tagline)
	}
}

func TestUpdateSettingsUnknownID(t *testing.T) {
	svc, _ := newTestSettingsService(t)
	createTestSettings(t, svc)

	name := "Renamed"
	if _, err := svc.Update(context.Background(), uuid.New(), UpdateSettingsInput{SiteName: &name}, uuid.NullUUID{}); !errors.Is(err, portal_errors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReplaceLogoDeletesPrevious(t *testing.T) {
	svc, store := newTestSettingsService(t)
	createTestSettings(t, svc)

	first := makeFileHeader(t, "logo", "logo-v1.png", "image/png", []byte("logo-1"))
	row, err := svc.ReplaceLogo(context.Background(), first, uuid.NullUUID{})
	if err != nil {
		t.Fatalf("ReplaceLogo: %v", err)
	}
	if !strings.HasPrefix(row.LogoURL, "/uploads/logos/") {
		t.Fatalf("logo URL = %q", row.LogoURL)
	}
	firstPath := store.PathForURL(row.LogoURL)
	if _, err := os.Stat(firstPath); err != nil {
		t.Fatalf("first logo missing on disk: %v", err)
	}

	second := makeFileHeader(t, "logo", "logo-v2.png", "image/png", []byte("logo-2"))
	row, err = svc.ReplaceLogo(context.Background(), second, uuid.NullUUID{})
	if err != nil {
		t.Fatalf("ReplaceLogo again: %v", err)
	}
	if store.PathForURL(row.LogoURL) == firstPath {
		t.Fatalf("logo URL did not change")
	}
	if _, err := os.Stat(firstPath); !os.IsNotExist(err) {
		t.Fatalf("superseded logo still on disk")
	}
	if _, err := os.Stat(store.PathForURL(row.LogoURL)); err != nil {
		t.Fatalf("new logo missing on disk: %v", err)
	}
}

func TestReplaceFaviconRejectsNonImage(t *testing.T) {
	svc, _ := newTestSettingsService(t)
	createTestSettings(t, svc)

	pdf := makeFileHeader(t, "favicon", "not-an-icon.pdf", "application/pdf", []byte("pdf"))
	if _, err := svc.ReplaceFavicon(context.Background(), pdf, uuid.NullUUID{}); !errors.Is(err, portal_errors.ErrUnsupportedType) {
		t.Fatalf("err = %v, want ErrUnsupportedType", err)
	}

	ico := makeFileHeader(t, "favicon", "site.ico", "image/x-icon", []byte("icon"))
	row, err := svc.ReplaceFavicon(context.Background(), ico, uuid.NullUUID{})
	if err != nil {
		t.Fatalf("ReplaceFavicon: %v", err)
	}
	if !strings.HasPrefix(row.FaviconURL, "/uploads/favicons/") {
		t.Fatalf("favicon URL = %q", row.FaviconURL)
	}
}

func TestReplaceAssetWithoutSettingsRow(t *testing.T) {
	svc, _ := newTestSettingsService(t)

	fh := makeFileHeader(t, "logo", "logo.png", "image/png", []byte("logo"))
	if _, err := svc.ReplaceLogo(context.Background(), fh, uuid.NullUUID{}); !errors.Is(err, portal_errors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetPublicInfoAbsoluteURLs(t *testing.T) {
	svc, _ := newTestSettingsService(t)
	createTestSettings(t, svc)

	fh := makeFileHeader(t, "logo", "logo.png", "image/png", []byte("logo"))
	if _, err := svc.ReplaceLogo(context.Background(), fh, uuid.NullUUID{}); err != nil {
		t.Fatalf("ReplaceLogo: %v", err)
	}

	info, err := svc.GetPublicInfo(context.Background(), "http://localhost:8080/")
	if err != nil {
		t.Fatalf("GetPublicInfo: %v", err)
	}
	if info.SiteName != "Daily Portal" {
		t.Fatalf("site name = %q", info.SiteName)
	}
	if !strings.HasPrefix(info.LogoURL, "http://localhost:8080/uploads/logos/") {
		t.Fatalf("logo URL = %q, want absolute", info.LogoURL)
	}
	if info.FaviconURL != "" {
		t.Fatalf("favicon URL = %q, want empty", info.FaviconURL)
	}
}
