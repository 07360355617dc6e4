package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"sync/atomic"
	"testing"

	"github.com/moshiurrahmandeap11/server-news-portal/config"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/settings"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/upload"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/user"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/repository"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/storage"
	"github.com/moshiurrahmandeap11/server-news-portal/pkg/logger"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var testDBSeq int64

// setupTestDB opens a unique in-memory SQLite database and migrates the
// full schema into it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:portal_test_%d?mode=memory&cache=shared", seq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(&user.User{}, &upload.UploadRecord{}, &settings.BasicSettings{}); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		AppMode:      logger.DevelopmentMode,
		JWTSecret:    "test-secret",
		JWTExpiryMin: 60,
	}
}

func newTestStorage(t *testing.T) *storage.Manager {
	t.Helper()
	m, err := storage.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	if err := m.EnsureDirs(); err != nil {
		t.Fatalf("EnsureDirs: %v", err)
	}
	return m
}

func newTestUserService(t *testing.T) *UserService {
	t.Helper()
	db := setupTestDB(t)
	auth := NewAuthService(testConfig())
	return NewUserService(repository.NewUserRepository(db), auth)
}

func newTestUploadService(t *testing.T) (*UploadService, *storage.Manager) {
	t.Helper()
	db := setupTestDB(t)
	store := newTestStorage(t)
	svc := NewUploadService(repository.NewUploadRepository(db), store, logger.New(logger.DevelopmentMode))
	return svc, store
}

func newTestSettingsService(t *testing.T) (*SettingsService, *storage.Manager) {
	t.Helper()
	db := setupTestDB(t)
	store := newTestStorage(t)
	svc := NewSettingsService(repository.NewSettingsRepository(db), store, logger.New(logger.DevelopmentMode))
	return svc, store
}

// makeFileHeader builds a real multipart.FileHeader by round-tripping the
// content through a parsed multipart request.
func makeFileHeader(t *testing.T, field, filename, mimeType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, filename))
	h.Set("Content-Type", mimeType)
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatalf("CreatePart: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest("POST", "http://example/upload", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(int64(len(content)) + 1024); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}

	fhs := req.MultipartForm.File[field]
	if len(fhs) != 1 {
		t.Fatalf("expected 1 file header, got %d", len(fhs))
	}
	return fhs[0]
}
