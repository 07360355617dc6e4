package storage

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/upload"
	portal_errors "github.com/moshiurrahmandeap11/server-news-portal/pkg/errors"

	"github.com/google/uuid"
)

// Size ceilings. Fixed constants, not externally configurable.
const (
	MaxUploadBytes  int64 = 100 << 20 // 100 MB for generic uploads
	MaxLogoBytes    int64 = 2 << 20   // 2 MB
	MaxFaviconBytes int64 = 1 << 20   // 1 MB

	maxBaseNameLen = 50
)

// AssetKind identifies a settings asset slot.
type AssetKind string

const (
	AssetLogo    AssetKind = "logo"
	AssetFavicon AssetKind = "favicon"
)

// categoryDirs maps each category to its subdirectory under the root.
var categoryDirs = map[upload.Category]string{
	upload.CategoryImage:    "images",
	upload.CategoryVideo:    "videos",
	upload.CategoryDocument: "documents",
	upload.CategoryOther:    "others",
}

var assetDirs = map[AssetKind]string{
	AssetLogo:    "logos",
	AssetFavicon: "favicons",
}

var assetLimits = map[AssetKind]int64{
	AssetLogo:    MaxLogoBytes,
	AssetFavicon: MaxFaviconBytes,
}

// StoredFile describes a file the manager has written to disk.
type StoredFile struct {
	Filename      string
	OriginalName  string
	MimeType      string
	SizeBytes     int64
	SizeFormatted string
	Path          string
	URL           string
	Category      upload.Category
}

// Manager classifies incoming files, enforces size/type limits and places
// accepted files under the root upload directory.
type Manager struct {
	root string
}

func NewManager(root string) (*Manager, error) {
	if root == "" {
		return nil, errors.New("upload root directory is required")
	}
	return &Manager{root: root}, nil
}

func (m *Manager) Root() string {
	return m.root
}

// EnsureDirs creates the per-category and asset subdirectories. Called once
// during service bootstrap.
func (m *Manager) EnsureDirs() error {
	for _, dir := range categoryDirs {
		if err := os.MkdirAll(filepath.Join(m.root, dir), 0o755); err != nil {
			return fmt.Errorf("failed to create upload directory %s: %w", dir, err)
		}
	}
	for _, dir := range assetDirs {
		if err := os.MkdirAll(filepath.Join(m.root, dir), 0o755); err != nil {
			return fmt.Errorf("failed to create asset directory %s: %w", dir, err)
		}
	}
	return nil
}

// SaveUpload validates and stores one generic multipart file. The type and
// size checks run before any bytes are committed to final storage.
func (m *Manager) SaveUpload(fh *multipart.FileHeader) (StoredFile, error) {
	if fh == nil {
		return StoredFile{}, portal_errors.ErrNoFile
	}
	if fh.Size > MaxUploadBytes {
		return StoredFile{}, fmt.Errorf("%w: max %s exceeded", portal_errors.ErrTooLarge, FormatSize(MaxUploadBytes))
	}

	mimeType := fh.Header.Get("Content-Type")
	category, ok := Classify(mimeType)
	if !ok {
		return StoredFile{}, fmt.Errorf("%w: %s", portal_errors.ErrUnsupportedType, mimeType)
	}

	filename := BuildFilename(fh.Filename)
	dir := categoryDirs[category]
	dst := filepath.Join(m.root, dir, filename)

	if err := m.write(fh, dst); err != nil {
		return StoredFile{}, err
	}

	return StoredFile{
		Filename:      filename,
		OriginalName:  fh.Filename,
		MimeType:      mimeType,
		SizeBytes:     fh.Size,
		SizeFormatted: FormatSize(fh.Size),
		Path:          dst,
		URL:           "/uploads/" + dir + "/" + filename,
		Category:      category,
	}, nil
}

// SaveAsset validates and stores a settings asset (logo or favicon) with
// the tighter size ceiling and image/icon-only type restriction.
func (m *Manager) SaveAsset(kind AssetKind, fh *multipart.FileHeader) (StoredFile, error) {
	if fh == nil {
		return StoredFile{}, portal_errors.ErrNoFile
	}
	limit, ok := assetLimits[kind]
	if !ok {
		return StoredFile{}, fmt.Errorf("unknown asset kind %q", kind)
	}
	if fh.Size > limit {
		return StoredFile{}, fmt.Errorf("%w: max %s exceeded", portal_errors.ErrTooLarge, FormatSize(limit))
	}

	mimeType := fh.Header.Get("Content-Type")
	if !AllowedAsset(mimeType) {
		return StoredFile{}, fmt.Errorf("%w: %s", portal_errors.ErrUnsupportedType, mimeType)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	filename := fmt.Sprintf("%s-%s%s", kind, uuid.New().String(), ext)
	dir := assetDirs[kind]
	dst := filepath.Join(m.root, dir, filename)

	if err := m.write(fh, dst); err != nil {
		return StoredFile{}, err
	}

	return StoredFile{
		Filename:      filename,
		OriginalName:  fh.Filename,
		MimeType:      mimeType,
		SizeBytes:     fh.Size,
		SizeFormatted: FormatSize(fh.Size),
		Path:          dst,
		URL:           "/uploads/" + dir + "/" + filename,
		Category:      upload.CategoryImage,
	}, nil
}

// Remove deletes a stored file. A missing file is not an error.
func (m *Manager) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// PathForURL resolves a public /uploads URL back to its on-disk path.
// Returns an empty string for URLs outside the upload root.
func (m *Manager) PathForURL(url string) string {
	rel, ok := strings.CutPrefix(url, "/uploads/")
	if !ok || rel == "" {
		return ""
	}
	rel = filepath.Clean(rel)
	if rel == "." || strings.HasPrefix(rel, "..") {
		return ""
	}
	return filepath.Join(m.root, rel)
}

func (m *Manager) write(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}
	return nil
}

// BuildFilename derives a collision-resistant destination name from an
// untrusted original name: millisecond timestamp, random UUID and the
// sanitized base name truncated to 50 characters, keeping the extension.
func BuildFilename(originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	base := strings.TrimSuffix(filepath.Base(originalName), filepath.Ext(originalName))
	base = sanitizeName(base)
	if len(base) > maxBaseNameLen {
		base = base[:maxBaseNameLen]
	}
	return fmt.Sprintf("%d-%s-%s%s", time.Now().UnixMilli(), uuid.New().String(), base, ext)
}

// sanitizeName strips every non-alphanumeric character, which also makes
// path traversal from user-controlled names impossible.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatSize renders a byte count as a human readable string.
func FormatSize(size int64) string {
	const unit = 1024
	if size < unit {
		return fmt.Sprintf("%d B", size)
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(size)/float64(div), "KMGTPE"[exp])
}
