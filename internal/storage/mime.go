package storage

import "github.com/moshiurrahmandeap11/server-news-portal/internal/domain/upload"

// mimeTable is the fixed allow-list mapping each accepted MIME type to its
// category. Anything not present here is rejected before bytes reach final
// storage.
var mimeTable = map[string]upload.Category{
	"image/jpeg":    upload.CategoryImage,
	"image/jpg":     upload.CategoryImage,
	"image/png":     upload.CategoryImage,
	"image/gif":     upload.CategoryImage,
	"image/webp":    upload.CategoryImage,
	"image/svg+xml": upload.CategoryImage,

	"video/mp4":       upload.CategoryVideo,
	"video/mpeg":      upload.CategoryVideo,
	"video/quicktime": upload.CategoryVideo,
	"video/x-msvideo": upload.CategoryVideo,
	"video/webm":      upload.CategoryVideo,

	"application/pdf":    upload.CategoryDocument,
	"application/msword": upload.CategoryDocument,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": upload.CategoryDocument,
	"application/vnd.ms-excel": upload.CategoryDocument,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": upload.CategoryDocument,
	"text/plain": upload.CategoryDocument,
	"text/csv":   upload.CategoryDocument,

	"application/zip":              upload.CategoryOther,
	"application/x-zip-compressed": upload.CategoryOther,
	"application/octet-stream":     upload.CategoryOther,
}

// iconMimeTypes are the MIME types accepted for settings assets (logo and
// favicon) on top of the regular image types.
var iconMimeTypes = map[string]bool{
	"image/x-icon":             true,
	"image/vnd.microsoft.icon": true,
}

// Classify returns the category for a MIME type, or false when the type is
// not on the allow-list.
func Classify(mimeType string) (upload.Category, bool) {
	category, ok := mimeTable[mimeType]
	return category, ok
}

// Allowed reports whether a MIME type is accepted for generic uploads.
func Allowed(mimeType string) bool {
	_, ok := mimeTable[mimeType]
	return ok
}

// AllowedAsset reports whether a MIME type is accepted for a settings asset
// (logo/favicon): images and icon types only.
func AllowedAsset(mimeType string) bool {
	if iconMimeTypes[mimeType] {
		return true
	}
	return mimeTable[mimeType] == upload.CategoryImage
}
