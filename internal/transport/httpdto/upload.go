package httpdto

import (
	"time"

	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/upload"
)

// UploadDTO represents an upload record in API responses
type UploadDTO struct {
	ID            string `json:"id"`
	Filename      string `json:"filename"`
	OriginalName  string `json:"original_name"`
	MimeType      string `json:"mime_type"`
	SizeBytes     int64  `json:"size_bytes"`
	SizeFormatted string `json:"size_formatted"`
	URL           string `json:"url"`
	Category      string `json:"category"`
	UploadedBy    string `json:"uploaded_by,omitempty"`
	FieldName     string `json:"field_name,omitempty"`
	UploadedAt    string `json:"uploaded_at"`
}

// FromUploadRecord converts a domain upload record to UploadDTO
func FromUploadRecord(rec upload.UploadRecord) UploadDTO {
	dto := UploadDTO{
		ID:            rec.ID.String(),
		Filename:      rec.Filename,
		OriginalName:  rec.OriginalName,
		MimeType:      rec.MimeType,
		SizeBytes:     rec.SizeBytes,
		SizeFormatted: rec.SizeFormatted,
		URL:           rec.URL,
		Category:      string(rec.Category),
		UploadedAt:    rec.UploadedAt.Format(time.RFC3339),
	}
	if rec.UploadedBy.Valid {
		dto.UploadedBy = rec.UploadedBy.UUID.String()
	}
	if rec.FieldName.Valid {
		dto.FieldName = rec.FieldName.String
	}
	return dto
}

// FromUploadRecordSlice converts a slice of domain upload records
func FromUploadRecordSlice(records []upload.UploadRecord) []UploadDTO {
	dtos := make([]UploadDTO, len(records))
	for i, rec := range records {
		dtos[i] = FromUploadRecord(rec)
	}
	return dtos
}
