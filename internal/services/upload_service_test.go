package services

import (
	"context"
	"errors"
	"io/fs"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"github.com/moshiurrahmandeap11/server-news-portal/internal/domain/upload"
	"github.com/moshiurrahmandeap11/server-news-portal/internal/storage"
	portal_errors "github.com/moshiurrahmandeap11/server-news-portal/pkg/errors"

	"github.com/google/uuid"
)

func TestStoreSingleCreatesRecord(t *testing.T) {
	svc, _ := newTestUploadService(t)

	uploader := uuid.NullUUID{UUID: uuid.New(), Valid: true}
	fh := makeFileHeader(t, "file", "report.pdf", "application/pdf", []byte("pdf-bytes"))

	rec, err := svc.StoreSingle(context.Background(), fh, uploader)
	if err != nil {
		t.Fatalf("StoreSingle: %v", err)
	}
	if rec.Category != upload.CategoryDocument {
		t.Fatalf("category = %q, want %q", rec.Category, upload.CategoryDocument)
	}
	if rec.UploadedBy != uploader {
		t.Fatalf("uploadedBy = %+v", rec.UploadedBy)
	}
	if rec.FieldName.Valid {
		t.Fatalf("field name set for single upload: %+v", rec.FieldName)
	}
	if _, err := os.Stat(rec.Path); err != nil {
		t.Fatalf("file missing on disk: %v", err)
	}

	got, err := svc.GetByID(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Filename != rec.Filename {
		t.Fatalf("filename mismatch: %q vs %q", got.Filename, rec.Filename)
	}
}

func TestStoreSingleOversizeLeavesNothing(t *testing.T) {
	svc, store := newTestUploadService(t)

	fh := makeFileHeader(t, "file", "huge.png", "image/png", []byte("img"))
	fh.Size = storage.MaxUploadBytes + 1

	if _, err := svc.StoreSingle(context.Background(), fh, uuid.NullUUID{}); !errors.Is(err, portal_errors.ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalFiles != 0 {
		t.Fatalf("row created for a rejected upload, total = %d", stats.TotalFiles)
	}

	count := 0
	err = filepath.WalkDir(store.Root(), func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk upload root: %v", err)
	}
	if count != 0 {
		t.Fatalf("%d files left behind for a rejected upload", count)
	}
}

func TestStoreMultipleLimits(t *testing.T) {
	svc, _ := newTestUploadService(t)

	if _, err := svc.StoreMultiple(context.Background(), nil, uuid.NullUUID{}); !errors.Is(err, portal_errors.ErrNoFile) {
		t.Fatalf("empty batch err = %v, want ErrNoFile", err)
	}

	over := make([]*multipart.FileHeader, MaxMultipleFiles+1)
	for i := range over {
		over[i] = makeFileHeader(t, "file", "a.txt", "text/plain", []byte("x"))
	}
	if _, err := svc.StoreMultiple(context.Background(), over, uuid.NullUUID{}); !errors.Is(err, portal_errors.ErrInvalidInput) {
		t.Fatalf("oversized batch err = %v, want ErrInvalidInput", err)
	}

	fhs := []*multipart.FileHeader{
		makeFileHeader(t, "file", "a.png", "image/png", []byte("img")),
		makeFileHeader(t, "file", "b.mp4", "video/mp4", []byte("vid")),
	}
	records, err := svc.StoreMultiple(context.Background(), fhs, uuid.NullUUID{})
	if err != nil {
		t.Fatalf("StoreMultiple: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("stored %d records, want 2", len(records))
	}
}

func TestStoreMixedRecordsFieldName(t *testing.T) {
	svc, _ := newTestUploadService(t)

	form := map[string][]*multipart.FileHeader{
		"avatar":    {makeFileHeader(t, "avatar", "me.png", "image/png", []byte("img"))},
		"documents": {makeFileHeader(t, "documents", "cv.pdf", "application/pdf", []byte("pdf"))},
		"ignored":   {makeFileHeader(t, "ignored", "x.png", "image/png", []byte("img"))},
	}

	records, err := svc.StoreMixed(context.Background(), form, uuid.NullUUID{})
	if err != nil {
		t.Fatalf("StoreMixed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("stored %d records, want 2 (unknown fields skipped)", len(records))
	}
	fields := map[string]bool{}
	for _, rec := range records {
		if !rec.FieldName.Valid {
			t.Fatalf("field name missing on %q", rec.OriginalName)
		}
		fields[rec.FieldName.String] = true
	}
	if !fields["avatar"] || !fields["documents"] {
		t.Fatalf("field names = %v", fields)
	}

	if _, err := svc.StoreMixed(context.Background(), map[string][]*multipart.FileHeader{}, uuid.NullUUID{}); !errors.Is(err, portal_errors.ErrNoFile) {
		t.Fatalf("empty form err = %v, want ErrNoFile", err)
	}
}

func TestNormalizePaging(t *testing.T) {
	cases := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{1, 20, 1, 20},
		{2, 50, 2, 50},
		{0, 0, 1, 20},
		{-5, -1, 1, 20},
		{1, 100, 1, 100},
		{1, 101, 1, 100},
		{3, 500, 3, 100},
	}
	for _, tc := range cases {
		page, limit := NormalizePaging(tc.page, tc.limit)
		if page != tc.wantPage || limit != tc.wantLimit {
			t.Fatalf("NormalizePaging(%d, %d) = (%d, %d), want (%d, %d)",
				tc.page, tc.limit, page, limit, tc.wantPage, tc.wantLimit)
		}
	}
}

func TestListPaginationAndFilter(t *testing.T) {
	svc, _ := newTestUploadService(t)

	for i := 0; i < 3; i++ {
		fh := makeFileHeader(t, "file", "pic.png", "image/png", []byte("img"))
		if _, err := svc.StoreSingle(context.Background(), fh, uuid.NullUUID{}); err != nil {
			t.Fatalf("StoreSingle: %v", err)
		}
	}
	fh := makeFileHeader(t, "file", "clip.mp4", "video/mp4", []byte("vid"))
	if _, err := svc.StoreSingle(context.Background(), fh, uuid.NullUUID{}); err != nil {
		t.Fatalf("StoreSingle: %v", err)
	}

	records, total, err := svc.List(context.Background(), "", 1, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 4 {
		t.Fatalf("total = %d, want 4", total)
	}
	if len(records) != 2 {
		t.Fatalf("page size = %d, want 2", len(records))
	}

	images, total, err := svc.List(context.Background(), "image", 1, 10)
	if err != nil {
		t.Fatalf("List images: %v", err)
	}
	if total != 3 || len(images) != 3 {
		t.Fatalf("image filter: total=%d len=%d, want 3/3", total, len(images))
	}

	if _, _, err := svc.List(context.Background(), "bogus", 1, 10); !errors.Is(err, portal_errors.ErrInvalidInput) {
		t.Fatalf("bogus category err = %v, want ErrInvalidInput", err)
	}

	// Out-of-range paging values fall back to defaults instead of failing.
	if _, _, err := svc.List(context.Background(), "", -5, 0); err != nil {
		t.Fatalf("List with bad paging: %v", err)
	}
}

func TestDeleteRemovesRowAndFile(t *testing.T) {
	svc, _ := newTestUploadService(t)

	fh := makeFileHeader(t, "file", "gone.png", "image/png", []byte("img"))
	rec, err := svc.StoreSingle(context.Background(), fh, uuid.NullUUID{})
	if err != nil {
		t.Fatalf("StoreSingle: %v", err)
	}

	if err := svc.Delete(context.Background(), rec.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(rec.Path); !os.IsNotExist(err) {
		t.Fatalf("file still on disk after delete")
	}
	if _, err := svc.GetByID(context.Background(), rec.ID); !errors.Is(err, portal_errors.ErrNotFound) {
		t.Fatalf("GetByID after delete err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(context.Background(), rec.ID); !errors.Is(err, portal_errors.ErrNotFound) {
		t.Fatalf("second Delete err = %v, want ErrNotFound", err)
	}
}

func TestDeleteSurvivesMissingFile(t *testing.T) {
	svc, _ := newTestUploadService(t)

	fh := makeFileHeader(t, "file", "lost.png", "image/png", []byte("img"))
	rec, err := svc.StoreSingle(context.Background(), fh, uuid.NullUUID{})
	if err != nil {
		t.Fatalf("StoreSingle: %v", err)
	}
	if err := os.Remove(rec.Path); err != nil {
		t.Fatalf("remove backing file: %v", err)
	}

	if err := svc.Delete(context.Background(), rec.ID); err != nil {
		t.Fatalf("Delete with missing file: %v", err)
	}
}

func TestStatsAggregates(t *testing.T) {
	svc, _ := newTestUploadService(t)

	empty, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if empty.TotalFiles != 0 || empty.TotalSizeBytes != 0 {
		t.Fatalf("empty stats = %+v", empty)
	}
	for _, c := range upload.Categories {
		if _, ok := empty.ByCategory[c]; !ok {
			t.Fatalf("category %q missing from empty stats", c)
		}
	}

	files := []struct {
		name, mime string
		content    []byte
	}{
		{"a.png", "image/png", []byte("img-1")},
		{"b.png", "image/png", []byte("img-22")},
		{"c.pdf", "application/pdf", []byte("pdf-333")},
	}
	var wantSize int64
	for _, f := range files {
		fh := makeFileHeader(t, "file", f.name, f.mime, f.content)
		if _, err := svc.StoreSingle(context.Background(), fh, uuid.NullUUID{}); err != nil {
			t.Fatalf("StoreSingle(%s): %v", f.name, err)
		}
		wantSize += int64(len(f.content))
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalFiles != 3 {
		t.Fatalf("total files = %d, want 3", stats.TotalFiles)
	}
	if stats.ByCategory[upload.CategoryImage] != 2 || stats.ByCategory[upload.CategoryDocument] != 1 {
		t.Fatalf("by category = %v", stats.ByCategory)
	}
	if stats.ByCategory[upload.CategoryVideo] != 0 {
		t.Fatalf("video count = %d, want 0", stats.ByCategory[upload.CategoryVideo])
	}
	if stats.TotalSizeBytes != wantSize {
		t.Fatalf("total size = %d, want %d", stats.TotalSizeBytes, wantSize)
	}
}
