package media

import (
	"context"
	"fmt"
	"log"
	"math"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxFileSize is the upload ceiling enforced before any blob write.
const MaxFileSize = 100 * 1024 * 1024 // 100 MB

const recentActivityLimit = 10

// allowedExtensions is the accepted set of media types, matched on the
// filename extension, case-insensitive.
var allowedExtensions = map[string]bool{
	"jpg":  true,
	"jpeg": true,
	"png":  true,
	"gif":  true,
	"mp4":  true,
	"mp3":  true,
	"wav":  true,
}

type notifier interface {
	Add(ctx context.Context, email, title, message string)
}

type Service struct {
	repo   Repository
	blobs  BlobStore
	notify notifier
}

func NewService(repo Repository, blobs BlobStore, notify notifier) *Service {
	return &Service{repo: repo, blobs: blobs, notify: notify}
}

// Upload validates, stores and records one file for the given identity.
// The extension check runs before the blob store is touched.
func (s *Service) Upload(ctx context.Context, email string, fileHeader *multipart.FileHeader, tagsCSV string) (*Media, error) {
	if fileHeader == nil || strings.TrimSpace(fileHeader.Filename) == "" {
		return nil, ErrNoFile
	}
	if fileHeader.Size > MaxFileSize {
		return nil, ErrFileTooLarge
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileHeader.Filename), "."))
	if ext == "" || !allowedExtensions[ext] {
		return nil, ErrTypeNotSupported
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	id := uuid.New().String()
	storedName := id + "_" + sanitizeFilename(fileHeader.Filename)

	written, err := s.blobs.Save(ctx, storedName, file)
	if err != nil {
		return nil, fmt.Errorf("file save error: %w", err)
	}

	m := &Media{
		ID:         id,
		Email:      email,
		Filename:   fileHeader.Filename,
		StoredName: storedName,
		Type:       ext,
		SizeKB:     math.Round(float64(written)/1024*100) / 100,
		Status:     StatusCompleted,
		Tags:       parseTags(tagsCSV),
		UploadedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, m); err != nil {
		// keep the blob store and the record store in step
		if rmErr := s.blobs.Remove(ctx, storedName); rmErr != nil {
			log.Printf("blob rollback failed: name=%s err=%v", storedName, rmErr)
		}
		return nil, fmt.Errorf("failed to save media record: %w", err)
	}

	s.notify.Add(ctx, email, "Upload Completed", fmt.Sprintf("%s uploaded successfully!", m.Filename))
	return m, nil
}

// List returns all media owned by the identity.
func (s *Service) List(ctx context.Context, email string) ([]*Media, error) {
	return s.repo.ListByOwner(ctx, email)
}

// Detail returns one owned media record with its placeholder analysis.
func (s *Service) Detail(ctx context.Context, email, id string) (*Media, Analysis, error) {
	m, err := s.repo.GetByOwnerAndID(ctx, email, id)
	if err != nil {
		return nil, Analysis{}, err
	}
	return m, placeholderAnalysis(), nil
}

// Delete removes the record and, best-effort, the blob. A blob that cannot
// be removed is logged and orphaned: an orphan is less harmful than a record
// the user cannot delete.
func (s *Service) Delete(ctx context.Context, email, id string) error {
	m, err := s.repo.GetByOwnerAndID(ctx, email, id)
	if err != nil {
		return err
	}

	if err := s.blobs.Remove(ctx, m.StoredName); err != nil {
		log.Printf("blob delete failed (record will still be removed): name=%s err=%v", m.StoredName, err)
	}

	if err := s.repo.Delete(ctx, email, id); err != nil {
		return err
	}

	s.notify.Add(ctx, email, "Media Deleted", fmt.Sprintf("%s deleted successfully.", m.Filename))
	return nil
}

// Stats returns status counts for the dashboard.
func (s *Service) Stats(ctx context.Context, email string) (*Stats, error) {
	return s.repo.StatsByOwner(ctx, email)
}

// RecentActivity returns the newest uploads, capped at ten.
func (s *Service) RecentActivity(ctx context.Context, email string) ([]*Media, error) {
	return s.repo.RecentByOwner(ctx, email, recentActivityLimit)
}

// sanitizeFilename strips path components and unsafe characters, keeping the
// extension. The result is only ever used prefixed with a fresh uuid.
func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)

	stem = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '_'
	}, stem)
	if len(stem) > 40 {
		stem = stem[:40]
	}
	if stem == "" {
		stem = "file"
	}

	return stem + strings.ToLower(ext)
}

func parseTags(csv string) TagList {
	tags := TagList{}
	for _, t := range strings.Split(csv, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
