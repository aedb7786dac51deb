package storage

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// Size limits for the two upload profiles.
const (
	MaxProofSize   = 10 << 20 // 10MB
	MaxGallerySize = 15 << 20 // 15MB
)

// ErrFileTooLarge is returned when an upload exceeds its profile's limit.
type ErrFileTooLarge struct {
	Limit int64
}

func (e *ErrFileTooLarge) Error() string {
	return fmt.Sprintf("file size exceeds %dMB limit", e.Limit>>20)
}

// LocalStorageService writes uploads to local disk, one directory per
// upload profile, served statically under their public prefixes.
type LocalStorageService struct {
	proofDir   string
	galleryDir string
}

// NewLocalStorageService ensures both upload directories exist.
func NewLocalStorageService(proofDir, galleryDir string) (*LocalStorageService, error) {
	for _, dir := range []string{proofDir, galleryDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
		}
	}
	return &LocalStorageService{proofDir: proofDir, galleryDir: galleryDir}, nil
}

// unsafeChars matches everything stripped from original filenames.
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9.]`)

// uniqueName prepends a timestamp and random suffix to the sanitized
// original name so concurrent uploads never collide.
func uniqueName(original string) string {
	sanitized := unsafeChars.ReplaceAllString(filepath.Base(original), "_")
	return fmt.Sprintf("%d-%d-%s", time.Now().UnixMilli(), rand.Int63n(1_000_000_000), sanitized)
}

func (s *LocalStorageService) save(file *multipart.FileHeader, dir, publicPrefix string, limit int64) (string, error) {
	if file == nil {
		return "", fmt.Errorf("no file uploaded")
	}
	if file.Size > limit {
		return "", &ErrFileTooLarge{Limit: limit}
	}

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	name := uniqueName(file.Filename)
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	return publicPrefix + "/" + name, nil
}

// SavePaymentProof stores a proof-of-payment image.
func (s *LocalStorageService) SavePaymentProof(file *multipart.FileHeader) (string, error) {
	return s.save(file, s.proofDir, "/POP", MaxProofSize)
}

// SaveGalleryImage stores a gallery image.
func (s *LocalStorageService) SaveGalleryImage(file *multipart.FileHeader) (string, error) {
	return s.save(file, s.galleryDir, "/gallery-uploads", MaxGallerySize)
}
