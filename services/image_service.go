package services

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ImageService persists inline base64 images under a configured directory
// and hands back the generated file name for storage on the record.
type ImageService struct {
	Dir string
}

func NewImageService(dir string) *ImageService {
	return &ImageService{Dir: dir}
}

// IsInlineImage reports whether an image entry is a data-URI payload rather
// than an already-stored file reference.
func IsInlineImage(image string) bool {
	return strings.HasPrefix(image, "data:image")
}

func (s *ImageService) SaveBase64Image(b64 string, actorID uint) (string, error) {
	if idx := strings.Index(b64, "base64,"); idx >= 0 {
		b64 = b64[idx+7:]
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", fmt.Errorf("decode base64: %w", err)
	}

	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return "", fmt.Errorf("mkdir image dir: %w", err)
	}

	fileName := fmt.Sprintf("%s_%d_%s.png",
		time.Now().UTC().Format("20060102_150405"), actorID, uuid.NewString()[:8])

	if err := os.WriteFile(filepath.Join(s.Dir, fileName), data, 0644); err != nil {
		return "", fmt.Errorf("write image file: %w", err)
	}

	return fileName, nil
}
