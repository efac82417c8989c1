package upload

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"catalog-service/pkg/config"

	"go.uber.org/zap"
)

// ErrNoFiles is returned when an upload request carries no files
var ErrNoFiles = errors.New("no image files found in request")

var unsafeChars = regexp.MustCompile(`[^a-z0-9.]`)

// Ingestor persists uploaded files under a single directory and hands back
// their public paths. Filenames are sanitized and made unique within the
// directory so concurrent uploads never overwrite each other.
type Ingestor struct {
	dir          string
	publicPrefix string
	log          *zap.Logger
}

func NewIngestor(cfg *config.UploadConfig, log *zap.Logger) *Ingestor {
	return &Ingestor{
		dir:          cfg.Dir,
		publicPrefix: strings.TrimRight(cfg.PublicPrefix, "/"),
		log:          log,
	}
}

// Save writes every file to disk and returns the public paths in input
// order. An empty input fails the whole call.
func (i *Ingestor) Save(files []*multipart.FileHeader) ([]string, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	if err := os.MkdirAll(i.dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	paths := make([]string, 0, len(files))
	for _, fh := range files {
		name, err := i.uniqueName(fh.Filename)
		if err != nil {
			return nil, err
		}
		if err := i.write(fh, filepath.Join(i.dir, name)); err != nil {
			return nil, err
		}
		i.log.Info("stored uploaded file",
			zap.String("original", fh.Filename),
			zap.String("stored_as", name))
		paths = append(paths, i.publicPrefix+"/"+name)
	}
	return paths, nil
}

func (i *Ingestor) write(fh *multipart.FileHeader, dst string) error {
	src, err := fh.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// uniqueName builds a timestamped, sanitized filename that does not collide
// with anything already in the directory.
func (i *Ingestor) uniqueName(original string) (string, error) {
	base, ext := sanitizeFilename(original)
	stamp := time.Now().UnixMilli()

	for n := 0; ; n++ {
		name := fmt.Sprintf("%d-%s%s", stamp, base, ext)
		if n > 0 {
			name = fmt.Sprintf("%d-%s-%d%s", stamp, base, n, ext)
		}
		_, err := os.Stat(filepath.Join(i.dir, name))
		if os.IsNotExist(err) {
			return name, nil
		}
		if err != nil {
			return "", err
		}
	}
}

// sanitizeFilename lowercases the name, replaces anything outside [a-z0-9.]
// with underscores and truncates the base to 20 characters.
func sanitizeFilename(original string) (base, ext string) {
	if original == "" {
		original = "uploaded_file"
	}
	ext = strings.ToLower(filepath.Ext(original))
	base = strings.TrimSuffix(original, filepath.Ext(original))
	base = unsafeChars.ReplaceAllString(strings.ToLower(base), "_")
	if len(base) > 20 {
		base = base[:20]
	}
	if base == "" {
		base = "uploaded_file"
	}
	return base, ext
}
