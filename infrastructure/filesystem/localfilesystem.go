package filesystem

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStorage writes files into Dir; they are served back under URLPrefix.
type LocalStorage struct {
	Dir       string
	URLPrefix string
	now       func() time.Time
}

func NewLocalStorage(dir, urlPrefix string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &LocalStorage{Dir: dir, URLPrefix: urlPrefix, now: time.Now}, nil
}

func (l *LocalStorage) Store(ctx context.Context, field string, data []byte, originalName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// <unix millis>-<random><ext>, e.g. 1718000000000-1f3a9c2e.png
	ext := strings.ToLower(filepath.Ext(cleanName(originalName)))
	name := fmt.Sprintf("%d-%s%s", l.now().UnixMilli(), uuid.NewString()[:8], ext)

	dst := filepath.Join(l.Dir, name)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s file %s: %w", field, dst, err)
	}

	return path.Join("/", l.URLPrefix, name), nil
}
