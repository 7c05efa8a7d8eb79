package filesystem

import (
	"context"
	"path/filepath"
	"strings"
)

// Storage persists an uploaded file and returns the URL it can be fetched from.
// field is the form field the file arrived in (screenshot, webcam).
type Storage interface {
	Store(ctx context.Context, field string, data []byte, originalName string) (string, error)
}

// cleanName strips any directory part a client may have sent with the file name.
func cleanName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	return name
}
