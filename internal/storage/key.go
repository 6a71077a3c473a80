package storage

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewKey returns a unique object key for an upload, keeping the original
// file extension.
func NewKey(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)
}
