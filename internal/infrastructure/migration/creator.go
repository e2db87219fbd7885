package migration

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

var nameSanitizer = regexp.MustCompile(`[^a-z0-9_]+`)

// Create writes an empty up/down migration pair named after the given
// description and returns the two file paths.
func Create(dir, name string) (string, string, error) {
	slug := nameSanitizer.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		return "", "", fmt.Errorf("empty migration name")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", fmt.Errorf("create migrations dir: %w", err)
	}

	version := time.Now().UTC().Format("20060102150405")
	up := filepath.Join(dir, fmt.Sprintf("%s_%s.up.sql", version, slug))
	down := filepath.Join(dir, fmt.Sprintf("%s_%s.down.sql", version, slug))

	for _, path := range []string{up, down} {
		if err := os.WriteFile(path, []byte("-- "+slug+"\n"), 0o644); err != nil {
			return "", "", fmt.Errorf("write %s: %w", path, err)
		}
	}
	return up, down, nil
}
