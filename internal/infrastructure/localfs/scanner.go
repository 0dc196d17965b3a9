// Package localfs finds article submissions in a local folder.
package localfs

import (
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"NewsletterDesk/internal/article"
	"NewsletterDesk/internal/domain"
)

// Scanner lists a submissions folder grouped by department.
type Scanner struct {
	logger *slog.Logger
}

// NewScanner wires an optional logger.
func NewScanner(log *slog.Logger) *Scanner {
	return &Scanner{logger: log}
}

// Scan returns the submissions found in dir. A missing or unreadable folder
// yields an empty listing; entries are visited in filename order.
func (s *Scanner) Scan(dir string) *domain.Listing {
	listing := &domain.Listing{}
	if dir == "" {
		return listing
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		s.debug("submissions folder unavailable", "dir", dir, "error", err)
		return listing
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		name := entry.Name()
		key, ok := article.GroupKey(name)
		if !ok {
			continue
		}

		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}

		modified := info.ModTime()
		listing.Add(key, domain.SubmittedFile{
			Filename:  name,
			Path:      path,
			SizeKB:    roundKB(info.Size()),
			Modified:  &modified,
			Extension: strings.ToLower(filepath.Ext(name)),
		})
	}

	s.debug("scanned submissions folder", "dir", dir, "groups", listing.Len())
	return listing
}

func roundKB(size int64) float64 {
	return math.Round(float64(size)/1024*10) / 10
}

func (s *Scanner) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
