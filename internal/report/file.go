package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/careerfit/internal/session"
)

// Extension returns the file extension used when saving a report.
func (f Format) Extension() string {
	switch f {
	case FormatMarkdown:
		return ".md"
	case FormatJSON:
		return ".json"
	default:
		return ".txt"
	}
}

// FileName returns the report file name for a session. Sessions without an
// ID (batch scoring) share a fixed name.
func FileName(sessionID string, f Format) string {
	name := "careerfit-report"
	if len(sessionID) >= 8 {
		name += "-" + sessionID[:8]
	} else if sessionID != "" {
		name += "-" + sessionID
	}
	return name + f.Extension()
}

// WriteFile renders s into dir and returns the path written.
func WriteFile(dir string, s *session.Summary, f Format) (string, error) {
	if s == nil {
		return "", fmt.Errorf("write report: no summary")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	path := filepath.Join(dir, FileName(s.SessionID, f))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report: %w", err)
	}

	if err := Render(file, s, f); err != nil {
		file.Close()
		os.Remove(path)
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close report: %w", err)
	}
	return path, nil
}
