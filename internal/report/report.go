package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Report is one summarized video, or the reason it could not be summarized.
type Report struct {
	VideoID     string
	URL         string
	Summary     string
	Error       string
	GeneratedAt time.Time
}

// Title is the heading used in both output formats.
func (r Report) Title() string {
	if r.VideoID == "" {
		return "Video summary"
	}
	return "Video summary: " + r.VideoID
}

// Markdown renders r the way it is written to disk.
func Markdown(r Report) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", r.Title())
	if r.URL != "" {
		fmt.Fprintf(&sb, "- **Source:** %s\n", r.URL)
	}
	fmt.Fprintf(&sb, "- **Generated:** %s\n\n", r.GeneratedAt.Format("2006-01-02 15:04"))

	if r.Error != "" {
		fmt.Fprintf(&sb, "## Failed\n\n%s\n", strings.TrimSpace(r.Error))
		return sb.String()
	}
	fmt.Fprintf(&sb, "## Summary\n\n%s\n", strings.TrimSpace(r.Summary))
	return sb.String()
}

// WriteMarkdown writes r to path, creating parent directories.
func WriteMarkdown(path string, r Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(Markdown(r)), 0644); err != nil {
		return fmt.Errorf("write markdown report: %w", err)
	}
	return nil
}

// WriteDocx writes r to path as a Word document.
func WriteDocx(path string, r Report) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	body := strings.TrimPrefix(Markdown(r), "# "+r.Title()+"\n")
	if err := markdownToDocx(r.Title(), body, path); err != nil {
		return fmt.Errorf("write docx report: %w", err)
	}
	return nil
}
