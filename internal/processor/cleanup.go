package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// moveToArchived moves a processed list file into the archived folder.
// An existing file of the same name is kept; the new one gets a timestamp suffix.
func (p *implProcessor) moveToArchived(ctx context.Context, listPath string) error {
	if err := os.MkdirAll(p.cfg.Paths.Archived, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	filename := filepath.Base(listPath)
	destPath := filepath.Join(p.cfg.Paths.Archived, filename)
	if _, err := os.Stat(destPath); err == nil {
		ext := filepath.Ext(filename)
		stem := strings.TrimSuffix(filename, ext)
		destPath = filepath.Join(p.cfg.Paths.Archived, fmt.Sprintf("%s-%s%s", stem, time.Now().Format("20060102-150405"), ext))
	}

	p.logger.Info(ctx, "Moving to archived folder: %s -> %s", listPath, destPath)

	if err := os.Rename(listPath, destPath); err != nil {
		return fmt.Errorf("move to archived: %w", err)
	}
	return nil
}
