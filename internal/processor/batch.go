package processor

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/tube-digest/internal/report"
)

// Process implements Processor.
func (p *implProcessor) Process(ctx context.Context, listPath string) error {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Processing URL list: %s", listPath)
	p.logger.Info(ctx, "========================================")

	urls, err := readURLList(listPath)
	if err != nil {
		return fmt.Errorf("read URL list: %w", err)
	}
	if len(urls) == 0 {
		p.logger.Warn(ctx, "No URLs in %s", listPath)
	}

	successCount := 0
	failCount := 0

	for i, rawURL := range urls {
		p.logger.Info(ctx, "[%d/%d] %s", i+1, len(urls), rawURL)

		res, err := p.Summarize(ctx, rawURL)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			failCount++
			p.logger.Error(ctx, "[%d/%d] %s", i+1, len(urls), Message(err))
		} else {
			successCount++
		}

		if err := p.writeReports(ctx, rawURL, res, err); err != nil {
			p.logger.Warn(ctx, "Failed to write report for %s: %v", rawURL, err)
		}
	}

	if err := p.moveToArchived(ctx, listPath); err != nil {
		p.logger.Warn(ctx, "Failed to move list to archived folder: %v", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "List complete: %d success, %d failed", successCount, failCount)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime).Round(time.Millisecond))
	p.logger.Info(ctx, "========================================")

	return nil
}

// writeReports stores the outcome of one URL under paths.output.
// URLs without a video ID have nothing to name the report after and are only logged.
func (p *implProcessor) writeReports(ctx context.Context, rawURL string, res *Result, runErr error) error {
	r := report.Report{
		URL:         rawURL,
		GeneratedAt: time.Now(),
	}
	if runErr != nil {
		var pe *Error
		if !errors.As(runErr, &pe) || pe.VideoID == "" {
			return nil
		}
		r.VideoID = pe.VideoID
		r.Error = Message(runErr)
	} else {
		r.VideoID = res.VideoID
		r.Summary = res.Summary
	}

	mdPath := filepath.Join(p.cfg.Paths.Output, r.VideoID+".md")
	if err := report.WriteMarkdown(mdPath, r); err != nil {
		return err
	}
	p.logger.Info(ctx, "[DONE] %s -> %s", r.VideoID, mdPath)

	if p.cfg.Output.Docx {
		docxPath := filepath.Join(p.cfg.Paths.Output, r.VideoID+".docx")
		if err := report.WriteDocx(docxPath, r); err != nil {
			return err
		}
		p.logger.Info(ctx, "[DONE] %s -> %s", r.VideoID, docxPath)
	}
	return nil
}

// readURLList returns the non-blank, non-comment lines of path.
func readURLList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, scanner.Err()
}
