package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nguyentantai21042004/tube-digest/internal/processor"
)

// Run shows the form until the user quits or ctx is canceled.
func Run(ctx context.Context, proc processor.Processor) error {
	p := tea.NewProgram(New(ctx, proc), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
