package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/soufianesaid-dot/Gymtrackerr/internal/engine"
)

type Options struct {
	// BackupDir receives exported backups.
	BackupDir string
	// Location is the calendar used to group history; nil means time.Local.
	Location *time.Location
}

// RunApp starts the interactive Log/History/Settings program.
func RunApp(ctx context.Context, svc *engine.Service, opts Options, in io.Reader, out io.Writer) error {
	m := newAppModel(ctx, svc, opts)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
