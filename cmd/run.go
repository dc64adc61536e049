package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/fadelist/internal/config"
	"github.com/marcus/fadelist/internal/output"
	"github.com/marcus/fadelist/internal/source"
	"github.com/marcus/fadelist/internal/viewer"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"
)

// runSource shows src in the viewer, or prints its first snapshot when
// output is not interactive.
func runSource(cmd *cobra.Command, src source.Source) error {
	cfg, err := config.Resolve(getBaseDir(), cmd.Flags())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	plain, _ := cmd.Flags().GetBool("plain")
	if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		return runPlain(ctx, src, cmd.OutOrStdout())
	}
	return runViewer(ctx, src, *cfg)
}

// runViewer runs the program and the source side by side. Quitting the
// program stops the source; a source failure stops the program.
func runViewer(ctx context.Context, src source.Source, cfg config.Config) error {
	model, err := viewer.New(src.Name(), cfg, slog.Default())
	if err != nil {
		return err
	}
	defer model.Close()

	g, gctx := errgroup.WithContext(ctx)
	srcCtx, cancelSource := context.WithCancel(gctx)
	defer cancelSource()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(gctx))

	g.Go(func() error {
		defer cancelSource()
		_, err := p.Run()
		if errors.Is(err, tea.ErrProgramKilled) {
			return nil
		}
		return err
	})

	g.Go(func() error {
		emit, report := sourceCallbacks(p.Send)
		err := src.Run(srcCtx, emit, report)
		if err != nil {
			slog.Error("source failed", "source", src.Name(), "err", err)
			return fmt.Errorf("%s: %w", src.Name(), err)
		}
		return nil
	})

	return g.Wait()
}

// sourceCallbacks turns source output into viewer messages delivered by send.
func sourceCallbacks(send func(tea.Msg)) (func([]source.Row), source.Reporter) {
	emit := func(rows []source.Row) {
		send(viewer.RowsMsg{Rows: rows})
	}
	report := func(err error) {
		send(viewer.ErrMsg{Err: err})
	}
	return emit, report
}

// runPlain waits for the first snapshot, writes it to w and stops the source.
func runPlain(ctx context.Context, src source.Source, w io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		rows []source.Row
		got  bool
	)
	err := src.Run(ctx, func(r []source.Row) {
		if got {
			return
		}
		rows, got = r, true
		cancel()
	}, nil)
	if err != nil {
		return fmt.Errorf("%s: %w", src.Name(), err)
	}
	if !got {
		return nil
	}
	return output.WriteRows(w, rows)
}
