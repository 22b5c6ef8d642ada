package tui

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/mattn/go-isatty"
)

// Spin runs action behind a spinner on stderr and returns once the action has
// finished. Without a terminal on stderr the action runs without a spinner.
// Quitting the spinner early cancels the context handed to the action.
func Spin(ctx context.Context, title string, action func(ctx context.Context)) error {
	fd := os.Stderr.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		action(ctx)
		return nil
	}

	actionCtx, cancelAction := context.WithCancel(ctx)
	defer cancelAction()
	spinCtx, stopSpinner := context.WithCancel(ctx)
	defer stopSpinner()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer stopSpinner()
		action(actionCtx)
	}()

	// the spinner only draws; it returns when spinCtx is done
	err := spinner.New().
		Title(title).
		Context(spinCtx).
		Run()
	cancelAction()
	<-done

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
