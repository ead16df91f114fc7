package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"wright/internal/driver"
	"wright/internal/ui"
)

type checkOutcome struct {
	result *driver.RunResult
	err    error
}

func runCheckWithUI(ctx context.Context, title string, files []string, paths []string, opts driver.Options) (*driver.RunResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		opts.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.Check(ctx, paths, opts)
		outcomeCh <- checkOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// UI мог выйти раньше (Ctrl+C), не блокируем воркеры
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		if outcome.result != nil {
			_ = outcome.result.Close()
		}
		return nil, uiErr
	}
	return outcome.result, outcome.err
}
