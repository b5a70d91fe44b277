package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/AccelByte/extend-achievement-reminder/pkg/domain"
	"github.com/AccelByte/extend-achievement-reminder/pkg/notify"
	"github.com/AccelByte/extend-achievement-reminder/pkg/repository"
	"github.com/AccelByte/extend-achievement-reminder/pkg/watcher"
)

var (
	watchDebounce time.Duration
	watchHistory  bool
)

func initWatchCmd() {
	watchCmd := &cobra.Command{
		Use:   msgs.Watch.Use,
		Short: msgs.Watch.Short,
		Long:  msgs.Watch.Long,
		Args:  cobra.NoArgs,
		RunE:  runWatch,
	}

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, msgs.Watch.FlagDebounce)
	watchCmd.Flags().BoolVar(&watchHistory, "history", false, msgs.Watch.FlagHistory)

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var sessionHistory repository.TransitionRepository
	if watchHistory {
		repo, closeRepo, inMemory, err := openHistory(ctx, a.logger)
		if err != nil {
			return err
		}
		defer closeRepo()
		a.engine.WithHistory(repo, a.settings.AppID)
		if inMemory {
			sessionHistory = repo
		}
	}

	views, err := a.engine.Project()
	if err != nil {
		return err
	}
	earned, total := summarize(views)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, msgs.Watch.Watching+"\n\n", a.store.Path(), earned, total)

	w, err := watcher.New(a.store.Path(), watchDebounce, a.logger)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	notifier := notify.Multi{notify.NewConsoleNotifier(out, msgs.Notify)}
	if flagVerbose {
		notifier = append(notifier, notify.NewLogNotifier())
	}

	batches := make(chan []domain.TransitionView, 16)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_ = w.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		_ = notify.Dispatch(ctx, batches, notifier, a.logger)
	}()

	err = a.engine.Run(ctx, w.Changes(), batches)
	close(batches)
	stop()
	wg.Wait()

	fmt.Fprintln(out, msgs.Watch.Stopped)

	if sessionHistory != nil {
		if herr := writeSessionHistory(context.Background(), out, sessionHistory, a.settings.AppID, msgs.History, time.Local); herr != nil {
			a.logger.Warn("Failed to print session history", "error", herr)
		}
	}
	return err
}
