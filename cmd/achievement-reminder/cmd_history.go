package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/AccelByte/extend-achievement-reminder/pkg/common"
	"github.com/AccelByte/extend-achievement-reminder/pkg/config"
	"github.com/AccelByte/extend-achievement-reminder/pkg/db"
	"github.com/AccelByte/extend-achievement-reminder/pkg/domain"
	"github.com/AccelByte/extend-achievement-reminder/pkg/i18n"
	"github.com/AccelByte/extend-achievement-reminder/pkg/repository"
)

// sessionHistoryLimit caps the in-memory history printed when watch stops.
const sessionHistoryLimit = 100

var (
	historyLimit int
	historyNames []string
	historyJSON  bool
)

func initHistoryCmd() {
	historyCmd := &cobra.Command{
		Use:   msgs.History.Use,
		Short: msgs.History.Short,
		Long:  msgs.History.Long,
		Args:  cobra.NoArgs,
		RunE:  runHistory,
	}

	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, msgs.History.FlagLimit)
	historyCmd.Flags().StringSliceVar(&historyNames, "name", nil, msgs.History.FlagName)
	historyCmd.Flags().BoolVarP(&historyJSON, "json", "j", false, msgs.History.FlagJSON)

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	logger := newLogger(flagVerbose)

	settings, err := config.LoadSettings(overridesFromFlags(cmd), logger)
	if err != nil {
		return fmt.Errorf(msgs.App.ErrorLoadFailed, err)
	}

	// A memory store would always be empty in a fresh process.
	if !db.Enabled() {
		return stderrors.New(msgs.History.ErrorNoDatabase)
	}

	repo, closeRepo, err := openPostgresHistory(cmd.Context(), logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	recs, err := queryHistory(cmd.Context(), repo, settings.AppID, historyNames, historyLimit)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if historyJSON {
		return writeJSON(out, recs)
	}
	return writeHistoryTable(out, recs, msgs.History, time.Local)
}

// openHistory picks the PostgreSQL history store when DB_HOST is set, memory otherwise.
// inMemory reports the fallback so the caller can print the session's history on exit.
func openHistory(ctx context.Context, logger *slog.Logger) (repo repository.TransitionRepository, closeRepo func(), inMemory bool, err error) {
	if !db.Enabled() {
		logger.Info("No DB_HOST set, keeping transition history in memory")
		return repository.NewMemoryTransitionRepository(), func() {}, true, nil
	}

	repo, closeRepo, err = openPostgresHistory(ctx, logger)
	return repo, closeRepo, false, err
}

func openPostgresHistory(ctx context.Context, logger *slog.Logger) (repository.TransitionRepository, func(), error) {
	cfg := db.NewConfigFromEnv()
	conn, err := db.Connect(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := repository.EnsureSchema(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, nil, err
	}

	logger.Info("Using transition history database", "db_host", cfg.Host, "db_name", cfg.Database)
	return repository.NewPostgresTransitionRepository(conn), func() { _ = conn.Close() }, nil
}

// queryHistory lists the newest records for appID, narrowed to names when given.
// limit <= 0 means no limit when filtering by name.
func queryHistory(ctx context.Context, repo repository.TransitionRepository, appID string, names []string, limit int) ([]*domain.TransitionRecord, error) {
	if len(names) == 0 {
		return repo.ListRecent(ctx, appID, limit)
	}

	recs, err := repo.ListByAchievement(ctx, appID, names)
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs, nil
}

// writeHistoryTable prints records as aligned columns, or m.Empty when there are none.
func writeHistoryTable(w io.Writer, recs []*domain.TransitionRecord, m i18n.HistoryMessages, loc *time.Location) error {
	if len(recs) == 0 {
		_, err := fmt.Fprintln(w, m.Empty)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		m.HeaderObserved, m.HeaderChange, m.HeaderID, m.HeaderTitle, m.HeaderEarnedTime)

	for _, rec := range recs {
		change := m.Gained
		if rec.Direction == domain.DirectionLost {
			change = m.Lost
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			rec.ObservedAt.In(loc).Format(common.EarnedTimeLayout),
			change,
			rec.Name,
			rec.Title,
			common.FormatEarnedTimeIn(rec.EarnedTime, loc),
		)
	}

	return tw.Flush()
}

// writeSessionHistory prints what an in-memory history store collected during one watch run.
func writeSessionHistory(ctx context.Context, w io.Writer, repo repository.TransitionRepository, appID string, m i18n.HistoryMessages, loc *time.Location) error {
	recs, err := repo.ListRecent(ctx, appID, sessionHistoryLimit)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "\n%s\n", m.SessionTitle); err != nil {
		return err
	}
	return writeHistoryTable(w, recs, m, loc)
}
