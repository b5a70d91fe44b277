package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/AccelByte/extend-achievement-reminder/pkg/domain"
	"github.com/AccelByte/extend-achievement-reminder/pkg/i18n"
)

var (
	listJSON   bool
	listHidden bool
)

func initListCmd() {
	listCmd := &cobra.Command{
		Use:   msgs.List.Use,
		Short: msgs.List.Short,
		Long:  msgs.List.Long,
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	listCmd.Flags().BoolVarP(&listJSON, "json", "j", false, msgs.List.FlagJSON)
	listCmd.Flags().BoolVar(&listHidden, "hidden", false, msgs.List.FlagHidden)

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	views, err := a.engine.Project()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if listJSON {
		return writeJSON(out, views)
	}
	return writeTable(out, views, msgs.List, listHidden)
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeTable prints views as aligned columns followed by an earned summary.
// Descriptions of hidden, unearned achievements are masked unless showHidden is set.
func writeTable(w io.Writer, views []domain.ResolvedAchievementView, m i18n.ListMessages, showHidden bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		m.HeaderID, m.HeaderTitle, m.HeaderEarned, m.HeaderEarnedTime, m.HeaderDescription)

	for _, v := range views {
		earned := m.EarnedNo
		if v.Earned {
			earned = m.EarnedYes
		}
		description := v.Description
		if !v.Visible && !v.Earned && !showHidden {
			description = m.HiddenDescription
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", v.ID, v.Title, earned, v.EarnedTime, description)
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	earned, total := summarize(views)
	_, err := fmt.Fprintf(w, "\n"+m.Summary+"\n", earned, total)
	return err
}

func summarize(views []domain.ResolvedAchievementView) (earned, total int) {
	for _, v := range views {
		if v.Earned {
			earned++
		}
	}
	return earned, len(views)
}
