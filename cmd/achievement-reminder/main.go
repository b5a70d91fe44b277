package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/AccelByte/extend-achievement-reminder/pkg/i18n"
)

var (
	rootCmd *cobra.Command
	msgs    i18n.Messages

	flagAppID     string
	flagCatalog   string
	flagState     string
	flagImageDir  string
	flagSetting   string
	flagLanguages []string
	flagEnvFile   string
	flagGameDir   string
	flagVerbose   bool
)

func init() {
	msgs = i18n.Detect()

	rootCmd = &cobra.Command{
		Use:           msgs.App.Use,
		Short:         msgs.App.Short,
		Long:          msgs.App.Long,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagAppID, "app-id", "", msgs.App.FlagAppID)
	pf.StringVar(&flagCatalog, "catalog", "", msgs.App.FlagCatalog)
	pf.StringVar(&flagState, "state", "", msgs.App.FlagState)
	pf.StringVar(&flagImageDir, "image-dir", "", msgs.App.FlagImageDir)
	pf.StringVar(&flagSetting, "setting", "", msgs.App.FlagSetting)
	pf.StringSliceVar(&flagLanguages, "languages", nil, msgs.App.FlagLanguages)
	pf.StringVar(&flagEnvFile, "env-file", "", msgs.App.FlagEnvFile)
	pf.StringVar(&flagGameDir, "game-dir", "", msgs.App.FlagGameDir)
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, msgs.App.FlagVerbose)

	initWatchCmd()
	initListCmd()
	initHistoryCmd()
	initVersionCmd()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
