package i18n

// WatchMessages holds watch command strings
type WatchMessages struct {
	Use   string
	Short string
	Long  string

	Watching string
	Stopped  string

	FlagDebounce string
	FlagHistory  string
}

// English watch messages
var EnglishWatchMessages = WatchMessages{
	Use:   "watch",
	Short: "Watch the save file and report achievement changes",
	Long: `Load the catalog and the current save file, then report every achievement that is
earned or lost until interrupted.`,

	Watching: "Watching %s (%d/%d earned)",
	Stopped:  "Stopped watching",

	FlagDebounce: "wait this long after a change before reloading",
	FlagHistory:  "record transitions to PostgreSQL when DB_HOST is set, otherwise keep them in memory and print them on exit",
}

// Chinese watch messages
var ChineseWatchMessages = WatchMessages{
	Use:   "watch",
	Short: "监视存档文件并报告成就变化",
	Long:  `加载成就目录和当前存档文件，随后报告每一个新达成或丢失的成就，直到被中断。`,

	Watching: "正在监视 %s（已达成 %d/%d）",
	Stopped:  "已停止监视",

	FlagDebounce: "文件变化后等待该时长再重新加载",
	FlagHistory:  "设置 DB_HOST 时将成就变化记录到 PostgreSQL，否则保存在内存中并在退出时输出",
}
