package i18n

// HistoryMessages holds history command strings
type HistoryMessages struct {
	Use   string
	Short string
	Long  string

	HeaderObserved   string
	HeaderChange     string
	HeaderID         string
	HeaderTitle      string
	HeaderEarnedTime string
	Gained           string
	Lost             string
	Empty            string
	SessionTitle     string

	ErrorNoDatabase string

	FlagLimit string
	FlagName  string
	FlagJSON  string
}

// English history messages
var EnglishHistoryMessages = HistoryMessages{
	Use:   "history",
	Short: "Show recorded achievement changes",
	Long: `Print the achievement changes recorded by "watch --history" in the PostgreSQL
history database configured through DB_HOST and the other DB_* variables.`,

	HeaderObserved:   "OBSERVED",
	HeaderChange:     "CHANGE",
	HeaderID:         "ID",
	HeaderTitle:      "TITLE",
	HeaderEarnedTime: "EARNED AT",
	Gained:           "gained",
	Lost:             "lost",
	Empty:            "No achievement changes recorded",
	SessionTitle:     "Achievement changes this session:",

	ErrorNoDatabase: "history needs a database: set DB_HOST (without it, watch --history prints its changes when it stops)",

	FlagLimit: "show at most this many changes",
	FlagName:  "only show changes for these achievement ids",
	FlagJSON:  "output in JSON format",
}

// Chinese history messages
var ChineseHistoryMessages = HistoryMessages{
	Use:   "history",
	Short: "显示已记录的成就变化",
	Long:  `输出 "watch --history" 记录在 PostgreSQL 历史数据库中的成就变化，数据库通过 DB_HOST 等 DB_* 变量配置。`,

	HeaderObserved:   "记录时间",
	HeaderChange:     "变化",
	HeaderID:         "ID",
	HeaderTitle:      "名称",
	HeaderEarnedTime: "达成时间",
	Gained:           "达成",
	Lost:             "丢失",
	Empty:            "没有已记录的成就变化",
	SessionTitle:     "本次运行的成就变化：",

	ErrorNoDatabase: "查看历史需要数据库：请设置 DB_HOST（未设置时，watch --history 会在停止时输出本次的变化）",

	FlagLimit: "最多显示的变化条数",
	FlagName:  "只显示这些成就 ID 的变化",
	FlagJSON:  "以 JSON 格式输出",
}
