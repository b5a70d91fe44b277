package i18n

// ListMessages holds list command strings
type ListMessages struct {
	Use   string
	Short string
	Long  string

	HeaderID          string
	HeaderTitle       string
	HeaderEarned      string
	HeaderEarnedTime  string
	HeaderDescription string
	EarnedYes         string
	EarnedNo          string
	HiddenDescription string
	Summary           string

	FlagJSON   string
	FlagHidden string
}

// English list messages
var EnglishListMessages = ListMessages{
	Use:   "list",
	Short: "List all achievements with their current state",
	Long:  `Resolve every achievement in the catalog against the current save file and print it.`,

	HeaderID:          "ID",
	HeaderTitle:       "TITLE",
	HeaderEarned:      "EARNED",
	HeaderEarnedTime:  "EARNED AT",
	HeaderDescription: "DESCRIPTION",
	EarnedYes:         "yes",
	EarnedNo:          "no",
	HiddenDescription: "(hidden achievement)",
	Summary:           "%d/%d achievements earned",

	FlagJSON:   "output in JSON format",
	FlagHidden: "show descriptions of hidden achievements",
}

// Chinese list messages
var ChineseListMessages = ListMessages{
	Use:   "list",
	Short: "列出所有成就及其当前状态",
	Long:  `根据当前存档文件解析目录中的每个成就并输出。`,

	HeaderID:          "ID",
	HeaderTitle:       "名称",
	HeaderEarned:      "已达成",
	HeaderEarnedTime:  "达成时间",
	HeaderDescription: "描述",
	EarnedYes:         "是",
	EarnedNo:          "否",
	HiddenDescription: "（隐藏成就）",
	Summary:           "已达成 %d/%d 个成就",

	FlagJSON:   "以 JSON 格式输出",
	FlagHidden: "显示隐藏成就的描述",
}
