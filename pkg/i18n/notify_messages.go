package i18n

// NotifyMessages holds notification strings
type NotifyMessages struct {
	GainedHeader string
	LostHeader   string
	EarnedAt     string
	Icon         string
}

// English notify messages
var EnglishNotifyMessages = NotifyMessages{
	GainedHeader: "Achievement Get!",
	LostHeader:   ">>>--- Lose achievement ---<<<",
	EarnedAt:     "Earned at %s",
	Icon:         "Icon: %s",
}

// Chinese notify messages
var ChineseNotifyMessages = NotifyMessages{
	GainedHeader: "获得成就！",
	LostHeader:   ">>>--- 失去成就 ---<<<",
	EarnedAt:     "达成时间 %s",
	Icon:         "图标: %s",
}
