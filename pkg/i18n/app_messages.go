package i18n

// AppMessages holds root and version command strings
type AppMessages struct {
	Use   string
	Short string
	Long  string

	VersionShort   string
	VersionTitle   string
	VersionLabel   string
	GoVersionLabel string
	PlatformLabel  string

	FlagAppID       string
	FlagCatalog     string
	FlagState       string
	FlagImageDir    string
	FlagSetting     string
	FlagLanguages   string
	FlagEnvFile     string
	FlagGameDir     string
	FlagVerbose     string
	ErrorLoadFailed string
}

// English app messages
var EnglishAppMessages = AppMessages{
	Use:   "achievement-reminder",
	Short: "Notify when emulated Steam achievements are earned or lost",
	Long: `Watches the achievement save file written by the Goldberg Steam emulator and
reports every achievement that becomes earned or is lost.`,

	VersionShort:   "Show version information",
	VersionTitle:   "Achievement Reminder",
	VersionLabel:   "Version",
	GoVersionLabel: "Go version",
	PlatformLabel:  "Platform",

	FlagAppID:       "Steam app id (default: discovered from ColdClientLoader.ini or steam_appid.txt)",
	FlagCatalog:     "achievement definition file",
	FlagState:       "achievement save file (default: <goldberg dir>/<app id>/achievements.json)",
	FlagImageDir:    "directory searched for achievement icons",
	FlagSetting:     "settings file",
	FlagLanguages:   "preferred languages, comma separated (e.g. english,french)",
	FlagEnvFile:     "load environment variables from this file",
	FlagGameDir:     "game directory used for app id discovery",
	FlagVerbose:     "enable debug logging",
	ErrorLoadFailed: "Failed to start: %w",
}

// Chinese app messages
var ChineseAppMessages = AppMessages{
	Use:   "achievement-reminder",
	Short: "在模拟器成就达成或丢失时发出提醒",
	Long:  `监视 Goldberg Steam 模拟器写入的成就存档文件，报告每一个新达成或丢失的成就。`,

	VersionShort:   "显示版本信息",
	VersionTitle:   "成就提醒",
	VersionLabel:   "版本",
	GoVersionLabel: "Go 版本",
	PlatformLabel:  "平台",

	FlagAppID:       "Steam 应用 ID（默认从 ColdClientLoader.ini 或 steam_appid.txt 读取）",
	FlagCatalog:     "成就定义文件",
	FlagState:       "成就存档文件（默认：<goldberg 目录>/<应用 ID>/achievements.json）",
	FlagImageDir:    "成就图标搜索目录",
	FlagSetting:     "设置文件",
	FlagLanguages:   "首选语言，以逗号分隔（例如 schinese,english）",
	FlagEnvFile:     "从该文件加载环境变量",
	FlagGameDir:     "用于查找应用 ID 的游戏目录",
	FlagVerbose:     "启用调试日志",
	ErrorLoadFailed: "启动失败: %w",
}
