// Package i18n holds the user-facing message tables for notifications and the CLI.
package i18n

import (
	"os"
	"strings"
)

// Language represents supported languages
type Language string

const (
	English Language = "en"
	Chinese Language = "zh"
)

// Messages holds all translatable strings grouped by module
type Messages struct {
	App     AppMessages
	Notify  NotifyMessages
	List    ListMessages
	Watch   WatchMessages
	History HistoryMessages
}

// English messages
var EnglishMessages = Messages{
	App:     EnglishAppMessages,
	Notify:  EnglishNotifyMessages,
	List:    EnglishListMessages,
	Watch:   EnglishWatchMessages,
	History: EnglishHistoryMessages,
}

// Chinese messages
var ChineseMessages = Messages{
	App:     ChineseAppMessages,
	Notify:  ChineseNotifyMessages,
	List:    ChineseListMessages,
	Watch:   ChineseWatchMessages,
	History: ChineseHistoryMessages,
}

// DetectLanguage detects the user's language preference based on environment variables
func DetectLanguage() Language {
	envVars := []string{"LC_ALL", "LC_MESSAGES", "LANGUAGE", "LANG"}

	for _, envVar := range envVars {
		if lang := os.Getenv(envVar); lang != "" {
			return ParseLanguage(lang)
		}
	}

	return English
}

// ParseLanguage maps a locale string ("zh_CN.UTF-8", "en_US", "schinese") to a supported language.
func ParseLanguage(s string) Language {
	s = strings.ToLower(s)
	if strings.HasPrefix(s, "zh") ||
		strings.Contains(s, "chinese") ||
		strings.Contains(s, "_cn") {
		return Chinese
	}
	return English
}

// For returns the message set for lang. Unknown languages get English.
func For(lang Language) Messages {
	switch lang {
	case Chinese:
		return ChineseMessages
	default:
		return EnglishMessages
	}
}

// Detect returns the message set for the detected environment language.
func Detect() Messages {
	return For(DetectLanguage())
}
