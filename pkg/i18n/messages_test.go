package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  Language
	}{
		{input: "zh_CN.UTF-8", want: Chinese},
		{input: "zh_TW", want: Chinese},
		{input: "schinese", want: Chinese},
		{input: "en_US.UTF-8", want: English},
		{input: "C", want: English},
		{input: "fr_FR", want: English},
		{input: "", want: English},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLanguage(tt.input))
		})
	}
}

func TestDetectLanguage(t *testing.T) {
	for _, key := range []string{"LC_ALL", "LC_MESSAGES", "LANGUAGE", "LANG"} {
		t.Setenv(key, "")
	}

	assert.Equal(t, English, DetectLanguage())

	t.Setenv("LANG", "zh_CN.UTF-8")
	assert.Equal(t, Chinese, DetectLanguage())

	t.Setenv("LC_ALL", "en_US.UTF-8")
	assert.Equal(t, English, DetectLanguage(), "LC_ALL overrides LANG")
}

func TestFor(t *testing.T) {
	assert.Equal(t, "Achievement Get!", For(English).Notify.GainedHeader)
	assert.Equal(t, ">>>--- Lose achievement ---<<<", For(English).Notify.LostHeader)
	assert.Equal(t, ChineseMessages, For(Chinese))
	assert.Equal(t, EnglishMessages, For(Language("de")))
}

func TestMessageTablesComplete(t *testing.T) {
	for _, m := range []Messages{EnglishMessages, ChineseMessages} {
		assert.NotEmpty(t, m.Notify.GainedHeader)
		assert.NotEmpty(t, m.Notify.LostHeader)
		assert.Contains(t, m.Notify.EarnedAt, "%s")
		assert.Contains(t, m.List.Summary, "%d")
		assert.Contains(t, m.Watch.Watching, "%s")
		assert.NotEmpty(t, m.App.VersionShort)
		assert.NotEmpty(t, m.History.ErrorNoDatabase)
		assert.NotEmpty(t, m.History.SessionTitle)
	}
}
