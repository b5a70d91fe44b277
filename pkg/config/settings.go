package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"

	"github.com/AccelByte/extend-achievement-reminder/pkg/errors"
	"github.com/AccelByte/extend-achievement-reminder/pkg/localize"
)

// Default locations, relative to the game directory unless noted.
const (
	DefaultImageDir        = "steam_settings/achievement_images/"
	DefaultCatalogPath     = "steam_settings/achievements.json"
	DefaultGoldbergDirName = "Goldberg SteamEmu Saves"
	DefaultSettingFileName = "achievement_reminder_setting.json"
	DefaultStateFileName   = "achievements.json"
	ColdClientLoaderFile   = "ColdClientLoader.ini"
	SteamAppIDFile         = "steam_settings/steam_appid.txt"
)

// Environment variables read by LoadSettings.
const (
	EnvAppID        = "REMINDER_APP_ID"
	EnvCatalogPath  = "REMINDER_CATALOG_PATH"
	EnvStatePath    = "REMINDER_STATE_PATH"
	EnvImageDir     = "REMINDER_IMAGE_DIR"
	EnvLanguages    = "REMINDER_LANGUAGES"
	EnvGoldbergPath = "REMINDER_GOLDBERG_PATH"
	EnvSettingPath  = "REMINDER_SETTING_PATH"
)

// Settings are the resolved inputs of the reminder: where the catalog, state file
// and icons live and which languages to prefer. Built once and passed by value to constructors.
type Settings struct {
	AppID        string
	CatalogPath  string
	StatePath    string
	ImageDir     string
	Languages    []string
	AppDataPath  string
	GoldbergPath string
	SettingPath  string
}

// CatalogSource returns the catalog inputs carried by these settings.
func (s *Settings) CatalogSource() CatalogSource {
	return CatalogSource{
		Path:      s.CatalogPath,
		ImageDir:  s.ImageDir,
		Languages: append([]string(nil), s.Languages...),
	}
}

// Overrides are explicit values from the command line. Empty fields are ignored.
type Overrides struct {
	AppID       string
	CatalogPath string
	StatePath   string
	ImageDir    string
	SettingPath string
	Languages   []string
	EnvFile     string // Optional .env file; ".env" is tried when empty
	WorkDir     string // Game directory used for app id discovery; "." when empty
}

// settingsFile mirrors achievement_reminder_setting.json. Absent keys keep their defaults.
type settingsFile struct {
	Languages    []string `json:"languages"`
	AppDataPath  string   `json:"app_data_path"`
	GoldbergPath string   `json:"goldberg_path"`
	ImageDir     string   `json:"image_dir"`
}

// LoadSettings resolves settings from, in increasing priority:
// built-in defaults, the settings file, environment variables (optionally from a .env file),
// and command-line overrides.
//
// The runtime state path defaults to <goldberg_path>/<app id>/achievements.json, which needs
// an app id; when none can be found and no state path was given, an APP_ID_NOT_FOUND error is returned.
func LoadSettings(o Overrides, logger *slog.Logger) (*Settings, error) {
	loadEnvFile(o.EnvFile, logger)

	s := DefaultSettings()

	s.SettingPath = firstNonEmpty(o.SettingPath, os.Getenv(EnvSettingPath), s.SettingPath)
	if err := applySettingsFile(s, logger); err != nil {
		logger.Warn("Ignoring settings file, using defaults", "setting_path", s.SettingPath, "error", err)
	}

	s.GoldbergPath = firstNonEmpty(os.Getenv(EnvGoldbergPath), s.GoldbergPath)
	s.ImageDir = firstNonEmpty(o.ImageDir, os.Getenv(EnvImageDir), s.ImageDir)
	s.CatalogPath = firstNonEmpty(o.CatalogPath, os.Getenv(EnvCatalogPath), s.CatalogPath)
	s.StatePath = firstNonEmpty(o.StatePath, os.Getenv(EnvStatePath))
	if env := os.Getenv(EnvLanguages); env != "" {
		s.Languages = ParseLanguages(env)
	}
	if o.Languages != nil {
		s.Languages = append([]string(nil), o.Languages...)
	}

	s.AppID = firstNonEmpty(o.AppID, os.Getenv(EnvAppID))
	if s.AppID == "" {
		workDir := firstNonEmpty(o.WorkDir, ".")
		id, err := DiscoverAppID(workDir)
		if err != nil && s.StatePath == "" {
			return nil, err
		}
		s.AppID = id
	}

	if s.StatePath == "" {
		s.StatePath = filepath.Join(s.GoldbergPath, s.AppID, DefaultStateFileName)
	}

	logger.Info("Settings resolved",
		"app_id", s.AppID,
		"catalog_path", s.CatalogPath,
		"state_path", s.StatePath,
		"image_dir", s.ImageDir,
		"languages", strings.Join(s.Languages, ","),
	)

	return s, nil
}

// DefaultSettings returns the built-in defaults. The state path is left empty because it depends on the app id.
func DefaultSettings() *Settings {
	appData, _ := DataDir()
	goldberg := filepath.Join(appData, DefaultGoldbergDirName)
	return &Settings{
		CatalogPath:  DefaultCatalogPath,
		ImageDir:     DefaultImageDir,
		Languages:    append([]string(nil), localize.DefaultLanguages...),
		AppDataPath:  appData,
		GoldbergPath: goldberg,
		SettingPath:  filepath.Join(goldberg, DefaultSettingFileName),
	}
}

// DataDir returns the per-user application data directory:
// - macOS: ~/Library/Application Support
// - Linux: $XDG_DATA_HOME or ~/.local/share
// - Windows: %APPDATA%
func DataDir() (string, error) {
	switch runtime.GOOS {
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, "Library", "Application Support"), nil
	case "windows":
		appData := os.Getenv("APPDATA")
		if appData == "" {
			return "", fmt.Errorf("APPDATA environment variable not set")
		}
		return appData, nil
	default:
		if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
			return dataHome, nil
		}
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		return filepath.Join(home, ".local", "share"), nil
	}
}

// DiscoverAppID looks for the game's app id under dir:
//  1. ColdClientLoader.ini, [SteamClient] AppId (case-insensitive)
//  2. steam_settings/steam_appid.txt
func DiscoverAppID(dir string) (string, error) {
	iniPath := filepath.Join(dir, ColdClientLoaderFile)
	if cfg, err := ini.LoadSources(ini.LoadOptions{Insensitive: true, Loose: true}, iniPath); err == nil {
		if id, ok := parseAppID(cfg.Section("steamclient").Key("appid").String()); ok {
			return id, nil
		}
	}

	txtPath := filepath.Join(dir, SteamAppIDFile)
	if data, err := os.ReadFile(txtPath); err == nil {
		if id, ok := parseAppID(string(data)); ok {
			return id, nil
		}
	}

	return "", errors.ErrAppIDNotFound(iniPath, txtPath)
}

// ParseLanguages splits a language list separated by commas and/or whitespace.
func ParseLanguages(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

func parseAppID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return "", false
	}
	return strconv.FormatUint(n, 10), true
}

func applySettingsFile(s *Settings, logger *slog.Logger) error {
	data, err := os.ReadFile(s.SettingPath)
	if os.IsNotExist(err) {
		logger.Debug("No settings file, using defaults", "setting_path", s.SettingPath)
		return nil
	}
	if err != nil {
		return errors.ErrSettingsInvalid(s.SettingPath, err)
	}

	var f settingsFile
	if err := json.Unmarshal(data, &f); err != nil {
		return errors.ErrSettingsInvalid(s.SettingPath, err)
	}

	if f.Languages != nil {
		s.Languages = f.Languages
	}
	if f.AppDataPath != "" {
		s.AppDataPath = f.AppDataPath
		s.GoldbergPath = filepath.Join(f.AppDataPath, DefaultGoldbergDirName)
	}
	if f.GoldbergPath != "" {
		s.GoldbergPath = f.GoldbergPath
	}
	if f.ImageDir != "" {
		s.ImageDir = f.ImageDir
	}
	return nil
}

func loadEnvFile(path string, logger *slog.Logger) {
	if path == "" {
		if err := godotenv.Load(); err != nil {
			logger.Debug(".env file not found, using system environment variables")
		}
		return
	}
	if err := godotenv.Load(path); err != nil {
		logger.Warn("Failed to load env file", "env_file", path, "error", err)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
