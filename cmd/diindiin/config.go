// Config loading for the diindiin CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/diindiin/internal/ai"
	"github.com/mesh-intelligence/diindiin/internal/bot"
	"github.com/mesh-intelligence/diindiin/internal/paths"
	"github.com/mesh-intelligence/diindiin/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyBackend   = "backend"
	cfgKeyDataDir   = "data_dir"
	cfgKeyLanguage  = "default_language"
	cfgKeyTimezone  = "timezone"
	cfgKeyBotName   = "bot_name"
	cfgKeyAIModel   = "ai.model"
	cfgKeyAIBaseURL = "ai.base_url"
	cfgKeyAITimeout = "ai.timeout"
	cfgKeyLogLevel  = "log.level"
	cfgKeyLogFormat = "log.format"

	defaultLogLevel  = "warn"
	defaultLogFormat = "console"
)

// configFile is the structure written to a fresh config.yaml.
type configFile struct {
	Backend         string        `yaml:"backend"`
	DataDir         string        `yaml:"data_dir,omitempty"`
	DefaultLanguage string        `yaml:"default_language"`
	Timezone        string        `yaml:"timezone"`
	BotName         string        `yaml:"bot_name"`
	AI              aiConfigFile  `yaml:"ai"`
	Log             logConfigFile `yaml:"log"`
}

type aiConfigFile struct {
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url,omitempty"`
	Timeout string `yaml:"timeout"`
}

type logConfigFile struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func defaultConfigFile() configFile {
	return configFile{
		Backend:         types.BackendSQLite,
		DefaultLanguage: types.Portuguese.String(),
		Timezone:        types.DefaultTimezone,
		BotName:         bot.DefaultBotName,
		AI: aiConfigFile{
			Model:   ai.DefaultModel,
			Timeout: ai.DefaultTimeout.String(),
		},
		Log: logConfigFile{Level: defaultLogLevel, Format: defaultLogFormat},
	}
}

// secrets come from the environment only.
type secrets struct {
	OpenAIKey string `env:"OPENAI_API_KEY"`
}

// settings is the validated configuration every command runs with.
type settings struct {
	Backend         string
	DataDir         string // From config.yaml; flag and env precedence is applied by paths.
	DefaultLanguage types.Language
	Timezone        string
	BotName         string
	AI              ai.Config
	LogLevel        string
	LogFormat       string
}

// loadConfig reads config.yaml from configDir, creating the directory and a
// default file on first run.
func loadConfig(configDir string) (*viper.Viper, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure config dir: %w", err)
	}
	if err := writeConfigIfMissing(paths.ConfigFile(configDir)); err != nil {
		return nil, fmt.Errorf("ensure default config: %w", err)
	}

	v := viper.New()
	def := defaultConfigFile()
	v.SetDefault(cfgKeyBackend, def.Backend)
	v.SetDefault(cfgKeyLanguage, def.DefaultLanguage)
	v.SetDefault(cfgKeyTimezone, def.Timezone)
	v.SetDefault(cfgKeyBotName, def.BotName)
	v.SetDefault(cfgKeyAIModel, def.AI.Model)
	v.SetDefault(cfgKeyAITimeout, def.AI.Timeout)
	v.SetDefault(cfgKeyLogLevel, def.Log.Level)
	v.SetDefault(cfgKeyLogFormat, def.Log.Format)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// writeConfigIfMissing writes the default config.yaml unless path exists.
func writeConfigIfMissing(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	cfg := defaultConfigFile()
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	header := []byte("# diindiin configuration\n# The OpenAI key is read from OPENAI_API_KEY.\n\n")
	return os.WriteFile(path, append(header, data...), 0o644)
}

// readSettings validates the loaded config and merges environment secrets.
func readSettings(v *viper.Viper) (settings, error) {
	s := settings{
		Backend:   v.GetString(cfgKeyBackend),
		DataDir:   v.GetString(cfgKeyDataDir),
		Timezone:  v.GetString(cfgKeyTimezone),
		BotName:   v.GetString(cfgKeyBotName),
		LogLevel:  v.GetString(cfgKeyLogLevel),
		LogFormat: v.GetString(cfgKeyLogFormat),
		AI: ai.Config{
			Model:   v.GetString(cfgKeyAIModel),
			BaseURL: v.GetString(cfgKeyAIBaseURL),
			Timeout: v.GetDuration(cfgKeyAITimeout),
		},
	}

	if err := (types.Config{Backend: s.Backend}).Validate(); err != nil {
		return settings{}, fmt.Errorf("config %s %q: %w", cfgKeyBackend, s.Backend, err)
	}
	lang, ok := types.ParseLanguage(v.GetString(cfgKeyLanguage))
	if !ok {
		return settings{}, fmt.Errorf("config %s: unsupported language %q", cfgKeyLanguage, v.GetString(cfgKeyLanguage))
	}
	s.DefaultLanguage = lang
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return settings{}, fmt.Errorf("config %s: %w", cfgKeyTimezone, err)
	}

	var sec secrets
	if err := env.Parse(&sec); err != nil {
		return settings{}, fmt.Errorf("read environment: %w", err)
	}
	s.AI.APIKey = sec.OpenAIKey
	return s, nil
}
