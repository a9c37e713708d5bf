package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/atomicstack/pipemind/internal/app"
	"github.com/atomicstack/pipemind/internal/logging"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// File is the configuration file that was read, if any.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Level    string
	Trace    bool
}

const DefaultTitle = "Pipemind Console"

const (
	envConfig     = "PIPEMIND_CONFIG"
	envTitle      = "PIPEMIND_TITLE"
	envWidth      = "PIPEMIND_WIDTH"
	envHeight     = "PIPEMIND_HEIGHT"
	envShowFooter = "PIPEMIND_FOOTER"
	envTrace      = "PIPEMIND_TRACE"
	envLogFile    = "PIPEMIND_LOG_FILE"
	envLogLevel   = "PIPEMIND_LOG_LEVEL"
)

const (
	flagConfig   = "config"
	flagTitle    = "title"
	flagWidth    = "width"
	flagHeight   = "height"
	flagFooter   = "footer"
	flagTrace    = "trace"
	flagLogFile  = "log-file"
	flagLogLevel = "log-level"
)

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		App: app.Config{
			Title:      DefaultTitle,
			ShowFooter: true,
		},
		Logging: Logging{Level: "info"},
	}
}

// RegisterFlags defines the command-line flags on fs.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Defaults()
	fs.String(flagConfig, "", "path to a YAML or TOML configuration file")
	fs.String(flagTitle, d.App.Title, "title shown in the header")
	fs.Int(flagWidth, d.App.Width, "desired viewport width in cells (0 uses terminal width)")
	fs.Int(flagHeight, d.App.Height, "desired viewport height in rows (0 uses terminal height)")
	fs.Bool(flagFooter, d.App.ShowFooter, "show the footer with key hints")
	fs.Bool(flagTrace, d.Logging.Trace, "enable verbose JSON trace logging")
	fs.String(flagLogFile, d.Logging.FilePath, "path to the log file (empty disables logging)")
	fs.String(flagLogLevel, d.Logging.Level, "log level (debug, info, warn, error)")
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	fs := pflag.NewFlagSet("pipemind", pflag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))
	RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return FromFlags(fs, environ, args)
}

// FromFlags resolves configuration from parsed flags. Values are layered as
// defaults, then the configuration file, then the environment, then flags
// that were set explicitly.
func FromFlags(fs *pflag.FlagSet, environ []string, args []string) (Config, error) {
	env := parseEnv(environ)
	cfg := Defaults()

	path := envOrDefault(env, envConfig, "")
	if fs.Changed(flagConfig) {
		path, _ = fs.GetString(flagConfig)
	}
	if strings.TrimSpace(path) != "" {
		if err := applyFile(&cfg, path); err != nil {
			return Config{}, err
		}
		cfg.File = path
	}

	applyEnv(&cfg, env)

	if err := applyFlags(&cfg, fs); err != nil {
		return Config{}, err
	}

	cfg.Flags = make(map[string]string)
	fs.VisitAll(func(f *pflag.Flag) {
		cfg.Flags[f.Name] = f.Value.String()
	})
	cfg.Args = append([]string(nil), args...)
	return cfg, nil
}

type fileConfig struct {
	Title  *string `yaml:"title" toml:"title"`
	Width  *int    `yaml:"width" toml:"width"`
	Height *int    `yaml:"height" toml:"height"`
	Footer *bool   `yaml:"footer" toml:"footer"`
	Log    struct {
		File  *string `yaml:"file" toml:"file"`
		Level *string `yaml:"level" toml:"level"`
		Trace *bool   `yaml:"trace" toml:"trace"`
	} `yaml:"log" toml:"log"`
}

func applyFile(cfg *Config, path string) error {
	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	case ".toml":
		if _, err := toml.DecodeFile(path, &fc); err != nil {
			return fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("config %s: unsupported format %q", path, ext)
	}

	if fc.Title != nil {
		cfg.App.Title = *fc.Title
	}
	if fc.Width != nil {
		cfg.App.Width = *fc.Width
	}
	if fc.Height != nil {
		cfg.App.Height = *fc.Height
	}
	if fc.Footer != nil {
		cfg.App.ShowFooter = *fc.Footer
	}
	if fc.Log.File != nil {
		cfg.Logging.FilePath = *fc.Log.File
	}
	if fc.Log.Level != nil {
		cfg.Logging.Level = *fc.Log.Level
	}
	if fc.Log.Trace != nil {
		cfg.Logging.Trace = *fc.Log.Trace
	}
	return nil
}

func applyEnv(cfg *Config, env map[string]string) {
	cfg.App.Title = envOrDefault(env, envTitle, cfg.App.Title)
	cfg.App.Width = envOrInt(env, envWidth, cfg.App.Width)
	cfg.App.Height = envOrInt(env, envHeight, cfg.App.Height)
	cfg.App.ShowFooter = envOrBool(env, envShowFooter, cfg.App.ShowFooter)
	cfg.Logging.Trace = envOrBool(env, envTrace, cfg.Logging.Trace)
	cfg.Logging.FilePath = envOrDefault(env, envLogFile, cfg.Logging.FilePath)
	cfg.Logging.Level = envOrDefault(env, envLogLevel, cfg.Logging.Level)
}

func applyFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error
	if fs.Changed(flagTitle) {
		if cfg.App.Title, err = fs.GetString(flagTitle); err != nil {
			return err
		}
	}
	if fs.Changed(flagWidth) {
		if cfg.App.Width, err = fs.GetInt(flagWidth); err != nil {
			return err
		}
	}
	if fs.Changed(flagHeight) {
		if cfg.App.Height, err = fs.GetInt(flagHeight); err != nil {
			return err
		}
	}
	if fs.Changed(flagFooter) {
		if cfg.App.ShowFooter, err = fs.GetBool(flagFooter); err != nil {
			return err
		}
	}
	if fs.Changed(flagTrace) {
		if cfg.Logging.Trace, err = fs.GetBool(flagTrace); err != nil {
			return err
		}
	}
	if fs.Changed(flagLogFile) {
		if cfg.Logging.FilePath, err = fs.GetString(flagLogFile); err != nil {
			return err
		}
	}
	if fs.Changed(flagLogLevel) {
		if cfg.Logging.Level, err = fs.GetString(flagLogLevel); err != nil {
			return err
		}
	}
	return nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// Validate rejects configuration the application cannot run with.
func Validate(cfg Config) error {
	if cfg.App.Width < 0 {
		return fmt.Errorf("width must be >= 0 (got %d)", cfg.App.Width)
	}
	if cfg.App.Height < 0 {
		return fmt.Errorf("height must be >= 0 (got %d)", cfg.App.Height)
	}
	if strings.TrimSpace(cfg.App.Title) == "" {
		return fmt.Errorf("title must not be empty")
	}
	if _, err := logging.ParseLevel(cfg.Logging.Level); err != nil {
		return err
	}
	return nil
}
