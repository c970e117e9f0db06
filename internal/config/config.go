package config

import (
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/lesson-console/internal/app"
	"github.com/atomicstack/lesson-console/internal/view"
	"github.com/spf13/viper"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// File is the config file that was read, if any.
	File  string
	Flags map[string]string
	Args  []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envPrefix = "LESSON_CONSOLE_"

	envConfig     = envPrefix + "CONFIG"
	envBaseURL    = envPrefix + "BASE_URL"
	envTimeout    = envPrefix + "TIMEOUT"
	envView       = envPrefix + "VIEW"
	envWidth      = envPrefix + "WIDTH"
	envHeight     = envPrefix + "HEIGHT"
	envShowFooter = envPrefix + "FOOTER"
	envTrace      = envPrefix + "TRACE"
	envLogFile    = envPrefix + "LOG_FILE"

	DefaultBaseURL = "http://localhost:8080"
	DefaultTimeout = 5 * time.Second
)

// Load parses configuration from CLI arguments, environment variables and an
// optional config file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment. Flags win over
// environment variables, which win over the config file.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	file := configPathFromArgs(args)
	if file == "" {
		file = envOrDefault(env, envConfig, "")
	}
	v, err := readFile(file)
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("lesson-console", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", file, "path to a YAML, TOML or JSON config file")
	baseURL := fs.String("base-url", envOrDefault(env, envBaseURL, v.GetString("base-url")), "root URL of the lesson API")
	timeout := fs.Duration("timeout", envOrDuration(env, envTimeout, v.GetDuration("timeout")), "per-request timeout for API calls")
	initial := fs.String("view", envOrDefault(env, envView, v.GetString("view")), "lesson to mount at startup instead of the home screen")
	width := fs.Int("width", envOrInt(env, envWidth, v.GetInt("width")), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, v.GetInt("height")), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, v.GetBool("footer")), "enable footer hint row (disabled by default)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, v.GetBool("trace")), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, v.GetString("log-file")), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			BaseURL:     strings.TrimSpace(*baseURL),
			Timeout:     *timeout,
			InitialView: strings.TrimSpace(*initial),
			Width:       *width,
			Height:      *height,
			ShowFooter:  *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: file,
		Flags: map[string]string{
			"config":  file,
			"baseURL": *baseURL,
			"timeout": timeout.String(),
			"view":    *initial,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func readFile(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("base-url", DefaultBaseURL)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("view", "")
	v.SetDefault("width", 0)
	v.SetDefault("height", 0)
	v.SetDefault("footer", false)
	v.SetDefault("trace", false)
	v.SetDefault("log-file", "")
	if strings.TrimSpace(path) == "" {
		return v, nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return v, nil
}

// configPathFromArgs finds -config/--config ahead of the full parse so the
// file can seed flag defaults.
func configPathFromArgs(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
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

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks values the flag parser cannot.
func Validate(cfg Config) error {
	var errs []error
	u, err := url.Parse(cfg.App.BaseURL)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("base-url: %w", err))
	case u.Scheme != "http" && u.Scheme != "https":
		errs = append(errs, fmt.Errorf("base-url must be an http(s) URL (got %q)", cfg.App.BaseURL))
	case u.Host == "":
		errs = append(errs, fmt.Errorf("base-url has no host (got %q)", cfg.App.BaseURL))
	}
	if cfg.App.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("timeout must be > 0 (got %s)", cfg.App.Timeout))
	}
	if cfg.App.InitialView != "" {
		registry := view.BuildRegistry()
		if _, ok := registry.ParseID(cfg.App.InitialView); !ok {
			known := make([]string, 0, len(registry.IDs()))
			for _, id := range registry.IDs() {
				known = append(known, string(id))
			}
			errs = append(errs, fmt.Errorf("view %q is not a registered lesson (want one of %s)", cfg.App.InitialView, strings.Join(known, ", ")))
		}
	}
	return errors.Join(errs...)
}
