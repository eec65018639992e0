package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/username/highlight-calendar/internal/render"
)

const (
	DefaultCalendarFile = "calendar.toml"
	DefaultOutputFile   = "calendar.pdf"
	EnvPrefix           = "HIGHLIGHT_CALENDAR"
)

// Config represents runtime settings. They come from the [render] and [log]
// tables of the calendar file, HIGHLIGHT_CALENDAR_* variables and flags.
type Config struct {
	Render RenderConfig `mapstructure:"render"`
	Log    LogConfig    `mapstructure:"log"`
}

// RenderConfig represents document output settings
type RenderConfig struct {
	Output   string `mapstructure:"output" validate:"required"`
	Layout   string `mapstructure:"layout" validate:"required,layout"`
	Title    string `mapstructure:"title"`
	PageSize string `mapstructure:"page_size" validate:"required,oneof=A3 A4 A5 Letter Legal"`
	Quiet    bool   `mapstructure:"quiet"`
}

// LogConfig represents logging settings
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error"`
}

// flagKeys maps command-line flags to settings keys
var flagKeys = map[string]string{
	"output":    "render.output",
	"layout":    "render.layout",
	"title":     "render.title",
	"page-size": "render.page_size",
	"quiet":     "render.quiet",
	"log-file":  "log.file",
	"log-level": "log.level",
}

// LoadEnv loads a .env file into the process environment if one exists
func LoadEnv(filename string) error {
	if err := godotenv.Load(filename); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", filename, err)
	}
	return nil
}

// Load loads settings from the calendar file, the environment and flags.
// flags may be nil.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault("render.output", DefaultOutputFile)
	v.SetDefault("render.layout", render.LayoutMonth)
	v.SetDefault("render.title", "Calendar")
	v.SetDefault("render.page_size", "A4")
	v.SetDefault("render.quiet", false)
	v.SetDefault("log.level", "info")

	if configPath == "" {
		configPath = DefaultCalendarFile
	}
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.ExpandEnvVars()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("layout", validLayout); err != nil {
		return fmt.Errorf("failed to register layout validation: %w", err)
	}

	if err := validate.Struct(c); err != nil {
		var invalid validator.ValidationErrors
		if errors.As(err, &invalid) && len(invalid) > 0 {
			fe := invalid[0]
			switch fe.Tag() {
			case "oneof":
				return fmt.Errorf("%s must be one of [%s], got %q", settingName(fe.Namespace()), fe.Param(), fe.Value())
			case "layout":
				return fmt.Errorf("%s must be one of [%s], got %q", settingName(fe.Namespace()), strings.Join(render.Layouts, " "), fe.Value())
			}
			return fmt.Errorf("%s is %s", settingName(fe.Namespace()), fe.Tag())
		}
		return err
	}
	return nil
}

// validLayout accepts the page layouts the renderer can draw
func validLayout(fl validator.FieldLevel) bool {
	return slices.Contains(render.Layouts, fl.Field().String())
}

// settingName turns Config.Render.PageSize into render.page_size
func settingName(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 0 && parts[0] == "Config" {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = snake(p)
	}
	return strings.Join(parts, ".")
}

func snake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ExpandEnvVars expands environment variables in file paths
func (c *Config) ExpandEnvVars() {
	c.Render.Output = os.ExpandEnv(c.Render.Output)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
