package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
	"github.com/username/day-calendar/internal/calendar"
	"github.com/username/day-calendar/pkg/clocktime"
)

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Report   ReportConfig   `mapstructure:"report"`
	Log      LogConfig      `mapstructure:"log"`
	Events   []EventConfig  `mapstructure:"events"`
}

// CalendarConfig represents the shape of the calendar
type CalendarConfig struct {
	Name   string `mapstructure:"name"`
	Days   int    `mapstructure:"days"`
	SortBy string `mapstructure:"sort_by"` // "start_time", "name" or "duration"
}

// ReportConfig represents report output settings
type ReportConfig struct {
	Summary bool   `mapstructure:"summary"`
	Output  string `mapstructure:"output"` // Empty means stdout
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // Empty means console
	Level string `mapstructure:"level"`
}

// EventConfig represents an event to seed into the calendar
type EventConfig struct {
	Name     string `mapstructure:"name"`
	Day      int    `mapstructure:"day"`
	Start    string `mapstructure:"start"` // "09:00" or 900
	Duration int    `mapstructure:"duration"`
	Note     string `mapstructure:"note"`
}

// Load loads configuration from file
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.day-calendar")
		v.AddConfigPath("/etc/day-calendar")
	}

	// Environment variables, e.g. DAYCAL_CALENDAR_DAYS
	v.SetEnvPrefix("DAYCAL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("calendar.days", 7)
	v.SetDefault("calendar.sort_by", calendar.SortByStartTime)
	v.SetDefault("report.summary", true)
	v.SetDefault("log.level", "info")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	// Validate Calendar config
	if c.Calendar.Name == "" {
		return fmt.Errorf("calendar.name is required")
	}
	if c.Calendar.Days < 1 {
		return fmt.Errorf("calendar.days must be positive")
	}
	if _, err := calendar.CompareBy[string](c.Calendar.SortBy); err != nil {
		return fmt.Errorf("calendar.sort_by: %w", err)
	}

	// Validate events
	for i, ev := range c.Events {
		if ev.Name == "" {
			return fmt.Errorf("events[%d].name is required", i)
		}
		if ev.Day < 1 || ev.Day > c.Calendar.Days {
			return fmt.Errorf("events[%d].day must be between 1 and %d, got %d", i, c.Calendar.Days, ev.Day)
		}
		if _, err := clocktime.Parse(ev.Start); err != nil {
			return fmt.Errorf("events[%d].start: %w", i, err)
		}
		if ev.Duration < 1 {
			return fmt.Errorf("events[%d].duration must be positive", i)
		}
	}

	return nil
}

// StartTime returns the parsed HHMM start time.
// Call only on a validated config.
func (e *EventConfig) StartTime() int {
	v, err := clocktime.Parse(e.Start)
	if err != nil {
		return 0
	}
	return v
}

// GetLevel returns the log level, "info" by default
func (c *LogConfig) GetLevel() string {
	if c.Level == "" {
		return "info"
	}
	return strings.ToLower(c.Level)
}

// ExpandEnvVars expands environment variables in config strings
func (c *Config) ExpandEnvVars() {
	c.Calendar.Name = os.ExpandEnv(c.Calendar.Name)
	c.Report.Output = os.ExpandEnv(c.Report.Output)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
