package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/username/kalender/internal/calendar"
	"github.com/username/kalender/internal/holiday"
	"github.com/username/kalender/internal/workbook"
	"github.com/username/kalender/pkg/dateutil"
)

const (
	envPrefix   = "KALENDER"
	envFile     = ".env"
	yearPattern = "{year}"
)

// Config represents application configuration
type Config struct {
	Year    int          `mapstructure:"year"`
	Output  OutputConfig `mapstructure:"output"`
	Columns []string     `mapstructure:"columns"`
	Labels  LabelsConfig `mapstructure:"labels"`
	Layout  LayoutConfig `mapstructure:"layout"`
	Log     LogConfig    `mapstructure:"log"`
}

// OutputConfig represents where the workbook is written
type OutputConfig struct {
	Dir  string `mapstructure:"dir"`
	File string `mapstructure:"file"` // may contain {year}
}

// LabelsConfig represents display labels (weekdays Monday-first)
type LabelsConfig struct {
	Weekdays     []string `mapstructure:"weekdays"`
	Months       []string `mapstructure:"months"`
	MonthAbbrevs []string `mapstructure:"month_abbrevs"`
}

// LayoutConfig represents the printed page geometry
type LayoutConfig struct {
	PageWidthChars  float64 `mapstructure:"page_width_chars"`
	PageHeightCM    float64 `mapstructure:"page_height_cm"`
	MarginTopCM     float64 `mapstructure:"margin_top_cm"`
	MarginRightCM   float64 `mapstructure:"margin_right_cm"`
	MarginBottomCM  float64 `mapstructure:"margin_bottom_cm"`
	MarginLeftCM    float64 `mapstructure:"margin_left_cm"`
	HeaderReserveCM float64 `mapstructure:"header_reserve_cm"`
	RowsPerPage     int     `mapstructure:"rows_per_page"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file, environment and defaults.
// An empty configPath searches the default locations and tolerates a missing file.
func Load(configPath string) (*Config, error) {
	// Values from .env never override the real environment
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
	}

	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.kalender")
		v.AddConfigPath("/etc/kalender")
	}

	// Read environment variables
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
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

func setDefaults(v *viper.Viper) {
	labels := calendar.DefaultLabels()
	layout := workbook.DefaultLayout()

	v.SetDefault("year", dateutil.Today().Year())
	v.SetDefault("output.dir", ".")
	v.SetDefault("output.file", "Kalender_"+yearPattern+".xlsx")
	v.SetDefault("columns", workbook.DefaultColumns)
	v.SetDefault("labels.weekdays", labels.Weekdays[:])
	v.SetDefault("labels.months", labels.Months[:])
	v.SetDefault("labels.month_abbrevs", labels.MonthAbbrevs[:])
	v.SetDefault("layout.page_width_chars", layout.PageWidthChars)
	v.SetDefault("layout.page_height_cm", layout.PageHeightCM)
	v.SetDefault("layout.margin_top_cm", layout.MarginTopCM)
	v.SetDefault("layout.margin_right_cm", layout.MarginRightCM)
	v.SetDefault("layout.margin_bottom_cm", layout.MarginBottomCM)
	v.SetDefault("layout.margin_left_cm", layout.MarginLeftCM)
	v.SetDefault("layout.header_reserve_cm", layout.HeaderReserveCM)
	v.SetDefault("layout.rows_per_page", layout.RowsPerPage)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := holiday.ValidateYear(c.Year); err != nil {
		return fmt.Errorf("year: %w", err)
	}

	if strings.TrimSpace(c.Output.File) == "" {
		return fmt.Errorf("output.file is required")
	}

	if len(c.Columns) == 0 {
		return fmt.Errorf("columns must not be empty")
	}

	if _, err := c.CalendarLabels(); err != nil {
		return err
	}

	if err := c.WorkbookLayout().Validate(); err != nil {
		return fmt.Errorf("layout: %w", err)
	}

	return nil
}

// OutputPath returns the workbook path with {year} expanded
func (c *Config) OutputPath() string {
	name := strings.ReplaceAll(c.Output.File, yearPattern, strconv.Itoa(c.Year))
	if c.Output.Dir == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Output.Dir, name)
}

// CalendarLabels converts the configured label lists into calendar labels
func (c *Config) CalendarLabels() (calendar.Labels, error) {
	var labels calendar.Labels

	if len(c.Labels.Weekdays) != len(labels.Weekdays) {
		return labels, fmt.Errorf("labels.weekdays must have %d entries, got %d", len(labels.Weekdays), len(c.Labels.Weekdays))
	}
	if len(c.Labels.Months) != len(labels.Months) {
		return labels, fmt.Errorf("labels.months must have %d entries, got %d", len(labels.Months), len(c.Labels.Months))
	}
	if len(c.Labels.MonthAbbrevs) != len(labels.MonthAbbrevs) {
		return labels, fmt.Errorf("labels.month_abbrevs must have %d entries, got %d", len(labels.MonthAbbrevs), len(c.Labels.MonthAbbrevs))
	}

	copy(labels.Weekdays[:], c.Labels.Weekdays)
	copy(labels.Months[:], c.Labels.Months)
	copy(labels.MonthAbbrevs[:], c.Labels.MonthAbbrevs)

	if err := labels.Validate(); err != nil {
		return labels, err
	}
	return labels, nil
}

// WorkbookLayout returns the page geometry for the workbook writer
func (c *Config) WorkbookLayout() workbook.Layout {
	return workbook.Layout{
		PageWidthChars:  c.Layout.PageWidthChars,
		PageHeightCM:    c.Layout.PageHeightCM,
		MarginTopCM:     c.Layout.MarginTopCM,
		MarginRightCM:   c.Layout.MarginRightCM,
		MarginBottomCM:  c.Layout.MarginBottomCM,
		MarginLeftCM:    c.Layout.MarginLeftCM,
		HeaderReserveCM: c.Layout.HeaderReserveCM,
		RowsPerPage:     c.Layout.RowsPerPage,
	}
}

// GetLogLevel returns the log level, defaulting to info
func (c *LogConfig) GetLogLevel() string {
	if c.Level == "" {
		return "info"
	}
	return c.Level
}
