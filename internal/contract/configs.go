package contract

import (
	"errors"
	"fmt"
	"net"
	"reflect"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/go-playground/validator/v10"
	"github.com/huangsam/heatpump/schema"
	"github.com/sirupsen/logrus"
)

// Default values for configuration.
const (
	DefaultPrecision = 2
	DefaultAddr      = ":8080"
	DefaultLogLevel  = "info"
	MaxPrecision     = 6
)

// Config holds the runtime configuration for one pipeline run.
// This struct is the "final, validated" config.
type Config struct {
	FileA      string
	FileB      string
	Start      *civil.Date // nil = earliest date of the merged series
	End        *civil.Date // nil = latest date of the merged series
	Output     schema.OutputMode
	OutputFile string
	Precision  int
	Width      int // Terminal width override (0 = auto-detect)
	UseColors  bool
	LogLevel   logrus.Level
	Addr       string
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	FileA      string `mapstructure:"file-a"`
	FileB      string `mapstructure:"file-b"`
	Start      string `mapstructure:"start" validate:"omitempty,datetime=2006-01-02"`
	End        string `mapstructure:"end" validate:"omitempty,datetime=2006-01-02"`
	Output     string `mapstructure:"output" validate:"oneof=text csv json parquet xlsx"`
	OutputFile string `mapstructure:"output-file"`
	Precision  int    `mapstructure:"precision" validate:"gte=0,lte=6"` // lte must match MaxPrecision
	Width      int    `mapstructure:"width" validate:"gte=0"`
	Color      string `mapstructure:"color"`
	LogLevel   string `mapstructure:"log-level" validate:"oneof=trace debug info warn warning error"`

	// --- Fields from serveCmd.Flags() ---
	Addr string `mapstructure:"addr"`
}

// inputValidator checks the tag rules of ConfigRawInput and reports fields by their flag names.
var inputValidator = newInputValidator()

func newInputValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Start != nil {
		start := *c.Start
		clone.Start = &start
	}
	if c.End != nil {
		end := *c.End
		clone.End = &end
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	input.Output = strings.ToLower(strings.TrimSpace(input.Output))
	input.LogLevel = strings.ToLower(strings.TrimSpace(input.LogLevel))
	if err := validateTags(input); err != nil {
		return err
	}
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	return processDateWindow(cfg, input.Start, input.End)
}

// RevalidateWindow parses a per-request date window on top of an existing config.
// Empty strings leave the window open on that side.
func RevalidateWindow(cfg *Config, start, end string) error {
	cfg.Start, cfg.End = nil, nil
	return processDateWindow(cfg, strings.TrimSpace(start), strings.TrimSpace(end))
}

// validateTags runs the declarative rules and folds the failures into one error.
func validateTags(input *ConfigRawInput) error {
	err := inputValidator.Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, formatFieldError(fe))
	}
	return errors.New(strings.Join(msgs, "; "))
}

// formatFieldError renders a validation failure in terms of the flag the user typed.
func formatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("invalid --%s value '%v'. must be one of: %s", fe.Field(), fe.Value(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return fmt.Sprintf("invalid --%s date '%v'. expected YYYY-MM-DD", fe.Field(), fe.Value())
	case "gte":
		return fmt.Sprintf("--%s must be at least %s (received %v)", fe.Field(), fe.Param(), fe.Value())
	case "lte":
		return fmt.Sprintf("--%s cannot exceed %s (received %v)", fe.Field(), fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("invalid --%s value '%v'", fe.Field(), fe.Value())
	}
}

// validateSimpleInputs transfers and checks the fields that need no date handling.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.FileA = strings.TrimSpace(input.FileA)
	cfg.FileB = strings.TrimSpace(input.FileB)
	cfg.OutputFile = input.OutputFile
	cfg.Output = schema.OutputMode(input.Output)
	cfg.Precision = input.Precision
	cfg.Width = input.Width

	if cfg.FileA == "" && cfg.FileB != "" {
		cfg.FileA, cfg.FileB = cfg.FileB, ""
	}

	if (cfg.Output == schema.ParquetOut || cfg.Output == schema.XLSXOut) && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for %s output", cfg.Output)
	}

	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	level, err := logrus.ParseLevel(input.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level value: %w", err)
	}
	cfg.LogLevel = level

	cfg.Addr = input.Addr
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if _, _, err := net.SplitHostPort(cfg.Addr); err != nil {
		return fmt.Errorf("invalid --addr '%s': %w", cfg.Addr, err)
	}
	return nil
}

// processDateWindow parses the optional start and end days.
// An inverted window is accepted here; the pipeline reports it as an empty result.
func processDateWindow(cfg *Config, start, end string) error {
	var err error
	if cfg.Start, err = ParseDate(start); err != nil {
		return fmt.Errorf("invalid start date '%s': %w", start, err)
	}
	if cfg.End, err = ParseDate(end); err != nil {
		return fmt.Errorf("invalid end date '%s': %w", end, err)
	}
	return nil
}
