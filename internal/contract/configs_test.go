package contract

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/huangsam/heatpump/schema"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns raw input that passes validation.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		FileA:     "a.csv",
		Output:    "text",
		Precision: DefaultPrecision,
		Color:     "yes",
		LogLevel:  DefaultLogLevel,
	}
}

func TestProcessAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*ConfigRawInput)
		expectError string
	}{
		{name: "valid minimal config", mutate: func(*ConfigRawInput) {}},
		{name: "output is case-insensitive", mutate: func(in *ConfigRawInput) { in.Output = " CSV " }},
		{name: "valid window", mutate: func(in *ConfigRawInput) { in.Start, in.End = "2024-01-01", "2024-01-31" }},
		{name: "inverted window is left to the pipeline", mutate: func(in *ConfigRawInput) { in.Start, in.End = "2024-02-01", "2024-01-01" }},
		{
			name:        "invalid output",
			mutate:      func(in *ConfigRawInput) { in.Output = "yaml" },
			expectError: "invalid --output value 'yaml'",
		},
		{
			name:        "invalid start date",
			mutate:      func(in *ConfigRawInput) { in.Start = "01/02/2024" },
			expectError: "invalid --start date",
		},
		{
			name:        "precision too high",
			mutate:      func(in *ConfigRawInput) { in.Precision = 9 },
			expectError: "--precision cannot exceed 6",
		},
		{
			name:        "negative width",
			mutate:      func(in *ConfigRawInput) { in.Width = -1 },
			expectError: "--width must be at least 0",
		},
		{
			name:        "invalid color",
			mutate:      func(in *ConfigRawInput) { in.Color = "maybe" },
			expectError: "invalid --color value",
		},
		{
			name:        "invalid log level",
			mutate:      func(in *ConfigRawInput) { in.LogLevel = "chatty" },
			expectError: "invalid --log-level value 'chatty'",
		},
		{
			name:        "parquet needs an output file",
			mutate:      func(in *ConfigRawInput) { in.Output = "parquet" },
			expectError: "--output-file is required for parquet output",
		},
		{
			name:        "invalid addr",
			mutate:      func(in *ConfigRawInput) { in.Addr = "localhost" },
			expectError: "invalid --addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(input)
			cfg := &Config{}

			err := ProcessAndValidate(cfg, input)
			if tt.expectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.expectError)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestProcessAndValidate_PopulatesConfig(t *testing.T) {
	input := validInput()
	input.FileB = "b.csv"
	input.Start = "2024-01-02"
	input.Output = "json"
	input.OutputFile = "out.json"
	input.Color = "no"
	input.LogLevel = "debug"
	input.Width = 100

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))

	assert.Equal(t, "a.csv", cfg.FileA)
	assert.Equal(t, "b.csv", cfg.FileB)
	require.NotNil(t, cfg.Start)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.January, Day: 2}, *cfg.Start)
	assert.Nil(t, cfg.End)
	assert.Equal(t, schema.JSONOut, cfg.Output)
	assert.Equal(t, "out.json", cfg.OutputFile)
	assert.False(t, cfg.UseColors)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, DefaultAddr, cfg.Addr)
}

func TestProcessAndValidate_SecondFileOnly(t *testing.T) {
	input := validInput()
	input.FileA = ""
	input.FileB = "b.csv"

	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(cfg, input))
	assert.Equal(t, "b.csv", cfg.FileA)
	assert.Empty(t, cfg.FileB)
}

func TestRevalidateWindow(t *testing.T) {
	start := civil.Date{Year: 2023, Month: time.May, Day: 1}
	cfg := &Config{Start: &start}

	require.NoError(t, RevalidateWindow(cfg, "", " 2024-03-01 "))
	assert.Nil(t, cfg.Start)
	require.NotNil(t, cfg.End)
	assert.Equal(t, "2024-03-01", cfg.End.String())

	err := RevalidateWindow(cfg, "March", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid start date 'March'")
}

func TestConfigClone(t *testing.T) {
	start := civil.Date{Year: 2024, Month: time.January, Day: 1}
	cfg := &Config{FileA: "a.csv", Start: &start, Precision: 2}

	clone := cfg.Clone()
	clone.Start.Day = 15
	clone.FileA = "other.csv"

	assert.Equal(t, 1, cfg.Start.Day, "clone must not share the start date")
	assert.Equal(t, "a.csv", cfg.FileA)
	assert.Nil(t, clone.End)
}
