package contract

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "no output at all", input: 0.0, expected: PoorValue},
		{name: "just before fair", input: 199.99, expected: PoorValue},
		{name: "exactly fair", input: 200.0, expected: FairValue},
		{name: "just before good", input: 299.99, expected: FairValue},
		{name: "exactly good", input: 300.0, expected: GoodValue},
		{name: "just before excellent", input: 399.99, expected: GoodValue},
		{name: "exactly excellent", input: 400.0, expected: ExcellentValue},
		{name: "very high", input: 612.5, expected: ExcellentValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetPlainLabel(tt.input))
		})
	}
}

func TestGetColorLabel(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	assert.Equal(t, ExcellentValue, GetColorLabel(450))
	assert.Equal(t, PoorValue, GetColorLabel(10))
}

func TestSelectOutputFile(t *testing.T) {
	f, err := SelectOutputFile("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, f)

	path := filepath.Join(t.TempDir(), "out.csv")
	f, err = SelectOutputFile(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.FileExists(t, path)
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = ParseDate("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.February, Day: 29}, *d)

	_, err = ParseDate("2023-02-29")
	assert.Error(t, err)
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.True(t, v, s)
	}
	for _, s := range []string{"no", "False", "0"} {
		v, err := ParseBoolString(s)
		require.NoError(t, err)
		assert.False(t, v, s)
	}
	_, err := ParseBoolString("sometimes")
	assert.Error(t, err)
}

func TestConfigureLogging(t *testing.T) {
	prevOut, prevLevel := logrus.StandardLogger().Out, logrus.GetLevel()
	defer func() {
		logrus.SetOutput(prevOut)
		logrus.SetLevel(prevLevel)
	}()

	var buf bytes.Buffer
	ConfigureLogging(&buf, logrus.WarnLevel)

	logrus.Info("hidden")
	LogWarn("Cannot read file", os.ErrNotExist)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "Cannot read file")
	assert.Contains(t, out, "file does not exist")
}
