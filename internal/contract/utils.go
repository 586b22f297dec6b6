// Package contract provides configuration and shared utilities for the heatpump CLI.
package contract

import (
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
)

// Efficiency label constants.
const (
	ExcellentValue = "Excellent" // Excellent value
	GoodValue      = "Good"      // Good value
	FairValue      = "Fair"      // Fair value
	PoorValue      = "Poor"      // Poor value
)

// Color variables for console output.
var (
	ExcellentColor = color.New(color.FgGreen, color.Bold) // ExcellentColor marks a seasonal COP of 4 or more.
	GoodColor      = color.New(color.FgCyan)              // GoodColor marks a typical modern unit.
	FairColor      = color.New(color.FgYellow)            // FairColor marks a unit worth checking.
	PoorColor      = color.New(color.FgRed, color.Bold)   // PoorColor marks little gain over resistive heating.
)

// GetPlainLabel returns a plain text label for an efficiency percentage
// (generated / consumed * 100). This is the core logic used for
// CSV, JSON, and table printing.
func GetPlainLabel(efficiency float64) string {
	switch {
	case efficiency >= 400:
		return ExcellentValue
	case efficiency >= 300:
		return GoodValue
	case efficiency >= 200:
		return FairValue
	default:
		return PoorValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(efficiency float64) string {
	text := GetPlainLabel(efficiency)

	switch text {
	case ExcellentValue:
		return ExcellentColor.Sprint(text)
	case GoodValue:
		return GoodColor.Sprint(text)
	case FairValue:
		return FairColor.Sprint(text)
	default: // "Poor"
		return PoorColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It returns os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// ParseDate parses a YYYY-MM-DD day. The empty string yields nil.
func ParseDate(s string) (*civil.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}

// ConfigureLogging points the standard logrus logger at w with the given level.
func ConfigureLogging(w io.Writer, level logrus.Level) {
	logrus.SetOutput(w)
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{QuoteEmptyFields: true, FullTimestamp: true})
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	logrus.WithError(err).Error(msg)
	os.Exit(1)
}

// LogWarn logs a warning message.
func LogWarn(msg string, err error) {
	logrus.WithError(err).Warn(msg)
}
