package core

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerFrom_Default(t *testing.T) {
	assert.Equal(t, logrus.StandardLogger(), loggerFrom(context.Background()))
}

func TestLoggerFrom_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), loggerKey, "not a logger")
	assert.Equal(t, logrus.StandardLogger(), loggerFrom(ctx))
}

func TestWithLogger_ReceivesPipelineWarnings(t *testing.T) {
	logger, hook := test.NewNullLogger()
	ctx := WithLogger(context.Background(), logger)

	_, err := Run(ctx, Request{Sources: []Source{{Name: "broken.csv", Reader: errReader{}}}})
	require.ErrorIs(t, err, ErrNoData)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "broken.csv", entry.Data["source"])
}
