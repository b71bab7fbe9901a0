package context

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGetLogger(t *testing.T) {
	ctx := context.Background()
	actual, err := GetLogger(ctx)
	assert.Nil(t, actual)
	assert.ErrorIs(t, err, ErrNotInContext)

	l := zerolog.Nop()
	ctx = context.WithValue(ctx, LoggerCTXKey, &l)
	actual, err = GetLogger(ctx)
	assert.NoError(t, err)
	assert.Equal(t, &l, actual)
}

func TestGetStringFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), EnvironmentCTXKey, "production")

	env, err := GetStringFromContext(ctx, EnvironmentCTXKey)
	assert.NoError(t, err)
	assert.Equal(t, "production", env)

	ctx = context.WithValue(ctx, EnvironmentCTXKey, 42)
	_, err = GetStringFromContext(ctx, EnvironmentCTXKey)
	assert.ErrorIs(t, err, ErrValueWrongType)
}

func TestGetBoolFromContext(t *testing.T) {
	_, err := GetBoolFromContext(context.Background(), StrictDecodingCTXKey)
	assert.ErrorIs(t, err, ErrNotInContext)

	ctx := context.WithValue(context.Background(), StrictDecodingCTXKey, true)
	strict, err := GetBoolFromContext(ctx, StrictDecodingCTXKey)
	assert.NoError(t, err)
	assert.True(t, strict)
}

func TestGetLogLevelFromContext(t *testing.T) {
	level, err := GetLogLevelFromContext(context.Background(), LogLevelCTXKey)
	assert.ErrorIs(t, err, ErrNotInContext)
	assert.Equal(t, zerolog.InfoLevel, level)

	ctx := context.WithValue(context.Background(), LogLevelCTXKey, zerolog.WarnLevel)
	level, err = GetLogLevelFromContext(ctx, LogLevelCTXKey)
	assert.NoError(t, err)
	assert.Equal(t, zerolog.WarnLevel, level)
}
