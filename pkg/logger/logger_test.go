package logger_test

import (
	"bowshell/pkg/logger"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment} {
		t.Run(env, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(env)
			})
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGetFallsBackToDefault(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx))

	custom := zap.NewExample()
	require.Equal(t, custom, logger.Get(logger.WithLogger(ctx, custom)))
}

func TestWithFieldsAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))
	ctx = logger.WithFields(ctx, zap.String("window", "main"))

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "navigation blocked", zap.String("url", "https://example.com"))
	logger.Error(ctx, "error message")

	require.Equal(t, 4, logs.Len())
	blocked := logs.FilterMessage("navigation blocked").All()
	require.Len(t, blocked, 1)
	require.Equal(t, zapcore.WarnLevel, blocked[0].Level)

	fields := blocked[0].ContextMap()
	require.Equal(t, "main", fields["window"])
	require.Equal(t, "https://example.com", fields["url"])
}

func TestIsDebug(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()
	require.True(t, logger.IsDebug(ctx))

	core, _ := observer.New(zapcore.InfoLevel)
	require.False(t, logger.IsDebug(logger.WithLogger(ctx, zap.New(core))))
}

func TestStdLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.StdLogger(ctx).Print("http: TLS handshake error")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, zapcore.ErrorLevel, entry.Level)
	require.Contains(t, entry.Message, "TLS handshake error")
}
