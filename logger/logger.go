package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the process-wide logger used by the CLI entrypoint.
	// Library packages should not reach for this directly; they take a
	// *zap.SugaredLogger via a functional option instead.
	Logger *zap.SugaredLogger
	// JSONOutput tracks whether the global logger is currently emitting JSON.
	JSONOutput bool
)

func init() {
	// Safe no-op logger at package load so library use before Initialize
	// never panics.
	Logger = zap.NewNop().Sugar()
}

// Initialize sets up the global logger at VerbosityUser (warn and above).
// jsonOutput selects the production JSON encoder (batch/server use);
// otherwise a human-readable minimal console encoder is used.
func Initialize(jsonOutput bool) error {
	return InitializeAtVerbosity(jsonOutput, VerbosityUser)
}

// InitializeAtVerbosity is Initialize with the level driven by a CLI
// verbosity count (-v, -vv, ...) via VerbosityToLevel.
func InitializeAtVerbosity(jsonOutput bool, verbosity int) error {
	JSONOutput = jsonOutput

	loadThemeFromConfig()

	level := VerbosityToLevel(verbosity)

	var zapLogger *zap.Logger
	var err error

	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(level)
		zapLogger, err = config.Build()
	} else {
		zapLogger = zap.New(
			zapcore.NewCore(
				newMinimalEncoder(),
				zapcore.AddSync(os.Stdout),
				level,
			),
		)
	}

	if err != nil {
		return err
	}

	Logger = zapLogger.Sugar()
	return nil
}

// loadThemeFromConfig reads NAMEMATCH_LOG_THEME. The log.theme key of the
// TOML/viper layer is not applied to the logger.
func loadThemeFromConfig() {
	if theme := os.Getenv("NAMEMATCH_LOG_THEME"); theme != "" {
		SetTheme(theme)
	}
}

// Cleanup flushes any buffered log entries. Sync errors on stdout/stderr
// are often spurious (EINVAL on some platforms) and safe to ignore.
func Cleanup() error {
	if Logger != nil {
		return Logger.Sync()
	}
	return nil
}

func Info(args ...interface{}) {
	if Logger != nil {
		Logger.Info(args...)
	}
}

func Infof(format string, args ...interface{}) {
	if Logger != nil {
		Logger.Infof(format, args...)
	}
}

func Infow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Infow(msg, keysAndValues...)
	}
}

func Error(args ...interface{}) {
	if Logger != nil {
		Logger.Error(args...)
	}
}

func Errorf(format string, args ...interface{}) {
	if Logger != nil {
		Logger.Errorf(format, args...)
	}
}

func Errorw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Errorw(msg, keysAndValues...)
	}
}

func Warn(args ...interface{}) {
	if Logger != nil {
		Logger.Warn(args...)
	}
}

func Warnf(format string, args ...interface{}) {
	if Logger != nil {
		Logger.Warnf(format, args...)
	}
}

func Warnw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Warnw(msg, keysAndValues...)
	}
}

func Debug(args ...interface{}) {
	if Logger != nil {
		Logger.Debug(args...)
	}
}

func Debugf(format string, args ...interface{}) {
	if Logger != nil {
		Logger.Debugf(format, args...)
	}
}

func Debugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		Logger.Debugw(msg, keysAndValues...)
	}
}
