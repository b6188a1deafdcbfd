package logger

import (
	"fmt"
	"path/filepath"

	"github.com/deploymenttheory/go-form-composer/internal/common/fsutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Global logger instance. It discards everything until InitLogger is called.
var Logger = zap.NewNop().Sugar()

// LoggerConfig contains configuration for the logger
type LoggerConfig struct {
	Debug     bool   // Enable debug level logging
	LogFormat string // "json" or "human"
	LogFile   string // Path to log file (optional)
}

// DefaultConfig returns a default configuration
func DefaultConfig() LoggerConfig {
	return LoggerConfig{
		Debug:     false,
		LogFormat: "human",
	}
}

// InitLogger initializes the logger with the provided configuration
func InitLogger(config LoggerConfig) error {
	var zapConfig zap.Config

	// Configure log format
	if config.LogFormat == "json" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapConfig.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	// Diagnostics go to stderr so command output on stdout stays parseable
	outputPaths := []string{"stderr"}
	if config.LogFile != "" {
		logDir := filepath.Dir(config.LogFile)
		if err := fsutil.EnsureDir(logDir); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		outputPaths = append(outputPaths, config.LogFile)
	}
	zapConfig.OutputPaths = outputPaths

	if config.Debug {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, err := zapConfig.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	Logger = logger.Sugar()
	return nil
}

// Log functions
func LogInfo(message string, fields map[string]interface{}) {
	Logger.Infow(message, flattenFields(fields)...)
}

func LogWarn(message string, fields map[string]interface{}) {
	Logger.Warnw(message, flattenFields(fields)...)
}

func LogError(message string, err error, fields map[string]interface{}) {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	if err != nil {
		fields["error"] = err.Error()
	}
	Logger.Errorw(message, flattenFields(fields)...)
}

func LogDebug(message string, fields map[string]interface{}) {
	Logger.Debugw(message, flattenFields(fields)...)
}

// WithFields returns a logger with multiple fields added to every log
func WithFields(fields map[string]interface{}) *zap.SugaredLogger {
	return Logger.With(flattenFields(fields)...)
}

// Helper function to format key-value pairs for logging
func flattenFields(fields map[string]interface{}) []interface{} {
	var flat []interface{}
	for k, v := range fields {
		flat = append(flat, k, v)
	}
	return flat
}

// Sync flushes any buffered log entries
func Sync() error {
	return Logger.Sync()
}
