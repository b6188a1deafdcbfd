// Package tooling is the embedding API for host surfaces such as an editor
// preview or an export job. It loads process documents through the same
// upgrade and sanitization pass as the CLI and evaluates them with the
// shared logic engine.
package tooling

import (
	"context"
	"fmt"
	"strings"

	"github.com/deploymenttheory/go-form-composer/internal/config"
	"github.com/deploymenttheory/go-form-composer/internal/document"
	"github.com/deploymenttheory/go-form-composer/internal/evaluation"
	"github.com/deploymenttheory/go-form-composer/internal/logger"
	"github.com/deploymenttheory/go-form-composer/internal/model"
)

// Aliases so embedding programs can name the types they receive
type (
	Process  = model.Process
	FormData = model.FormData
	Report   = evaluation.Report
	Summary  = evaluation.Summary
)

// InitOptions contains options for initializing the tooling API
type InitOptions struct {
	ConfigFile  string // Path to configuration file
	Debug       bool   // Enable debug logging
	LogFormat   string // Log format: "human" or "json"
	LogFile     string // Path to log file
	SuppressLog bool   // Suppress all logging
}

// ProcessCheck is a loaded process together with its authoring problems
type ProcessCheck struct {
	Process  *Process
	Problems []string
}

var initialized bool

// Initialize initializes the tooling API with the given options
func Initialize(options InitOptions) error {
	if initialized {
		return nil // Already initialized
	}

	configErr := config.Initialize(options.ConfigFile)

	// Update config with provided options
	if options.Debug {
		config.Instance.Debug = true
	}

	if options.LogFormat != "" {
		config.Instance.LogFormat = options.LogFormat
	}

	if options.LogFile != "" {
		config.Instance.LogFile = options.LogFile
	}

	if !options.SuppressLog {
		logConfig := logger.LoggerConfig{
			Debug:     config.Instance.Debug,
			LogFormat: config.Instance.LogFormat,
			LogFile:   config.Instance.LogFile,
		}

		if err := logger.InitLogger(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		logger.LogInfo("Tooling API initialized", map[string]interface{}{
			"config_file": options.ConfigFile,
			"debug":       options.Debug,
			"log_format":  options.LogFormat,
		})

		if configErr != nil {
			logger.LogWarn("Configuration initialization warning", map[string]interface{}{
				"error": configErr.Error(),
			})
		}
	}

	initialized = true
	return nil
}

// DefaultOptions returns the default initialization options
func DefaultOptions() InitOptions {
	return InitOptions{
		Debug:       false,
		LogFormat:   "human",
		SuppressLog: false,
	}
}

func ensureInitialized() error {
	if initialized {
		return nil
	}
	if err := Initialize(DefaultOptions()); err != nil {
		return fmt.Errorf("failed to initialize tooling API: %w", err)
	}
	return nil
}

// LoadProcess reads, upgrades and sanitizes a process document file
func LoadProcess(path string) (*ProcessCheck, error) {
	if err := ensureInitialized(); err != nil {
		return nil, err
	}

	process, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	return checked(process), nil
}

// ParseProcess upgrades and sanitizes a document held in memory, such as
// the output of a content generator. format is json, yaml or plist.
func ParseProcess(data []byte, format string) (*ProcessCheck, error) {
	if err := ensureInitialized(); err != nil {
		return nil, err
	}

	f, err := document.FormatFromExtension(strings.ToLower(strings.TrimPrefix(format, ".")))
	if err != nil {
		return nil, err
	}

	process, err := document.Parse(data, f)
	if err != nil {
		return nil, err
	}
	return checked(process), nil
}

func checked(process *Process) *ProcessCheck {
	result := &ProcessCheck{Process: process, Problems: []string{}}
	for _, problem := range document.Check(process) {
		result.Problems = append(result.Problems, problem.Error())
	}
	return result
}

// InitialFormData returns the snapshot a new form starts from
func InitialFormData(process *Process) FormData {
	return evaluation.InitialFormData(process)
}

// Evaluate evaluates a process against one snapshot
func Evaluate(process *Process, data FormData) *Report {
	return evaluation.Evaluate(process, data)
}

// EvaluateAll evaluates many snapshots with the configured concurrency
func EvaluateAll(ctx context.Context, process *Process, snapshots []FormData) ([]*Report, error) {
	if err := ensureInitialized(); err != nil {
		return nil, err
	}
	return (&evaluation.Evaluator{}).EvaluateBatch(ctx, process, snapshots, config.Instance.Evaluation.Concurrency)
}

// Summarize renders every rule of a process as text
func Summarize(process *Process) *Summary {
	return evaluation.Summarize(process)
}

// SaveProcess writes a process document; format and compression follow the
// file extension.
func SaveProcess(process *Process, path string) error {
	if err := ensureInitialized(); err != nil {
		return err
	}
	return document.Save(process, path)
}

// GetVersion returns the current version of the tooling API
func GetVersion() string {
	return "0.1.0"
}

// Shutdown performs any necessary cleanup before the application exits
func Shutdown() error {
	if initialized {
		logger.LogInfo("Tooling API shutting down", nil)
		logger.Sync()
	}
	return nil
}
