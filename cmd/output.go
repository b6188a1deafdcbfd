package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/deploymenttheory/go-form-composer/internal/common/errors"
	"github.com/deploymenttheory/go-form-composer/internal/config"
)

// outputFormat returns the flag value when set, else the configured default
func outputFormat(flag string) string {
	if flag != "" {
		return flag
	}
	if config.Instance.Evaluation.Output != "" {
		return config.Instance.Evaluation.Output
	}
	return "json"
}

// writeOutput encodes v to w as json or yaml
func writeOutput(w io.Writer, format string, v interface{}) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: output format %q", errors.ErrInvalidArgument, format)
	}
}
