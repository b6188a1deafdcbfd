package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-form-composer/internal/logic"
	"github.com/deploymenttheory/go-form-composer/internal/model"
)

// patternsCmd lists the built-in validation patterns
var patternsCmd = &cobra.Command{
	Use:   "patterns",
	Short: "List the built-in validation types and their patterns",
	Run: func(cmd *cobra.Command, args []string) {
		for _, kind := range model.ValidationTypes {
			pattern, ok := logic.ValidationPattern(kind)
			if !ok {
				pattern = "-"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", kind, pattern)
		}
	},
}
