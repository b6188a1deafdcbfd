package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-form-composer/internal/document"
	"github.com/deploymenttheory/go-form-composer/internal/evaluation"
	"github.com/deploymenttheory/go-form-composer/internal/logger"
)

var summaryFlags struct {
	process string
	output  string
}

// summaryCmd renders every rule of a process as text
var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the visibility, requiredness and routing rules of a process",
	RunE: func(cmd *cobra.Command, args []string) error {
		process, err := document.Load(summaryFlags.process)
		if err != nil {
			return err
		}

		for _, problem := range document.Check(process) {
			logger.LogWarn("Process document problem", map[string]interface{}{
				"process": process.ID,
				"problem": problem.Error(),
			})
		}

		summary := evaluation.Summarize(process)
		if summaryFlags.output != "text" {
			return writeOutput(cmd.OutOrStdout(), outputFormat(summaryFlags.output), summary)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s\n", summary.Name)
		for _, rule := range summary.Rules {
			if rule.Kind == evaluation.RuleSkill {
				fmt.Fprintf(w, "  [%s] %s -> %s: %s\n", rule.StageID, rule.Owner, rule.Skill, rule.Text)
				continue
			}
			fmt.Fprintf(w, "  [%s] %s %s: %s\n", rule.StageID, rule.Owner, rule.Kind, rule.Text)
		}
		for _, pattern := range summary.Patterns {
			fmt.Fprintf(w, "  %s validation %s: %s\n", pattern.Field, pattern.Type, pattern.Pattern)
		}
		return nil
	},
}

func init() {
	summaryCmd.Flags().StringVarP(&summaryFlags.process, "process", "p", "", "process document")
	summaryCmd.Flags().StringVarP(&summaryFlags.output, "output", "o", "", "output format: json, yaml or text")
	summaryCmd.MarkFlagRequired("process")
}
