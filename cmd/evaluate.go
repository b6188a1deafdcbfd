package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deploymenttheory/go-form-composer/internal/common/errors"
	"github.com/deploymenttheory/go-form-composer/internal/config"
	"github.com/deploymenttheory/go-form-composer/internal/document"
	"github.com/deploymenttheory/go-form-composer/internal/evaluation"
	"github.com/deploymenttheory/go-form-composer/internal/model"
)

var evaluateFlags struct {
	process string
	data    []string
	output  string
	strict  bool
}

// evaluateCmd evaluates a process against one or more form data snapshots
var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a process document against form data",
	Long: `Evaluate reports section and field visibility, requiredness, missing
values, validation messages and the routed skill of every stage.

Each --data file is one snapshot; several are evaluated concurrently. Without
--data the snapshot is seeded from element default values.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		process, err := document.Load(evaluateFlags.process)
		if err != nil {
			return err
		}

		snapshots := make([]model.FormData, 0, len(evaluateFlags.data))
		for _, path := range evaluateFlags.data {
			data, err := document.LoadFormData(path)
			if err != nil {
				return err
			}
			snapshots = append(snapshots, data)
		}
		if len(snapshots) == 0 {
			snapshots = append(snapshots, evaluation.InitialFormData(process))
		}

		reports, err := (&evaluation.Evaluator{}).EvaluateBatch(cmd.Context(), process, snapshots, config.Instance.Evaluation.Concurrency)
		if err != nil {
			return err
		}

		var out interface{} = reports
		if len(reports) == 1 {
			out = reports[0]
		}
		if err := writeOutput(cmd.OutOrStdout(), outputFormat(evaluateFlags.output), out); err != nil {
			return err
		}

		if evaluateFlags.strict {
			for i, report := range reports {
				if !report.Valid {
					return fmt.Errorf("%w: snapshot %d has %d missing and %d invalid fields",
						errors.ErrInvalidFormData, i+1, len(report.MissingFields), len(report.InvalidFields))
				}
			}
		}
		return nil
	},
}

func init() {
	evaluateCmd.Flags().StringVarP(&evaluateFlags.process, "process", "p", "", "process document (.json, .yaml, .plist, optionally .gz/.bz2/.xz)")
	evaluateCmd.Flags().StringArrayVarP(&evaluateFlags.data, "data", "d", nil, "form data snapshot (.json or .yaml), repeatable")
	evaluateCmd.Flags().StringVarP(&evaluateFlags.output, "output", "o", "", "output format: json or yaml")
	evaluateCmd.Flags().BoolVar(&evaluateFlags.strict, "strict", false, "exit with an error when any snapshot is incomplete or invalid")
	evaluateCmd.MarkFlagRequired("process")
}
