package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"label-translator/internal/mapping"
)

func newCheckCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [table...]",
		Short: "Load and validate translation tables",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0

			for _, path := range args {
				tbl, err := mapping.LoadFile(path)
				if err != nil {
					failed++

					fmt.Fprintf(out, "FAIL %s\n  %v\n", path, err)

					continue
				}

				fmt.Fprintf(out, "ok   %s: %d groups, %d auto\n", path, len(tbl.Groups()), len(tbl.AutoGroups()))

				for _, d := range tbl.Diagnostics().All() {
					fmt.Fprintf(out, "  %s %s\n", d.Severity, d.String())
				}
			}

			root.log.Debugf("checked %d tables", len(args))

			if failed > 0 {
				return fmt.Errorf("%d of %d translation tables are invalid", failed, len(args))
			}

			return nil
		},
	}
}
