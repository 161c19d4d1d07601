package main

import (
	"fmt"

	"github.com/beevik/etree"
	"github.com/spf13/cobra"

	"label-translator/internal/output"
	"label-translator/internal/units"
)

type unitsOptions struct {
	config string
	output string
	list   bool
}

func newUnitsCmd(root *rootOptions) *cobra.Command {
	opts := &unitsOptions{}

	cmd := &cobra.Command{
		Use:   "units [label.xml]",
		Short: "Normalize the unit attributes of an XML label",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := units.LoadFile(opts.config)
			if err != nil {
				return err
			}

			if opts.list {
				for _, k := range m.Keys() {
					canonical, _ := m.Lookup(k)
					fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s\n", k, canonical)
				}

				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("an XML label is required unless --list is given")
			}

			doc := etree.NewDocument()
			if err := doc.ReadFromFile(args[0]); err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			if err := units.Translate(doc, m); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			data, err := output.FormatXML(doc)
			if err != nil {
				return err
			}

			if opts.output == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if err := output.WriteAtomic(opts.output, data); err != nil {
				return fmt.Errorf("writing %s: %w", opts.output, err)
			}

			root.log.Infof("wrote %s", opts.output)

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "Unit config (PVL or YAML)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&opts.list, "list", false, "Print the unit map and exit")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
