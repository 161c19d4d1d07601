package main

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/spf13/cobra"

	"label-translator/internal/mapping"
	"label-translator/internal/output"
	"label-translator/internal/pvl"
	"label-translator/internal/resolve"
	"label-translator/internal/source"
	"label-translator/internal/units"
)

// Output formats.
const (
	formatPVL = "pvl"
	formatXML = "xml"
)

type translateOptions struct {
	tables []string
	format string
	output string
	units  string
	fold   bool
}

func newTranslateCmd(root *rootOptions) *cobra.Command {
	opts := &translateOptions{}

	cmd := &cobra.Command{
		Use:   "translate [input label]",
		Short: "Run the Auto pass of translation tables over an input label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := source.LoadFile(args[0])
			if err != nil {
				return err
			}

			tables := make([]*mapping.TranslationTable, 0, len(opts.tables))

			for _, path := range opts.tables {
				tbl, err := mapping.LoadFile(path)
				if err != nil {
					return err
				}

				tables = append(tables, tbl)
			}

			resolvers := make([]*resolve.Resolver, len(tables))
			for i, tbl := range tables {
				resolvers[i] = resolve.NewResolver(tbl, src,
					resolve.WithLogger(root.log),
					resolve.WithCaseInsensitiveMatch(opts.fold))
			}

			var data []byte

			switch strings.ToLower(opts.format) {
			case formatPVL:
				data, err = translateFlat(root, resolvers)
			case formatXML:
				data, err = translateXML(root, resolvers, opts.units)
			default:
				return fmt.Errorf("unknown output format %q, expected pvl or xml", opts.format)
			}

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

	cmd.Flags().StringArrayVarP(&opts.tables, "table", "t", nil, "Translation table (repeatable, applied in order)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatPVL, "Output format: pvl or xml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&opts.units, "units", "", "Unit config applied to XML output")
	cmd.Flags().BoolVar(&opts.fold, "ignore-case", false, "Match translation pairs case-insensitively")
	_ = cmd.MarkFlagRequired("table")

	return cmd
}

func translateFlat(root *rootOptions, resolvers []*resolve.Resolver) ([]byte, error) {
	label := pvl.NewDocument()

	for _, r := range resolvers {
		if err := output.NewFlatBuilder(r, root.log).Auto(label); err != nil {
			return nil, err
		}
	}

	return pvl.Format(label), nil
}

func translateXML(root *rootOptions, resolvers []*resolve.Resolver, unitConfig string) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	for _, r := range resolvers {
		if err := output.NewXMLBuilder(r, root.log).Auto(doc); err != nil {
			return nil, err
		}
	}

	if unitConfig != "" {
		m, err := units.LoadFile(unitConfig)
		if err != nil {
			return nil, err
		}

		if err := units.Translate(doc, m); err != nil {
			return nil, err
		}
	}

	return output.FormatXML(doc)
}
