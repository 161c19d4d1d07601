package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"label-translator/internal/export"
	"label-translator/internal/pvl"
)

type exportOptions struct {
	config    string
	format    string
	imageFile string
	min       float64
	max       float64
}

func newExportCmd(root *rootOptions) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export [cube label] [output label]",
		Short: "Build a PDS3 or PDS4 label from an ISIS cube label",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := export.LoadConfig(opts.config)
			if err != nil {
				return err
			}

			label, err := pvl.ParseFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read cube label %s: %w", args[0], err)
			}

			cube, err := export.CubeFromLabel(label)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			cube.Min, cube.Max = opts.min, opts.max

			switch strings.ToLower(opts.format) {
			case "pds4":
				e, err := export.NewPds4Exporter(cfg, root.log)
				if err != nil {
					return err
				}

				return e.Export(cube, imageFileName(opts.imageFile, args[1]), args[1])
			case "pds3":
				e, err := export.NewPds3Exporter(cfg, root.log)
				if err != nil {
					return err
				}

				return e.Export(cube, args[1])
			default:
				return fmt.Errorf("unknown export format %q, expected pds3 or pds4", opts.format)
			}
		},
	}

	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "Export pipeline config (YAML)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "pds4", "Label format: pds3 or pds4")
	cmd.Flags().StringVar(&opts.imageFile, "image-file", "", "Data file named in the label (default: output name with .img)")
	cmd.Flags().Float64Var(&opts.min, "min", 0, "Minimum input value mapped to the output range")
	cmd.Flags().Float64Var(&opts.max, "max", 0, "Maximum input value mapped to the output range")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func imageFileName(explicit, labelPath string) string {
	if explicit != "" {
		return explicit
	}

	base := filepath.Base(labelPath)

	return strings.TrimSuffix(base, filepath.Ext(base)) + ".img"
}
