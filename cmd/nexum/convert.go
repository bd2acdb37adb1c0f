package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/nexum-ml/nexum/tensor"
)

type convertOpts struct {
	to string
}

func newConvertCommand() *cobra.Command {
	opts := convertOpts{}

	cmd := &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Convert a tensor file between the text and binary formats",
		Long: `Convert reads IN (binary for .bin paths, text otherwise) and writes OUT.
The output format follows the extension of OUT unless --to is given.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := tensor.FormatFromPath(args[1])
			if opts.to != "" {
				f, err := tensor.ParseFormat(opts.to)
				if err != nil {
					return err
				}
				format = f
			}
			t, err := load(args[0])
			if err != nil {
				return err
			}
			klog.V(1).Infof("writing %s as %s", args[1], format)
			if err := tensor.SaveAs(args[1], t, format); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s %v (%s)\n", args[1], t.Shape(), format)
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.to, "to", "", "Output format: text or binary (default: from the OUT extension)")
	return cmd
}
