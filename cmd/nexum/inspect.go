package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nexum-ml/nexum/tensor"
)

func newInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info FILE",
		Short: "Show the shape, statistics and checksum of a tensor file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := load(args[0])
			if err != nil {
				return err
			}
			sum, err := tensor.Checksum(t)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "shape:    %v\n", t.Shape())
			fmt.Fprintf(w, "elements: %d\n", t.Size())
			fmt.Fprintf(w, "sum:      %g\n", t.Sum())
			fmt.Fprintf(w, "min:      %g\n", t.Min())
			fmt.Fprintf(w, "max:      %g\n", t.Max())
			fmt.Fprintf(w, "sha256:   %s\n", sum)
			return nil
		},
	}
}

type printOpts struct {
	raw bool
}

func newPrintCommand() *cobra.Command {
	opts := printOpts{}

	cmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Print the contents of a tensor file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := load(args[0])
			if err != nil {
				return err
			}
			if opts.raw {
				return tensor.FprintRaw(cmd.OutOrStdout(), t)
			}
			return tensor.Fprint(cmd.OutOrStdout(), t)
		},
	}
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "Print values in scientific notation without the shape banner")
	return cmd
}
