package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/nexum-ml/nexum/tensor"
)

type generateOpts struct {
	kind string
	rows int
	cols int
	seed uint64
}

func (o generateOpts) build() (*tensor.Tensor, error) {
	var t *tensor.Tensor
	err := guard(func() error {
		switch o.kind {
		case "zeros":
			t = tensor.Zeros(o.rows, o.cols)
		case "ones":
			t = tensor.Ones(o.rows, o.cols)
		case "eye":
			if o.rows != o.cols {
				return fmt.Errorf("eye requires rows == cols, got %d and %d", o.rows, o.cols)
			}
			t = tensor.Eye(o.rows)
		case "rand":
			tensor.Seed(o.seed)
			t = tensor.Rand(o.rows, o.cols)
		case "randn":
			tensor.Seed(o.seed)
			t = tensor.Randn(o.rows, o.cols)
		case "arange":
			t = tensor.Arange(0, float64(o.rows)*float64(o.cols), 1)
			t.ReshapeInplace(o.rows, o.cols)
		default:
			return fmt.Errorf("unknown kind %q (want zeros, ones, eye, rand, randn or arange)", o.kind)
		}
		return nil
	})
	return t, err
}

func newGenerateCommand() *cobra.Command {
	opts := generateOpts{}

	cmd := &cobra.Command{
		Use:   "generate OUT",
		Short: "Write a generated tensor to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := opts.build()
			if err != nil {
				return err
			}
			klog.V(1).Infof("generated %s tensor %v", opts.kind, t.Shape())
			if err := tensor.Save(args[0], t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s %v\n", args[0], t.Shape())
			return nil
		},
	}
	opts.addFlags(cmd.Flags())
	return cmd
}

func (o *generateOpts) addFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.kind, "kind", "zeros", "Tensor kind: zeros, ones, eye, rand, randn or arange")
	fs.IntVar(&o.rows, "rows", 1, "Number of rows")
	fs.IntVar(&o.cols, "cols", 1, "Number of columns")
	fs.Uint64Var(&o.seed, "seed", 42, "Seed for the rand and randn kinds")
}
