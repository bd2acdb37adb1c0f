package main

import (
	goflag "flag"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/nexum-ml/nexum/tensor"
)

const version = "v0.1.0"

func newRootCommand(out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "nexum",
		Short:        "Inspect, convert and generate Nexum tensor files",
		SilenceUsage: true,
	}
	cmd.SetOut(out)

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	cmd.AddCommand(
		newVersionCommand(),
		newInfoCommand(),
		newPrintCommand(),
		newConvertCommand(),
		newGenerateCommand(),
	)
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nexum %s\n", version)
		},
	}
}

// guard turns an engine panic into a command error.
func guard(run func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	return run()
}

func load(path string) (*tensor.Tensor, error) {
	var t tensor.Tensor
	klog.V(1).Infof("loading %s as %s", path, tensor.FormatFromPath(path))
	if err := tensor.Load(path, &t); err != nil {
		return nil, err
	}
	klog.V(1).Infof("loaded %s: %v", path, t.Shape())
	return &t, nil
}
