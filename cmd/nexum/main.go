// Command nexum inspects, converts and generates tensor files.
package main

import (
	"os"

	"k8s.io/klog/v2"
)

func main() {
	defer klog.Flush()

	if err := newRootCommand(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
