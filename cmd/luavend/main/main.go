package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/luavend/internal/cli"
	"github.com/arthur-debert/luavend/pkg/errors"
	"github.com/arthur-debert/luavend/pkg/style"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.RenderError(err))

		// Errors without a code come from cobra itself (wrong argument
		// count, unknown flags); those are the ones usage helps with.
		if errors.GetErrorCode(err) == errors.ErrUnknown {
			fmt.Fprintln(os.Stderr)
			_ = rootCmd.Usage()
		}

		os.Exit(1)
	}
}
