// Package main provides the almacen CLI, a small-business record store
// over interchangeable local, redis, and remote adapters.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/despensa-labs/almacen/pkg/types"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, types.ErrUnknownKind) || errors.Is(err, types.ErrNoAdapter) {
			os.Exit(exitUserError)
		}
		os.Exit(exitSysError)
	}
}
