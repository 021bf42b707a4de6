// Version command for the almacen CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/despensa-labs/almacen/pkg/almacen"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the almacen version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("almacen", almacen.Version)
	},
}
