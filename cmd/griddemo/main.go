// griddemo solves and previews grid layout definitions.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-grid/internal/config"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "griddemo",
	Short: "Solve and preview grid layout definitions",
	Long: `Griddemo loads a TOML grid definition, solves its tracks against an
available size, and either prints the resulting cell rectangles or renders
them live in the terminal.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the griddemo version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("griddemo", version)
	},
}

func init() {
	cobra.OnInitialize(func() {
		if err := config.Init(); err != nil {
			fmt.Fprintln(os.Stderr, "config:", err)
		}
	})
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
