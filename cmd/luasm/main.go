package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "luasm",
	Short: "Tooling for luasm language descriptions.",
	Long: `Tooling for assembly-like languages defined with the luasm
framework. Language descriptions are TOML files naming the tokenizing
patterns, the operand-type syntax table, and the instruction list.`,
}

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}
