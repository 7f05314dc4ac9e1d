package main

import (
	"errors"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/QuickWrite/luasm"
	"github.com/QuickWrite/luasm/asm"
)

// checkCmd lint-parses source files against a language description.
// Executors are never invoked: every declared instruction is bound to a
// no-op, and the program is parsed but not run.
var checkCmd = &cobra.Command{
	Use:   "check [flags] source_file...",
	Short: "parse source files against a language description.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
		lang, _ := cmd.Flags().GetString("lang")

		noop := func(in *asm.Instruction, m asm.Machine) bool { return true }
		set, defs, err := asm.LoadFile(lang, noop)
		if err != nil {
			log.Fatal(err)
		}

		runner := luasm.New(defs, set)
		failed := false
		for _, path := range args {
			if !check(runner, path) {
				failed = true
			}
		}
		if failed {
			os.Exit(1)
		}
	},
}

func check(runner *luasm.Runner, path string) (ok bool) {
	src, err := runner.SourceFromFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v: %v\n", path, err)
		return
	}

	prog, err := runner.Parse(src)
	if err != nil {
		var pe *asm.ErrParse
		if errors.As(err, &pe) {
			for _, msg := range pe.Messages() {
				fmt.Fprintf(os.Stderr, "%v:%d: %v\n", path, pe.LineNo, msg)
			}
		} else {
			fmt.Fprintf(os.Stderr, "%v: %v\n", path, err)
		}
		return
	}

	count := 0
	for pos, in := range prog.Each() {
		log.Debugf("%v:%d: %v %v", path, pos, in.Mnemonic, in.Args)
		count++
	}
	fmt.Printf("%v: %d lines, %d instructions, %d labels\n",
		path, prog.Lines, count, len(prog.Labels))

	return true
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().String("lang", "", "TOML language description file")
	checkCmd.MarkFlagRequired("lang")
}
