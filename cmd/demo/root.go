package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/comalice/squidward"
)

var rootCmd = &cobra.Command{
	Use:   "demo",
	Short: "Interactive squidward automaton demos",
	Long: `Each subcommand builds a small automaton, enables it and feeds it
lines read from standard input as string events. Stop with Ctrl-D.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// pump reads console lines and posts each one as a string event until
// standard input is exhausted.
func pump(auto *squidward.Automaton) error {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if err := auto.Post(scanner.Text()); err != nil {
			return err
		}
	}
	return scanner.Err()
}
