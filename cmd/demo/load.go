package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/comalice/squidward"
)

var loadCmd = &cobra.Command{
	Use:   "load <definition.yaml>",
	Short: "Run a YAML automaton definition against the demo registry",
	Long: `Loads a declarative automaton definition and feeds it console lines as
string events. Definitions are resolved against the demo registry, which
provides:

  actions:  sayOn, sayOff, sayEnter, sayExit
  guards:   isOn, isOff, nonEmpty
  effects:  echo
  filters:  strings

See lightbulb.yaml next to this command for a worked definition.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		auto, err := squidward.LoadDefinition(data, demoRegistry())
		if err != nil {
			return fmt.Errorf("load %s: %w", args[0], err)
		}
		if err := auto.Enable(); err != nil {
			return err
		}
		return pump(auto)
	},
}

func demoRegistry() *squidward.Registry {
	reg := squidward.NewRegistry()
	reg.RegisterAction("sayOn", func() { fmt.Println("The light bulb has been turned on!") })
	reg.RegisterAction("sayOff", func() { fmt.Println("The light bulb has been turned off!") })
	reg.RegisterAction("sayEnter", func() { fmt.Println("State entered.") })
	reg.RegisterAction("sayExit", func() { fmt.Println("State exited.") })
	reg.RegisterGuard("isOn", func(e any) bool { return e == "on" })
	reg.RegisterGuard("isOff", func(e any) bool { return e == "off" })
	reg.RegisterGuard("nonEmpty", func(e any) bool { return e != "" })
	reg.RegisterEffect("echo", func(e any) { fmt.Printf("event: %v\n", e) })
	reg.RegisterFilter("strings", func(e any) bool {
		_, ok := e.(string)
		return ok
	})
	return reg
}

func init() {
	rootCmd.AddCommand(loadCmd)
}
