package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/squidward"
)

var lightbulbCmd = &cobra.Command{
	Use:   "lightbulb",
	Short: "Two-state light bulb, toggled with \"on\" and \"off\"",
	RunE: func(cmd *cobra.Command, args []string) error {
		off, err := squidward.NewState().Named("off").
			WhenEntered(func() { fmt.Println("The light bulb has been turned off!") }).
			Build()
		if err != nil {
			return err
		}
		on, err := squidward.NewState().Named("on").
			WhenEntered(func() { fmt.Println("The light bulb has been turned on!") }).
			Build()
		if err != nil {
			return err
		}
		turnOn, err := squidward.NewTransition[string]().
			From(off).To(on).
			Check(func(e string) bool { return e == "on" }).
			Build()
		if err != nil {
			return err
		}
		turnOff, err := squidward.NewTransition[string]().
			From(on).To(off).
			Check(func(e string) bool { return e == "off" }).
			Build()
		if err != nil {
			return err
		}
		auto, err := squidward.NewBuilder().
			AddStates(off, on).
			AddTransitions(turnOn, turnOff).
			InitialState(off).
			Build()
		if err != nil {
			return err
		}
		if err := auto.Enable(); err != nil {
			return err
		}
		return pump(auto)
	},
}

func init() {
	rootCmd.AddCommand(lightbulbCmd)
}
