package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/comalice/squidward"
)

var greeterCmd = &cobra.Command{
	Use:   "greeter",
	Short: "Greet every non-empty console line",
	RunE: func(cmd *cobra.Command, args []string) error {
		greeting, err := squidward.NewState().Named("greeting").Build()
		if err != nil {
			return err
		}
		greet, err := squidward.NewTransition[string]().
			From(greeting).To(greeting).
			Check(func(name string) bool { return name != "" }).
			Execute(func(name string) { fmt.Printf("Hello, %s!\n", name) }).
			Build()
		if err != nil {
			return err
		}
		auto, err := squidward.NewBuilder().
			AddState(greeting).
			AddTransition(greet).
			InitialState(greeting).
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
	rootCmd.AddCommand(greeterCmd)
}
