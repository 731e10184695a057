package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/comalice/squidward"
)

type engineStarted struct{}

var engineCmd = &cobra.Command{
	Use:   "engine",
	Short: "Three-state engine: \"start\" cranks it, \"stop\" shuts it down",
	Long: `After "start" the engine cranks for a couple of seconds, then posts a
synthetic started event to itself and begins running. Runs on the serial
executor so cranking never blocks console input.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		off, err := squidward.NewState().Named("off").Build()
		if err != nil {
			return err
		}
		cranking, err := squidward.NewState().Named("cranking").Build()
		if err != nil {
			return err
		}
		running, err := squidward.NewState().Named("running").Build()
		if err != nil {
			return err
		}

		var auto *squidward.Automaton

		start, err := squidward.NewTransition[string]().
			From(off).To(cranking).
			Check(func(e string) bool { return e == "start" }).
			Execute(func(string) {
				fmt.Println("Turning engine on...")
				go func() {
					time.Sleep(2500 * time.Millisecond)
					auto.Post(engineStarted{})
				}()
			}).
			Build()
		if err != nil {
			return err
		}
		started, err := squidward.NewTransition[engineStarted]().
			From(cranking).To(running).
			Execute(func(engineStarted) { fmt.Println("Engine is now running!") }).
			Build()
		if err != nil {
			return err
		}
		stop, err := squidward.NewTransition[string]().
			From(running).To(off).
			Check(func(e string) bool { return e == "stop" }).
			Execute(func(string) { fmt.Println("Engine stopped!") }).
			Build()
		if err != nil {
			return err
		}

		executor := squidward.NewSerialExecutor(0)
		defer executor.Close()

		auto, err = squidward.NewBuilder().
			AddStates(off, cranking, running).
			AddTransitions(start, started, stop).
			InitialState(off).
			Executor(executor).
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
	rootCmd.AddCommand(engineCmd)
}
