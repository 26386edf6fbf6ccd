package main

import (
	"fmt"

	"github.com/forestrie/go-poslist/cupgame"
	"github.com/spf13/cobra"
)

func newCupsCmd(root *rootOptions) *cobra.Command {
	var cups, moves int

	cmd := &cobra.Command{
		Use:   "cups <labels>",
		Short: "Play the cup game and print the cups after cup 1",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cups == 0 {
				cups = len(args[0])
			}
			g, err := cupgame.New(args[0], cups, root.log)
			if err != nil {
				return err
			}
			g.Play(moves)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d\n", g.Labels(), g.Product())
			return nil
		},
	}
	cmd.Flags().IntVar(&cups, "cups", 0, "total cups in the circle, defaults to the number of labels")
	cmd.Flags().IntVar(&moves, "moves", 100, "number of moves to play")
	return cmd
}
