package main

import (
	"fmt"
	"io"
	"os"

	"github.com/forestrie/go-poslist/mixer"
	"github.com/spf13/cobra"
)

func newMixCmd(root *rootOptions) *cobra.Command {
	var cfg mixer.Config

	cmd := &cobra.Command{
		Use:   "mix [file]",
		Short: "Mix a file of integers and print the coordinate sum",
		Long: `Reads one integer per line from file, or stdin when no file is given,
mixes them and prints the sum of the values 1000, 2000 and 3000 places
after zero.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			values, err := mixer.Load(in)
			if err != nil {
				return err
			}
			m := mixer.New(cfg, root.log, values)
			if err := m.Mix(); err != nil {
				return err
			}
			sum, err := m.Coordinates()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}
	cmd.Flags().Int64Var(&cfg.DecryptionKey, "key", 1, "multiply every value by key before mixing")
	cmd.Flags().IntVar(&cfg.Rounds, "rounds", 1, "number of mixing rounds")
	cmd.Flags().BoolVar(&cfg.Verify, "verify", false, "check list invariants after every move")
	return cmd
}
