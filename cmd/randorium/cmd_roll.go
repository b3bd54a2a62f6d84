package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randorium/randorium-go/internal/dice"
)

func (a *app) rollCmd() *cobra.Command {
	var sides, count int

	cmd := &cobra.Command{
		Use:   "roll [NdS]",
		Short: "Roll dice",
		Example: `  randorium roll
  randorium roll 3d6
  randorium roll --dice 100`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				var err error
				if sides, count, err = dice.ParseNotation(args[0]); err != nil {
					return err
				}
			}

			res, err := a.roller.Roll(sides, count)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%dd%d: %v total %d\n", count, res.DiceType, res.Rolls, res.Total)
			return nil
		},
	}

	cmd.Flags().IntVarP(&sides, "dice", "d", dice.DefaultSides, "sides per die")
	cmd.Flags().IntVarP(&count, "count", "n", dice.DefaultCount, "number of dice")
	return cmd
}
