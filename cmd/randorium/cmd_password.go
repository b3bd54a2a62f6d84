package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randorium/randorium-go/internal/crypto"
)

const maxPasswordCount = 100

func (a *app) passwordCmd() *cobra.Command {
	var (
		length, count                      int
		classes                            []string
		noUpper, noLower, noDigits, noSyms bool
	)

	minLen, maxLen := a.gen.Bounds()

	cmd := &cobra.Command{
		Use:   "password",
		Short: "Generate random passwords",
		Long: `Generate passwords that contain at least one character of every
enabled class (uppercase, lowercase, digits, symbols).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if count < 1 || count > maxPasswordCount {
				return fmt.Errorf("count must be between 1 and %d", maxPasswordCount)
			}

			req := crypto.GeneratorOptions{
				Length:    length,
				Uppercase: !noUpper,
				Lowercase: !noLower,
				Numbers:   !noDigits,
				Symbols:   !noSyms,
			}.Request()
			if len(classes) > 0 {
				set, err := parseClasses(classes)
				if err != nil {
					return err
				}
				req.Classes = set
			}

			for i := 0; i < count; i++ {
				pw, err := a.gen.Generate(req)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), pw)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", crypto.DefaultLength,
		fmt.Sprintf("password length (%d-%d)", minLen, maxLen))
	cmd.Flags().IntVarP(&count, "count", "n", 1,
		fmt.Sprintf("number of passwords (1-%d)", maxPasswordCount))
	cmd.Flags().StringSliceVar(&classes, "classes", nil, "character classes to use, e.g. upper,digits")
	cmd.Flags().BoolVar(&noUpper, "no-upper", false, "exclude uppercase letters")
	cmd.Flags().BoolVar(&noLower, "no-lower", false, "exclude lowercase letters")
	cmd.Flags().BoolVar(&noDigits, "no-digits", false, "exclude digits")
	cmd.Flags().BoolVar(&noSyms, "no-symbols", false, "exclude symbols")
	for _, name := range []string{"no-upper", "no-lower", "no-digits", "no-symbols"} {
		cmd.MarkFlagsMutuallyExclusive("classes", name)
	}
	return cmd
}

func parseClasses(names []string) (crypto.ClassSet, error) {
	var set crypto.ClassSet
	for _, name := range names {
		c, err := crypto.ParseClass(name)
		if err != nil {
			return 0, err
		}
		set = set.With(c)
	}
	return set, nil
}
