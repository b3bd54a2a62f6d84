// Command randorium runs the password, dice and writing prompt tools from a
// terminal.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/randorium/randorium-go/internal/config"
	"github.com/randorium/randorium-go/internal/crypto"
	"github.com/randorium/randorium-go/internal/dice"
	"github.com/randorium/randorium-go/internal/prompt"
)

// app carries the state shared by subcommands.
type app struct {
	configPath string
	cfg        config.Config

	gen       *crypto.Generator
	roller    *dice.Roller
	newClient func(ctx context.Context, s prompt.Settings) (prompt.Client, error)
}

func newApp() *app {
	return &app{
		gen:       crypto.NewGenerator(),
		roller:    dice.NewRoller(nil),
		newClient: prompt.NewClientOrMock,
	}
}

func (a *app) rootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "randorium",
		Short:         "Random passwords, dice rolls and writing prompts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			_ = godotenv.Load()
			a.cfg = config.Load()
			if a.configPath == "" {
				return nil
			}
			cfg, err := config.LoadFile(a.cfg, a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")

	root.AddCommand(a.passwordCmd(), a.rollCmd(), a.promptCmd())
	return root
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newApp().rootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
