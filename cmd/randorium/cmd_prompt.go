package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/randorium/randorium-go/internal/prompt"
)

func (a *app) promptCmd() *cobra.Command {
	var (
		req          prompt.Request
		html, render bool
	)

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Generate a creative writing prompt",
		Long: `Ask the configured language model (LLM_PROVIDER) for a writing prompt.
Without an API key a built-in offline generator is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := a.newClient(cmd.Context(), prompt.Settings{
				Provider: a.cfg.LLM.Provider,
				Model:    a.cfg.LLM.Model,
				APIKey:   a.cfg.LLM.APIKey,
				BaseURL:  a.cfg.LLM.BaseURL,
			})
			if err != nil {
				return err
			}

			res, err := prompt.NewGenerator(client, a.cfg.LLM.Timeout).Generate(cmd.Context(), req)
			if err != nil {
				return err
			}

			text := res.Prompt
			switch {
			case html:
				text, err = prompt.RenderHTML(res.Prompt)
			case render:
				text, err = renderTerminal(res.Prompt)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&req.Genre, "genre", "g", "", "genre of the story")
	cmd.Flags().StringVarP(&req.Keywords, "keywords", "k", "", "keywords to weave in")
	cmd.Flags().BoolVar(&html, "html", false, "print the prompt rendered as HTML")
	cmd.Flags().BoolVar(&render, "render", false, "render the prompt's Markdown for the terminal")
	cmd.MarkFlagsMutuallyExclusive("html", "render")
	return cmd
}

func renderTerminal(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	out, err := r.Render(md)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}
