package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kevinmichaelchen/gh-profile/internal/config"
	"github.com/kevinmichaelchen/gh-profile/internal/github"
	"github.com/kevinmichaelchen/gh-profile/internal/llm"
	"github.com/kevinmichaelchen/gh-profile/internal/log"
	"github.com/kevinmichaelchen/gh-profile/internal/version"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var summarize bool

	cmd := &cobra.Command{
		Use:           "gh-profile <github_username>",
		Short:         "Dump a GitHub user's profile and repositories to JSON and Markdown",
		Version:       version.Info(),
		Args:          usageArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()

			logger, err := log.New(log.Config{Level: cfg.LogLevel, FilePath: cfg.LogFile, Writer: cmd.ErrOrStderr()})
			if err != nil {
				return fmt.Errorf("initialising logger: %w", err)
			}
			defer logger.Close()
			log.SetDefaultLogger(logger)

			return run(cmd.Context(), cfg, args[0], summarize, cmd.OutOrStdout())
		},
	}
	cmd.Flags().BoolVar(&summarize, "summarize", false, "Print an AI summary of the profile (needs LLM_API_KEY)")
	return cmd
}

func usageArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s <github_username>", cmd.Name())
	}
	return nil
}

func run(ctx context.Context, cfg *config.Config, username string, summarize bool, out io.Writer) error {
	if summarize && cfg.LLMAPIKey == "" {
		return errors.New("--summarize requires LLM_API_KEY")
	}

	gh, err := github.NewClient(cfg.GitHubToken, github.WithBaseURL(cfg.GitHubAPIURL))
	if err != nil {
		return err
	}

	data, err := gh.FetchAllData(ctx, username)
	if err != nil {
		return err
	}

	jsonFile, mdFile := github.OutputFiles(username)
	_, _ = fmt.Fprintf(out, "Successfully generated %s and %s\n", jsonFile, mdFile)

	if !summarize {
		return nil
	}

	// Both files are already on disk, so a failed summary does not fail the run.
	summary, err := llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel).Summarize(ctx, data)
	if err != nil {
		log.Warn("Skipping profile summary", "username", username, "error", err)
		return nil
	}
	_, _ = fmt.Fprintf(out, "\n%s\n", summary)
	return nil
}
