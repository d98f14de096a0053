package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"voice-task-tracker/internal/voice"
	voiceUC "voice-task-tracker/internal/voice/usecase"
	"voice-task-tracker/pkg/datemath"
	"voice-task-tracker/pkg/llmprovider"
)

type parseOptions struct {
	now      string
	timezone string
	offline  bool
}

// draftJSON mirrors the API's parse response.
type draftJSON struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Priority    string  `json:"priority"`
	Status      string  `json:"status"`
	DueDate     *string `json:"dueDate"`
	Transcript  string  `json:"transcript"`
}

func newParseCmd(root *rootOptions) *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [transcript...]",
		Short: "Parse a transcript into a task draft",
		Long: `Parses a transcript into a task draft and prints it as JSON.
Uses the configured completion service unless --offline is set or no credential is available.`,
		Example: `  voicectl parse "call the dentist next tuesday at 3pm, urgent"
  voicectl parse --offline --now 2025-12-06T09:00:00 review the budget tomorrow`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, root, opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&opts.now, "now", "", "reference time, YYYY-MM-DDTHH:MM:SS (default: current time)")
	cmd.Flags().StringVar(&opts.timezone, "timezone", "", "IANA timezone (default: voice.timezone from config)")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "skip the completion service and use the rule-based parser")

	return cmd
}

func runParse(cmd *cobra.Command, root *rootOptions, opts *parseOptions, transcript string) error {
	ctx := cmd.Context()

	cfg, err := root.load()
	if err != nil {
		return err
	}
	l := root.logger()

	timezone := cfg.Voice.Timezone
	if opts.timezone != "" {
		timezone = opts.timezone
	}
	dm, err := datemath.NewParser(timezone)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}

	var now time.Time
	if opts.now != "" {
		wall, err := datemath.ParseDateTime(opts.now)
		if err != nil {
			return fmt.Errorf("invalid --now %q: %w", opts.now, err)
		}
		now = time.Date(wall.Year(), wall.Month(), wall.Day(), wall.Hour(), wall.Minute(), wall.Second(), 0, dm.Location())
	}

	var completer voiceUC.Completer
	if !opts.offline {
		provider, err := llmprovider.NewProvider(&cfg.LLM)
		if err != nil {
			l.Warnf(ctx, "voicectl.parse: completion service not available, using rule-based parsing: %v", err)
		} else {
			completer = llmprovider.NewClient(provider, &llmprovider.Config{
				Temperature:    cfg.LLM.Temperature,
				MaxTokens:      cfg.LLM.MaxTokens,
				RequestTimeout: cfg.LLM.RequestTimeout,
			}, l)
		}
	}

	draft, err := voiceUC.New(l, completer, dm).Parse(ctx, voice.ParseInput{Transcript: transcript, Now: now})
	if err != nil {
		return err
	}

	out := draftJSON{
		Title:       draft.Title,
		Description: draft.Description,
		Priority:    draft.Priority,
		Status:      draft.Status,
		Transcript:  draft.Transcript,
	}
	if draft.DueDate != "" {
		out.DueDate = &draft.DueDate
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
