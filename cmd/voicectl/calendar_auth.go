package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"voice-task-tracker/pkg/gcalendar"
)

type calendarAuthOptions struct {
	credentials string
	token       string
}

// newCalendarAuthCmd runs the one-time desktop OAuth flow for Google Calendar sync.
func newCalendarAuthCmd() *cobra.Command {
	opts := &calendarAuthOptions{}

	cmd := &cobra.Command{
		Use:   "calendar-auth",
		Short: "Authorize Google Calendar access and write the OAuth token",
		Long: `Runs the OAuth desktop flow once: open the printed URL, sign in,
paste the authorization code back. Not needed for service account credentials.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalendarAuth(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.credentials, "credentials", "google-credentials.json", "OAuth desktop app credentials file")
	cmd.Flags().StringVar(&opts.token, "token", gcalendar.DefaultTokenPath, "where to write the token")

	return cmd
}

func runCalendarAuth(cmd *cobra.Command, opts *calendarAuthOptions) error {
	data, err := os.ReadFile(opts.credentials)
	if err != nil {
		return fmt.Errorf("read credentials file %q: %w", opts.credentials, err)
	}

	config, err := gcalendar.NewOAuthConfig(data)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "1. Open this URL and sign in with your Google account:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, gcalendar.AuthCodeURL(config))
	fmt.Fprintln(out)
	fmt.Fprint(out, "2. Paste the authorization code and press Enter: ")

	var code string
	if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
		return fmt.Errorf("read authorization code: %w", err)
	}

	tok, err := config.Exchange(cmd.Context(), code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}

	if err := gcalendar.SaveToken(opts.token, tok); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nToken saved to %s. Restart the API to enable calendar sync.\n", opts.token)
	return nil
}
