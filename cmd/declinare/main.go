// Command declinare derives Latin noun forms from historical stems and
// tabulates the vocabulary of Latin text files.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/cours-de-latin/declinatio/logging"
)

const (
	Version = "0.1.0"
	appName = "declinare"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		logLevel string
		logPath  string
		closeLog func() error
	)

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Latin noun declension from historical stems",
		Long: `declinare applies ordered sound changes (rhotacism, vowel weakening,
compensatory lengthening, consonant assimilation) to a historical noun
stem and prints the resulting singular case forms.

It also reads plain-text Latin passages and lists word-form frequencies
or lemmata, with proper nouns and the enclitic -que removed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			closer, err := logging.Setup(logPath, logLevel)
			if err != nil {
				return err
			}
			closeLog = closer.Close
			log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("starting")
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if closeLog != nil {
				return closeLog()
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&logPath, "log-path", "", "A file to log to (if empty then stderr is used)")

	cmd.AddCommand(
		declineCmd(),
		endingCmd(),
		freqCmd(),
		lemmataCmd(),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)
	return cmd
}
