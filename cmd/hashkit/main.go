// Command hashkit computes digests, MACs and derived keys with the
// algorithms of the registry package.
package main

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal().Err(err).Msg("hashkit failed")
	}
}

func newRootCmd() *cobra.Command {
	var flagLogLevel string

	root := &cobra.Command{
		Use:           "hashkit",
		Short:         "Compute digests, MACs and derived keys",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := zerolog.ParseLevel(flagLogLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(lvl).
				With().
				Timestamp().
				Logger()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info",
		"log level (trace, debug, info, warn, error)")

	root.AddCommand(
		newDigestCmd(),
		newMACCmd(),
		newDeriveCmd(),
		newListCmd(),
	)
	return root
}
