package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Giulio2002/hashkit/digest"
	"github.com/Giulio2002/hashkit/registry"
)

// stdinName stands for standard input in the list of inputs.
const stdinName = "-"

func newDigestCmd() *cobra.Command {
	var flagAlgorithm string

	cmd := &cobra.Command{
		Use:   "digest [file...]",
		Short: "Print the digest of each file, or of standard input",
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := registry.ParseDigestAlgorithm(flagAlgorithm)
			if err != nil {
				return err
			}
			d, err := registry.NewDigest(alg)
			if err != nil {
				return err
			}
			log.Debug().Str("algorithm", alg.String()).Msg("computing digests")
			return hashInputs(cmd, args, d, d.Digest)
		},
	}

	cmd.Flags().StringVarP(&flagAlgorithm, "algorithm", "a", registry.Keccak256.String(),
		"digest algorithm, see the list command")
	return cmd
}

func newMACCmd() *cobra.Command {
	var (
		flagAlgorithm string
		flagKey       string
	)

	cmd := &cobra.Command{
		Use:   "mac [file...]",
		Short: "Print the MAC of each file, or of standard input",
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := registry.ParseMACAlgorithm(flagAlgorithm)
			if err != nil {
				return err
			}
			key, err := hex.DecodeString(flagKey)
			if err != nil {
				return fmt.Errorf("key is not valid hex: %w", err)
			}
			m, err := registry.NewMAC(alg, key)
			if err != nil {
				return err
			}
			log.Debug().Str("algorithm", alg.String()).Int("key_len", len(key)).Msg("computing MACs")
			return hashInputs(cmd, args, m, m.MAC)
		},
	}

	cmd.Flags().StringVarP(&flagAlgorithm, "algorithm", "a", registry.HMAC_SHA256.String(),
		"MAC algorithm, see the list command")
	cmd.Flags().StringVar(&flagKey, "key", "", "hex encoded key")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}

// hashInputs feeds every named input to e and prints finish() for each, in
// the format of sha256sum. No names means standard input.
func hashInputs(cmd *cobra.Command, names []string, e digest.Engine, finish func() []byte) error {
	if len(names) == 0 {
		names = []string{stdinName}
	}
	for _, name := range names {
		n, err := hashInput(cmd, name, e)
		if err != nil {
			return err
		}
		log.Debug().Str("input", name).Int64("bytes", n).Msg("hashed input")
		fmt.Fprintf(cmd.OutOrStdout(), "%x  %s\n", finish(), name)
	}
	return nil
}

func hashInput(cmd *cobra.Command, name string, e digest.Engine) (int64, error) {
	if name == stdinName {
		n, err := digest.ReadFrom(e, cmd.InOrStdin())
		if err != nil {
			return n, fmt.Errorf("could not read standard input: %w", err)
		}
		return n, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return 0, fmt.Errorf("could not open input: %w", err)
	}
	defer f.Close()

	n, err := digest.ReadFrom(e, f)
	if err != nil {
		return n, fmt.Errorf("could not read %s: %w", name, err)
	}
	return n, nil
}
