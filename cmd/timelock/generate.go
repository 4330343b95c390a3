package main

import (
	"crypto/rand"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/privacybydesign/timelock"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a modulus and its trapdoor",
	Long: `Generate two random primes, and write the modulus n = p*q together with its trapdoor
phi(n) = (p-1)(q-1) to a CBOR file readable only by its owner. The modulus is verified
before it is written.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		bits, _ := cmd.Flags().GetInt("bits")
		out, _ := cmd.Flags().GetString("out")
		force, _ := cmd.Flags().GetBool("force")
		verifyT, _ := cmd.Flags().GetUint64("verify-t")

		m, err := timelock.GenerateModulus(rand.Reader, bits)
		if err != nil {
			return err
		}
		if err = m.Verify(verifyT); err != nil {
			return err
		}
		if _, err = m.WriteToFile(out, force); err != nil {
			return err
		}

		timelock.Logger.WithFields(logrus.Fields{
			"file":        out,
			"bits":        m.N.BitLen(),
			"fingerprint": m.Fingerprint(),
		}).Info("wrote modulus")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().Int("bits", timelock.DefaultPrimeBits, "size in bits of each prime factor")
	generateCmd.Flags().StringP("out", "o", "", "file to write the modulus to")
	generateCmd.Flags().Bool("force", false, "overwrite an existing file")
	generateCmd.Flags().Uint64("verify-t", 1000, "difficulty at which to verify the modulus")
	_ = generateCmd.MarkFlagRequired("out")
}
