package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/privacybydesign/timelock"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check that all strategies agree on a modulus",
	RunE: func(cmd *cobra.Command, args []string) error {
		in, _ := cmd.Flags().GetString("in")
		t, _ := cmd.Flags().GetUint64("t")

		m, err := timelock.ReadModulusFromFile(in)
		if err != nil {
			return err
		}
		solvers, err := timelock.Solvers(m, true)
		if err != nil {
			return err
		}
		if err = timelock.VerifySolvers(m.Params(t), solvers...); err != nil {
			return err
		}

		timelock.Logger.WithFields(logrus.Fields{"fingerprint": m.Fingerprint(), "t": t}).Info("modulus verified")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().StringP("in", "i", "", "modulus file")
	verifyCmd.Flags().Uint64P("t", "t", 120000, "difficulty")
	_ = verifyCmd.MarkFlagRequired("in")
}
