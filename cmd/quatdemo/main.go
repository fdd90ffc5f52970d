package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"hypercomplex/internal/config"
	"hypercomplex/internal/demo"
)

func main() {
	logrus.SetOutput(os.Stderr)
	if err := newCommand().Execute(); err != nil {
		logrus.WithError(err).Error("quatdemo failed")
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	v := config.New()

	cmd := &cobra.Command{
		Use:   "quatdemo",
		Short: "Print the quaternion algebra applied to two sample values",
		Long: `Print two sample quaternions together with their sum, difference,
both Hamilton products, right quotient, inverse round trips, magnitudes and
the first sample's conjugate.

Samples and options come from flags, QUAT_* environment variables or a
config file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return errors.Wrap(err, "invalid configuration")
			}
			logrus.SetLevel(cfg.LogLevel)
			logrus.WithFields(logrus.Fields{
				"q1":        cfg.Q1.String(),
				"q2":        cfg.Q2.String(),
				"precision": cfg.Precision,
			}).Debug("configuration loaded")

			report := demo.Build(logrus.StandardLogger(), demo.Steps(cfg.Precision), cfg.Q1, cfg.Q2)
			_, err = report.WriteTo(cmd.OutOrStdout())
			return err
		},
	}

	if err := config.AddFlags(cmd.Flags(), v); err != nil {
		logrus.WithError(err).Fatal("registering flags")
	}
	return cmd
}
