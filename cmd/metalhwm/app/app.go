// SPDX-FileCopyrightText: 2025 SAP SE or an SAP affiliate company and IronCore contributors
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"errors"
	"flag"
	"fmt"

	"github.com/ironcore-dev/metal-hardware-manager/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

const Name string = "metalhwm"

var setupLog = log.Log.WithName("setup")

// options is the state shared by the subcommands of one root command.
type options struct {
	configPath  string
	metricsFile string
	nodePath    string
	portsPath   string

	cfg      *config.Config
	registry *prometheus.Registry
}

func NewCommand() *cobra.Command {
	o := &options{registry: prometheus.NewRegistry()}
	zapOpts := zap.Options{
		Development: true,
	}
	goFlags := flag.NewFlagSet(Name, flag.ContinueOnError)
	zapOpts.BindFlags(goFlags)

	root := &cobra.Command{
		Use:           Name,
		Short:         "Hardware manager for decommissioning bare metal nodes",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log.SetLogger(zap.New(zap.UseFlagOptions(&zapOpts)))
			cfg, err := config.Load(o.configPath)
			if err != nil {
				return err
			}
			o.cfg = cfg
			setupLog.V(1).Info("Loaded configuration", "path", o.configPath)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&o.configPath, "config", "", "Path to the configuration file. Defaults are used if empty.")
	root.PersistentFlags().StringVar(&o.metricsFile, "metrics-file", "", "Write metrics in the node_exporter textfile format to this path.")
	root.PersistentFlags().AddGoFlagSet(goFlags)

	root.AddCommand(
		NewVerifyPortsCommand(o),
		NewEraseCommand(o),
		NewEraseDevicesCommand(o),
		NewRemoveBootloaderCommand(o),
		NewControllersCommand(o),
		NewUpdateFirmwareCommand(o),
		NewBIOSCommand(o),
		NewStepsCommand(),
		NewRunStepCommand(o),
		NewSupportCommand(o),
	)
	for _, cmd := range root.Commands() {
		if cmd.RunE != nil {
			cmd.RunE = o.writingMetrics(cmd.RunE)
		}
	}
	return root
}

// writingMetrics wraps run so that the metrics file is written whatever run
// returns.
func (o *options) writingMetrics(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if o.metricsFile == "" {
			return err
		}
		if werr := prometheus.WriteToTextfile(o.metricsFile, o.registry); werr != nil {
			return errors.Join(err, fmt.Errorf("failed to write metrics to %s: %w", o.metricsFile, werr))
		}
		return err
	}
}
