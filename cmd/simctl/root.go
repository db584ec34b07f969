package main

import (
	"fmt"
	"io"

	"github.com/jrsteele09/go-sim-client/internal/config"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	cfgFile   string
	storeName string

	stdout io.Writer
	stderr io.Writer
	app    *app
}

func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, *rootOptions) {
	opts := &rootOptions{stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "simctl",
		Short: "Store inventory management client",
		Long:  "simctl authenticates against the SIM API and works with inventory documents: adjustments, deliveries, purchase orders, transfers, stock counts and returns to vendor.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations["offline"] == "true" {
				return nil
			}
			cfg, err := config.Load(opts.cfgFile)
			if err != nil {
				return err
			}
			a, err := newApp(cfg, opts.stderr)
			if err != nil {
				return err
			}
			opts.app = a
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "config file path (default ~/.config/simctl/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&opts.storeName, "store", "s", "", "store name (default from config)")

	rootCmd.AddCommand(newLoginCmd(opts), newLogoutCmd(opts))
	rootCmd.AddCommand(newRawCmds(opts)...)
	rootCmd.AddCommand(newDocsCmd(opts), newDashboardCmd(opts), newLookupCmd(opts))
	rootCmd.AddCommand(newWorkflowCmds(opts)...)
	rootCmd.AddCommand(newEndpointsCmd(opts), newCompareCmd(opts), newVersionCmd(opts))
	return rootCmd, opts
}

// close releases whatever PersistentPreRunE wired, whether or not the command failed.
func (o *rootOptions) close() {
	if o.app != nil {
		o.app.Close()
		o.app = nil
	}
}

// store returns the --store flag, or the configured store name.
func (o *rootOptions) store() (string, error) {
	if o.storeName != "" {
		return o.storeName, nil
	}
	if o.app != nil {
		if s := o.app.cfg.GetStoreName(); s != "" {
			return s, nil
		}
	}
	return "", fmt.Errorf("store name is required: pass --store or set SIM_STORE_NAME")
}

func offline(cmd *cobra.Command) *cobra.Command {
	if cmd.Annotations == nil {
		cmd.Annotations = map[string]string{}
	}
	cmd.Annotations["offline"] = "true"
	return cmd
}
