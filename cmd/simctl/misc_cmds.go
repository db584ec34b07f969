package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jrsteele09/go-sim-client/endpoints"
	"github.com/jrsteele09/go-sim-client/gateway"
	"github.com/spf13/cobra"
)

func newEndpointsCmd(_ *rootOptions) *cobra.Command {
	return offline(&cobra.Command{
		Use:   "endpoints [KEY [SEGMENT...]]",
		Short: "List endpoint keys, or resolve one key to a path",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) > 0 {
				path, err := endpoints.Path(endpoints.Key(args[0]), args[1:]...)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, path)
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, k := range endpoints.Keys() {
				path, _ := endpoints.Resolve(k)
				fmt.Fprintf(tw, "%s\t%s\n", k, path)
			}
			return tw.Flush()
		},
	})
}

func newCompareCmd(_ *rootOptions) *cobra.Command {
	return offline(&cobra.Command{
		Use:   "compare FILE FILE",
		Short: "Report whether two JSON documents have the same shape",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			b, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			same, err := gateway.CompareJSON(a, b)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), same)
			return nil
		},
	})
}

func newVersionCmd(_ *rootOptions) *cobra.Command {
	return offline(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displayAppname(cmd.OutOrStdout(), "simctl")
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})
}
