package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// newWorkflowCmds groups the transfer, ASN and stock count steps that sit
// outside the per-type document operations.
func newWorkflowCmds(opts *rootOptions) []*cobra.Command {
	var data string

	withBody := func(use, short string, args cobra.PositionalArgs, fn func(cmd *cobra.Command, body any, args []string) (json.RawMessage, error)) *cobra.Command {
		cmd := &cobra.Command{
			Use:   use,
			Short: short,
			Args:  args,
			RunE: func(cmd *cobra.Command, args []string) error {
				body, err := parseData(data)
				if err != nil {
					return err
				}
				return printResult(cmd, func() (json.RawMessage, error) { return fn(cmd, body, args) })
			},
		}
		cmd.Flags().StringVarP(&data, "data", "d", "", "JSON body, or @file")
		return cmd
	}
	withArg := func(use, short string, fn func(cmd *cobra.Command, arg string) (json.RawMessage, error)) *cobra.Command {
		return &cobra.Command{
			Use:   use,
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return printResult(cmd, func() (json.RawMessage, error) { return fn(cmd, args[0]) })
			},
		}
	}

	transferCmd := &cobra.Command{Use: "transfer", Short: "Store to store transfers"}
	transferCmd.AddCommand(
		withBody("request", "Request a transfer from another store", cobra.NoArgs,
			func(cmd *cobra.Command, body any, _ []string) (json.RawMessage, error) {
				return opts.app.service.RequestTransfer(cmd.Context(), body)
			}),
		withBody("accept", "Accept a transfer request", cobra.NoArgs,
			func(cmd *cobra.Command, body any, _ []string) (json.RawMessage, error) {
				return opts.app.service.AcceptTransfer(cmd.Context(), body)
			}),
		withBody("ship [SEGMENT...]", "Ship an outbound transfer", cobra.ArbitraryArgs,
			func(cmd *cobra.Command, body any, args []string) (json.RawMessage, error) {
				return opts.app.service.ShipTransfer(cmd.Context(), body, args...)
			}),
		withBody("receive", "Receive an inbound transfer", cobra.NoArgs,
			func(cmd *cobra.Command, body any, _ []string) (json.RawMessage, error) {
				return opts.app.service.ReceiveTransfer(cmd.Context(), body)
			}),
	)

	asnCmd := &cobra.Command{Use: "asn", Short: "Advance shipping notices"}
	asnCmd.AddCommand(
		withBody("create", "Create an ASN against a purchase order", cobra.NoArgs,
			func(cmd *cobra.Command, body any, _ []string) (json.RawMessage, error) {
				return opts.app.service.CreateASN(cmd.Context(), body)
			}),
		withArg("items ASN", "Show the items of an ASN", func(cmd *cobra.Command, asn string) (json.RawMessage, error) {
			return opts.app.service.ASNItems(cmd.Context(), asn)
		}),
		withArg("for-po PO", "List the ASNs of a purchase order", func(cmd *cobra.Command, po string) (json.RawMessage, error) {
			return opts.app.service.ASNsForPO(cmd.Context(), po)
		}),
	)

	countCmd := &cobra.Command{Use: "count", Short: "Stock counts"}
	countCmd.AddCommand(
		withBody("add", "Add counted items", cobra.NoArgs,
			func(cmd *cobra.Command, body any, _ []string) (json.RawMessage, error) {
				return opts.app.service.AddCountItems(cmd.Context(), body)
			}),
		withBody("adhoc", "Add ad hoc counted items", cobra.NoArgs,
			func(cmd *cobra.Command, body any, _ []string) (json.RawMessage, error) {
				return opts.app.service.AddAdhocItems(cmd.Context(), body)
			}),
		withArg("entry ID", "Show a count entry", func(cmd *cobra.Command, id string) (json.RawMessage, error) {
			return opts.app.service.CountEntry(cmd.Context(), id)
		}),
	)

	return []*cobra.Command{transferCmd, asnCmd, countCmd}
}
