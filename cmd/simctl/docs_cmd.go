package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/jrsteele09/go-sim-client/inventory"
	"github.com/spf13/cobra"
)

var docOperations = []string{"list", "search", "filter", "sort", "create", "submit", "delete", "draft", "items", "reasons"}

func newDocsCmd(opts *rootOptions) *cobra.Command {
	docsCmd := &cobra.Command{
		Use:   "docs",
		Short: "Work with inventory documents (IA, DSD, PO, RTV, TSFIN, TSFOUT, SC)",
	}

	// docRun parses TYPE from args[0] and hands the rest to fn.
	docRun := func(fn func(cmd *cobra.Command, dt inventory.DocumentType, args []string) (json.RawMessage, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			dt, err := inventory.ParseDocumentType(args[0])
			if err != nil {
				return err
			}
			return printResult(cmd, func() (json.RawMessage, error) {
				return fn(cmd, dt, args[1:])
			})
		}
	}

	var data string
	withData := func(cmd *cobra.Command) *cobra.Command {
		cmd.Flags().StringVarP(&data, "data", "d", "", "JSON body, or @file")
		return cmd
	}

	docsCmd.AddCommand(
		offline(&cobra.Command{
			Use:   "types",
			Short: "Show document types and the operations each supports",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "TYPE\tDESCRIPTION\tOPERATIONS")
				for _, dt := range inventory.DocumentTypes {
					var supported []string
					for _, op := range docOperations {
						if ok, _ := inventory.Supports(dt, op); ok {
							supported = append(supported, op)
						}
					}
					fmt.Fprintf(tw, "%s\t%s\t%v\n", dt, dt.Description(), supported)
				}
				return tw.Flush()
			},
		}),
		&cobra.Command{
			Use:   "list TYPE",
			Short: "List documents for the store",
			Args:  cobra.ExactArgs(1),
			RunE: docRun(func(cmd *cobra.Command, dt inventory.DocumentType, args []string) (json.RawMessage, error) {
				store, err := opts.store()
				if err != nil {
					return nil, err
				}
				return opts.app.service.List(cmd.Context(), dt, store)
			}),
		},
		&cobra.Command{
			Use:   "search TYPE QUERY",
			Short: "Search documents; an empty query lists everything",
			Args:  cobra.RangeArgs(1, 2),
			RunE: docRun(func(cmd *cobra.Command, dt inventory.DocumentType, args []string) (json.RawMessage, error) {
				store, err := opts.store()
				if err != nil {
					return nil, err
				}
				var query string
				if len(args) > 0 {
					query = args[0]
				}
				return opts.app.service.Search(cmd.Context(), dt, store, query)
			}),
		},
		&cobra.Command{
			Use:   "filter TYPE VALUE",
			Short: "Filter documents by status or category",
			Args:  cobra.ExactArgs(2),
			RunE: docRun(func(cmd *cobra.Command, dt inventory.DocumentType, args []string) (json.RawMessage, error) {
				store, err := opts.store()
				if err != nil {
					return nil, err
				}
				return opts.app.service.Filter(cmd.Context(), dt, store, args[0])
			}),
		},
		&cobra.Command{
			Use:   "sort TYPE latest|oldest",
			Short: "List documents ordered by date",
			Args:  cobra.ExactArgs(2),
			RunE: docRun(func(cmd *cobra.Command, dt inventory.DocumentType, args []string) (json.RawMessage, error) {
				store, err := opts.store()
				if err != nil {
					return nil, err
				}
				order, err := inventory.ParseSortOrder(args[0])
				if err != nil {
					return nil, err
				}
				return opts.app.service.Sort(cmd.Context(), dt, store, order)
			}),
		},
		withData(&cobra.Command{
			Use:   "create TYPE",
			Short: "Create a document",
			Args:  cobra.ExactArgs(1),
			RunE: docRun(func(cmd *cobra.Command, dt inventory.DocumentType, args []string) (json.RawMessage, error) {
				store, err := opts.store()
				if err != nil {
					return nil, err
				}
				body, err := parseData(data)
				if err != nil {
					return nil, err
				}
				return opts.app.service.Create(cmd.Context(), dt, store, body)
			}),
		}),
		withData(&cobra.Command{
			Use:   "submit TYPE [SEGMENT...]",
			Short: "Submit a document's items",
			Args:  cobra.MinimumNArgs(1),
			RunE: docRun(func(cmd *cobra.Command, dt inventory.DocumentType, args []string) (json.RawMessage, error) {
				body, err := parseData(data)
				if err != nil {
					return nil, err
				}
				return opts.app.service.Submit(cmd.Context(), dt, body, args...)
			}),
		}),
		withData(&cobra.Command{
			Use:   "draft TYPE [SEGMENT...]",
			Short: "Save a document as draft",
			Args:  cobra.MinimumNArgs(1),
			RunE: docRun(func(cmd *cobra.Command, dt inventory.DocumentType, args []string) (json.RawMessage, error) {
				body, err := parseData(data)
				if err != nil {
					return nil, err
				}
				return opts.app.service.SaveDraft(cmd.Context(), dt, body, args...)
			}),
		}),
		withData(&cobra.Command{
			Use:   "delete TYPE ID",
			Short: "Delete a document",
			Args:  cobra.ExactArgs(2),
			RunE: docRun(func(cmd *cobra.Command, dt inventory.DocumentType, args []string) (json.RawMessage, error) {
				body, err := parseData(data)
				if err != nil {
					return nil, err
				}
				return opts.app.service.Delete(cmd.Context(), dt, args[0], body)
			}),
		}),
		&cobra.Command{
			Use:   "items TYPE ID [SEGMENT...]",
			Short: "Show a document's line items",
			Args:  cobra.MinimumNArgs(2),
			RunE: docRun(func(cmd *cobra.Command, dt inventory.DocumentType, args []string) (json.RawMessage, error) {
				return opts.app.service.Items(cmd.Context(), dt, args[0], args[1:]...)
			}),
		},
		&cobra.Command{
			Use:   "reasons TYPE",
			Short: "Show the reason codes for a document type",
			Args:  cobra.ExactArgs(1),
			RunE: docRun(func(cmd *cobra.Command, dt inventory.DocumentType, args []string) (json.RawMessage, error) {
				return opts.app.service.Reasons(cmd.Context(), dt)
			}),
		},
	)
	return docsCmd
}

func newDashboardCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show tasks, discrepancies, variance and transfer status for the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := opts.store()
			if err != nil {
				return err
			}
			d, err := opts.app.service.Dashboard(cmd.Context(), store)
			if err != nil {
				return err
			}
			raw, err := json.Marshal(d)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), raw)
		},
	}
}
