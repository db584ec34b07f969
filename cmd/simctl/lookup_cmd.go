package main

import (
	"encoding/json"

	"github.com/jrsteele09/go-sim-client/inventory"
	"github.com/spf13/cobra"
)

func newLookupCmd(opts *rootOptions) *cobra.Command {
	lookupCmd := &cobra.Command{
		Use:   "lookup",
		Short: "Item, supplier and store lookups",
	}

	var data string
	run := func(fn func(cmd *cobra.Command, args []string) (json.RawMessage, error)) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			return printResult(cmd, func() (json.RawMessage, error) { return fn(cmd, args) })
		}
	}
	scoped := func(fn func(cmd *cobra.Command, store string, args []string) (json.RawMessage, error)) func(*cobra.Command, []string) error {
		return run(func(cmd *cobra.Command, args []string) (json.RawMessage, error) {
			store, err := opts.store()
			if err != nil {
				return nil, err
			}
			return fn(cmd, store, args)
		})
	}

	detailsCmd := &cobra.Command{
		Use:   "details",
		Short: "Fetch product details for the items in --data",
		Args:  cobra.NoArgs,
		RunE: run(func(cmd *cobra.Command, args []string) (json.RawMessage, error) {
			body, err := parseData(data)
			if err != nil {
				return nil, err
			}
			return opts.app.service.ProductDetails(cmd.Context(), body)
		}),
	}
	detailsCmd.Flags().StringVarP(&data, "data", "d", "", "JSON body, or @file")

	lookupCmd.AddCommand(
		&cobra.Command{
			Use:   "item SKU TYPE",
			Short: "Search items for a document type at the store",
			Args:  cobra.ExactArgs(2),
			RunE: scoped(func(cmd *cobra.Command, store string, args []string) (json.RawMessage, error) {
				dt, err := inventory.ParseDocumentType(args[1])
				if err != nil {
					return nil, err
				}
				return opts.app.service.ItemSearch(cmd.Context(), args[0], store, dt)
			}),
		},
		&cobra.Command{
			Use:   "supplier-items SUPPLIER SKU",
			Short: "Search a supplier's items at the store",
			Args:  cobra.ExactArgs(2),
			RunE: scoped(func(cmd *cobra.Command, store string, args []string) (json.RawMessage, error) {
				return opts.app.service.ItemsBySupplier(cmd.Context(), args[0], args[1], store)
			}),
		},
		&cobra.Command{
			Use:   "suppliers QUERY",
			Short: "Find suppliers by name or id",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(cmd *cobra.Command, args []string) (json.RawMessage, error) {
				return opts.app.service.SupplierSearch(cmd.Context(), args[0])
			}),
		},
		&cobra.Command{
			Use:   "category-items SKU CATEGORY",
			Short: "Search items within a category at the store",
			Args:  cobra.ExactArgs(2),
			RunE: scoped(func(cmd *cobra.Command, store string, args []string) (json.RawMessage, error) {
				return opts.app.service.CategoryItemSearch(cmd.Context(), args[0], store, args[1])
			}),
		},
		&cobra.Command{
			Use:   "variants SKU",
			Short: "Show the variants of an item",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(cmd *cobra.Command, args []string) (json.RawMessage, error) {
				return opts.app.service.Variants(cmd.Context(), args[0])
			}),
		},
		detailsCmd,
		&cobra.Command{
			Use:   "store-item SKU",
			Short: "Show item stock details at the store",
			Args:  cobra.ExactArgs(1),
			RunE: scoped(func(cmd *cobra.Command, store string, args []string) (json.RawMessage, error) {
				return opts.app.service.StoreItemDetails(cmd.Context(), args[0], store)
			}),
		},
		&cobra.Command{
			Use:   "stores QUERY",
			Short: "Find stores",
			Args:  cobra.ExactArgs(1),
			RunE: run(func(cmd *cobra.Command, args []string) (json.RawMessage, error) {
				return opts.app.service.Stores(cmd.Context(), args[0])
			}),
		},
		&cobra.Command{
			Use:   "buddy-stores",
			Short: "List the buddy stores of the store",
			Args:  cobra.NoArgs,
			RunE: scoped(func(cmd *cobra.Command, store string, args []string) (json.RawMessage, error) {
				return opts.app.service.BuddyStores(cmd.Context(), store)
			}),
		},
		&cobra.Command{
			Use:   "categories",
			Short: "List item categories",
			Args:  cobra.NoArgs,
			RunE: run(func(cmd *cobra.Command, args []string) (json.RawMessage, error) {
				return opts.app.service.Categories(cmd.Context())
			}),
		},
	)
	return lookupCmd
}
