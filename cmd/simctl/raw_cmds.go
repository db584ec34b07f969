package main

import (
	"encoding/json"

	"github.com/jrsteele09/go-sim-client/endpoints"
	"github.com/spf13/cobra"
)

// newRawCmds exposes the generic verbs. PATH is either a literal path
// ("/dsd/all/Dsd") or an endpoint key followed by segments ("fetchItemsDSD 12").
func newRawCmds(opts *rootOptions) []*cobra.Command {
	var data string

	getCmd := &cobra.Command{
		Use:   "get PATH|KEY [SEGMENT...]",
		Short: "GET a path and print the JSON response",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath(args)
			if err != nil {
				return err
			}
			return printResult(cmd, func() (json.RawMessage, error) {
				return opts.app.gateway.Get(cmd.Context(), path)
			})
		},
	}

	postCmd := &cobra.Command{
		Use:   "post PATH|KEY [SEGMENT...]",
		Short: "POST JSON to a path",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath(args)
			if err != nil {
				return err
			}
			body, err := parseData(data)
			if err != nil {
				return err
			}
			return printResult(cmd, func() (json.RawMessage, error) {
				return opts.app.gateway.Post(cmd.Context(), path, body)
			})
		},
	}
	postCmd.Flags().StringVarP(&data, "data", "d", "", "JSON body, or @file")

	deleteCmd := &cobra.Command{
		Use:   "delete PATH|KEY [SEGMENT...]",
		Short: "DELETE a path, with an optional JSON body",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolvePath(args)
			if err != nil {
				return err
			}
			body, err := parseData(data)
			if err != nil {
				return err
			}
			return printResult(cmd, func() (json.RawMessage, error) {
				return opts.app.gateway.Delete(cmd.Context(), path, body)
			})
		},
	}
	deleteCmd.Flags().StringVarP(&data, "data", "d", "", "JSON body, or @file")

	return []*cobra.Command{getCmd, postCmd, deleteCmd}
}

func resolvePath(args []string) (string, error) {
	if len(args[0]) > 0 && args[0][0] == '/' {
		return endpoints.Join(args[0], args[1:]...), nil
	}
	return endpoints.Path(endpoints.Key(args[0]), args[1:]...)
}

func printResult(cmd *cobra.Command, call func() (json.RawMessage, error)) error {
	raw, err := call()
	if err != nil {
		return err
	}
	return writeJSON(cmd.OutOrStdout(), raw)
}
