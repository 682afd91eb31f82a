package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/Stasnislawe/TZ-1ST-IT-COMPANY/cascade"

	"github.com/spf13/cobra"
)

type optionsFlags struct {
	transactionType string
	category        string
	subcategory     string
	remoteOnly      bool
	asJSON          bool
}

func newOptionsCmd(a *app) *cobra.Command {
	var f optionsFlags

	cmd := &cobra.Command{
		Use:   "options",
		Short: "Show the category and subcategory options for a selection",
		Long: `options loads the catalog from the server and resolves the dependent
fields for the given selection. When the catalog cannot be loaded, or with
--remote-only, the options are queried per parent instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptions(cmd, a, f)
		},
	}

	cmd.Flags().StringVar(&f.transactionType, "type", "", "transaction type id")
	cmd.Flags().StringVar(&f.category, "category", "", "category id")
	cmd.Flags().StringVar(&f.subcategory, "subcategory", "", "subcategory id")
	cmd.Flags().BoolVar(&f.remoteOnly, "remote-only", false, "skip the bulk catalog and query per parent")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print the state as JSON")
	return cmd
}

func runOptions(cmd *cobra.Command, a *app, f optionsFlags) error {
	ctx := cmd.Context()
	filter := cascade.NewFilter(a.source(),
		cascade.WithLogger(a.log),
		cascade.WithSelection(cascade.Selection{
			TransactionType: cascade.ParseID(f.transactionType),
			Category:        cascade.ParseID(f.category),
			Subcategory:     cascade.ParseID(f.subcategory),
		}),
	)

	if f.remoteOnly {
		filter.TransactionTypeChanged(ctx, cascade.ParseID(f.transactionType))
	} else if _, err := filter.LoadCatalog(ctx); err != nil && !errors.Is(err, cascade.ErrCatalogUnavailable) {
		return err
	}

	state := filter.State()
	out := cmd.OutOrStdout()
	if f.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(state)
	}

	mode := "local"
	if filter.Remote() {
		mode = "remote"
	}
	fmt.Fprintf(out, "mode: %s\n", mode)
	fmt.Fprintf(out, "transaction type: %s\n", state.TransactionType)
	printField(out, "category", state.Category)
	printField(out, "subcategory", state.Subcategory)
	return nil
}

func printField(w io.Writer, name string, field cascade.Field) {
	fmt.Fprintf(w, "%s:\n", name)
	for _, opt := range field.Options {
		mark := " "
		if opt.Value == field.Selected {
			mark = "*"
		}
		value := opt.Value.String()
		if value == "" {
			value = "-"
		}
		fmt.Fprintf(w, "  %s %s\t%s\n", mark, value, opt.Label)
	}
}
