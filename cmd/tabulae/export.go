package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/duquediazn/tabulae-client/internal/domain/models"
)

func exportCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:       "export {movements|products|warehouses|users}",
		Short:     "Export a dataset as CSV",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"movements", "products", "warehouses", "users"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			out := os.Stdout
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			exporter := a.exporter()
			switch args[0] {
			case "movements":
				return exporter.Movements(cmd.Context(), models.MovementFilters{}, out)
			case "products":
				return exporter.Products(cmd.Context(), models.ProductFilters{}, out)
			case "warehouses":
				return exporter.Warehouses(cmd.Context(), models.WarehouseFilters{}, out)
			case "users":
				return exporter.Users(cmd.Context(), models.UserFilters{}, out)
			default:
				return fmt.Errorf("unknown dataset %q", args[0])
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}
