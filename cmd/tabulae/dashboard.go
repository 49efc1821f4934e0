package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func dashboardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the inventory overview",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			overview, err := a.dashboard().Overview(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Expiration semaphore: %d ok, %d expiring soon, %d expired\n",
				overview.Semaphore.NoExpiration, overview.Semaphore.ExpiringSoon, overview.Semaphore.Expired)

			for _, t := range overview.MoveTotals {
				fmt.Printf("Total %s: %d\n", t.MoveType, t.Quantity)
			}

			if len(overview.MonthlyActivity) > 0 {
				fmt.Println("\nLast year activity:")
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "MONTH\tINCOMING\tOUTGOING")
				for _, mc := range overview.MonthlyActivity {
					fmt.Fprintf(w, "%s\t%d\t%d\n", mc.Month, mc.Incoming, mc.Outgoing)
				}
				w.Flush()
			}

			if len(overview.WarehouseStock) > 0 {
				fmt.Println("\nStock by warehouse:")
				w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
				fmt.Fprintln(w, "WAREHOUSE\tTOTAL")
				for _, ws := range overview.WarehouseStock {
					fmt.Fprintf(w, "%s\t%d\n", ws.WarehouseName, ws.TotalQuantity)
				}
				w.Flush()
			}

			return nil
		},
	}
}
