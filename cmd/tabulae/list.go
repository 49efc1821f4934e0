package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/duquediazn/tabulae-client/internal/domain/models"
)

func productsCmd(a *app) *cobra.Command {
	var (
		search   string
		category int
		limit    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the product catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			page, err := a.api.Products.List(cmd.Context(), models.ProductFilters{
				Search:     search,
				CategoryID: category,
			}, limit, offset)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSKU\tNAME\tCATEGORY\tACTIVE")
			for _, p := range page.Data {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", p.ID, p.SKU, p.ShortName, p.CategoryName, p.IsActive)
			}
			w.Flush()
			fmt.Printf("%d of %d products\n", len(page.Data), page.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Search term")
	cmd.Flags().IntVar(&category, "category", 0, "Filter by category id")
	cmd.Flags().IntVar(&limit, "limit", 10, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")
	return cmd
}

func warehousesCmd(a *app) *cobra.Command {
	var (
		search string
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "warehouses",
		Short: "List the warehouse registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			page, err := a.api.Warehouses.List(cmd.Context(), models.WarehouseFilters{Search: search}, limit, offset)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDESCRIPTION\tACTIVE")
			for _, wh := range page.Data {
				fmt.Fprintf(w, "%d\t%s\t%t\n", wh.ID, wh.Description, wh.IsActive)
			}
			w.Flush()
			fmt.Printf("%d of %d warehouses\n", len(page.Data), page.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Search term")
	cmd.Flags().IntVar(&limit, "limit", 10, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")
	return cmd
}

func movementsCmd(a *app) *cobra.Command {
	var (
		search   string
		moveType string
		dateFrom string
		dateTo   string
		limit    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "movements",
		Short: "List the stock-movement ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			page, err := a.api.Movements.List(cmd.Context(), models.MovementFilters{
				Search:   search,
				MoveType: moveType,
				DateFrom: dateFrom,
				DateTo:   dateTo,
			}, limit, offset)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTYPE\tUSER\tDATE\tLINES")
			for _, m := range page.Data {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n",
					m.MoveID, m.MoveType, m.UserName, m.CreatedAt.Format("2006-01-02"), len(m.Lines))
			}
			w.Flush()
			fmt.Printf("%d of %d movements\n", len(page.Data), page.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Search term")
	cmd.Flags().StringVar(&moveType, "type", "", "Filter by move type (incoming/outgoing)")
	cmd.Flags().StringVar(&dateFrom, "from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&dateTo, "to", "", "End date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&limit, "limit", 10, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")
	return cmd
}

func usersCmd(a *app) *cobra.Command {
	var (
		search string
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "users",
		Short: "List user accounts (admin only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			page, err := a.api.Users.List(cmd.Context(), models.UserFilters{Search: search}, limit, offset)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tEMAIL\tROLE\tACTIVE")
			for _, u := range page.Data {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%t\n", u.ID, u.Name, u.Email, u.Role, u.IsActive)
			}
			w.Flush()
			fmt.Printf("%d of %d users\n", len(page.Data), page.Total)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Search term")
	cmd.Flags().IntVar(&limit, "limit", 10, "Page size")
	cmd.Flags().IntVar(&offset, "offset", 0, "Page offset")
	return cmd
}
