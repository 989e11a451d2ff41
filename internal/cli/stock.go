// Stock commands: add, remove, get, low, report.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "add <item> <qty>",
		Short: "Add quantity of an item",
		Long: `Add increments the quantity held for an item, creating it if absent.
The quantity must be a non-negative integer.`,
		Example: "  pantry add apple 10",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := args[0]
			qty, err := parseQty(args[1])
			if err != nil {
				return err
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}
			if err := outcomeError(s.Add(item, qty)); err != nil {
				return err
			}
			if err := a.commit(s); err != nil {
				return err
			}
			return a.printItem(cmd.OutOrStdout(), item, s.Quantity(item))
		},
	}
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <item> <qty>",
		Short: "Remove quantity of an item",
		Long: `Remove decrements the quantity held for an item. An item whose quantity
reaches zero is deleted. The item must exist and the quantity must be positive.`,
		Example: "  pantry remove apple 3",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			item := args[0]
			qty, err := parseQty(args[1])
			if err != nil {
				return err
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}
			if err := outcomeError(s.Remove(item, qty)); err != nil {
				return err
			}
			if err := a.commit(s); err != nil {
				return err
			}
			return a.printItem(cmd.OutOrStdout(), item, s.Quantity(item))
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <item>",
		Short: "Print the quantity of an item (0 if absent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			return a.printItem(cmd.OutOrStdout(), args[0], s.Quantity(args[0]))
		},
	}
}

func newLowCmd(a *app) *cobra.Command {
	var threshold int
	cmd := &cobra.Command{
		Use:   "low",
		Short: "List items whose quantity is below a threshold",
		Long: `Low lists, sorted by name, every item whose quantity is strictly below
the threshold. The threshold defaults to low_stock_threshold from the
configuration (5 unless configured).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			limit := a.cfg.LowStockThreshold
			if cmd.Flags().Changed("threshold") {
				if threshold < 0 {
					return userError(fmt.Errorf("invalid threshold %d: must not be negative", threshold))
				}
				limit = threshold
			}

			s, err := a.openStore()
			if err != nil {
				return err
			}
			low := s.LowStock(limit)
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), low)
			}
			for _, item := range low {
				fmt.Fprintln(cmd.OutOrStdout(), item)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&threshold, "threshold", 0, "low-stock threshold (default: configured low_stock_threshold)")
	return cmd
}

func newReportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Print every item and its quantity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			if a.flags.jsonMode {
				return printJSON(cmd.OutOrStdout(), s.Items())
			}
			return outcomeError(s.Report(cmd.OutOrStdout()))
		},
	}
}
