package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/internal/inventory"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a short demonstration against a fresh inventory",
		Long: `Demo starts from an empty inventory, adds 10 apples and 2 bananas,
removes 3 apples, tries to remove an orange that is not stocked, prints the
apple count and the low-stock items, then saves, reloads, and reports. The
configured inventory file is overwritten.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.layout.Ensure(); err != nil {
				return sysError(fmt.Errorf("create data dir: %w", err))
			}
			journal := &inventory.MemoryJournal{}
			s := inventory.New(
				inventory.WithBackend(a.newBackend()),
				inventory.WithJournal(journal),
				inventory.WithLogger(a.logger),
			)
			w := cmd.OutOrStdout()
			path := a.layout.InventoryPath()

			s.Add("apple", 10)
			s.Add("banana", 2)
			s.Remove("apple", 3)
			s.Remove("orange", 1)
			fmt.Fprintf(w, "Apple stock: %d\n", s.Quantity("apple"))
			fmt.Fprintf(w, "Low items: %v\n", s.LowStock(inventory.DefaultLowStockThreshold))

			if err := outcomeError(s.Save(path)); err != nil {
				return err
			}
			if err := outcomeError(s.Load(path)); err != nil {
				return err
			}
			if err := outcomeError(s.Report(w)); err != nil {
				return err
			}

			for _, line := range journal.Lines() {
				a.logger.Debug(line)
			}
			a.logger.Info("Inventory demo completed successfully.")
			return nil
		},
	}
}
