package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

func newSnapshotCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Save, restore, list, and delete named copies of the inventory",
	}
	cmd.AddCommand(newSnapshotSaveCmd(a))
	cmd.AddCommand(newSnapshotRestoreCmd(a))
	cmd.AddCommand(newSnapshotListCmd(a))
	cmd.AddCommand(newSnapshotDeleteCmd(a))
	return cmd
}

func newSnapshotSaveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "save <name>",
		Short: "Copy the current inventory into a named snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.openStore()
			if err != nil {
				return err
			}
			if err := a.shelf().Put(args[0], s.Items()); err != nil {
				return snapshotError(err)
			}
			a.logger.Info("saved snapshot", "name", args[0], "items", s.Len())
			fmt.Fprintf(cmd.OutOrStdout(), "Saved snapshot %s (%d items)\n", args[0], s.Len())
			return nil
		},
	}
}

func newSnapshotRestoreCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "restore <name>",
		Short: "Replace the inventory with a named snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			stock, err := a.shelf().Get(args[0])
			if err != nil {
				return snapshotError(err)
			}
			if err := a.layout.Ensure(); err != nil {
				return sysError(fmt.Errorf("create data dir: %w", err))
			}
			s := a.newStore()
			s.Replace(stock)
			if err := a.commit(s); err != nil {
				return err
			}
			a.logger.Info("restored snapshot", "name", args[0], "items", s.Len())
			fmt.Fprintf(cmd.OutOrStdout(), "Restored snapshot %s (%d items)\n", args[0], s.Len())
			return nil
		},
	}
}

func newSnapshotListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List snapshot names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := a.shelf().List()
			if a.flags.jsonMode {
				if names == nil {
					names = []string{}
				}
				return printJSON(cmd.OutOrStdout(), names)
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newSnapshotDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a named snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.shelf().Delete(args[0]); err != nil {
				return snapshotError(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted snapshot %s\n", args[0])
			return nil
		},
	}
}

// snapshotError classifies shelf errors: bad or unknown names are user
// errors.
func snapshotError(err error) error {
	if errors.Is(err, types.ErrSnapshotNotFound) || errors.Is(err, types.ErrInvalidSnapshotName) {
		return userError(err)
	}
	return sysError(err)
}
