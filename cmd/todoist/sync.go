package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Refresh the local mirror from the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			state, err := loadState()
			if err != nil {
				return err
			}

			if err := state.cache.Sync(cmd.Context(), state.client); err != nil {
				return err
			}

			if err := state.saveCache(); err != nil {
				return err
			}

			fmt.Printf("Synced %d projects, %d items, %d labels\n",
				len(state.cache.Projects), len(state.cache.Items), len(state.cache.Labels))

			return nil
		},
	}
}
