package main

import (
	"fmt"

	"github.com/spf13/cobra"

	todoist "github.com/tonimelisma/todoist-go"
)

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new resource",
	}

	cmd.AddCommand(newCreateProjectCmd())

	return cmd
}

func newCreateProjectCmd() *cobra.Command {
	var (
		flagParent   string
		flagColor    string
		flagFavorite bool
	)

	cmd := &cobra.Command{
		Use:   "project NAME",
		Short: "Create a project under a parent path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := loadState()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			// Resolve the parent against a fresh mirror so indent and
			// order reflect current server state.
			if err := state.cache.Sync(ctx, state.client); err != nil {
				return err
			}

			parent, ok := state.cache.GetProject(flagParent)
			if !ok {
				return fmt.Errorf("parent project %q not found", flagParent)
			}

			color, err := todoist.ParseColor(flagColor)
			if err != nil {
				return err
			}

			project := todoist.NewProject(args[0])
			project.Indent = parent.Indent + 1
			project.ItemOrder = parent.ItemOrder + 1
			project.Color = color
			project.IsFavorite = todoist.NewIntBool(flagFavorite)

			create := project.Create()

			resp, err := state.client.Begin().Exec(create).Commit(ctx)
			if err != nil {
				return err
			}

			realID := resp.TempIDMappings[*create.TempID]

			// Pick up the newly created project in the mirror.
			if err := state.cache.Sync(ctx, state.client); err != nil {
				return err
			}

			if err := state.saveCache(); err != nil {
				return err
			}

			fmt.Printf("Created project %q (id %d)\n", args[0], realID)

			return nil
		},
	}

	cmd.Flags().StringVarP(&flagParent, "parent", "p", "Inbox", "parent project path")
	cmd.Flags().StringVarP(&flagColor, "color", "c", "grey", "project color name")
	cmd.Flags().BoolVarP(&flagFavorite, "favorite", "f", false, "mark as favorite")

	return cmd
}
