// Package compare implements the lens comparison commands.
package compare

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/lensmap/cmd/application"
	"github.com/agentstation/lensmap/internal/cmd/constants"
	"github.com/agentstation/lensmap/internal/cmd/output"
	"github.com/agentstation/lensmap/internal/cmd/table"
	pkgconstants "github.com/agentstation/lensmap/pkg/constants"
)

// NewCommand creates the compare command. Without a subcommand it lists the
// lenses being compared.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "compare",
		GroupID: "preferences",
		Short:   fmt.Sprintf("Compare up to %d lenses side by side", pkgconstants.MaxComparisonItems),
		Aliases: []string{"cmp"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return list(cmd, app)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   constants.ActionList,
			Short: "List the lenses being compared",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return list(cmd, app)
			},
		},
		&cobra.Command{
			Use:   constants.ActionAdd + " <lens-id>",
			Short: "Add a lens to the comparison",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return add(cmd, app, args[0])
			},
		},
		&cobra.Command{
			Use:   constants.ActionRemove + " <lens-id>",
			Short: "Remove a lens from the comparison",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				client, err := app.Client(cmd.Context())
				if err != nil {
					return err
				}
				if err := client.Preferences().RemoveFromComparison(cmd.Context(), args[0]); err != nil {
					return err
				}
				_, err = fmt.Fprintf(app.Stdout(), "Removed %s from comparison\n", args[0])
				return err
			},
		},
		&cobra.Command{
			Use:   constants.ActionClear,
			Short: "Remove every lens from the comparison",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				client, err := app.Client(cmd.Context())
				if err != nil {
					return err
				}
				if err := client.Preferences().ClearComparison(cmd.Context()); err != nil {
					return err
				}
				_, err = fmt.Fprintln(app.Stdout(), "Comparison cleared")
				return err
			},
		},
	)

	return cmd
}

func list(cmd *cobra.Command, app application.Application) error {
	ctx := cmd.Context()
	client, err := app.Client(ctx)
	if err != nil {
		return err
	}
	format, err := output.Resolve(app.OutputFormat())
	if err != nil {
		return err
	}

	lenses, err := client.ComparisonLenses(ctx)
	if err != nil {
		return err
	}
	if format == output.FormatTable {
		format = output.FormatWide
	}
	return output.Lenses(app.Stdout(), format, lenses, table.Marks{
		Favorite: client.Preferences().IsFavorite,
	})
}

func add(cmd *cobra.Command, app application.Application, id string) error {
	ctx := cmd.Context()
	client, err := app.Client(ctx)
	if err != nil {
		return err
	}

	lens, err := client.Lens(ctx, id)
	if err != nil {
		return err
	}
	if err := client.Preferences().AddToComparison(ctx, lens.ID); err != nil {
		return err
	}

	_, err = fmt.Fprintf(app.Stdout(), "Comparing %s (%d of %d)\n",
		lens.Name, client.Preferences().Comparison().Len(), pkgconstants.MaxComparisonItems)
	return err
}
