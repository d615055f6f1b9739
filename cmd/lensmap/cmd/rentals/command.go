// Package rentals implements the rental commands.
package rentals

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/lensmap/cmd/application"
	"github.com/agentstation/lensmap/internal/cmd/output"
	"github.com/agentstation/lensmap/internal/cmd/table"
	"github.com/agentstation/lensmap/pkg/catalogs"
)

// NewCommand creates the rentals command.
func NewCommand(app application.Application) *cobra.Command {
	var lensID string
	cmd := &cobra.Command{
		Use:     "rentals",
		GroupID: "catalog",
		Short:   "List rentals",
		Args:    cobra.NoArgs,
		Example: `  lensmap rentals                         # List every rental
  lensmap rentals --lens zeiss-supreme-50   # Rentals that include a lens`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			client, err := app.Client(ctx)
			if err != nil {
				return err
			}
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}

			var rentals []catalogs.Rental
			if lensID != "" {
				rentals, err = client.RentalsForLens(ctx, lensID)
			} else {
				rentals, err = client.Rentals(ctx)
			}
			if err != nil {
				return err
			}
			return output.Rentals(app.Stdout(), format, rentals)
		},
	}

	cmd.Flags().StringVar(&lensID, "lens", "", "only rentals that include this lens")
	return cmd
}

// NewRentalCommand creates the rental detail command.
func NewRentalCommand(app application.Application) *cobra.Command {
	var showLenses, showCameras bool
	cmd := &cobra.Command{
		Use:     "rental <id>",
		GroupID: "catalog",
		Short:   "Show a rental, its lenses or its cameras",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := app.Client(ctx)
			if err != nil {
				return err
			}
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}

			switch {
			case showLenses:
				lenses, err := client.LensesForRental(ctx, args[0])
				if err != nil {
					return err
				}
				prefs := client.Preferences()
				return output.Lenses(app.Stdout(), format, lenses, table.Marks{Favorite: prefs.IsFavorite})
			case showCameras:
				cameras, err := client.CamerasForRental(ctx, args[0])
				if err != nil {
					return err
				}
				return output.Cameras(app.Stdout(), format, cameras)
			default:
				rental, err := client.Rental(ctx, args[0])
				if err != nil {
					return err
				}
				if format.IsTable() {
					return output.Rentals(app.Stdout(), format, []catalogs.Rental{rental})
				}
				return output.NewFormatter(format).Format(app.Stdout(), rental)
			}
		},
	}

	cmd.Flags().BoolVar(&showLenses, "lenses", false, "list the lenses in the rental")
	cmd.Flags().BoolVar(&showCameras, "cameras", false, "list the cameras in the rental")
	cmd.MarkFlagsMutuallyExclusive("lenses", "cameras")
	return cmd
}

// NewCamerasCommand creates the cameras command.
func NewCamerasCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "cameras",
		GroupID: "catalog",
		Short:   "List cameras",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client(cmd.Context())
			if err != nil {
				return err
			}
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			cameras, err := client.Cameras(cmd.Context())
			if err != nil {
				return err
			}
			return output.Cameras(app.Stdout(), format, cameras)
		},
	}
}

// NewFormatsCommand creates the recording formats command.
func NewFormatsCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "formats",
		GroupID: "catalog",
		Short:   "List recording formats",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := app.Client(cmd.Context())
			if err != nil {
				return err
			}
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}
			formats, err := client.RecordingFormats(cmd.Context())
			if err != nil {
				return err
			}
			return output.RecordingFormats(app.Stdout(), format, formats)
		},
	}
}
