// Package lenses implements the lens browsing commands.
package lenses

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/lensmap/cmd/application"
	"github.com/agentstation/lensmap/internal/cmd/output"
	"github.com/agentstation/lensmap/internal/cmd/table"
	"github.com/agentstation/lensmap/pkg/catalogs"
	"github.com/agentstation/lensmap/pkg/errors"
	"github.com/agentstation/lensmap/pkg/filter"
)

// flags holds the filter flags of the lenses command.
type flags struct {
	manufacturer string
	format       string
	category     string
	search       string
	minFocal     float64
	maxFocal     float64
	minAperture  float64
	maxAperture  float64
	rentable     bool
}

// NewCommand creates the lenses command.
func NewCommand(app application.Application) *cobra.Command {
	f := &flags{}
	cmd := &cobra.Command{
		Use:     "lenses",
		GroupID: "catalog",
		Short:   "List and filter lenses",
		Aliases: []string{"ls"},
		Args:    cobra.NoArgs,
		Example: `  lensmap lenses                               # List every lens
  lensmap lenses --manufacturer zeiss --rentable
  lensmap lenses --min-focal 40 --max-focal 60  # Lenses whose range overlaps 40-60mm
  lensmap lenses --category telephoto -o json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			criteria, err := f.criteria(cmd)
			if err != nil {
				return err
			}
			return list(cmd, app, criteria)
		},
	}

	cmd.Flags().StringVar(&f.manufacturer, "manufacturer", "", "only lenses from this manufacturer (case-insensitive)")
	cmd.Flags().StringVar(&f.format, "format", "", "only lenses covering this recording format")
	cmd.Flags().StringVar(&f.category, "category", "", "focal category: ultra-wide, wide, standard, telephoto, super-telephoto")
	cmd.Flags().StringVarP(&f.search, "search", "s", "", "free-text search over name, manufacturer and description")
	cmd.Flags().Float64Var(&f.minFocal, "min-focal", 0, "lower focal length bound in mm (inclusive)")
	cmd.Flags().Float64Var(&f.maxFocal, "max-focal", 0, "upper focal length bound in mm (inclusive)")
	cmd.Flags().Float64Var(&f.minAperture, "min-aperture", 0, "lower f-number bound (inclusive)")
	cmd.Flags().Float64Var(&f.maxAperture, "max-aperture", 0, "upper f-number bound (inclusive)")
	cmd.Flags().BoolVar(&f.rentable, "rentable", false, "only lenses that can be rented")

	return cmd
}

// criteria converts the parsed flags into filter criteria. Numeric bounds
// apply only when their flag was given.
func (f *flags) criteria(cmd *cobra.Command) (filter.Criteria, error) {
	opts := []filter.Option{
		filter.WithManufacturer(f.manufacturer),
		filter.WithFormat(catalogs.FormatID(f.format)),
		filter.WithSearch(f.search),
	}

	if f.category != "" {
		category := catalogs.FocalCategory(f.category)
		if !category.IsValid() {
			return filter.Criteria{}, errors.NewValidationError("category", f.category, "unknown focal category")
		}
		opts = append(opts, filter.WithCategory(category))
	}
	if cmd.Flags().Changed("min-focal") {
		opts = append(opts, filter.WithMinFocalLength(f.minFocal))
	}
	if cmd.Flags().Changed("max-focal") {
		opts = append(opts, filter.WithMaxFocalLength(f.maxFocal))
	}
	if cmd.Flags().Changed("min-aperture") {
		opts = append(opts, filter.WithMinAperture(f.minAperture))
	}
	if cmd.Flags().Changed("max-aperture") {
		opts = append(opts, filter.WithMaxAperture(f.maxAperture))
	}
	if f.rentable {
		opts = append(opts, filter.OnlyRentable())
	}

	return filter.NewCriteria(opts...), nil
}

// NewLensCommand creates the lens detail command.
func NewLensCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "lens <id>",
		GroupID: "catalog",
		Short:   "Show a single lens",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.Client(cmd.Context())
			if err != nil {
				return err
			}
			format, err := output.Resolve(app.OutputFormat())
			if err != nil {
				return err
			}

			lens, err := client.Lens(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return output.Lens(app.Stdout(), format, lens)
		},
	}
}

// NewSearchCommand creates the free-text search command.
func NewSearchCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "search <query>",
		GroupID: "catalog",
		Short:   "Search lenses by name, manufacturer or description",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return list(cmd, app, filter.NewCriteria(filter.WithSearch(args[0])))
		},
	}
}

func list(cmd *cobra.Command, app application.Application, criteria filter.Criteria) error {
	ctx := cmd.Context()
	client, err := app.Client(ctx)
	if err != nil {
		return err
	}
	format, err := output.Resolve(app.OutputFormat())
	if err != nil {
		return err
	}

	lenses, err := client.Lenses(ctx, criteria)
	if err != nil {
		return err
	}

	app.Logger().Debug().
		Str("criteria", criteria.String()).
		Int("count", len(lenses)).
		Msg("Listing lenses")

	prefs := client.Preferences()
	return output.Lenses(app.Stdout(), format, lenses, table.Marks{
		Favorite:  prefs.IsFavorite,
		Comparing: prefs.IsComparing,
	})
}
