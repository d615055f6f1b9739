// Package catalogs provides the record types of the lensmap catalog: lenses,
// cameras, recording formats, and rentals, plus the Provider interface that
// every catalog source implements.
//
// Records are plain values and are treated as immutable once fetched. Rentals
// refer to lenses and cameras by ID; the relation is resolved by
// pkg/relations rather than embedded.
//
// Example usage:
//
//	// Fetch lenses from any provider
//	lenses, err := provider.Lenses(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, lens := range lenses {
//	    fmt.Printf("%s %s (%s)\n", lens.Manufacturer, lens.Name, lens.FocalRange)
//	}
package catalogs
