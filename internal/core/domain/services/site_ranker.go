package services

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/site"
	"parcellocker/internal/pkg/errs"
)

// RankedSite is a parcel-locker site paired with its distance from the origin.
type RankedSite struct {
	Site       *site.Site
	DistanceKm float64
}

// SiteRanker is a domain service that orders parcel-locker sites by great-circle
// distance from a client.
//
// Business rules:
//   - Only sites strictly closer than the radius qualify; a site exactly on the
//     boundary is excluded
//   - Results are sorted ascending by distance, ties broken by site id
//   - A zero radius is valid and yields no sites
//   - Ranking never mutates the sites
//
// Example usage:
//
//	ranker := services.NewSiteRanker()
//	ranked, err := ranker.Rank(client.Location(), sites, 10)
//	if err != nil {
//	    return err
//	}
//	for _, r := range ranked {
//	    fmt.Printf("%s %.2f km\n", r.Site.City(), r.DistanceKm)
//	}
type SiteRanker struct{}

// NewSiteRanker creates a new SiteRanker instance.
func NewSiteRanker() SiteRanker {
	return SiteRanker{}
}

// Rank returns the sites within maxDistanceKm of origin, nearest first.
//
// Returns errs.ErrValueIsInvalid for a negative or NaN radius and propagates
// validation errors of the origin or of any site.
func (SiteRanker) Rank(origin kernel.GeoPoint, sites []*site.Site, maxDistanceKm float64) ([]RankedSite, error) {
	if err := ValidateRadius(maxDistanceKm); err != nil {
		return nil, err
	}
	if err := origin.Validate(); err != nil {
		return nil, err
	}

	ranked := make([]RankedSite, 0, len(sites))
	for _, s := range sites {
		if err := s.Validate(); err != nil {
			return nil, err
		}

		d, err := s.DistanceFrom(origin)
		if err != nil {
			return nil, err
		}

		if d < maxDistanceKm {
			ranked = append(ranked, RankedSite{Site: s, DistanceKm: d})
		}
	}

	slices.SortFunc(ranked, func(a, b RankedSite) int {
		if c := cmp.Compare(a.DistanceKm, b.DistanceKm); c != 0 {
			return c
		}
		return cmp.Compare(a.Site.ID(), b.Site.ID())
	})

	return ranked, nil
}

// ValidateRadius rejects negative, NaN and infinite search radii.
func ValidateRadius(maxDistanceKm float64) error {
	if math.IsNaN(maxDistanceKm) || math.IsInf(maxDistanceKm, 0) || maxDistanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"max distance",
			fmt.Errorf("%v is not a finite number >= 0", maxDistanceKm),
		)
	}
	return nil
}
