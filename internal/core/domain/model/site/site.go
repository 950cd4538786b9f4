package site

import (
	"errors"
	"fmt"
	"strings"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrCityIsRequired       = errs.NewValueIsRequiredError("city")
	ErrPostalCodeIsRequired = errs.NewValueIsRequiredError("postal code")
	// ErrSiteIsNotConstructed is returned when using an improperly initialized Site.
	ErrSiteIsNotConstructed = errors.New("Site must be created via NewSite or RestoreSite constructor")
)

// Site is a physical parcel-locker installation at a fixed point on the map.
// Compartments belong to exactly one site; the site itself carries no state that
// the allocation flow mutates.
type Site struct {
	id         kernel.ID
	city       string
	postalCode string
	location   kernel.GeoPoint
	guard      guard.ConstructorGuard
}

// NewSite creates a site that has not been persisted yet.
//
// Example:
//
//	location, _ := kernel.NewGeoPoint(52.2297, 21.0122)
//	s, err := site.NewSite("Warszawa", "00-001", location)
func NewSite(city, postalCode string, location kernel.GeoPoint) (*Site, error) {
	s := &Site{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		s.setCity(city),
		s.setPostalCode(postalCode),
		s.setLocation(location),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreSite rebuilds a persisted site.
func RestoreSite(id kernel.ID, city, postalCode string, location kernel.GeoPoint) (*Site, error) {
	s, err := NewSite(city, postalCode, location)
	if err != nil {
		return nil, err
	}
	if err := s.Identify(id); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate ensures the Site was created through a constructor.
func (s *Site) Validate() error {
	if s == nil {
		return ErrSiteIsNotConstructed
	}
	return s.guard.Validate(ErrSiteIsNotConstructed)
}

// Identify assigns the database identity. Re-identifying with a different ID fails.
func (s *Site) Identify(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !s.id.IsZero() && s.id != id {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("site already identified as %d", s.id))
	}
	s.id = id
	return nil
}

// ID returns the site identity, zero until persisted.
func (s *Site) ID() kernel.ID {
	return s.id
}

// City returns the city the site is located in.
func (s *Site) City() string {
	return s.city
}

// PostalCode returns the postal code of the site address.
func (s *Site) PostalCode() string {
	return s.postalCode
}

// Location returns the geographic position of the site.
func (s *Site) Location() kernel.GeoPoint {
	return s.location
}

// DistanceFrom returns the great-circle distance in kilometres from origin to the site.
func (s *Site) DistanceFrom(origin kernel.GeoPoint) (float64, error) {
	return origin.DistanceTo(s.location)
}

func (s *Site) setCity(city string) error {
	city = strings.TrimSpace(city)
	if city == "" {
		return ErrCityIsRequired
	}
	s.city = city
	return nil
}

func (s *Site) setPostalCode(postalCode string) error {
	postalCode = strings.TrimSpace(postalCode)
	if postalCode == "" {
		return ErrPostalCodeIsRequired
	}
	s.postalCode = postalCode
	return nil
}

func (s *Site) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	s.location = location
	return nil
}
