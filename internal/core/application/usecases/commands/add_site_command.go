package commands

import (
	"errors"
	"strings"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/site"
	"parcellocker/internal/pkg/guard"
)

var ErrAddSiteCommandIsNotConstructed = errors.New(
	"AddSiteCommand must be created via NewAddSiteCommand constructor",
)

// AddSiteCommand registers a new parcel-locker site.
//
// Example:
//
//	cmd, err := NewAddSiteCommand("Warszawa", "00-001", 52.2297, 21.0122)
//	if err != nil {
//	    return err
//	}
//	siteID, err := handler.Handle(ctx, cmd)
type AddSiteCommand struct { //nolint:recvcheck //using for validation
	city       string
	postalCode string
	location   kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewAddSiteCommand validates the address fields and coordinates.
func NewAddSiteCommand(city, postalCode string, latitude, longitude float64) (AddSiteCommand, error) {
	command := AddSiteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAddress(city, postalCode),
		command.setLocation(latitude, longitude),
	); err != nil {
		return AddSiteCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AddSiteCommand) Validate() error {
	return c.guard.Validate(ErrAddSiteCommandIsNotConstructed)
}

func (c AddSiteCommand) City() string {
	return c.city
}

func (c AddSiteCommand) PostalCode() string {
	return c.postalCode
}

func (c AddSiteCommand) Location() kernel.GeoPoint {
	return c.location
}

func (c *AddSiteCommand) setAddress(city, postalCode string) error {
	city = strings.TrimSpace(city)
	postalCode = strings.TrimSpace(postalCode)

	var err error
	if city == "" {
		err = errors.Join(err, site.ErrCityIsRequired)
	}
	if postalCode == "" {
		err = errors.Join(err, site.ErrPostalCodeIsRequired)
	}
	if err != nil {
		return err
	}

	c.city = city
	c.postalCode = postalCode
	return nil
}

func (c *AddSiteCommand) setLocation(latitude, longitude float64) error {
	location, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return err
	}
	c.location = location
	return nil
}
