package client

import (
	"errors"
	"fmt"
	"strings"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/pkg/errs"
	"parcellocker/internal/pkg/guard"
)

var (
	ErrFirstNameIsRequired = errs.NewValueIsRequiredError("first name")
	ErrLastNameIsRequired  = errs.NewValueIsRequiredError("last name")
	ErrEmailIsRequired     = errs.NewValueIsRequiredError("email")
	// ErrClientIsNotConstructed is returned when using an improperly initialized Client.
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient constructor")
)

// Client is a registered user who sends and receives packages. Clients are
// registered outside the allocation engine; the engine only reads their location.
type Client struct {
	id        kernel.ID
	firstName string
	lastName  string
	email     string
	phone     string
	location  kernel.GeoPoint
	guard     guard.ConstructorGuard
}

// NewClient creates a client that has not been persisted yet (ID is zero).
func NewClient(firstName, lastName, email, phone string, location kernel.GeoPoint) (*Client, error) {
	c := &Client{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setName(firstName, lastName),
		c.setEmail(email),
		c.setLocation(location),
	); err != nil {
		return nil, err
	}
	c.phone = strings.TrimSpace(phone)

	return c, nil
}

// RestoreClient rebuilds a persisted client.
func RestoreClient(
	id kernel.ID,
	firstName, lastName, email, phone string,
	location kernel.GeoPoint,
) (*Client, error) {
	c, err := NewClient(firstName, lastName, email, phone, location)
	if err != nil {
		return nil, err
	}
	if err := c.Identify(id); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate ensures the Client was created through a constructor.
func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

// Identify assigns the database identity. It may be called once.
func (c *Client) Identify(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !c.id.IsZero() && c.id != id {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("client already identified as %d", c.id))
	}
	c.id = id
	return nil
}

func (c *Client) ID() kernel.ID             { return c.id }
func (c *Client) FirstName() string         { return c.firstName }
func (c *Client) LastName() string          { return c.lastName }
func (c *Client) Email() string             { return c.email }
func (c *Client) Phone() string             { return c.phone }
func (c *Client) Location() kernel.GeoPoint { return c.location }

func (c *Client) setName(firstName, lastName string) error {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)

	var err error
	if firstName == "" {
		err = errors.Join(err, ErrFirstNameIsRequired)
	}
	if lastName == "" {
		err = errors.Join(err, ErrLastNameIsRequired)
	}
	if err != nil {
		return err
	}

	c.firstName = firstName
	c.lastName = lastName
	return nil
}

func (c *Client) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return ErrEmailIsRequired
	}
	if at := strings.Index(email, "@"); at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	c.email = email
	return nil
}

func (c *Client) setLocation(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	return nil
}
