// Package commands contains the operations that change the state of the parcel
// locker system: allocating and releasing compartments and registering sites and
// compartments. Every handler validates its command, opens a unit of work and
// commits or rolls back as one transaction.
package commands

import (
	"parcellocker/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler needs.
type (
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	SiteRepoFactory interface {
		SiteRepository() ports.SiteRepository
	}

	CompartmentRepoFactory interface {
		CompartmentRepository() ports.CompartmentRepository
	}

	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// AllocationUoW spans every aggregate touched by send and receive.
	AllocationUoW interface {
		ports.TxManager
		ClientRepoFactory
		SiteRepoFactory
		CompartmentRepoFactory
		ParcelRepoFactory
	}

	AllocationUoWFactory interface {
		Create() AllocationUoW
	}

	// SiteUoW is used by commands that only write sites.
	SiteUoW interface {
		ports.TxManager
		SiteRepoFactory
	}

	SiteUoWFactory interface {
		Create() SiteUoW
	}

	// CompartmentUoW is used by commands that write compartments of an existing site.
	CompartmentUoW interface {
		ports.TxManager
		SiteRepoFactory
		CompartmentRepoFactory
	}

	CompartmentUoWFactory interface {
		Create() CompartmentUoW
	}
)
