package parcel_test

import (
	"testing"
	"time"

	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/core/domain/model/parcel"
	"parcellocker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdAt = time.Date(2024, 5, 10, 8, 30, 0, 0, time.UTC)

func newParcel(t *testing.T) *parcel.Parcel {
	t.Helper()
	p, err := parcel.NewParcel(1, 2, 3, 4, kernel.Small, createdAt)
	require.NoError(t, err)
	return p
}

func TestNewParcel(t *testing.T) {
	t.Run("should create in-locker parcel", func(t *testing.T) {
		p := newParcel(t)

		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsZero())
		assert.Equal(t, kernel.ID(1), p.SenderID())
		assert.Equal(t, kernel.ID(2), p.ReceiverID())
		assert.Equal(t, kernel.ID(3), p.SiteID())
		assert.Equal(t, kernel.ID(4), p.CompartmentID())
		assert.Equal(t, kernel.Small, p.Size())
		assert.Equal(t, parcel.InLocker, p.Status())
		assert.Equal(t, createdAt, p.CreatedAt())
		assert.Nil(t, p.DeliveredAt())
	})

	t.Run("should store created at in UTC", func(t *testing.T) {
		warsaw := time.FixedZone("CEST", 2*60*60)
		p, err := parcel.NewParcel(1, 2, 3, 4, kernel.Small, createdAt.In(warsaw))

		require.NoError(t, err)
		assert.Equal(t, time.UTC, p.CreatedAt().Location())
		assert.True(t, createdAt.Equal(p.CreatedAt()))
	})

	t.Run("should join validation errors", func(t *testing.T) {
		p, err := parcel.NewParcel(0, 0, 0, 0, kernel.UnknownSize, time.Time{})

		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, parcel.ErrCreatedAtIsRequired)
		for _, field := range []string{"sender id", "receiver id", "site id", "compartment id", "size"} {
			assert.Contains(t, err.Error(), field)
		}
	})
}

func TestRestoreParcel(t *testing.T) {
	deliveredAt := createdAt.Add(time.Hour)

	t.Run("should restore received parcel", func(t *testing.T) {
		p, err := parcel.RestoreParcel(7, 1, 2, 3, 4, kernel.Large, parcel.Received, createdAt, &deliveredAt)

		require.NoError(t, err)
		assert.Equal(t, kernel.ID(7), p.ID())
		assert.Equal(t, parcel.Received, p.Status())
		require.NotNil(t, p.DeliveredAt())
		assert.Equal(t, deliveredAt, *p.DeliveredAt())
	})

	t.Run("should reject received parcel without delivery time", func(t *testing.T) {
		_, err := parcel.RestoreParcel(7, 1, 2, 3, 4, kernel.Large, parcel.Received, createdAt, nil)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject in-locker parcel with delivery time", func(t *testing.T) {
		_, err := parcel.RestoreParcel(7, 1, 2, 3, 4, kernel.Large, parcel.InLocker, createdAt, &deliveredAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject unknown status", func(t *testing.T) {
		_, err := parcel.RestoreParcel(7, 1, 2, 3, 4, kernel.Large, parcel.Unknown, createdAt, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status is invalid")
	})
}

func TestParcel_Receive(t *testing.T) {
	t.Run("should receive in-locker parcel once", func(t *testing.T) {
		p := newParcel(t)
		now := createdAt.Add(26 * time.Hour)

		require.NoError(t, p.Receive(now))

		assert.Equal(t, parcel.Received, p.Status())
		require.NotNil(t, p.DeliveredAt())
		assert.Equal(t, now, *p.DeliveredAt())
	})

	t.Run("should reject second receive and keep first delivery time", func(t *testing.T) {
		p := newParcel(t)
		first := createdAt.Add(time.Hour)
		require.NoError(t, p.Receive(first))

		err := p.Receive(first.Add(time.Hour))

		require.ErrorIs(t, err, parcel.ErrAlreadyReceived)
		assert.Equal(t, first, *p.DeliveredAt())
	})

	t.Run("should clamp delivery time to creation time", func(t *testing.T) {
		p := newParcel(t)

		require.NoError(t, p.Receive(createdAt.Add(-time.Minute)))

		assert.Equal(t, createdAt, *p.DeliveredAt())
	})

	t.Run("should not expose internal delivery time", func(t *testing.T) {
		p := newParcel(t)
		require.NoError(t, p.Receive(createdAt.Add(time.Hour)))

		got := p.DeliveredAt()
		*got = time.Time{}

		assert.False(t, p.DeliveredAt().IsZero())
	})
}

func TestParcel_Identify(t *testing.T) {
	p := newParcel(t)

	require.NoError(t, p.Identify(12))
	require.Error(t, p.Identify(13))
	require.Error(t, newParcel(t).Identify(0))
	assert.Equal(t, kernel.ID(12), p.ID())
}
