package compartment_test

import (
	"testing"

	"parcellocker/internal/core/domain/model/compartment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    compartment.Status
		apply   func(compartment.Status) (compartment.Status, error)
		want    compartment.Status
		wantErr error
	}{
		{name: "occupy available", from: compartment.Available, apply: compartment.Status.Occupy, want: compartment.Occupied},
		{name: "occupy occupied", from: compartment.Occupied, apply: compartment.Status.Occupy, wantErr: compartment.ErrCompartmentIsNotAvailable},
		{name: "occupy unknown", from: compartment.Unknown, apply: compartment.Status.Occupy, wantErr: compartment.ErrCompartmentIsNotAvailable},
		{name: "release occupied", from: compartment.Occupied, apply: compartment.Status.Release, want: compartment.Available},
		{name: "release available", from: compartment.Available, apply: compartment.Status.Release, wantErr: compartment.ErrCompartmentIsNotOccupied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.apply(tt.from)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, compartment.Unknown, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []compartment.Status{compartment.Available, compartment.Occupied} {
		parsed, err := compartment.ParseStatus(s.String())

		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	for _, name := range []string{"Unknown", "", "available"} {
		_, err := compartment.ParseStatus(name)

		require.Error(t, err)
	}
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, compartment.Available.Validate())
	require.NoError(t, compartment.Occupied.Validate())
	require.Error(t, compartment.Unknown.Validate())
	require.Error(t, compartment.Status(7).Validate())
	assert.Equal(t, "Unknown", compartment.Status(7).String())
}
