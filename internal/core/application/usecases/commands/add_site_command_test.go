package commands_test

import (
	"testing"

	"parcellocker/internal/core/application/usecases/commands"
	"parcellocker/internal/core/domain/model/site"
	"parcellocker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddSiteCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewAddSiteCommand("Warszawa", "00-001", 52.2297, 21.0122)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, "Warszawa", cmd.City())
	assert.Equal(t, "00-001", cmd.PostalCode())
	assert.InDelta(t, 52.2297, cmd.Location().Latitude(), 1e-12)
}

func TestNewAddSiteCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewAddSiteCommand(" ", "", 91, 0)

	require.ErrorIs(t, err, site.ErrCityIsRequired)
	require.ErrorIs(t, err, site.ErrPostalCodeIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}
