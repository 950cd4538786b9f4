package queries_test

import (
	"testing"

	"parcellocker/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIntegrityAuditQuery_Valid(t *testing.T) {
	query := queries.NewIntegrityAuditQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestIntegrityAuditQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.IntegrityAuditQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrIntegrityAuditQueryIsNotConstructed)
}
