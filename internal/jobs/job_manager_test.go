package jobs_test

import (
	"testing"

	"parcellocker/internal/jobs"

	"github.com/stretchr/testify/require"
)

func TestJobManager_StartAllStopAll(t *testing.T) {
	jm := jobs.NewJobManager(
		&MockOccupancyReader{},
		&MockOccupancySink{},
		&MockIntegrityAuditor{},
		jobs.Schedules{Occupancy: "0 0 0 1 1 *", Audit: "0 0 0 1 1 *"},
		discardLogger(),
	)

	require.NoError(t, jm.StartAll())
	jm.StopAll()
}

func TestJobManager_StartAll_InvalidAuditSchedule(t *testing.T) {
	jm := jobs.NewJobManager(
		&MockOccupancyReader{},
		&MockOccupancySink{},
		&MockIntegrityAuditor{},
		jobs.Schedules{Audit: "every now and then"},
		discardLogger(),
	)

	err := jm.StartAll()

	require.Error(t, err)
	require.Contains(t, err.Error(), "integrity audit job")
}
