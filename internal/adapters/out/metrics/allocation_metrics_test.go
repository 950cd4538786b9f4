package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"parcellocker/internal/adapters/out/metrics"
	"parcellocker/internal/core/application/usecases/commands"
	"parcellocker/internal/core/application/usecases/queries"
	"parcellocker/internal/core/domain/model/compartment"
	"parcellocker/internal/core/domain/model/kernel"
	"parcellocker/internal/jobs"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ commands.OutcomeRecorder = (*metrics.AllocationMetrics)(nil)
	_ jobs.OccupancySink       = (*metrics.AllocationMetrics)(nil)
)

func TestAllocationMetrics_RecordsOutcomes(t *testing.T) {
	m := metrics.NewAllocationMetrics()

	m.RecordSend(commands.OutcomeAllocated)
	m.RecordSend(commands.OutcomeAllocated)
	m.RecordSend(commands.OutcomeNoAvailableSlot)
	m.RecordReceive(commands.OutcomeReceived)

	body := scrape(t, m)

	assert.Contains(t, body, `lockerd_send_total{outcome="allocated"} 2`)
	assert.Contains(t, body, `lockerd_send_total{outcome="no_available_slot"} 1`)
	assert.Contains(t, body, `lockerd_receive_total{outcome="received"} 1`)
}

func TestAllocationMetrics_SetCompartmentsReplacesSamples(t *testing.T) {
	m := metrics.NewAllocationMetrics()

	m.SetCompartments([]queries.CompartmentOccupancy{
		{Status: compartment.Available, Size: kernel.Small, Count: 3},
		{Status: compartment.Occupied, Size: kernel.Small, Count: 1},
	})
	m.SetCompartments([]queries.CompartmentOccupancy{
		{Status: compartment.Available, Size: kernel.Small, Count: 4},
	})

	count, err := testutil.GatherAndCount(m.Registry(), "lockerd_compartments")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	body := scrape(t, m)
	assert.Contains(t, body, `lockerd_compartments{size="S",status="Available"} 4`)
	assert.NotContains(t, body, `status="Occupied"`)
}

func scrape(t *testing.T, m *metrics.AllocationMetrics) string {
	t.Helper()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}
