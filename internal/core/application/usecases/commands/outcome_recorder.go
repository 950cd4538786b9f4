package commands

// Outcomes reported to an OutcomeRecorder.
const (
	OutcomeAllocated       = "allocated"
	OutcomeNoLockerInRange = "no_locker_in_range"
	OutcomeNoAvailableSlot = "no_available_slot"
	OutcomeReceived        = "received"
	OutcomeAlreadyReceived = "already_received"
	OutcomeNotFound        = "not_found"
	OutcomeIntegrityFault  = "integrity_fault"
	OutcomeFailed          = "error"
)

// OutcomeRecorder counts the results of send and receive, typically as metrics.
type OutcomeRecorder interface {
	RecordSend(outcome string)
	RecordReceive(outcome string)
}

type nopRecorder struct{}

func (nopRecorder) RecordSend(string)    {}
func (nopRecorder) RecordReceive(string) {}
