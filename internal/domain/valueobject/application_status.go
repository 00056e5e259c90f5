package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// ApplicationStatus – immutable value object
// ---------------------------------------------------------------------------

// ApplicationStatus represents the lifecycle stage of a loan application.
type ApplicationStatus struct {
	value string
}

const (
	appStatusDraft       = "DRAFT"
	appStatusSubmitted   = "SUBMITTED"
	appStatusPrescreened = "PRESCREENED"
	appStatusApproved    = "APPROVED"
	appStatusRejected    = "REJECTED"
	appStatusDisbursed   = "DISBURSED"
)

var (
	ApplicationStatusDraft       = ApplicationStatus{value: appStatusDraft}
	ApplicationStatusSubmitted   = ApplicationStatus{value: appStatusSubmitted}
	ApplicationStatusPrescreened = ApplicationStatus{value: appStatusPrescreened}
	ApplicationStatusApproved    = ApplicationStatus{value: appStatusApproved}
	ApplicationStatusRejected    = ApplicationStatus{value: appStatusRejected}
	ApplicationStatusDisbursed   = ApplicationStatus{value: appStatusDisbursed}
)

var validApplicationStatuses = map[string]ApplicationStatus{
	appStatusDraft:       ApplicationStatusDraft,
	appStatusSubmitted:   ApplicationStatusSubmitted,
	appStatusPrescreened: ApplicationStatusPrescreened,
	appStatusApproved:    ApplicationStatusApproved,
	appStatusRejected:    ApplicationStatusRejected,
	appStatusDisbursed:   ApplicationStatusDisbursed,
}

var applicationStatusTransitions = map[string][]string{
	appStatusDraft:       {appStatusSubmitted},
	appStatusSubmitted:   {appStatusPrescreened, appStatusRejected},
	appStatusPrescreened: {appStatusApproved, appStatusRejected},
	appStatusApproved:    {appStatusDisbursed},
}

// NewApplicationStatus creates an ApplicationStatus from a raw string.
func NewApplicationStatus(s string) (ApplicationStatus, error) {
	v, ok := validApplicationStatuses[s]
	if !ok {
		return ApplicationStatus{}, fmt.Errorf("invalid application status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s ApplicationStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s ApplicationStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s ApplicationStatus) Equal(other ApplicationStatus) bool {
	return s.value == other.value
}

// CanTransitionTo reports whether moving to the next status is a legal
// lifecycle transition.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range applicationStatusTransitions[s.value] {
		if allowed == next.value {
			return true
		}
	}
	return false
}
