package events

import "time"

const ApplicationReceivedTopic = "hr.job.application.received.v1"

type ApplicationReceivedEvent struct {
	EventType     string    `json:"event_type"`
	RequestID     string    `json:"request_id,omitempty"`
	ApplicationID string    `json:"application_id"`
	JobID         string    `json:"job_id"`
	OrgID         string    `json:"org_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}
