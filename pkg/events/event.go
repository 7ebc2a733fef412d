package events

import "time"

// Event is the contract for everything published on the bus.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

// BaseEvent is the common concrete implementation.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Event type codes used across services.
const (
	TypeCreditDeducted      = "CREDIT_DEDUCTED"
	TypeCreditsGranted      = "CREDITS_GRANTED"
	TypeSubscriptionCreated = "SUBSCRIPTION_CREATED"
	TypePlanUpgraded        = "PLAN_UPGRADED"
	TypeResumeUploaded      = "RESUME_UPLOADED"
)
