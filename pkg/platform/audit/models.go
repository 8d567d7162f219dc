package audit

import (
	"time"

	id "cineclub/pkg/domain"
)

// EventCategory classifies audit events by their primary purpose.
type EventCategory string

const (
	// CategorySecurity covers access decisions and authentication outcomes.
	CategorySecurity EventCategory = "security"
	// CategoryOperations covers routine state changes.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. UserID is the
// actor; Subject names what was acted on.
type Event struct {
	Category  EventCategory `json:"category"`
	Timestamp time.Time     `json:"timestamp"`
	UserID    id.UserID     `json:"user_id"`
	Subject   string        `json:"subject"`
	Action    string        `json:"action"`
	Decision  string        `json:"decision,omitempty"`
	RequestID string        `json:"request_id,omitempty"`
}

type AuditEvent string

const (
	// Account events
	EventUserRegistered AuditEvent = "user_registered"
	EventLoginSucceeded AuditEvent = "login_succeeded"
	EventLoginFailed    AuditEvent = "login_failed"

	// Group events
	EventGroupCreated   AuditEvent = "group_created"
	EventGroupUpdated   AuditEvent = "group_updated"
	EventGroupDeleted   AuditEvent = "group_deleted"
	EventMemberLeft     AuditEvent = "member_left"
	EventMemberRemoved  AuditEvent = "member_removed"
	EventContentAdded   AuditEvent = "content_added"
	EventContentRemoved AuditEvent = "content_removed"

	// Join request events
	EventJoinRequested AuditEvent = "join_requested"
	EventJoinApproved  AuditEvent = "join_approved"
	EventJoinRejected  AuditEvent = "join_rejected"
)

var eventCategories = map[AuditEvent]EventCategory{
	EventLoginFailed:    CategorySecurity,
	EventLoginSucceeded: CategorySecurity,
	EventMemberRemoved:  CategorySecurity,
	EventJoinApproved:   CategorySecurity,
	EventJoinRejected:   CategorySecurity,
	EventGroupDeleted:   CategorySecurity,
}

// Category returns the category for e, defaulting to operations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}
