package constants

// EventType identifies the kind of ceremonial event a transaction or
// schedule belongs to.
type EventType string

const (
	EventWedding       EventType = "wedding"
	EventFuneral       EventType = "funeral"
	EventFirstBirthday EventType = "first_birthday"
	EventBirthday      EventType = "birthday"
	EventGraduation    EventType = "graduation"
	EventRetirement    EventType = "retirement"
	EventOpening       EventType = "opening"
	EventAnniversary   EventType = "anniversary"
	EventOther         EventType = "other"
)

// EventTypes lists every valid event type in display order.
var EventTypes = []EventType{
	EventWedding,
	EventFuneral,
	EventFirstBirthday,
	EventBirthday,
	EventGraduation,
	EventRetirement,
	EventOpening,
	EventAnniversary,
	EventOther,
}

// DefaultEventAmounts holds the customary amount suggested per event type,
// in KRW (minor-unit-free).
var DefaultEventAmounts = map[EventType]int64{
	EventWedding:       100000,
	EventFuneral:       100000,
	EventFirstBirthday: 50000,
	EventBirthday:      30000,
	EventGraduation:    30000,
	EventRetirement:    50000,
	EventOpening:       50000,
	EventAnniversary:   30000,
	EventOther:         30000,
}

// RelationshipType classifies how the user knows a contact.
type RelationshipType string

const (
	RelationshipFamily       RelationshipType = "family"
	RelationshipRelative     RelationshipType = "relative"
	RelationshipFriend       RelationshipType = "friend"
	RelationshipColleague    RelationshipType = "colleague"
	RelationshipAcquaintance RelationshipType = "acquaintance"
	RelationshipNeighbor     RelationshipType = "neighbor"
	RelationshipOther        RelationshipType = "other"
)

// RelationshipTypes lists every valid relationship type.
var RelationshipTypes = []RelationshipType{
	RelationshipFamily,
	RelationshipRelative,
	RelationshipFriend,
	RelationshipColleague,
	RelationshipAcquaintance,
	RelationshipNeighbor,
	RelationshipOther,
}

// Direction states whether money moved from the user (given) or to the
// user (received).
type Direction string

const (
	DirectionGiven    Direction = "given"
	DirectionReceived Direction = "received"
)

// Transaction statuses.
const (
	TransactionConfirmed = "confirmed"
	TransactionCanceled  = "canceled"
)

// Schedule statuses. Completed is terminal.
const (
	SchedulePending    = "pending"
	ScheduleInProgress = "in_progress"
	ScheduleCompleted  = "completed"
)

// StatsPeriod selects the window for dashboard and grouped statistics.
type StatsPeriod string

const (
	PeriodThisMonth StatsPeriod = "this_month"
	PeriodLastMonth StatsPeriod = "last_month"
	PeriodThisYear  StatsPeriod = "this_year"
	PeriodLastYear  StatsPeriod = "last_year"
)

// Validation bounds for ledger transactions and free-text fields.
const (
	MinTransactionAmount = 1000
	MaxTransactionAmount = 10000000
	MaxNameLength        = 100
	MaxTitleLength       = 200
	MaxMemoLength        = 500
)

// Pagination defaults for list endpoints.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ValidEventType reports whether t is a known event type.
func ValidEventType(t EventType) bool {
	for _, et := range EventTypes {
		if et == t {
			return true
		}
	}
	return false
}

// ValidRelationshipType reports whether t is a known relationship type.
func ValidRelationshipType(t RelationshipType) bool {
	for _, rt := range RelationshipTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// ValidDirection reports whether d is given or received.
func ValidDirection(d Direction) bool {
	return d == DirectionGiven || d == DirectionReceived
}

// ValidStatsPeriod reports whether p is a supported statistics period.
func ValidStatsPeriod(p StatsPeriod) bool {
	switch p {
	case PeriodThisMonth, PeriodLastMonth, PeriodThisYear, PeriodLastYear:
		return true
	}
	return false
}
