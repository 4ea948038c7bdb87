package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchRequested EventType = "SearchRequested"
	EventSearchStarted   EventType = "SearchStarted"
	EventSearchCompleted EventType = "SearchCompleted"
	EventSearchFailed    EventType = "SearchFailed"
	EventError           EventType = "Error"
	EventRootChanged     EventType = "RootChanged"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
	EventConfigChanged   EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchRequestedEvent is emitted to request a new search
type SearchRequestedEvent struct {
	Request SearchRequest
}

func (e SearchRequestedEvent) Type() EventType { return EventSearchRequested }

// SearchStartedEvent is emitted when a search task begins scanning
type SearchStartedEvent struct {
	Request SearchRequest
}

func (e SearchStartedEvent) Type() EventType { return EventSearchStarted }

// SearchCompletedEvent carries the full match list for one request.
// Completion order is delivery order; it may differ from issue order.
type SearchCompletedEvent struct {
	Result SearchResult
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when a request is rejected before traversal,
// i.e. the pattern did not compile. It is never used for empty results.
type SearchFailedEvent struct {
	Request SearchRequest
	Err     error
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// ErrorEvent is emitted when a non-fatal error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// RootChangedEvent is emitted when the user picks a new root directory
type RootChangedEvent struct {
	RootPath string
}

func (e RootChangedEvent) Type() EventType { return EventRootChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	RootDir string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct{}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when configuration needs to be saved
type ConfigChangedEvent struct {
	RootDir string
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
