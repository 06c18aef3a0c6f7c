package services

// ValidationError marks malformed or out-of-range input, including bad user
// references. Handlers map it to a 400 response carrying the message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validation errors for user references on items.
var (
	ErrInvalidAssignment = &ValidationError{Message: "invalid user assignment"}
	ErrInvalidBuyer      = &ValidationError{Message: "invalid buyer"}
)

// EventPublisher publishes domain events after successful mutations. Publishing
// is best-effort: services log failures and never surface them to callers.
type EventPublisher interface {
	Publish(event string, payload interface{}) error
}
