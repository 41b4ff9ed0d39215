package maintenance

import "fmt"

// ErrInvalidRecord is returned when a board record fails validation
type ErrInvalidRecord struct {
	Entity string
	Field  string
	Reason string
}

func (e *ErrInvalidRecord) Error() string {
	return fmt.Sprintf("invalid %s: %s - %s", e.Entity, e.Field, e.Reason)
}

// ErrRecordNotFound is returned when a board record is not found
type ErrRecordNotFound struct {
	Entity string
	ID     string
}

func (e *ErrRecordNotFound) Error() string {
	return fmt.Sprintf("%s not found: id=%s", e.Entity, e.ID)
}
