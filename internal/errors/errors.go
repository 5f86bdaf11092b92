// internal/errors/errors.go
package appErrors

import "fmt"

// ErrBookingNotFound is a sentinel error
type ErrBookingNotFound struct {
    BookingID int
}

func (e *ErrBookingNotFound) Error() string {
    return fmt.Sprintf("booking with ID %d not found", e.BookingID)
}

// Helper constructor
func NewBookingNotFound(id int) error {
    return &ErrBookingNotFound{BookingID: id}
}
