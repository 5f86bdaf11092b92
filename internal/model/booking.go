// internal/model/booking.go
package model

import "time"

const (
    BookingStatusConfirmed = "confermata"
    BookingStatusCancelled = "cancellata"
)

type Booking struct {
    ID          int       `db:"id" json:"id"`
    BarberID    int       `db:"barbiere_id" json:"barbiere_id"`
    ServiceID   int       `db:"servizio_id" json:"servizio_id"`
    ClientName  string    `db:"cliente_nome" json:"cliente_nome"`
    ClientPhone string    `db:"cliente_telefono" json:"cliente_telefono"`
    ClientEmail *string   `db:"cliente_email" json:"cliente_email,omitempty"`
    Date        string    `db:"data" json:"data"` // YYYY-MM-DD
    Time        string    `db:"ora" json:"ora"`   // HH:MM
    Status      string    `db:"stato" json:"stato"`
    Note        *string   `db:"note" json:"note,omitempty"`
    CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// BookingDetails is a booking joined with the barber and service display
// fields the clients and the SMS templates need.
type BookingDetails struct {
    Booking
    BarberName  string `db:"barbiere_nome" json:"barbiere_nome"`
    ServiceName string `db:"servizio_nome" json:"servizio_nome"`
    Duration    int    `db:"durata" json:"durata"`
}

// OccupiedSlot is the start time and duration of a non-cancelled booking,
// the only thing the availability engine needs per booking.
type OccupiedSlot struct {
    Time     string `db:"ora"`
    Duration int    `db:"durata"`
}
