package repository

import (
	"database/sql"

	"github.com/barbercloud/barber-backend/internal/model"
)

type BookingRepositoryInterface interface {
	Create(b *model.Booking) error
	GetDetailsByID(id int) (*model.BookingDetails, error)
	UpdateStatus(id int, status string) error
	ListByDate(date string) ([]model.BookingDetails, error)
	ListRecent(limit int) ([]model.BookingDetails, error)
	ListOccupied(barberID int, date string) ([]model.OccupiedSlot, error)
}

type BookingRepository struct {
	DB *sql.DB
}

const bookingDetailsSelect = `
	SELECT p.id, p.barbiere_id, p.servizio_id, p.cliente_nome, p.cliente_telefono,
	       p.cliente_email, p.data, p.ora, p.stato, p.note, p.created_at,
	       b.nome AS barbiere_nome, s.nome AS servizio_nome, s.durata
	FROM prenotazioni p
	JOIN barbieri b ON p.barbiere_id = b.id
	JOIN servizi s ON p.servizio_id = s.id
`

// Create inserts a new booking and fills in the generated id and timestamp.
func (r *BookingRepository) Create(b *model.Booking) error {
	if b.Status == "" {
		b.Status = model.BookingStatusConfirmed
	}
	query := `
		INSERT INTO prenotazioni
		(barbiere_id, servizio_id, cliente_nome, cliente_telefono, cliente_email, data, ora, stato, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(
		query,
		b.BarberID,
		b.ServiceID,
		b.ClientName,
		b.ClientPhone,
		b.ClientEmail,
		b.Date,
		b.Time,
		b.Status,
		b.Note,
	).Scan(&b.ID, &b.CreatedAt)
}

// GetDetailsByID fetches a booking joined with barber and service names.
// Returns nil when the booking does not exist.
func (r *BookingRepository) GetDetailsByID(id int) (*model.BookingDetails, error) {
	query := bookingDetailsSelect + ` WHERE p.id = $1`

	var d model.BookingDetails
	err := r.DB.QueryRow(query, id).Scan(
		&d.ID, &d.BarberID, &d.ServiceID, &d.ClientName, &d.ClientPhone,
		&d.ClientEmail, &d.Date, &d.Time, &d.Status, &d.Note, &d.CreatedAt,
		&d.BarberName, &d.ServiceName, &d.Duration,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

// UpdateStatus flips the booking status. Cancellation is a soft delete: the
// row is kept with stato='cancellata'.
func (r *BookingRepository) UpdateStatus(id int, status string) error {
	query := `UPDATE prenotazioni SET stato = $1 WHERE id = $2`
	_, err := r.DB.Exec(query, status, id)
	return err
}

// ListByDate returns the non-cancelled bookings for a date, ordered by time.
func (r *BookingRepository) ListByDate(date string) ([]model.BookingDetails, error) {
	query := bookingDetailsSelect + `
		WHERE p.data = $1 AND p.stato != 'cancellata'
		ORDER BY p.ora
	`
	return r.queryDetails(query, date)
}

// ListRecent returns the most recent bookings across all dates and statuses,
// newest first.
func (r *BookingRepository) ListRecent(limit int) ([]model.BookingDetails, error) {
	query := bookingDetailsSelect + `
		ORDER BY p.data DESC, p.ora DESC
		LIMIT $1
	`
	return r.queryDetails(query, limit)
}

// ListOccupied returns start time and service duration of every non-cancelled
// booking for (barber, date). Feeds the availability engine.
func (r *BookingRepository) ListOccupied(barberID int, date string) ([]model.OccupiedSlot, error) {
	query := `
		SELECT p.ora, s.durata
		FROM prenotazioni p
		JOIN servizi s ON p.servizio_id = s.id
		WHERE p.barbiere_id = $1 AND p.data = $2 AND p.stato != 'cancellata'
		ORDER BY p.ora
	`
	rows, err := r.DB.Query(query, barberID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	occupied := []model.OccupiedSlot{}
	for rows.Next() {
		var o model.OccupiedSlot
		if err := rows.Scan(&o.Time, &o.Duration); err != nil {
			return nil, err
		}
		occupied = append(occupied, o)
	}
	return occupied, rows.Err()
}

func (r *BookingRepository) queryDetails(query string, args ...interface{}) ([]model.BookingDetails, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []model.BookingDetails{}
	for rows.Next() {
		var d model.BookingDetails
		err := rows.Scan(
			&d.ID, &d.BarberID, &d.ServiceID, &d.ClientName, &d.ClientPhone,
			&d.ClientEmail, &d.Date, &d.Time, &d.Status, &d.Note, &d.CreatedAt,
			&d.BarberName, &d.ServiceName, &d.Duration,
		)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, d)
	}
	return bookings, rows.Err()
}

var _ BookingRepositoryInterface = (*BookingRepository)(nil)
