package repository

import (
	"database/sql"

	"github.com/barbercloud/barber-backend/internal/model"
)

type SMSRepositoryInterface interface {
	Create(msg *model.SMSMessage) error
	ListPending(limit int) ([]model.SMSMessage, error)
	MarkSent(id int, externalID string) error
	MarkError(id int, errText string) error
	Stats() (*model.SMSStats, error)
	ListRecent(limit int) ([]model.SMSMessage, error)
}

type SMSRepository struct {
	DB *sql.DB
}

const smsSelect = `
	SELECT id, prenotazione_id, phone, message, tipo, cliente, status,
	       error, external_id, sent_at, created_at
	FROM sms_queue
`

// Create enqueues an outbound message. New messages always start pending.
func (r *SMSRepository) Create(msg *model.SMSMessage) error {
	if msg.Status == "" {
		msg.Status = model.SMSStatusPending
	}
	query := `
		INSERT INTO sms_queue (prenotazione_id, phone, message, tipo, cliente, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(
		query,
		msg.BookingID,
		msg.Phone,
		msg.Message,
		msg.Type,
		msg.Client,
		msg.Status,
	).Scan(&msg.ID, &msg.CreatedAt)
}

// ListPending returns the oldest pending messages, FIFO, bounded by limit.
func (r *SMSRepository) ListPending(limit int) ([]model.SMSMessage, error) {
	query := smsSelect + `
		WHERE status = 'pending'
		ORDER BY created_at ASC
		LIMIT $1
	`
	return r.queryMessages(query, limit)
}

// MarkSent transitions a message to sent, recording the delivery timestamp and
// the gateway's external id when it provided one. Not guarded against
// non-pending rows: the polling agent is the only writer of these transitions.
func (r *SMSRepository) MarkSent(id int, externalID string) error {
	query := `
		UPDATE sms_queue
		SET status = 'sent', sent_at = NOW(), external_id = NULLIF($1, '')
		WHERE id = $2
	`
	_, err := r.DB.Exec(query, externalID, id)
	return err
}

// MarkError transitions a message to error with the agent's description.
func (r *SMSRepository) MarkError(id int, errText string) error {
	query := `UPDATE sms_queue SET status = 'error', error = $1 WHERE id = $2`
	_, err := r.DB.Exec(query, errText, id)
	return err
}

// Stats counts messages by status across the whole queue.
func (r *SMSRepository) Stats() (*model.SMSStats, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'sent')    AS inviati,
			COUNT(*) FILTER (WHERE status = 'pending') AS pendenti,
			COUNT(*) FILTER (WHERE status = 'error')   AS errori,
			COUNT(*)                                   AS totale
		FROM sms_queue
	`
	var stats model.SMSStats
	err := r.DB.QueryRow(query).Scan(&stats.Sent, &stats.Pending, &stats.Errors, &stats.Total)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListRecent returns the newest messages regardless of status.
func (r *SMSRepository) ListRecent(limit int) ([]model.SMSMessage, error) {
	query := smsSelect + `
		ORDER BY created_at DESC
		LIMIT $1
	`
	return r.queryMessages(query, limit)
}

func (r *SMSRepository) queryMessages(query string, args ...interface{}) ([]model.SMSMessage, error) {
	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []model.SMSMessage{}
	for rows.Next() {
		var m model.SMSMessage
		err := rows.Scan(
			&m.ID, &m.BookingID, &m.Phone, &m.Message, &m.Type, &m.Client,
			&m.Status, &m.Error, &m.ExternalID, &m.SentAt, &m.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

var _ SMSRepositoryInterface = (*SMSRepository)(nil)
