// internal/model/sms_message.go
package model

import "time"

const (
    SMSStatusPending = "pending"
    SMSStatusSent    = "sent"
    SMSStatusError   = "error"

    SMSTypeConfirmation = "conferma"
    SMSTypeCancellation = "cancellazione"
)

type SMSMessage struct {
    ID         int        `db:"id" json:"id"`
    BookingID  *int       `db:"prenotazione_id" json:"prenotazione_id,omitempty"`
    Phone      string     `db:"phone" json:"phone"`
    Message    string     `db:"message" json:"message"`
    Type       string     `db:"tipo" json:"tipo"`
    Client     string     `db:"cliente" json:"cliente"`
    Status     string     `db:"status" json:"status"`
    Error      *string    `db:"error" json:"error,omitempty"`
    ExternalID *string    `db:"external_id" json:"external_id,omitempty"`
    SentAt     *time.Time `db:"sent_at" json:"sent_at,omitempty"`
    CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}

// PendingSMS is the shape the SMSGate polling agent expects from
// /api/smsgate/pending.
type PendingSMS struct {
    ID          int         `json:"id"`
    PhoneNumber string      `json:"phoneNumber"`
    Message     string      `json:"message"`
    Metadata    SMSMetadata `json:"metadata"`
}

type SMSMetadata struct {
    Tipo           string `json:"tipo"`
    Cliente        string `json:"cliente"`
    PrenotazioneID *int   `json:"prenotazione_id"`
}

type SMSStats struct {
    Sent    int `json:"inviati"`
    Pending int `json:"pendenti"`
    Errors  int `json:"errori"`
    Total   int `json:"totale"`
}
