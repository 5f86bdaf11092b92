// internal/service/booking_service.go
package service

import (
	"fmt"

	"go.uber.org/zap"

	appErrors "github.com/barbercloud/barber-backend/internal/errors"
	"github.com/barbercloud/barber-backend/internal/model"
	"github.com/barbercloud/barber-backend/internal/repository"
)

const adminListLimit = 100

const (
	confirmationTemplate = "✅ Prenotazione Confermata\n\n" +
		"Barbiere: {barbiere}\n" +
		"Servizio: {servizio}\n" +
		"Data: {data}\n" +
		"Ora: {ora}\n\n" +
		"Ci vediamo! 💈"

	cancellationTemplate = "❌ Prenotazione Cancellata\n\n" +
		"La tua prenotazione del {data} alle {ora} con {barbiere} è stata cancellata.\n\n" +
		"Per info: chiama il negozio 💈"
)

type BookingService struct {
	BookingRepo repository.BookingRepositoryInterface
	SMSRepo     repository.SMSRepositoryInterface
	Logger      *zap.Logger
}

// CreateBookingRequest is the POST /api/prenotazioni body. Validated by the
// controller before it reaches the service.
type CreateBookingRequest struct {
	BarberID    int    `json:"barbiere_id" validate:"required"`
	ServiceID   int    `json:"servizio_id" validate:"required"`
	ClientName  string `json:"cliente_nome" validate:"required"`
	ClientPhone string `json:"cliente_telefono" validate:"required"`
	ClientEmail string `json:"cliente_email"`
	Date        string `json:"data" validate:"required"`
	Time        string `json:"ora" validate:"required"`
	Note        string `json:"note"`
}

// CreateBooking inserts a confirmed booking and enqueues the confirmation SMS.
// There is deliberately no overlap check against the availability engine: the
// caller is trusted to have picked a free slot, so two concurrent requests can
// double-book the same slot. Outbox enqueue failure is logged and swallowed so
// booking success never depends on notification success.
func (s *BookingService) CreateBooking(req *CreateBookingRequest) (*model.BookingDetails, error) {
	booking := &model.Booking{
		BarberID:    req.BarberID,
		ServiceID:   req.ServiceID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: optional(req.ClientEmail),
		Date:        req.Date,
		Time:        req.Time,
		Note:        optional(req.Note),
	}

	if err := s.BookingRepo.Create(booking); err != nil {
		return nil, err
	}

	details, err := s.BookingRepo.GetDetailsByID(booking.ID)
	if err != nil {
		return nil, err
	}
	if details == nil {
		return nil, fmt.Errorf("booking %d not found after insert", booking.ID)
	}

	message := RenderTemplate(confirmationTemplate, map[string]string{
		"barbiere": details.BarberName,
		"servizio": details.ServiceName,
		"data":     details.Date,
		"ora":      details.Time,
	})
	s.enqueueSMS(details, model.SMSTypeConfirmation, message)

	return details, nil
}

// CancelBooking soft-deletes a booking and enqueues the cancellation SMS.
// Cancelling an already-cancelled booking flips the status again and enqueues
// another message; there is no guard, matching the permissive lifecycle.
func (s *BookingService) CancelBooking(id int) error {
	details, err := s.BookingRepo.GetDetailsByID(id)
	if err != nil {
		return err
	}
	if details == nil {
		return appErrors.NewBookingNotFound(id)
	}

	if err := s.BookingRepo.UpdateStatus(id, model.BookingStatusCancelled); err != nil {
		return err
	}

	message := RenderTemplate(cancellationTemplate, map[string]string{
		"data":     details.Date,
		"ora":      details.Time,
		"barbiere": details.BarberName,
	})
	s.enqueueSMS(details, model.SMSTypeCancellation, message)

	return nil
}

// ListByDate returns the non-cancelled bookings for a date, earliest first.
func (s *BookingService) ListByDate(date string) ([]model.BookingDetails, error) {
	return s.BookingRepo.ListByDate(date)
}

// AdminList returns the most recent bookings across all dates and statuses.
func (s *BookingService) AdminList() ([]model.BookingDetails, error) {
	return s.BookingRepo.ListRecent(adminListLimit)
}

func (s *BookingService) enqueueSMS(details *model.BookingDetails, tipo, message string) {
	bookingID := details.ID
	sms := &model.SMSMessage{
		BookingID: &bookingID,
		Phone:     details.ClientPhone,
		Message:   message,
		Type:      tipo,
		Client:    details.ClientName,
		Status:    model.SMSStatusPending,
	}
	if err := s.SMSRepo.Create(sms); err != nil {
		s.Logger.Warn("failed to enqueue sms",
			zap.String("tipo", tipo),
			zap.Int("prenotazione_id", details.ID),
			zap.Error(err))
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
