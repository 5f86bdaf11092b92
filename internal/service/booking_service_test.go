package service_test

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	appErrors "github.com/barbercloud/barber-backend/internal/errors"
	"github.com/barbercloud/barber-backend/internal/model"
	"github.com/barbercloud/barber-backend/internal/service"
)

func taglioDetails() *model.BookingDetails {
	return &model.BookingDetails{
		Booking: model.Booking{
			ID:          1,
			BarberID:    1,
			ServiceID:   1,
			ClientName:  "Mario Rossi",
			ClientPhone: "+391234567890",
			Date:        "2024-06-01",
			Time:        "10:00",
			Status:      model.BookingStatusConfirmed,
		},
		BarberName:  "Michele",
		ServiceName: "Taglio",
		Duration:    30,
	}
}

func newBookingService(bookingRepo *mockBookingRepo, smsRepo *mockSMSRepo) *service.BookingService {
	return &service.BookingService{
		BookingRepo: bookingRepo,
		SMSRepo:     smsRepo,
		Logger:      zap.NewNop(),
	}
}

func TestCreateBookingEnqueuesConfirmation(t *testing.T) {
	bookingRepo := &mockBookingRepo{details: taglioDetails()}
	smsRepo := &mockSMSRepo{}
	svc := newBookingService(bookingRepo, smsRepo)

	details, err := svc.CreateBooking(&service.CreateBookingRequest{
		BarberID:    1,
		ServiceID:   1,
		ClientName:  "Mario Rossi",
		ClientPhone: "+391234567890",
		Date:        "2024-06-01",
		Time:        "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if details.Status != model.BookingStatusConfirmed {
		t.Errorf("expected status confermata, got %s", details.Status)
	}
	if len(bookingRepo.created) != 1 {
		t.Fatalf("expected 1 booking row, got %d", len(bookingRepo.created))
	}

	if len(smsRepo.created) != 1 {
		t.Fatalf("expected exactly 1 outbox row, got %d", len(smsRepo.created))
	}
	sms := smsRepo.created[0]
	if sms.Type != model.SMSTypeConfirmation {
		t.Errorf("expected tipo conferma, got %s", sms.Type)
	}
	if sms.Status != model.SMSStatusPending {
		t.Errorf("expected status pending, got %s", sms.Status)
	}
	if sms.BookingID == nil {
		t.Error("expected outbox row to reference the booking")
	}
	if sms.Phone != "+391234567890" {
		t.Errorf("expected client phone on the outbox row, got %s", sms.Phone)
	}
	for _, want := range []string{"Michele", "Taglio", "2024-06-01", "10:00"} {
		if !strings.Contains(sms.Message, want) {
			t.Errorf("expected message to contain %q, got %q", want, sms.Message)
		}
	}
}

func TestCreateBookingSMSFailureDoesNotFailBooking(t *testing.T) {
	bookingRepo := &mockBookingRepo{details: taglioDetails()}
	smsRepo := &mockSMSRepo{createErr: errors.New("sms_queue insert failed")}
	svc := newBookingService(bookingRepo, smsRepo)

	_, err := svc.CreateBooking(&service.CreateBookingRequest{
		BarberID:    1,
		ServiceID:   1,
		ClientName:  "Mario Rossi",
		ClientPhone: "+391234567890",
		Date:        "2024-06-01",
		Time:        "10:00",
	})
	if err != nil {
		t.Fatalf("booking creation must not fail on outbox error, got: %v", err)
	}
	if len(bookingRepo.created) != 1 {
		t.Errorf("expected the booking row regardless, got %d", len(bookingRepo.created))
	}
}

func TestCancelBookingNotFound(t *testing.T) {
	bookingRepo := &mockBookingRepo{} // no details -> unknown id
	svc := newBookingService(bookingRepo, &mockSMSRepo{})

	err := svc.CancelBooking(99)
	if err == nil {
		t.Fatal("expected an error for an unknown booking")
	}

	var notFound *appErrors.ErrBookingNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ErrBookingNotFound, got %T: %v", err, err)
	}
	if notFound.BookingID != 99 {
		t.Errorf("expected booking id 99 in error, got %d", notFound.BookingID)
	}
}

func TestCancelBookingSoftDeletesAndEnqueues(t *testing.T) {
	bookingRepo := &mockBookingRepo{details: taglioDetails()}
	smsRepo := &mockSMSRepo{}
	svc := newBookingService(bookingRepo, smsRepo)

	if err := svc.CancelBooking(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bookingRepo.statusUpdates[1] != model.BookingStatusCancelled {
		t.Errorf("expected stato cancellata, got %q", bookingRepo.statusUpdates[1])
	}
	if len(smsRepo.created) != 1 {
		t.Fatalf("expected exactly 1 cancellation outbox row, got %d", len(smsRepo.created))
	}
	sms := smsRepo.created[0]
	if sms.Type != model.SMSTypeCancellation {
		t.Errorf("expected tipo cancellazione, got %s", sms.Type)
	}
	for _, want := range []string{"2024-06-01", "10:00", "Michele"} {
		if !strings.Contains(sms.Message, want) {
			t.Errorf("expected message to contain %q, got %q", want, sms.Message)
		}
	}
}

func TestCancelTwiceEnqueuesTwice(t *testing.T) {
	// Cancelling an already-cancelled booking is not guarded: each call
	// enqueues another cancellation message.
	bookingRepo := &mockBookingRepo{details: taglioDetails()}
	smsRepo := &mockSMSRepo{}
	svc := newBookingService(bookingRepo, smsRepo)

	if err := svc.CancelBooking(1); err != nil {
		t.Fatalf("first cancel: %v", err)
	}
	if err := svc.CancelBooking(1); err != nil {
		t.Fatalf("second cancel: %v", err)
	}

	if len(smsRepo.created) != 2 {
		t.Errorf("expected 2 cancellation rows, got %d", len(smsRepo.created))
	}
}

func TestBookThenAvailabilityScenario(t *testing.T) {
	// Booking Taglio (30 min) at 10:00 on 2024-06-01: the 10:00 and 10:15
	// slots disappear, 10:30 stays, and exactly one pending confirmation
	// references the booking.
	bookingRepo := &mockBookingRepo{details: taglioDetails()}
	smsRepo := &mockSMSRepo{}
	svc := newBookingService(bookingRepo, smsRepo)

	details, err := svc.CreateBooking(&service.CreateBookingRequest{
		BarberID:    1,
		ServiceID:   1,
		ClientName:  "Mario Rossi",
		ClientPhone: "+391234567890",
		Date:        "2024-06-01",
		Time:        "10:00",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bookingRepo.occupied = []model.OccupiedSlot{{Time: details.Time, Duration: details.Duration}}
	availability := &service.AvailabilityService{BookingRepo: bookingRepo}

	slots, err := availability.AvailableSlots(1, "2024-06-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if contains(slots, "10:00") || contains(slots, "10:15") {
		t.Errorf("expected 10:00 and 10:15 occupied, got %v", slots)
	}
	if !contains(slots, "10:30") {
		t.Errorf("expected 10:30 free")
	}

	if len(smsRepo.created) != 1 {
		t.Fatalf("expected 1 outbox row, got %d", len(smsRepo.created))
	}
	sms := smsRepo.created[0]
	if sms.Type != model.SMSTypeConfirmation || sms.Status != model.SMSStatusPending {
		t.Errorf("expected pending conferma, got %s/%s", sms.Type, sms.Status)
	}
	if sms.BookingID == nil || *sms.BookingID != details.ID {
		t.Errorf("expected outbox row to reference booking %d", details.ID)
	}
}
