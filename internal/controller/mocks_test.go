package controller_test

import (
	"time"

	"github.com/barbercloud/barber-backend/internal/model"
)

type mockBookingRepo struct {
	occupied      []model.OccupiedSlot
	details       *model.BookingDetails
	created       []*model.Booking
	statusUpdates map[int]string
	byDate        []model.BookingDetails
	recent        []model.BookingDetails
}

func (m *mockBookingRepo) Create(b *model.Booking) error {
	if b.Status == "" {
		b.Status = model.BookingStatusConfirmed
	}
	b.ID = len(m.created) + 1
	b.CreatedAt = time.Now()
	m.created = append(m.created, b)
	return nil
}

func (m *mockBookingRepo) GetDetailsByID(id int) (*model.BookingDetails, error) {
	if m.details == nil {
		return nil, nil
	}
	d := *m.details
	d.ID = id
	return &d, nil
}

func (m *mockBookingRepo) UpdateStatus(id int, status string) error {
	if m.statusUpdates == nil {
		m.statusUpdates = map[int]string{}
	}
	m.statusUpdates[id] = status
	return nil
}

func (m *mockBookingRepo) ListByDate(date string) ([]model.BookingDetails, error) {
	return m.byDate, nil
}

func (m *mockBookingRepo) ListRecent(limit int) ([]model.BookingDetails, error) {
	return m.recent, nil
}

func (m *mockBookingRepo) ListOccupied(barberID int, date string) ([]model.OccupiedSlot, error) {
	return m.occupied, nil
}

type mockSMSRepo struct {
	created    []*model.SMSMessage
	pending    []model.SMSMessage
	sentIDs    map[int]string
	errorTexts map[int]string
	stats      *model.SMSStats
	recent     []model.SMSMessage
}

func (m *mockSMSRepo) Create(msg *model.SMSMessage) error {
	msg.ID = len(m.created) + 1
	msg.CreatedAt = time.Now()
	m.created = append(m.created, msg)
	return nil
}

func (m *mockSMSRepo) ListPending(limit int) ([]model.SMSMessage, error) {
	if len(m.pending) > limit {
		return m.pending[:limit], nil
	}
	return m.pending, nil
}

func (m *mockSMSRepo) MarkSent(id int, externalID string) error {
	if m.sentIDs == nil {
		m.sentIDs = map[int]string{}
	}
	m.sentIDs[id] = externalID
	return nil
}

func (m *mockSMSRepo) MarkError(id int, errText string) error {
	if m.errorTexts == nil {
		m.errorTexts = map[int]string{}
	}
	m.errorTexts[id] = errText
	return nil
}

func (m *mockSMSRepo) Stats() (*model.SMSStats, error) {
	return m.stats, nil
}

func (m *mockSMSRepo) ListRecent(limit int) ([]model.SMSMessage, error) {
	return m.recent, nil
}
