// internal/service/sms_service.go
package service

import (
	"go.uber.org/zap"

	"github.com/barbercloud/barber-backend/internal/model"
	"github.com/barbercloud/barber-backend/internal/repository"
)

// pendingBatchSize bounds the batch handed to the polling agent so a slow or
// absent agent is never handed an unbounded backlog.
const pendingBatchSize = 10

const defaultErrorText = "Unknown error"

type SMSService struct {
	SMSRepo repository.SMSRepositoryInterface
	Logger  *zap.Logger
}

// PendingBatch returns up to 10 of the oldest pending messages in the wire
// shape the SMSGate agent expects.
func (s *SMSService) PendingBatch() ([]model.PendingSMS, error) {
	rows, err := s.SMSRepo.ListPending(pendingBatchSize)
	if err != nil {
		return nil, err
	}

	messages := make([]model.PendingSMS, 0, len(rows))
	for _, m := range rows {
		messages = append(messages, model.PendingSMS{
			ID:          m.ID,
			PhoneNumber: m.Phone,
			Message:     m.Message,
			Metadata: model.SMSMetadata{
				Tipo:           m.Type,
				Cliente:        m.Client,
				PrenotazioneID: m.BookingID,
			},
		})
	}

	s.Logger.Info("smsgate poll", zap.Int("pending", len(messages)))
	return messages, nil
}

// MarkSent records a successful delivery reported by the agent.
func (s *SMSService) MarkSent(id int, externalID string) error {
	return s.SMSRepo.MarkSent(id, externalID)
}

// MarkError records a failed delivery. The error state is terminal: nothing in
// this system re-queues it.
func (s *SMSService) MarkError(id int, errText string) error {
	if errText == "" {
		errText = defaultErrorText
	}
	return s.SMSRepo.MarkError(id, errText)
}

// Stats returns queue-wide counters for operational visibility.
func (s *SMSService) Stats() (*model.SMSStats, error) {
	return s.SMSRepo.Stats()
}

// AdminList returns the most recent outbox entries regardless of status.
func (s *SMSService) AdminList() ([]model.SMSMessage, error) {
	return s.SMSRepo.ListRecent(adminListLimit)
}
