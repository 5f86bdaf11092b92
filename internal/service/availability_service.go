// internal/service/availability_service.go
package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/barbercloud/barber-backend/internal/repository"
)

// Working hours grid: 09:00-19:00 in 15-minute steps, 40 candidate slots per
// day, regardless of barber or service duration.
const (
	openingHour = 9
	closingHour = 19
)

var slotMinutes = [4]int{0, 15, 30, 45}

type AvailabilityService struct {
	BookingRepo repository.BookingRepositoryInterface
}

// AvailableSlots returns the free "HH:MM" slots for a barber on a date, in
// ascending order. A slot S is occupied when a non-cancelled booking satisfies
// start <= S < start+duration, compared as minutes of day. The result is
// recomputed per request and can go stale as soon as a concurrent booking
// lands.
func (s *AvailabilityService) AvailableSlots(barberID int, date string) ([]string, error) {
	occupied, err := s.BookingRepo.ListOccupied(barberID, date)
	if err != nil {
		return nil, err
	}

	type interval struct {
		start, end int
	}
	intervals := make([]interval, 0, len(occupied))
	for _, o := range occupied {
		start, err := minuteOfDay(o.Time)
		if err != nil {
			return nil, fmt.Errorf("booking time %q: %w", o.Time, err)
		}
		intervals = append(intervals, interval{start: start, end: start + o.Duration})
	}

	slots := []string{}
	for hour := openingHour; hour < closingHour; hour++ {
		for _, minute := range slotMinutes {
			slotStart := hour*60 + minute

			free := true
			for _, iv := range intervals {
				if slotStart >= iv.start && slotStart < iv.end {
					free = false
					break
				}
			}
			if free {
				slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
			}
		}
	}
	return slots, nil
}

func minuteOfDay(hhmm string) (int, error) {
	parts := strings.Split(hhmm, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM")
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	return hour*60 + minute, nil
}
