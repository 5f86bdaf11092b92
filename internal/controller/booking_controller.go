// internal/controller/booking_controller.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	appErrors "github.com/barbercloud/barber-backend/internal/errors"
	"github.com/barbercloud/barber-backend/internal/service"
)

type BookingController struct {
	BookingService      *service.BookingService
	AvailabilityService *service.AvailabilityService
	Validator           *validator.Validate
}

// GetAvailability handles GET /api/disponibilita/{barbiereId}/{data}
func (c *BookingController) GetAvailability(w http.ResponseWriter, r *http.Request) {
	barberID, err := strconv.Atoi(chi.URLParam(r, "barbiereId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid barber id")
		return
	}
	date := chi.URLParam(r, "data")

	slots, err := c.AvailabilityService.AvailableSlots(barberID, date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"disponibilita": slots})
}

// CreateBooking handles POST /api/prenotazioni
func (c *BookingController) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req service.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := c.Validator.Struct(&req); err != nil {
		writeError(w, http.StatusBadRequest, "validation error: "+err.Error())
		return
	}

	details, err := c.BookingService.CreateBooking(&req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"prenotazione": details,
		"message":      "Prenotazione creata con successo",
	})
}

// ListByDate handles GET /api/prenotazioni/{data}
func (c *BookingController) ListByDate(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "data")

	bookings, err := c.BookingService.ListByDate(date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"prenotazioni": bookings})
}

// CancelBooking handles DELETE /api/prenotazioni/{id}
func (c *BookingController) CancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}

	if err := c.BookingService.CancelBooking(id); err != nil {
		var notFound *appErrors.ErrBookingNotFound
		if errors.As(err, &notFound) {
			writeError(w, http.StatusNotFound, "Prenotazione non trovata")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Prenotazione cancellata",
	})
}

// AdminList handles GET /api/admin/prenotazioni
func (c *BookingController) AdminList(w http.ResponseWriter, r *http.Request) {
	bookings, err := c.BookingService.AdminList()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"prenotazioni": bookings})
}
