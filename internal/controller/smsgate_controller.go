// internal/controller/smsgate_controller.go
package controller

import (
	"encoding/json"
	"net/http"

	"github.com/barbercloud/barber-backend/internal/service"
)

// SMSGateController implements the polling protocol consumed by the external
// SMSGate delivery agent, plus the operational stats and admin listing.
type SMSGateController struct {
	SMSService *service.SMSService
}

// Pending handles GET /api/smsgate/pending
func (c *SMSGateController) Pending(w http.ResponseWriter, r *http.Request) {
	messages, err := c.SMSService.PendingBatch()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"count":    len(messages),
		"messages": messages,
	})
}

// ReportSent handles POST /api/smsgate/sent
func (c *SMSGateController) ReportSent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID        int    `json:"id"`
		MessageID string `json:"messageId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.ID == 0 {
		writeError(w, http.StatusBadRequest, "ID mancante")
		return
	}

	if err := c.SMSService.MarkSent(body.ID, body.MessageID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// ReportError handles POST /api/smsgate/error
func (c *SMSGateController) ReportError(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ID    int    `json:"id"`
		Error string `json:"error"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.ID == 0 {
		writeError(w, http.StatusBadRequest, "ID mancante")
		return
	}

	if err := c.SMSService.MarkError(body.ID, body.Error); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// Stats handles GET /api/sms/stats
func (c *SMSGateController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.SMSService.Stats()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// AdminList handles GET /api/admin/sms
func (c *SMSGateController) AdminList(w http.ResponseWriter, r *http.Request) {
	messages, err := c.SMSService.AdminList()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"sms": messages})
}
