package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"therapy-booking-service/internal/converter"
	"therapy-booking-service/internal/domain/entity"
	"therapy-booking-service/internal/usecase"

	"github.com/sirupsen/logrus"
)

// AirtableProxyHandler reproduces the legacy serverless function contract:
// OPTIONS answers empty 200 for preflight, anything but POST is 405, and a
// POST relays the booking payload to Airtable after remapping. Unlike the
// /api/v1 endpoints it writes raw response shapes, not the envelope, since
// existing form clients parse these exact bodies.
type AirtableProxyHandler struct {
	submitter   usecase.RecordSubmitter
	defaultType string
	log         *logrus.Logger
}

func NewAirtableProxyHandler(submitter usecase.RecordSubmitter, defaultType string, log *logrus.Logger) *AirtableProxyHandler {
	return &AirtableProxyHandler{
		submitter:   submitter,
		defaultType: defaultType,
		log:         log,
	}
}

func (h *AirtableProxyHandler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
	case http.MethodPost:
		h.handleSubmit(w, r)
	default:
		writeRaw(w, http.StatusMethodNotAllowed, map[string]interface{}{
			"error": "Method not allowed",
		})
	}
}

func (h *AirtableProxyHandler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.log.Errorf("Proxy invocation panicked: %+v", rec)
			writeRaw(w, http.StatusInternalServerError, map[string]interface{}{
				"error":   "Internal server error",
				"details": fmt.Sprint(rec),
				"type":    "panic",
			})
		}
	}()

	var booking entity.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		writeRaw(w, http.StatusInternalServerError, map[string]interface{}{
			"error":   "Internal server error",
			"details": err.Error(),
			"type":    fmt.Sprintf("%T", err),
		})
		return
	}

	if booking.Status == "" {
		booking.Status = entity.BookingStatusPending
	}
	if booking.Type == "" {
		booking.Type = h.defaultType
	}

	record := converter.BookingToRecord(&booking)
	result, outcome := h.submitter.CreateRecord(r.Context(), record)
	if outcome != nil {
		h.writeOutcome(w, outcome)
		return
	}

	writeRaw(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"id":      result.ID,
	})
}

func (h *AirtableProxyHandler) writeOutcome(w http.ResponseWriter, outcome *entity.SubmissionOutcome) {
	switch outcome.Kind {
	case entity.OutcomeConfigError:
		writeRaw(w, http.StatusInternalServerError, map[string]interface{}{
			"error":   "Airtable configuration missing",
			"details": outcome.Detail,
		})
	case entity.OutcomeUpstreamRejected:
		writeRaw(w, outcome.Status, map[string]interface{}{
			"error":   "Failed to save to Airtable",
			"details": outcome.Detail,
			"status":  outcome.Status,
		})
	case entity.OutcomeNetworkFailure:
		writeRaw(w, http.StatusInternalServerError, map[string]interface{}{
			"error":   "Internal server error",
			"details": outcome.Detail,
			"type":    "network",
		})
	default:
		writeRaw(w, http.StatusInternalServerError, map[string]interface{}{
			"error":   "Internal server error",
			"details": outcome.Detail,
			"type":    "internal",
		})
	}
}

func writeRaw(w http.ResponseWriter, statusCode int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}
