package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"therapy-booking-service/config"
	"therapy-booking-service/internal/infrastructure/airtable"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProxyHandler(t *testing.T, upstream http.HandlerFunc) (*AirtableProxyHandler, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	cfg := config.AirtableConfig{
		APIKey:    "keySECRET",
		BaseID:    "appBase",
		TableName: "Consultations",
		BaseURL:   server.URL,
	}
	client := airtable.NewClient(cfg, logrus.New())
	return NewAirtableProxyHandler(client, "Free Consultation", logrus.New()), server
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestProxy_PreflightAnsweredEmpty(t *testing.T) {
	h, _ := newProxyHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach upstream")
	})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodOptions, "/functions/airtable", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "POST, GET, OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestProxy_RejectsOtherVerbs(t *testing.T) {
	h, _ := newProxyHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("rejected verbs must not reach upstream")
	})

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		rec := httptest.NewRecorder()
		h.Handle(rec, httptest.NewRequest(method, "/functions/airtable", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, method)
		assert.Equal(t, "Method not allowed", decodeBody(t, rec)["error"])
	}
}

func TestProxy_SuccessfulSubmission(t *testing.T) {
	var forwarded airtable.Record
	h, _ := newProxyHandler(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&forwarded)
		w.Write([]byte(`{"id":"recXYZ"}`))
	})

	payload := `{"firstName":"A","lastName":"B","email":"a@b.com","zipCode":"22601"}`
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/functions/airtable", strings.NewReader(payload)))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "recXYZ", body["id"])

	assert.Equal(t, "A", forwarded.Fields["First Name"])
	assert.Equal(t, "22601", forwarded.Fields["Zip Code"])
	// Proxy fills defaults for metadata the caller omitted
	assert.Equal(t, "Pending Confirmation", forwarded.Fields["Status"])
	assert.Equal(t, "Free Consultation", forwarded.Fields["Type"])
}

func TestProxy_RevalidatesZipBeforeForwarding(t *testing.T) {
	var forwarded airtable.Record
	h, _ := newProxyHandler(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&forwarded)
		w.Write([]byte(`{"id":"recXYZ"}`))
	})

	payload := `{"firstName":"A","lastName":"B","email":"a@b.com","zipCode":"1234"}`
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/functions/airtable", strings.NewReader(payload)))

	assert.Equal(t, http.StatusOK, rec.Code)
	// Four digits fails the rule; the field is dropped, the rest still goes
	assert.NotContains(t, forwarded.Fields, "Zip Code")
	assert.Equal(t, "A", forwarded.Fields["First Name"])
	assert.Equal(t, "a@b.com", forwarded.Fields["Email"])
}

func TestProxy_MissingConfiguration(t *testing.T) {
	cfg := config.AirtableConfig{BaseURL: "http://127.0.0.1:0"}
	client := airtable.NewClient(cfg, logrus.New())
	h := NewAirtableProxyHandler(client, "Free Consultation", logrus.New())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/functions/airtable", strings.NewReader(`{"firstName":"A"}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Airtable configuration missing", body["error"])
}

func TestProxy_UpstreamRejectionPreservesStatusAndDetails(t *testing.T) {
	h, _ := newProxyHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":{"type":"INVALID_VALUE_FOR_COLUMN"}}`))
	})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/functions/airtable", strings.NewReader(`{"firstName":"A"}`)))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Failed to save to Airtable", body["error"])
	assert.Equal(t, float64(422), body["status"])
	require.Contains(t, body, "details")
	detail, ok := body["details"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, detail, "error")
}

func TestProxy_MalformedJSONBecomesInternalError(t *testing.T) {
	h, _ := newProxyHandler(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("malformed input must not reach upstream")
	})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/functions/airtable", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Internal server error", body["error"])
	assert.NotEmpty(t, body["type"])
}

func TestProxy_CredentialNeverLeaksIntoResponse(t *testing.T) {
	h, _ := newProxyHandler(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"AUTHENTICATION_REQUIRED"}`))
	})

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/functions/airtable", strings.NewReader(`{"firstName":"A"}`)))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.NotContains(t, rec.Body.String(), "keySECRET")
}
