package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"therapy-booking-service/config"
	"therapy-booking-service/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

// Record is the wire shape Airtable expects: a single object holding a
// column-name -> value mapping.
type Record struct {
	Fields map[string]interface{} `json:"fields"`
}

// SubmitResult carries the identifier Airtable assigned to the new record.
type SubmitResult struct {
	ID string `json:"id"`
}

// Client performs one outbound write per submission. No retries and no
// client-side timeout; the host request lifetime is the effective bound.
type Client struct {
	cfg        config.AirtableConfig
	httpClient *http.Client
	log        *logrus.Logger
}

func NewClient(cfg config.AirtableConfig, log *logrus.Logger) *Client {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		log:        log,
	}
}

// ConfigPresence reports which of the three required deployment values are
// set, for diagnostic payloads. It never includes the values themselves.
func (c *Client) ConfigPresence() map[string]bool {
	return map[string]bool{
		"hasApiKey":    c.cfg.APIKey != "",
		"hasBaseId":    c.cfg.BaseID != "",
		"hasTableName": c.cfg.TableName != "",
	}
}

// CreateRecord posts a single record to the configured base and table. On
// success the outcome is nil; every failure is normalized into one
// SubmissionOutcome kind and never surfaced as a raw error.
func (c *Client) CreateRecord(ctx context.Context, record *Record) (*SubmitResult, *entity.SubmissionOutcome) {
	if !c.cfg.IsComplete() {
		c.log.Errorf("Airtable configuration incomplete: %+v", c.ConfigPresence())
		return nil, &entity.SubmissionOutcome{
			Kind:   entity.OutcomeConfigError,
			Detail: c.ConfigPresence(),
		}
	}

	payload, err := json.Marshal(record)
	if err != nil {
		c.log.Errorf("Failed to encode Airtable record: %+v", err)
		return nil, &entity.SubmissionOutcome{
			Kind:   entity.OutcomeInternalFault,
			Detail: err.Error(),
		}
	}

	url := fmt.Sprintf("%s/%s/%s", c.cfg.BaseURL, c.cfg.BaseID, c.cfg.TableName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &entity.SubmissionOutcome{
			Kind:   entity.OutcomeInternalFault,
			Detail: err.Error(),
		}
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Errorf("Airtable request failed: %+v", err)
		return nil, &entity.SubmissionOutcome{
			Kind:   entity.OutcomeNetworkFailure,
			Detail: err.Error(),
		}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &entity.SubmissionOutcome{
			Kind:   entity.OutcomeInternalFault,
			Detail: err.Error(),
		}
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var result SubmitResult
		if err := json.Unmarshal(body, &result); err != nil {
			c.log.Errorf("Failed to decode Airtable success response: %+v", err)
			return nil, &entity.SubmissionOutcome{
				Kind:   entity.OutcomeInternalFault,
				Detail: err.Error(),
			}
		}
		c.log.Infof("Airtable record created: id=%s", result.ID)
		return &result, nil
	}

	// Try to extract structured detail from the error body, falling back
	// to the raw text when it is not JSON.
	var detail interface{}
	var parsed map[string]interface{}
	if err := json.Unmarshal(body, &parsed); err == nil {
		detail = parsed
	} else {
		detail = string(body)
	}

	c.log.Errorf("Airtable API error: status=%d, key=%s, body=%s",
		resp.StatusCode, truncateKey(c.cfg.APIKey), string(body))

	return nil, &entity.SubmissionOutcome{
		Kind:   entity.OutcomeUpstreamRejected,
		Status: resp.StatusCode,
		Detail: detail,
	}
}

// truncateKey keeps at most a 10-character prefix for diagnostics. The full
// credential must never appear in logs or response bodies.
func truncateKey(key string) string {
	if len(key) <= 10 {
		return key
	}
	return key[:10] + "..."
}
