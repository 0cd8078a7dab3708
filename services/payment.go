package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/test-kooza/rental-management-system-sub001/errors"
)

// PaymentEvent is the provider's webhook body after verification.
type PaymentEvent struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Reference string `json:"reference"` // echoes the booking's payment reference
		Status    string `json:"status"`
		Amount    string `json:"amount"`
		Currency  string `json:"currency"`
	} `json:"data"`
}

// VerifyWebhookSignature checks the provider's HMAC-SHA256 signature over the
// raw payload. Constant-time compare; a mismatch must never reach the workflow.
func VerifyWebhookSignature(payload []byte, signature, secret string) error {
	if secret == "" {
		return errors.NewAppError(errors.ErrCodePaymentVerification, "Webhook secret is not configured", nil)
	}
	if signature == "" {
		return errors.NewAppError(errors.ErrCodePaymentVerification, "Missing webhook signature", nil)
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return errors.NewAppError(errors.ErrCodePaymentVerification, "Webhook signature mismatch", errors.ErrBadSignature)
	}
	return nil
}

// SignWebhookPayload produces the signature the provider would attach.
// Exposed for tests and for replaying events against staging.
func SignWebhookPayload(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// ParsePaymentEvent decodes a verified webhook body.
func ParsePaymentEvent(payload []byte) (*PaymentEvent, error) {
	var event PaymentEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, errors.NewAppError(errors.ErrCodePaymentMalformed, "Could not parse webhook payload", err)
	}
	if event.Type == "" {
		return nil, errors.NewAppError(errors.ErrCodePaymentMalformed, "Webhook event has no type", nil)
	}
	return &event, nil
}
