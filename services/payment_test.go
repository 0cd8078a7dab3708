package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/test-kooza/rental-management-system-sub001/errors"
)

const webhookSecret = "whsec_test_4f9d"

func TestVerifyWebhookSignature(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"reference":"ref-1"}}`)
	signature := SignWebhookPayload(payload, webhookSecret)

	assert.NoError(t, VerifyWebhookSignature(payload, signature, webhookSecret))
}

func TestVerifyWebhookSignatureRejectsTampering(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"reference":"ref-1"}}`)
	signature := SignWebhookPayload(payload, webhookSecret)

	tampered := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"reference":"ref-2"}}`)
	err := VerifyWebhookSignature(tampered, signature, webhookSecret)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodePaymentVerification))
	assert.True(t, errors.Is(err, errors.ErrBadSignature))
}

func TestVerifyWebhookSignatureRejectsWrongSecret(t *testing.T) {
	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed"}`)
	signature := SignWebhookPayload(payload, "some-other-secret")

	err := VerifyWebhookSignature(payload, signature, webhookSecret)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodePaymentVerification))
}

func TestVerifyWebhookSignatureRequiresConfig(t *testing.T) {
	payload := []byte(`{}`)

	err := VerifyWebhookSignature(payload, "deadbeef", "")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodePaymentVerification))

	err = VerifyWebhookSignature(payload, "", webhookSecret)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodePaymentVerification))
}

func TestParsePaymentEvent(t *testing.T) {
	payload := []byte(`{
		"id": "evt_42",
		"type": "checkout.session.completed",
		"data": {"reference": "ref-42", "status": "paid", "amount": "270.00", "currency": "USD"}
	}`)

	event, err := ParsePaymentEvent(payload)
	require.NoError(t, err)

	assert.Equal(t, "evt_42", event.ID)
	assert.Equal(t, "checkout.session.completed", event.Type)
	assert.Equal(t, "ref-42", event.Data.Reference)
	assert.Equal(t, "270.00", event.Data.Amount)
}

func TestParsePaymentEventMalformed(t *testing.T) {
	_, err := ParsePaymentEvent([]byte(`{not json`))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodePaymentMalformed))

	_, err = ParsePaymentEvent([]byte(`{"id":"evt_1"}`))
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodePaymentMalformed), "an event without a type is unusable")
}
