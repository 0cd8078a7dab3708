package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/test-kooza/rental-management-system-sub001/constants"
	"github.com/test-kooza/rental-management-system-sub001/errors"
)

func newTestChatService(t *testing.T) (*ChatService, *chatFixture) {
	t.Helper()

	db := newTestDB(t)
	host := seedUser(t, db, "Harriet Host", "harriet@example.com", 1)
	guest := seedUser(t, db, "Gerald Guest", "gerald@example.com", 0)
	stranger := seedUser(t, db, "Sam Stranger", "sam@example.com", 0)
	property := seedProperty(t, db, host.ID, "100", 0, 4)

	notifications := NewNotificationService(db, NewChannelHub(nil), nil)
	svc := NewChatService(db, NewChannelHub(nil), notifications, nil)

	return svc, &chatFixture{
		guestID:    guest.ID,
		hostID:     host.ID,
		strangerID: stranger.ID,
		propertyID: property.ID,
		svc:        svc,
	}
}

type chatFixture struct {
	guestID    uint
	hostID     uint
	strangerID uint
	propertyID uint
	svc        *ChatService
}

func TestOpenConversationFindOrCreate(t *testing.T) {
	svc, fx := newTestChatService(t)

	first, err := svc.OpenConversation(fx.guestID, fx.hostID, fx.propertyID)
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	// opening again returns the same conversation
	second, err := svc.OpenConversation(fx.guestID, fx.hostID, fx.propertyID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestSendMessageKeepsCorrelationID(t *testing.T) {
	svc, fx := newTestChatService(t)

	conversation, err := svc.OpenConversation(fx.guestID, fx.hostID, fx.propertyID)
	require.NoError(t, err)

	message, err := svc.SendMessage(fx.guestID, conversation.ID, "Is early check-in possible?", "tmp-9f2c")
	require.NoError(t, err)

	assert.NotZero(t, message.ID)
	assert.Equal(t, "tmp-9f2c", message.CorrelationID,
		"the sender's correlation id must survive the round trip so the client can reconcile its placeholder")
	assert.Equal(t, fx.guestID, message.SenderID)
}

func TestSendMessageNotifiesCounterparty(t *testing.T) {
	svc, fx := newTestChatService(t)

	conversation, err := svc.OpenConversation(fx.guestID, fx.hostID, fx.propertyID)
	require.NoError(t, err)

	_, err = svc.SendMessage(fx.guestID, conversation.ID, "Hello!", "")
	require.NoError(t, err)

	notifications, total, err := svc.notifications.ListForUser(fx.hostID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, notifications, 1)
	assert.Equal(t, constants.NotificationMessageReceived, notifications[0].Type)

	// the sender is not notified about their own message
	_, total, err = svc.notifications.ListForUser(fx.guestID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestSendMessageRejectsOutsiders(t *testing.T) {
	svc, fx := newTestChatService(t)

	conversation, err := svc.OpenConversation(fx.guestID, fx.hostID, fx.propertyID)
	require.NoError(t, err)

	_, err = svc.SendMessage(fx.strangerID, conversation.ID, "Let me in", "")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeForbidden))

	_, err = svc.SendMessage(fx.guestID, conversation.ID, "", "")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))

	_, err = svc.SendMessage(fx.guestID, 9999, "anyone there?", "")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeDBNotFound))
}

func TestHistoryOrderedOldestFirst(t *testing.T) {
	svc, fx := newTestChatService(t)

	conversation, err := svc.OpenConversation(fx.guestID, fx.hostID, fx.propertyID)
	require.NoError(t, err)

	bodies := []string{"first", "second", "third"}
	for _, body := range bodies {
		_, err := svc.SendMessage(fx.guestID, conversation.ID, body, "")
		require.NoError(t, err)
	}

	messages, total, err := svc.History(fx.hostID, conversation.ID, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, messages, 3)
	for i, body := range bodies {
		assert.Equal(t, body, messages[i].Body)
	}

	_, _, err = svc.History(fx.strangerID, conversation.ID, 0, 10)
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.ErrCodeForbidden))
}

func TestListConversationsBothSides(t *testing.T) {
	svc, fx := newTestChatService(t)

	conversation, err := svc.OpenConversation(fx.guestID, fx.hostID, fx.propertyID)
	require.NoError(t, err)

	for _, userID := range []uint{fx.guestID, fx.hostID} {
		conversations, err := svc.ListConversations(userID)
		require.NoError(t, err)
		require.Len(t, conversations, 1)
		assert.Equal(t, conversation.ID, conversations[0].ID)
	}

	conversations, err := svc.ListConversations(fx.strangerID)
	require.NoError(t, err)
	assert.Empty(t, conversations)
}
