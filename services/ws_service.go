package services

import (
	"encoding/json"
	"fmt"

	"github.com/olahol/melody"
)

const sessionChannelsKey = "channels"

// ChannelHub publishes events to websocket sessions that subscribed to a
// named channel. Subscriptions are tracked per melody session.
type ChannelHub struct {
	m *melody.Melody
}

type subscribeRequest struct {
	Action  string `json:"action"`
	Channel string `json:"channel"`
}

// NewChannelHub wraps a melody instance and installs the subscription
// protocol. A nil melody instance yields a hub whose publishes are no-ops,
// which keeps the services testable without a websocket stack.
func NewChannelHub(m *melody.Melody) *ChannelHub {
	hub := &ChannelHub{m: m}
	if m == nil {
		return hub
	}

	m.HandleConnect(func(s *melody.Session) {
		s.Set(sessionChannelsKey, map[string]bool{})
	})

	m.HandleMessage(func(s *melody.Session, msg []byte) {
		s.Set(sessionChannelsKey, applySubscription(sessionChannels(s), msg))
	})

	return hub
}

// applySubscription returns a fresh subscription set with the message applied.
// The current map is never mutated: broadcast filters on the hub goroutine may
// still be reading it, and melody only synchronizes the Set/Get calls, not the
// map they hand out.
func applySubscription(current map[string]bool, msg []byte) map[string]bool {
	var req subscribeRequest
	if err := json.Unmarshal(msg, &req); err != nil || req.Channel == "" {
		return current
	}

	next := make(map[string]bool, len(current)+1)
	for channel := range current {
		next[channel] = true
	}

	switch req.Action {
	case "subscribe":
		next[req.Channel] = true
	case "unsubscribe":
		delete(next, req.Channel)
	}
	return next
}

// Publish sends payload as JSON to every session subscribed to channel.
func (h *ChannelHub) Publish(channel string, payload interface{}) error {
	if h == nil || h.m == nil {
		return nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return h.m.BroadcastFilter(body, func(q *melody.Session) bool {
		return sessionChannels(q)[channel]
	})
}

func sessionChannels(s *melody.Session) map[string]bool {
	v, ok := s.Get(sessionChannelsKey)
	if !ok {
		return map[string]bool{}
	}
	channels, ok := v.(map[string]bool)
	if !ok {
		return map[string]bool{}
	}
	return channels
}

// UserChannel names the per-user notification channel.
func UserChannel(userID uint) string {
	return fmt.Sprintf("user:%d", userID)
}

// ConversationChannel names the per-conversation message channel.
func ConversationChannel(conversationID uint) string {
	return fmt.Sprintf("conversation:%d", conversationID)
}
