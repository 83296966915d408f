/*
Package chat contains the core shared state for the polling chat relay: the
online-user registry, room membership, the append-only message log, and the
Coordinator that serializes every client operation over them.

This file defines the Message record and the MessageLog, the append-only store
that assigns ids from a single monotonic counter and answers watermark-scoped
reads for pollers.
*/
package chat

import (
	"sort"

	"github.com/samber/lo"
)

// SystemSender is the reserved sender name for server-generated notifications,
// such as room creation and member departure announcements.
const SystemSender = "server"

// Message is a single immutable chat message. Recipient is either a username
// (direct message) or a room identifier (one stored row per room message;
// fan-out to members happens at read time).
type Message struct {
	// ID is globally unique and strictly increasing in creation order.
	ID uint64 `json:"id"`

	// Sender is the username that produced the message, or SystemSender.
	Sender string `json:"sender"`

	// Recipient is a username or a room identifier (see RoomIDPrefix).
	Recipient string `json:"recipient"`

	// Body is the message text.
	Body string `json:"body"`
}

// MessageLog is the append-only message store. Entries are never mutated or
// deleted during the process lifetime. It performs no locking of its own;
// the Coordinator serializes all access.
type MessageLog struct {
	entries []Message
	nextID  uint64
}

// NewMessageLog returns an empty log. The first assigned message id is 1.
func NewMessageLog() *MessageLog {
	return &MessageLog{nextID: 1}
}

// Append stores a new message and returns its assigned id.
func (l *MessageLog) Append(sender, recipient, body string) uint64 {
	id := l.nextID
	l.nextID++

	l.entries = append(l.entries, Message{
		ID:        id,
		Sender:    sender,
		Recipient: recipient,
		Body:      body,
	})

	return id
}

// Len returns the number of stored messages.
func (l *MessageLog) Len() int {
	return len(l.entries)
}

// Since returns, in id order, every message with id > lastSeen whose recipient
// is viewer directly or any room in viewerRooms.
//
// viewerRooms is the caller's room membership at read time, not at send time:
// a user who joined a room after a message was addressed to it still receives
// that message on their next poll, and a user who left a room stops seeing its
// messages even below their watermark. This mirrors the pull contract exactly
// and is a documented design choice, not an accident.
func (l *MessageLog) Since(viewer string, lastSeen uint64, viewerRooms map[string]struct{}) []Message {
	// Ids increase with append order, so the log is sorted by id.
	start := sort.Search(len(l.entries), func(i int) bool {
		return l.entries[i].ID > lastSeen
	})

	return lo.Filter(l.entries[start:], func(msg Message, _ int) bool {
		if msg.Recipient == viewer {
			return true
		}

		_, member := viewerRooms[msg.Recipient]
		return member
	})
}
