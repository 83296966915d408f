/*
Package chat contains the core shared state for the polling chat relay.

This file defines the Coordinator, the single entry point that composes the
user registry, room manager, and message log under one mutual-exclusion
domain. Every client operation acquires the lock for its full duration, so
concurrent operations are linearizable and message ids reflect exactly the
order in which critical sections executed.
*/
package chat

import (
	"sync"

	"github.com/rs/zerolog"

	"pollchat/internal/pkg/errs"
	"pollchat/internal/pkg/logx"
)

// Coordinator serializes all access to the shared chat state. No operation
// partially applies: either all validation passes and every resulting mutation
// (including notification appends) happens inside the critical section, or
// none do. Operations never block on anything but the lock itself.
type Coordinator struct {
	mu sync.Mutex

	users *UserRegistry
	rooms *RoomManager
	log   *MessageLog

	// structured logger with Coordinator context.
	logger zerolog.Logger
}

// NewCoordinator constructs the shared state and wires the room manager to
// the registry and log it validates against and notifies into.
func NewCoordinator() *Coordinator {
	users := NewUserRegistry()
	log := NewMessageLog()

	return &Coordinator{
		users:  users,
		rooms:  NewRoomManager(users, log),
		log:    log,
		logger: logx.Logger().With().Str("component", "Coordinator").Logger(),
	}
}

// Register adds a username to the online set. Fails if it is already taken.
func (c *Coordinator) Register(username string) *errs.CustomError {
	c.mu.Lock()
	defer c.mu.Unlock()

	if customErr := c.users.Register(username); customErr != nil {
		c.logger.Warn().Str("username", username).Msg("Registration rejected: username already taken.")
		return customErr
	}

	c.logger.Info().Str("username", username).Msg("User registered.")
	return nil
}

// Logout removes the username from the online set and from every room it
// belongs to, deleting rooms that empty out and notifying the remaining
// members of the others, all within one critical section.
func (c *Coordinator) Logout(username string) *errs.CustomError {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.users.Remove(username) {
		return errs.NewError(errs.ErrUserNotFound)
	}

	c.rooms.RemoveEverywhere(username)

	c.logger.Info().Str("username", username).Msg("User logged out.")
	return nil
}

// Send appends a message and returns its assigned id. A recipient carrying
// the room prefix must name an existing room the sender belongs to; any other
// recipient must be an online username.
func (c *Coordinator) Send(sender, recipient, body string) (uint64, *errs.CustomError) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.users.IsOnline(sender) {
		return 0, errs.NewError(errs.ErrUserNotOnline, sender)
	}

	if IsRoomID(recipient) {
		if !c.rooms.Exists(recipient) {
			return 0, errs.NewError(errs.ErrRoomNotFound)
		}
		if !c.rooms.IsMember(sender, recipient) {
			return 0, errs.NewError(errs.ErrNotRoomMember)
		}
	} else if !c.users.IsOnline(recipient) {
		return 0, errs.NewError(errs.ErrRecipientOffline)
	}

	id := c.log.Append(sender, recipient, body)

	c.logger.Debug().
		Uint64("message_id", id).
		Str("sender", sender).
		Str("recipient", recipient).
		Msg("Message appended.")

	return id, nil
}

// Poll returns, in id order, every message above the caller's watermark that
// is addressed to them directly or to a room they currently belong to.
func (c *Coordinator) Poll(username string, lastSeen uint64) ([]Message, *errs.CustomError) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.users.IsOnline(username) {
		return nil, errs.NewError(errs.ErrUserNotOnline, username)
	}

	return c.log.Since(username, lastSeen, c.rooms.MemberRooms(username)), nil
}

// CreateRoom allocates a room for the admin plus the listed participants and
// notifies every member. Fails without any state change if the admin or any
// participant is offline.
func (c *Coordinator) CreateRoom(admin string, participants []string) (string, *errs.CustomError) {
	c.mu.Lock()
	defer c.mu.Unlock()

	roomID, customErr := c.rooms.Create(admin, participants)
	if customErr != nil {
		return "", customErr
	}

	c.logger.Info().
		Str("room_id", roomID).
		Str("admin", admin).
		Int("participants", len(participants)).
		Msg("Room created.")

	return roomID, nil
}

// LeaveRoom removes the username from the room, deleting the room if it
// empties and notifying the remaining members otherwise.
func (c *Coordinator) LeaveRoom(username, roomID string) *errs.CustomError {
	c.mu.Lock()
	defer c.mu.Unlock()

	if customErr := c.rooms.Leave(username, roomID); customErr != nil {
		return customErr
	}

	c.logger.Info().Str("username", username).Str("room_id", roomID).Msg("User left room.")
	return nil
}

// ListOnline returns every currently registered username.
func (c *Coordinator) ListOnline() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.users.ListOnline()
}

// MessageCount returns the total number of stored messages.
func (c *Coordinator) MessageCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.log.Len()
}
