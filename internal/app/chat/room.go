/*
Package chat contains the core shared state for the polling chat relay.

This file defines the RoomManager, which owns room membership and the room id
counter. Room identifiers carry a reserved prefix so they are distinguishable
from usernames on the wire; that prefix is what routes a Send to a room rather
than to a user.
*/
package chat

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"pollchat/internal/pkg/errs"
)

// RoomIDPrefix is the reserved prefix that distinguishes room identifiers from
// usernames. It is part of the wire protocol and must not change.
const RoomIDPrefix = "room_"

// IsRoomID reports whether recipient names a room rather than a user.
func IsRoomID(recipient string) bool {
	return strings.HasPrefix(recipient, RoomIDPrefix)
}

// roomNumber extracts the numeric part of a room identifier for use in
// human-readable notification text.
func roomNumber(roomID string) string {
	return strings.TrimPrefix(roomID, RoomIDPrefix)
}

// RoomManager maps room identifiers to their member sets. It validates
// membership changes against the user registry and emits system notifications
// into the message log. Rooms never exist empty: a membership change that
// empties a room deletes it in the same step. The manager performs no locking
// of its own; the Coordinator serializes all access.
type RoomManager struct {
	rooms  map[string]map[string]struct{}
	nextID uint64

	users *UserRegistry
	log   *MessageLog
}

// NewRoomManager returns an empty manager bound to the given registry and log.
// The first allocated room is room_1.
func NewRoomManager(users *UserRegistry, log *MessageLog) *RoomManager {
	return &RoomManager{
		rooms:  make(map[string]map[string]struct{}),
		nextID: 1,
		users:  users,
		log:    log,
	}
}

// Create validates that the admin and every participant are online, then
// allocates a room whose membership is the participant set plus the admin and
// appends one system notification per member. All validation happens before
// any mutation: a single offline participant aborts the whole operation with
// no room created and no messages appended.
func (m *RoomManager) Create(admin string, participants []string) (string, *errs.CustomError) {
	if !m.users.IsOnline(admin) {
		return "", errs.NewError(errs.ErrUserNotOnline, admin)
	}

	for _, participant := range participants {
		if !m.users.IsOnline(participant) {
			return "", errs.NewError(errs.ErrParticipantOffline, participant)
		}
	}

	members := make(map[string]struct{}, len(participants)+1)
	for _, participant := range lo.Uniq(participants) {
		members[participant] = struct{}{}
	}
	members[admin] = struct{}{}

	roomID := fmt.Sprintf("%s%d", RoomIDPrefix, m.nextID)
	m.nextID++
	m.rooms[roomID] = members

	notice := fmt.Sprintf("Room %s has been created and you have been added as a participant.", roomNumber(roomID))
	for member := range members {
		m.log.Append(SystemSender, member, notice)
	}

	return roomID, nil
}

// Leave removes the username from the room's membership. An emptied room is
// deleted without notification; otherwise every remaining member receives a
// departure notice.
func (m *RoomManager) Leave(username, roomID string) *errs.CustomError {
	members, ok := m.rooms[roomID]
	if !ok {
		return errs.NewError(errs.ErrRoomNotFound)
	}

	if _, member := members[username]; !member {
		return errs.NewError(errs.ErrNotRoomMember)
	}

	m.removeMember(username, roomID, members)
	return nil
}

// RemoveEverywhere strips the username from every room it belongs to,
// applying the same empty-room-deletes / non-empty-notifies rule per room.
// Called on logout.
func (m *RoomManager) RemoveEverywhere(username string) {
	for roomID, members := range m.rooms {
		if _, member := members[username]; member {
			m.removeMember(username, roomID, members)
		}
	}
}

// removeMember deletes the member and applies the post-removal rule: an empty
// room is deleted immediately, a non-empty room notifies every remaining member.
func (m *RoomManager) removeMember(username, roomID string, members map[string]struct{}) {
	delete(members, username)

	if len(members) == 0 {
		delete(m.rooms, roomID)
		return
	}

	notice := fmt.Sprintf("%s has left room %s.", username, roomNumber(roomID))
	for member := range members {
		m.log.Append(SystemSender, member, notice)
	}
}

// Exists reports whether the room identifier names a live room.
func (m *RoomManager) Exists(roomID string) bool {
	_, ok := m.rooms[roomID]
	return ok
}

// IsMember reports whether the username belongs to the room.
func (m *RoomManager) IsMember(username, roomID string) bool {
	members, ok := m.rooms[roomID]
	if !ok {
		return false
	}

	_, member := members[username]
	return member
}

// MemberRooms returns the set of room identifiers the username currently
// belongs to, as consumed by MessageLog.Since.
func (m *RoomManager) MemberRooms(username string) map[string]struct{} {
	rooms := make(map[string]struct{})

	for roomID, members := range m.rooms {
		if _, member := members[username]; member {
			rooms[roomID] = struct{}{}
		}
	}

	return rooms
}
