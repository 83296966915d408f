package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMessageLog_Append_AssignsMonotonicIDs(t *testing.T) {
	req := require.New(t)
	log := NewMessageLog()

	// When messages are appended
	first := log.Append("alice", "bob", "one")
	second := log.Append("bob", "alice", "two")
	third := log.Append("alice", "bob", "three")

	// Then ids start at 1 and strictly increase with no gaps
	req.Equal(uint64(1), first)
	req.Equal(uint64(2), second)
	req.Equal(uint64(3), third)
	req.Equal(3, log.Len())
}

func TestMessageLog_Since_FiltersByWatermark(t *testing.T) {
	req := require.New(t)
	log := NewMessageLog()

	log.Append("alice", "bob", "one")
	log.Append("alice", "bob", "two")
	log.Append("alice", "bob", "three")

	msgs := log.Since("bob", 1, nil)

	req.Len(msgs, 2)
	req.Equal(uint64(2), msgs[0].ID)
	req.Equal("two", msgs[0].Body)
	req.Equal(uint64(3), msgs[1].ID)

	// A watermark at the head returns nothing
	req.Empty(log.Since("bob", 3, nil))
}

func TestMessageLog_Since_FiltersByRecipientScope(t *testing.T) {
	req := require.New(t)
	log := NewMessageLog()

	log.Append("alice", "bob", "direct to bob")
	log.Append("alice", "room_1", "to the room")
	log.Append("alice", "carol", "direct to carol")

	// Bob is a member of room_1: direct message plus the room message
	msgs := log.Since("bob", 0, map[string]struct{}{"room_1": {}})
	req.Len(msgs, 2)
	req.Equal("direct to bob", msgs[0].Body)
	req.Equal("to the room", msgs[1].Body)

	// Without room membership only the direct message remains
	msgs = log.Since("bob", 0, nil)
	req.Len(msgs, 1)
	req.Equal("direct to bob", msgs[0].Body)
}

func TestMessageLog_Since_MembershipEvaluatedAtReadTime(t *testing.T) {
	req := require.New(t)
	log := NewMessageLog()

	log.Append("alice", "room_1", "before dave existed")

	// Dave was not a member when the message was appended, but the filter
	// only asks whether the room is his now.
	msgs := log.Since("dave", 0, map[string]struct{}{"room_1": {}})
	req.Len(msgs, 1)
	req.Equal("before dave existed", msgs[0].Body)
}
