/*
Package errs provides custom error types and application-level error code constants.

These error codes are used to clearly identify specific business or system errors
both internally within the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1001

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1002

	// ErrInvalidJSONFormat indicates that the request body JSON format is incorrect (e.g., syntax error).
	ErrInvalidJSONFormat = 1003

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1004

	// ErrRateLimitExceeded indicates that the request rate has exceeded the set limit.
	ErrRateLimitExceeded = 1005
)

// 2xxx: Room and Message Business Logic Errors
const (
	// ErrRoomNotFound indicates that the targeted room identifier does not exist.
	ErrRoomNotFound = 2101

	// ErrNotRoomMember indicates that the acting user is not a participant of the targeted room.
	ErrNotRoomMember = 2102

	// ErrRecipientOffline indicates that the direct-message recipient is not currently online.
	ErrRecipientOffline = 2201
)

// 3xxx: User and Session Errors
const (
	// ErrUsernameTaken indicates that the requested username is already registered.
	ErrUsernameTaken = 3001

	// ErrUserNotOnline indicates that the acting user is not currently registered.
	ErrUserNotOnline = 3002

	// ErrUserNotFound indicates that the username targeted by a logout does not exist.
	ErrUserNotFound = 3003

	// ErrParticipantOffline indicates that a listed room participant is not currently online.
	ErrParticipantOffline = 3004
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000

	// ErrAnnouncementUnavailable indicates that the announcement source could not be read.
	ErrAnnouncementUnavailable = 5001
)
