/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to standardize
HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the user message and HTTP status code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrInvalidParams:        {Code: ErrInvalidParams, Message: "Invalid request parameters.", Status: http.StatusBadRequest},
	ErrUnsupportedMediaType: {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusBadRequest},
	ErrInvalidJSONFormat:    {Code: ErrInvalidJSONFormat, Message: "Unsupported request format.", Status: http.StatusBadRequest},
	ErrExtraContentInBody:   {Code: ErrExtraContentInBody, Message: "Request contains unexpected data.", Status: http.StatusBadRequest},
	ErrRateLimitExceeded:    {Code: ErrRateLimitExceeded, Message: "Too many requests. Please try again later.", Status: http.StatusTooManyRequests},

	// 2xxx: Room and Message Business Logic Errors
	ErrRoomNotFound:     {Code: ErrRoomNotFound, Message: "Room does not exist.", Status: http.StatusBadRequest},
	ErrNotRoomMember:    {Code: ErrNotRoomMember, Message: "You are not a participant of this room.", Status: http.StatusBadRequest},
	ErrRecipientOffline: {Code: ErrRecipientOffline, Message: "Recipient not online.", Status: http.StatusBadRequest},

	// 3xxx: User and Session Errors
	ErrUsernameTaken:      {Code: ErrUsernameTaken, Message: "Username already taken.", Status: http.StatusBadRequest},
	ErrUserNotOnline:      {Code: ErrUserNotOnline, Message: "User %s is not online.", Status: http.StatusBadRequest},
	ErrUserNotFound:       {Code: ErrUserNotFound, Message: "Username not found.", Status: http.StatusBadRequest},
	ErrParticipantOffline: {Code: ErrParticipantOffline, Message: "User %s is not online.", Status: http.StatusBadRequest},

	// 5xxx: Internal System Errors
	ErrUnknown:                 {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
	ErrAnnouncementUnavailable: {Code: ErrAnnouncementUnavailable, Message: "Failed to read announcement.", Status: http.StatusInternalServerError},
}
