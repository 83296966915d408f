/*
Package handler provides the HTTP handlers and routing setup for the polling chat relay.

This file contains the handler functions for the chat operations: registration,
sending, polling, room creation and departure, the online listing, and logout.
Each handler binds and validates its input, delegates to the Coordinator, and
translates the outcome into the standard JSON envelope.
*/
package handler

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"pollchat/internal/pkg/errs"
	"pollchat/internal/pkg/req"
	"pollchat/internal/pkg/resp"
)

// validate checks bound input structs before any Coordinator call.
var validate = validator.New()

type RegisterInput struct {
	Username string `json:"username" validate:"required"`
}

// HandleRegister processes a registration request, claiming the username for
// the duration of the session.
func HandleRegister(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input RegisterInput

		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if err := validate.Struct(input); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		if customErr := deps.Coordinator.Register(input.Username); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"username": input.Username,
		})
	}
}

type SendInput struct {
	Sender    string `json:"sender" validate:"required"`
	Recipient string `json:"recipient" validate:"required"`
	Body      string `json:"body" validate:"required"`
}

// HandleSend processes a message send. The recipient is a username for direct
// messages or a room identifier (room_ prefix) for room messages.
func HandleSend(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input SendInput

		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if err := validate.Struct(input); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		id, customErr := deps.Coordinator.Send(input.Sender, input.Recipient, input.Body)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"id": id,
		})
	}
}

// HandleMessages processes a poll. The caller supplies their username and the
// highest message id they have already consumed (last_id, default 0); the
// response carries every newer message addressed to them or to a room they
// currently belong to.
func HandleMessages(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.URL.Query().Get("username")
		if username == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		lastSeen := uint64(0)
		if lastIDStr := r.URL.Query().Get("last_id"); lastIDStr != "" {
			parsed, err := strconv.ParseUint(lastIDStr, 10, 64)
			if err != nil {
				resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
				return
			}
			lastSeen = parsed
		}

		messages, customErr := deps.Coordinator.Poll(username, lastSeen)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"messages": messages,
		})
	}
}

type CreateRoomInput struct {
	Admin        string   `json:"admin" validate:"required"`
	Participants []string `json:"participants" validate:"required,min=1,dive,required"`
}

// HandleCreateRoom processes a room creation request. The admin is always
// folded into the membership alongside the listed participants.
func HandleCreateRoom(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input CreateRoomInput

		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if err := validate.Struct(input); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		roomID, customErr := deps.Coordinator.CreateRoom(input.Admin, input.Participants)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"roomId": roomID,
		})
	}
}

type LeaveRoomInput struct {
	Username string `json:"username" validate:"required"`
	RoomID   string `json:"roomId" validate:"required"`
}

// HandleLeaveRoom processes a request to leave a room.
func HandleLeaveRoom(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input LeaveRoomInput

		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if err := validate.Struct(input); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		if customErr := deps.Coordinator.LeaveRoom(input.Username, input.RoomID); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, nil)
	}
}

type LogoutInput struct {
	Username string `json:"username" validate:"required"`
}

// HandleLogout processes a logout, releasing the username and cascading the
// removal through every room the user belonged to.
func HandleLogout(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input LogoutInput

		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if err := validate.Struct(input); err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidParams))
			return
		}

		if customErr := deps.Coordinator.Logout(input.Username); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		resp.RespondSuccess(w, r, nil)
	}
}

// HandleOnline returns the list of currently registered usernames.
func HandleOnline(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp.RespondSuccess(w, r, map[string]any{
			"onlineUsers": deps.Coordinator.ListOnline(),
		})
	}
}
