/*
Package handler provides the HTTP handlers and routing setup for the polling chat relay.

This file contains the handler for the announcement endpoint, the one operation
backed by an external resource (a local text file).
*/
package handler

import (
	"net/http"

	"pollchat/internal/pkg/errs"
	"pollchat/internal/pkg/logx"
	"pollchat/internal/pkg/resp"
)

// HandleAnnouncement returns the current announcement text. Read failures are
// logged server-side and surfaced to the client as a generic failure.
func HandleAnnouncement(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		text, err := deps.Announcement.Read()
		if err != nil {
			logx.Error(err, "Failed to read announcement source", "path", deps.Config.AnnouncementPath)
			resp.RespondError(w, r, errs.NewError(errs.ErrAnnouncementUnavailable))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"announcement": text,
		})
	}
}
