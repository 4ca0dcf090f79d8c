package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
)

// Me returns the authenticated user behind the token. The subject claim is
// the user ID; a valid token pointing at a deleted user is treated as stale,
// not as a server fault.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	sub := r.Context().Value(SubCtxKey).(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "invalid token")
		return
	}

	user, err := h.repository.GetUserByID(userID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "user not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "user fetched", user)
}
