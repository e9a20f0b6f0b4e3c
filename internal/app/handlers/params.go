package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// pageParam reads the 1-based page query parameter. A missing value means the first page.
func pageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, badRequest(err, "Invalid page")
	}
	return page, nil
}

func userIDParam(r *http.Request) (uuid.UUID, error) {
	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		return uuid.Nil, badRequest(err, "Invalid user id")
	}
	return userID, nil
}

func moneyIDParam(r *http.Request) (int64, error) {
	moneyID, err := strconv.ParseInt(chi.URLParam(r, "moneyID"), 10, 64)
	if err != nil {
		return 0, badRequest(err, "Invalid money request id")
	}
	return moneyID, nil
}
