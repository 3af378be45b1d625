// Package controllers holds the HTTP handlers. Controllers stay thin:
// decode, call a service, shape the response.
package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/shashiranjanraj/leadhub/app/repositories"
	"github.com/shashiranjanraj/leadhub/config"
	"github.com/shashiranjanraj/leadhub/pkg/response"
)

// pageParams reads ?page= and ?limit= with sane bounds.
func pageParams(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = config.PageSize()
	}
	return page, limit
}

// fail maps service errors onto HTTP statuses.
func fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		response.NotFound(w)
	default:
		response.Error(w, http.StatusInternalServerError, "Something went wrong")
	}
}
