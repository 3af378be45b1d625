package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/leadhub/app/resources"
	"github.com/shashiranjanraj/leadhub/app/services"
	"github.com/shashiranjanraj/leadhub/pkg/middleware"
	"github.com/shashiranjanraj/leadhub/pkg/resource"
	"github.com/shashiranjanraj/leadhub/pkg/response"
)

type WishlistController struct {
	service *services.WishlistService
}

func NewWishlistController(service *services.WishlistService) *WishlistController {
	return &WishlistController{service: service}
}

func (c *WishlistController) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	leads, err := c.service.Leads(r.Context(), userID)
	if err != nil {
		fail(w, err)
		return
	}
	resource.CollectionOf(&resources.LeadResource{}, leads).Respond(w)
}

func (c *WishlistController) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	if err := c.service.Add(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		fail(w, err)
		return
	}
	response.Success(w, map[string]string{"message": "Saved"})
}

func (c *WishlistController) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	if err := c.service.Remove(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		fail(w, err)
		return
	}
	response.Success(w, map[string]string{"message": "Removed"})
}
