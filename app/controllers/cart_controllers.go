package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/leadhub/app/services"
	"github.com/shashiranjanraj/leadhub/pkg/logger"
	"github.com/shashiranjanraj/leadhub/pkg/response"
	"github.com/shashiranjanraj/leadhub/pkg/session"
)

type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

func saveSession(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	if err := sess.Save(w); err != nil {
		logger.WithCtx(r.Context()).Warn("cart: session save", "error", err)
	}
}

func (c *CartController) Show(w http.ResponseWriter, r *http.Request) {
	cart, err := c.service.Items(r.Context(), session.FromCtx(r))
	if err != nil {
		fail(w, err)
		return
	}
	response.Success(w, cart)
}

func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	if err := c.service.Add(r.Context(), sess, chi.URLParam(r, "id")); err != nil {
		fail(w, err)
		return
	}
	saveSession(w, r, sess)

	cart, err := c.service.Items(r.Context(), sess)
	if err != nil {
		fail(w, err)
		return
	}
	response.Success(w, cart)
}

func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	c.service.Remove(sess, chi.URLParam(r, "id"))
	saveSession(w, r, sess)

	cart, err := c.service.Items(r.Context(), sess)
	if err != nil {
		fail(w, err)
		return
	}
	response.Success(w, cart)
}

func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	sess := session.FromCtx(r)
	c.service.Clear(sess)
	saveSession(w, r, sess)
	response.Success(w, services.Cart{})
}
