package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/app/resources"
	"github.com/shashiranjanraj/leadhub/app/services"
	"github.com/shashiranjanraj/leadhub/pkg/resource"
	"github.com/shashiranjanraj/leadhub/pkg/response"
)

type LeadController struct {
	service *services.LeadService
}

func NewLeadController(service *services.LeadService) *LeadController {
	return &LeadController{service: service}
}

// Catalog lists available leads for browsing customers.
func (c *LeadController) Catalog(w http.ResponseWriter, r *http.Request) {
	page, limit := pageParams(r)
	q := r.URL.Query()

	out, err := c.service.Catalog(r.Context(), q.Get("industry"), q.Get("search"), page, limit)
	if err != nil {
		fail(w, err)
		return
	}

	resource.CollectionOf(&resources.LeadResource{}, out.Leads).
		WithPagination(out.Pagination).
		Respond(w)
}

// Show returns one catalog lead.
func (c *LeadController) Show(w http.ResponseWriter, r *http.Request) {
	lead, err := c.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, err)
		return
	}
	if lead.Status != models.LeadAvailable {
		response.NotFound(w)
		return
	}
	resource.New(&resources.LeadResource{}, lead).Respond(w)
}

// Industries returns the fixed filter list.
func (c *LeadController) Industries(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, models.Industries)
}
