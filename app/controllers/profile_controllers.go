package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/leadhub/app/models"
	"github.com/shashiranjanraj/leadhub/app/services"
	"github.com/shashiranjanraj/leadhub/pkg/bind"
	"github.com/shashiranjanraj/leadhub/pkg/middleware"
	"github.com/shashiranjanraj/leadhub/pkg/response"
)

type ProfileController struct {
	service *services.UserService
}

func NewProfileController(service *services.UserService) *ProfileController {
	return &ProfileController{service: service}
}

func (c *ProfileController) Show(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	user, err := c.service.Profile(r.Context(), userID)
	if err != nil {
		fail(w, err)
		return
	}
	response.Success(w, user)
}

func (c *ProfileController) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	var body struct {
		DisplayName           string                  `json:"displayName" validate:"required,min=2,max=100"`
		CompanyName           string                  `json:"companyName" validate:"nullable,max=200"`
		JobTitle              string                  `json:"jobTitle" validate:"nullable,max=200"`
		Website               string                  `json:"website" validate:"nullable,url"`
		ProfessionalInterests []string                `json:"professionalInterests"`
		AlertPreferences      models.AlertPreferences `json:"alertPreferences"`
	}
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.service.UpdateProfile(r.Context(), userID, models.User{
		DisplayName:           body.DisplayName,
		CompanyName:           body.CompanyName,
		JobTitle:              body.JobTitle,
		Website:               body.Website,
		ProfessionalInterests: body.ProfessionalInterests,
		AlertPreferences:      body.AlertPreferences,
	})
	if err != nil {
		fail(w, err)
		return
	}
	response.Success(w, user)
}
