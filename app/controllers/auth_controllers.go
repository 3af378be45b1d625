package controllers

import (
	"errors"
	"net/http"

	"github.com/shashiranjanraj/leadhub/app/services"
	"github.com/shashiranjanraj/leadhub/pkg/bind"
	"github.com/shashiranjanraj/leadhub/pkg/middleware"
	"github.com/shashiranjanraj/leadhub/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController(service *services.AuthService) *AuthController {
	return &AuthController{service: service}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email       string `json:"email" validate:"required,email"`
		Password    string `json:"password" validate:"required,min=8"`
		DisplayName string `json:"displayName" validate:"required,min=2,max=100"`
	}
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	pair, err := c.service.Register(r.Context(), body.Email, body.Password, body.DisplayName)
	if errors.Is(err, services.ErrEmailTaken) {
		response.Error(w, http.StatusConflict, "Email already registered")
		return
	}
	if err != nil {
		fail(w, err)
		return
	}
	response.Created(w, pair)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	pair, err := c.service.Login(r.Context(), body.Email, body.Password)
	if errors.Is(err, services.ErrInvalidCredentials) {
		response.Error(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		fail(w, err)
		return
	}
	response.Success(w, pair)
}

func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RefreshToken string `json:"refreshToken" validate:"required"`
	}
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	pair, err := c.service.Refresh(r.Context(), body.RefreshToken)
	if err != nil {
		response.Unauthorized(w)
		return
	}
	response.Success(w, pair)
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromCtx(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	user, err := c.service.Me(r.Context(), userID)
	if err != nil {
		fail(w, err)
		return
	}
	response.Success(w, user)
}
