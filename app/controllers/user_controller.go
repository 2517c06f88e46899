package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vastra/app/models"
	"github.com/shashiranjanraj/vastra/app/services"
	"github.com/shashiranjanraj/vastra/pkg/bind"
	"github.com/shashiranjanraj/vastra/pkg/response"
)

// UserController handles registration, login and profile management.
type UserController struct {
	auth *services.AuthService
}

func NewUserController(auth *services.AuthService) *UserController {
	return &UserController{auth: auth}
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required,max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Phone    string `json:"phone"    validate:"nullable,max=20"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateProfileRequest struct {
	Name      string           `json:"name"     validate:"nullable,max=100"`
	Email     string           `json:"email"    validate:"nullable,email"`
	Phone     string           `json:"phone"    validate:"nullable,max=20"`
	Password  string           `json:"password" validate:"nullable,min=6"`
	Addresses []models.Address `json:"address"`
}

// authPayload is the response body of register and login.
type authPayload struct {
	User  models.PublicUser `json:"user"`
	Token string            `json:"token"`
}

// Register creates a customer account.
// POST /api/users
func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.auth.Register(r.Context(), req.Name, req.Email, req.Password, req.Phone)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Created(w, authPayload{User: user.Public(), Token: token})
}

// Login authenticates a user and issues a token.
// POST /api/users/login
func (c *UserController) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, token, err := c.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, authPayload{User: user.Public(), Token: token})
}

// Profile returns the caller's account.
// GET /api/users/profile
func (c *UserController) Profile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w)
		return
	}
	response.Success(w, user)
}

// UpdateProfile applies a partial update to the caller's account.
// PUT /api/users/profile
func (c *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, ok := currentUser(r)
	if !ok {
		response.Unauthorized(w)
		return
	}

	var req updateProfileRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	updated, err := c.auth.UpdateProfile(r.Context(), user, services.ProfileUpdate{
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Password:  req.Password,
		Addresses: req.Addresses,
	})
	if err != nil {
		response.FromError(w, r, err)
		return
	}
	response.Success(w, updated)
}
