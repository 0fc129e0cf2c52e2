package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/property-booking/internal/httperr"
	"github.com/BruksfildServices01/property-booking/internal/httpresp"
	ucUser "github.com/BruksfildServices01/property-booking/internal/usecase/user"
)

type AuthHandler struct {
	register      *ucUser.Register
	login         *ucUser.Login
	requestReset  *ucUser.RequestPasswordReset
	resetPassword *ucUser.ResetPassword
}

func NewAuthHandler(
	register *ucUser.Register,
	login *ucUser.Login,
	requestReset *ucUser.RequestPasswordReset,
	resetPassword *ucUser.ResetPassword,
) *AuthHandler {
	return &AuthHandler{
		register:      register,
		login:         login,
		requestReset:  requestReset,
		resetPassword: resetPassword,
	}
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Contact  string `json:"contact"`

	Zipcode    string `json:"zipcode"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	out, err := h.register.Execute(c.Request.Context(), ucUser.RegisterInput{
		Name:       req.Name,
		Email:      req.Email,
		Password:   req.Password,
		Contact:    req.Contact,
		Zipcode:    req.Zipcode,
		Street:     req.Street,
		Number:     req.Number,
		Complement: req.Complement,
		District:   req.District,
		City:       req.City,
		State:      req.State,
		Country:    req.Country,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, out)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	out, err := h.login.Execute(c.Request.Context(), ucUser.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, out)
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	if err := h.requestReset.Execute(c.Request.Context(), req.Email); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	if err := h.resetPassword.Execute(c.Request.Context(), req.Token, req.Password); err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.NoContent(c)
}
