package handlers

import (
	"conduit-api/helper"
	"conduit-api/middleware"
	"conduit-api/models"
	"conduit-api/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: &helper.HTTPHelper{}}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	user, err := h.authService.Register(req.User)
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendCreated(c, "user", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	user, err := h.authService.Login(req.User)
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "user", user)
}

func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user, err := h.authService.GetUserByID(middleware.ViewerID(c))
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "user", user)
}

func (h *AuthHandler) UpdateUser(c *gin.Context) {
	var req models.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	user, err := h.authService.UpdateUser(middleware.ViewerID(c), req.User)
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "user", user)
}
