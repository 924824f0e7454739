package handlers

import (
	"conduit-api/helper"
	"conduit-api/middleware"
	"conduit-api/services"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profileService services.ProfileService
	Helper         *helper.HTTPHelper
}

func NewProfileHandler(profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, Helper: &helper.HTTPHelper{}}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profile, err := h.profileService.GetProfile(middleware.ViewerID(c), c.Param("username"))
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "profile", profile)
}

func (h *ProfileHandler) Follow(c *gin.Context) {
	profile, err := h.profileService.Follow(middleware.ViewerID(c), c.Param("username"))
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "profile", profile)
}

func (h *ProfileHandler) Unfollow(c *gin.Context) {
	profile, err := h.profileService.Unfollow(middleware.ViewerID(c), c.Param("username"))
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "profile", profile)
}
