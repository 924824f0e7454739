package handlers

import (
	"strconv"

	"conduit-api/helper"
	"conduit-api/middleware"
	"conduit-api/models"
	"conduit-api/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: &helper.HTTPHelper{}}
}

func (h *CommentHandler) AddComment(c *gin.Context) {
	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	comment, err := h.commentService.AddComment(c.Param("slug"), req.Comment, middleware.ViewerID(c))
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendCreated(c, "comment", comment)
}

func (h *CommentHandler) GetComments(c *gin.Context) {
	comments, err := h.commentService.GetComments(c.Param("slug"), middleware.ViewerID(c))
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "comments", comments)
}

func (h *CommentHandler) RemoveComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("commentId"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid comment ID")
		return
	}

	if err := h.commentService.RemoveComment(c.Param("slug"), uint(commentID), middleware.ViewerID(c)); err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendMessage(c, "Comment deleted successfully")
}
