package handlers

import (
	"net/http"

	"conduit-api/helper"
	"conduit-api/middleware"
	"conduit-api/models"
	"conduit-api/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, Helper: &helper.HTTPHelper{}}
}

func (h *ArticleHandler) CreateArticle(c *gin.Context) {
	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	article, err := h.articleService.CreateArticle(req.Article, middleware.ViewerID(c))
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendCreated(c, "article", article)
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var params models.ArticleListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	articles, total, err := h.articleService.GetArticles(params, middleware.ViewerID(c))
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles":      articles,
		"articlesCount": total,
	})
}

func (h *ArticleHandler) GetFeed(c *gin.Context) {
	var params models.FeedParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	articles, total, err := h.articleService.GetFeed(params, middleware.ViewerID(c))
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles":      articles,
		"articlesCount": total,
	})
}

func (h *ArticleHandler) GetArticle(c *gin.Context) {
	article, err := h.articleService.GetArticle(c.Param("slug"), middleware.ViewerID(c))
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "article", article)
}

func (h *ArticleHandler) UpdateArticle(c *gin.Context) {
	var req models.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	article, err := h.articleService.UpdateArticle(c.Param("slug"), req.Article, middleware.ViewerID(c))
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "article", article)
}

func (h *ArticleHandler) DeleteArticle(c *gin.Context) {
	if err := h.articleService.DeleteArticle(c.Param("slug"), middleware.ViewerID(c)); err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendMessage(c, "Article deleted successfully")
}

func (h *ArticleHandler) FavoriteArticle(c *gin.Context) {
	article, err := h.articleService.Favorite(c.Param("slug"), middleware.ViewerID(c))
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "article", article)
}

func (h *ArticleHandler) UnfavoriteArticle(c *gin.Context) {
	article, err := h.articleService.Unfavorite(c.Param("slug"), middleware.ViewerID(c))
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "article", article)
}

func (h *ArticleHandler) GetTags(c *gin.Context) {
	tags, err := h.articleService.GetTags()
	if err != nil {
		h.Helper.SendFailure(c, err)
		return
	}

	h.Helper.SendSuccess(c, "tags", tags)
}
