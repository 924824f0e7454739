package services

import (
	"errors"
	"strings"

	"conduit-api/helper"
	"conduit-api/models"
	"conduit-api/repositories"

	"gorm.io/gorm"
)

type ArticleService interface {
	CreateArticle(req models.CreateArticleFields, userID uint) (*models.ArticleView, error)
	GetArticle(slug string, viewerID uint) (*models.ArticleView, error)
	GetArticles(params models.ArticleListParams, viewerID uint) ([]models.ArticleView, int64, error)
	GetFeed(params models.FeedParams, viewerID uint) ([]models.ArticleView, int64, error)
	UpdateArticle(slug string, req models.UpdateArticleFields, userID uint) (*models.ArticleView, error)
	DeleteArticle(slug string, userID uint) error
	Favorite(slug string, userID uint) (*models.ArticleView, error)
	Unfavorite(slug string, userID uint) (*models.ArticleView, error)
	GetTags() ([]string, error)
}

type articleService struct {
	articleRepo  repositories.ArticleRepository
	tagRepo      repositories.TagRepository
	userRepo     repositories.UserRepository
	followRepo   repositories.FollowRepository
	favoriteRepo repositories.FavoriteRepository
	presenter    PresenterService
}

func NewArticleService(
	articleRepo repositories.ArticleRepository,
	tagRepo repositories.TagRepository,
	userRepo repositories.UserRepository,
	followRepo repositories.FollowRepository,
	favoriteRepo repositories.FavoriteRepository,
	presenter PresenterService,
) ArticleService {
	return &articleService{
		articleRepo:  articleRepo,
		tagRepo:      tagRepo,
		userRepo:     userRepo,
		followRepo:   followRepo,
		favoriteRepo: favoriteRepo,
		presenter:    presenter,
	}
}

func (s *articleService) CreateArticle(req models.CreateArticleFields, userID uint) (*models.ArticleView, error) {
	if userID == 0 {
		return nil, models.ErrorUnauthorized{}
	}
	if req.Title == "" {
		return nil, models.ErrorFieldRequired{Field: "A title"}
	}
	if req.Description == "" {
		return nil, models.ErrorFieldRequired{Field: "A description"}
	}
	if req.Body == "" {
		return nil, models.ErrorFieldRequired{Field: "An article body"}
	}

	slug := helper.Slugify(req.Title)
	taken, err := s.articleRepo.SlugTaken(slug, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.ErrorAlreadyTaken{Field: "Title"}
	}

	tags, err := s.processTags(req.TagList)
	if err != nil {
		return nil, err
	}

	article := &models.Article{
		Slug:        slug,
		Title:       req.Title,
		Description: req.Description,
		Body:        req.Body,
		AuthorID:    userID,
		Tags:        tags,
	}

	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}

	created, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}

	return s.presenter.Article(userID, created)
}

func (s *articleService) GetArticle(slug string, viewerID uint) (*models.ArticleView, error) {
	article, err := s.findArticle(slug)
	if err != nil {
		return nil, err
	}

	return s.presenter.Article(viewerID, article)
}

func (s *articleService) GetArticles(params models.ArticleListParams, viewerID uint) ([]models.ArticleView, int64, error) {
	if params.Limit <= 0 {
		params.Limit = 3
	}

	// The favorited filter sources its candidate set from the favorite graph
	// of the named user, not from the article table. An unknown username
	// yields an empty result, not an error.
	var favoritedIDs []uint
	if params.Favorited != "" {
		favoritedIDs = []uint{}
		user, err := s.userRepo.GetByUsername(params.Favorited)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, err
		}
		if err == nil {
			favoritedIDs, err = s.favoriteRepo.ArticleIDsByUser(user.ID)
			if err != nil {
				return nil, 0, err
			}
			if favoritedIDs == nil {
				favoritedIDs = []uint{}
			}
		}
	}

	articles, total, err := s.articleRepo.GetList(params, favoritedIDs)
	if err != nil {
		return nil, 0, err
	}

	views, err := s.presenter.Articles(viewerID, articles)
	if err != nil {
		return nil, 0, err
	}

	return views, total, nil
}

// GetFeed lists articles authored by the viewer's followees, newest first.
// An empty followee set is an empty feed, not an error.
func (s *articleService) GetFeed(params models.FeedParams, viewerID uint) ([]models.ArticleView, int64, error) {
	if viewerID == 0 {
		return nil, 0, models.ErrorUnauthorized{}
	}
	if params.Limit <= 0 {
		params.Limit = 3
	}

	authorIDs, err := s.followRepo.FolloweeIDs(viewerID)
	if err != nil {
		return nil, 0, err
	}

	articles, total, err := s.articleRepo.GetFeed(authorIDs, params.Limit, params.Offset)
	if err != nil {
		return nil, 0, err
	}

	views, err := s.presenter.Articles(viewerID, articles)
	if err != nil {
		return nil, 0, err
	}

	return views, total, nil
}

func (s *articleService) UpdateArticle(slug string, req models.UpdateArticleFields, userID uint) (*models.ArticleView, error) {
	article, err := s.findArticle(slug)
	if err != nil {
		return nil, err
	}

	if article.AuthorID != userID {
		return nil, models.ErrorForbidden{Action: "article"}
	}

	if req.Title != nil && *req.Title != "" {
		newSlug := helper.Slugify(*req.Title)
		if newSlug != article.Slug {
			taken, err := s.articleRepo.SlugTaken(newSlug, article.ID)
			if err != nil {
				return nil, err
			}
			if taken {
				return nil, models.ErrorAlreadyTaken{Field: "Title"}
			}
		}
		article.Title = *req.Title
		article.Slug = newSlug
	}
	if req.Description != nil && *req.Description != "" {
		article.Description = *req.Description
	}
	if req.Body != nil && *req.Body != "" {
		article.Body = *req.Body
	}

	if err := s.articleRepo.Update(article); err != nil {
		return nil, err
	}

	return s.presenter.Article(userID, article)
}

func (s *articleService) DeleteArticle(slug string, userID uint) error {
	article, err := s.findArticle(slug)
	if err != nil {
		return err
	}

	if article.AuthorID != userID {
		return models.ErrorForbidden{Action: "article"}
	}

	return s.articleRepo.DeleteCascade(article)
}

func (s *articleService) Favorite(slug string, userID uint) (*models.ArticleView, error) {
	return s.setFavorite(slug, userID, true)
}

func (s *articleService) Unfavorite(slug string, userID uint) (*models.ArticleView, error) {
	return s.setFavorite(slug, userID, false)
}

func (s *articleService) setFavorite(slug string, userID uint, favorite bool) (*models.ArticleView, error) {
	if userID == 0 {
		return nil, models.ErrorUnauthorized{}
	}

	article, err := s.findArticle(slug)
	if err != nil {
		return nil, err
	}

	if favorite {
		err = s.favoriteRepo.Create(&models.Favorite{UserID: userID, ArticleID: article.ID})
	} else {
		err = s.favoriteRepo.Delete(userID, article.ID)
	}
	if err != nil {
		return nil, err
	}

	return s.presenter.Article(userID, article)
}

func (s *articleService) GetTags() ([]string, error) {
	tags, err := s.tagRepo.GetAll()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}

	return names, nil
}

func (s *articleService) findArticle(slug string) (*models.Article, error) {
	article, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Entity: "Article"}
		}
		return nil, err
	}
	return article, nil
}

// processTags trims each raw tag, silently drops any whose trimmed length is
// 2 or less, and finds-or-creates the rest. Tag order in the response is
// insertion order.
func (s *articleService) processTags(rawTags []string) ([]models.Tag, error) {
	var tags []models.Tag
	seen := make(map[string]bool)

	for _, raw := range rawTags {
		name := strings.TrimSpace(raw)
		if len(name) <= 2 || seen[name] {
			continue
		}
		seen[name] = true

		tag, err := s.tagRepo.FindOrCreate(name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, *tag)
	}

	return tags, nil
}
