package services

import (
	"errors"
	"strings"

	"conduit-api/models"
	"conduit-api/repositories"

	"gorm.io/gorm"
)

type CommentService interface {
	AddComment(slug string, req models.CreateCommentFields, userID uint) (*models.CommentView, error)
	GetComments(slug string, viewerID uint) ([]models.CommentView, error)
	RemoveComment(slug string, commentID uint, userID uint) error
}

type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
	userRepo    repositories.UserRepository
	presenter   PresenterService
}

func NewCommentService(
	commentRepo repositories.CommentRepository,
	articleRepo repositories.ArticleRepository,
	userRepo repositories.UserRepository,
	presenter PresenterService,
) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
		presenter:   presenter,
	}
}

func (s *commentService) AddComment(slug string, req models.CreateCommentFields, userID uint) (*models.CommentView, error) {
	if userID == 0 {
		return nil, models.ErrorUnauthorized{}
	}
	if strings.TrimSpace(req.Body) == "" {
		return nil, models.ErrorFieldRequired{Field: "Comment body"}
	}

	article, err := s.findArticle(slug)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		Body:      req.Body,
		ArticleID: article.ID,
		AuthorID:  userID,
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	comment.Author = *author

	return s.presenter.Comment(userID, comment)
}

func (s *commentService) GetComments(slug string, viewerID uint) ([]models.CommentView, error) {
	article, err := s.findArticle(slug)
	if err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.GetByArticleID(article.ID)
	if err != nil {
		return nil, err
	}

	return s.presenter.Comments(viewerID, comments)
}

// RemoveComment checks existence before authorization: a stale slug or a
// missing comment surfaces NotFound rather than masking a permission failure.
func (s *commentService) RemoveComment(slug string, commentID uint, userID uint) error {
	if userID == 0 {
		return models.ErrorUnauthorized{}
	}

	comment, err := s.commentRepo.GetByID(commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Entity: "Comment"}
		}
		return err
	}

	if _, err := s.findArticle(slug); err != nil {
		return err
	}

	if comment.AuthorID != userID {
		return models.ErrorForbidden{Action: "comment"}
	}

	return s.commentRepo.Delete(comment.ID)
}

func (s *commentService) findArticle(slug string) (*models.Article, error) {
	article, err := s.articleRepo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Entity: "Article"}
		}
		return nil, err
	}
	return article, nil
}
