package services

import (
	"conduit-api/models"
	"conduit-api/repositories"
)

// PresenterService re-projects stored rows into viewer-relative responses.
// Viewer-relative fields are computed from bulk edge fetches over a whole
// result page followed by in-memory membership tests: one query for follow
// edges, one for favorite edges, regardless of page size. favoritesCount is
// derived from the same favorite edge set, never from a stored counter.
type PresenterService interface {
	Article(viewerID uint, article *models.Article) (*models.ArticleView, error)
	Articles(viewerID uint, articles []models.Article) ([]models.ArticleView, error)
	Comment(viewerID uint, comment *models.Comment) (*models.CommentView, error)
	Comments(viewerID uint, comments []models.Comment) ([]models.CommentView, error)
	Profile(viewerID uint, user *models.User) (*models.Profile, error)
}

type presenterService struct {
	followRepo   repositories.FollowRepository
	favoriteRepo repositories.FavoriteRepository
}

func NewPresenterService(followRepo repositories.FollowRepository, favoriteRepo repositories.FavoriteRepository) PresenterService {
	return &presenterService{
		followRepo:   followRepo,
		favoriteRepo: favoriteRepo,
	}
}

func (s *presenterService) Article(viewerID uint, article *models.Article) (*models.ArticleView, error) {
	views, err := s.Articles(viewerID, []models.Article{*article})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *presenterService) Articles(viewerID uint, articles []models.Article) ([]models.ArticleView, error) {
	views := make([]models.ArticleView, 0, len(articles))
	if len(articles) == 0 {
		return views, nil
	}

	articleIDs := make([]uint, 0, len(articles))
	authorIDs := make([]uint, 0, len(articles))
	for _, article := range articles {
		articleIDs = append(articleIDs, article.ID)
		authorIDs = append(authorIDs, article.AuthorID)
	}

	edges, err := s.favoriteRepo.GetByArticleIDs(articleIDs)
	if err != nil {
		return nil, err
	}

	favoritesCount := make(map[uint]int64)
	favorited := make(map[uint]bool)
	for _, edge := range edges {
		favoritesCount[edge.ArticleID]++
		if viewerID != 0 && edge.UserID == viewerID {
			favorited[edge.ArticleID] = true
		}
	}

	following, err := s.followedSet(viewerID, authorIDs)
	if err != nil {
		return nil, err
	}

	for _, article := range articles {
		views = append(views, models.ArticleView{
			Slug:           article.Slug,
			Title:          article.Title,
			Description:    article.Description,
			Body:           article.Body,
			TagList:        tagNames(article.Tags),
			CreatedAt:      article.CreatedAt,
			UpdatedAt:      article.UpdatedAt,
			Favorited:      favorited[article.ID],
			FavoritesCount: favoritesCount[article.ID],
			Author:         profileOf(article.Author, following[article.AuthorID]),
		})
	}

	return views, nil
}

func (s *presenterService) Comment(viewerID uint, comment *models.Comment) (*models.CommentView, error) {
	views, err := s.Comments(viewerID, []models.Comment{*comment})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Comments augments each comment's author with the follow relation only; no
// favorite semantics apply to comments.
func (s *presenterService) Comments(viewerID uint, comments []models.Comment) ([]models.CommentView, error) {
	views := make([]models.CommentView, 0, len(comments))
	if len(comments) == 0 {
		return views, nil
	}

	authorIDs := make([]uint, 0, len(comments))
	for _, comment := range comments {
		authorIDs = append(authorIDs, comment.AuthorID)
	}

	following, err := s.followedSet(viewerID, authorIDs)
	if err != nil {
		return nil, err
	}

	for _, comment := range comments {
		views = append(views, models.CommentView{
			ID:        comment.ID,
			Body:      comment.Body,
			CreatedAt: comment.CreatedAt,
			UpdatedAt: comment.UpdatedAt,
			Author:    profileOf(comment.Author, following[comment.AuthorID]),
		})
	}

	return views, nil
}

func (s *presenterService) Profile(viewerID uint, user *models.User) (*models.Profile, error) {
	following := false
	if viewerID != 0 && viewerID != user.ID {
		exists, err := s.followRepo.Exists(viewerID, user.ID)
		if err != nil {
			return nil, err
		}
		following = exists
	}

	profile := profileOf(*user, following)
	return &profile, nil
}

func (s *presenterService) followedSet(viewerID uint, authorIDs []uint) (map[uint]bool, error) {
	following := make(map[uint]bool)
	if viewerID == 0 {
		return following, nil
	}

	ids, err := s.followRepo.FollowedSet(viewerID, authorIDs)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		following[id] = true
	}

	return following, nil
}

func tagNames(tags []models.Tag) []string {
	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	return names
}

func profileOf(user models.User, following bool) models.Profile {
	return models.Profile{
		Username:  user.Username,
		Bio:       user.Bio,
		Image:     user.Image,
		Following: following,
	}
}
