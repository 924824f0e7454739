package repositories

import (
	"conduit-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FavoriteRepository interface {
	Create(favorite *models.Favorite) error
	Delete(userID, articleID uint) error
	GetByArticleIDs(articleIDs []uint) ([]models.Favorite, error)
	ArticleIDsByUser(userID uint) ([]uint, error)
}

type favoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

// Create inserts the edge; duplicates are absorbed by the composite primary
// key rather than raised as an error.
func (r *favoriteRepository) Create(favorite *models.Favorite) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(favorite).Error
}

func (r *favoriteRepository) Delete(userID, articleID uint) error {
	return r.db.Where("user_id = ? AND article_id = ?", userID, articleID).
		Delete(&models.Favorite{}).Error
}

// GetByArticleIDs fetches every favorite edge touching the given articles in
// one query. Callers derive both per-article cardinality and viewer
// membership from the same edge set, so counts can never drift.
func (r *favoriteRepository) GetByArticleIDs(articleIDs []uint) ([]models.Favorite, error) {
	if len(articleIDs) == 0 {
		return nil, nil
	}

	var favorites []models.Favorite
	err := r.db.Where("article_id IN ?", articleIDs).Find(&favorites).Error
	return favorites, err
}

func (r *favoriteRepository) ArticleIDsByUser(userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Favorite{}).
		Where("user_id = ?", userID).
		Pluck("article_id", &ids).Error
	return ids, err
}
