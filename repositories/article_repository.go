package repositories

import (
	"conduit-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArticleRepository interface {
	Create(article *models.Article) error
	GetBySlug(slug string) (*models.Article, error)
	SlugTaken(slug string, excludeID uint) (bool, error)
	GetList(params models.ArticleListParams, favoritedIDs []uint) ([]models.Article, int64, error)
	GetFeed(authorIDs []uint, limit, offset int) ([]models.Article, int64, error)
	Update(article *models.Article) error
	DeleteCascade(article *models.Article) error
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(article *models.Article) error {
	return r.db.Create(article).Error
}

func (r *articleRepository) GetBySlug(slug string) (*models.Article, error) {
	var article models.Article
	err := r.db.Preload("Author").
		Preload("Tags").
		Where("slug = ?", slug).
		First(&article).Error
	return &article, err
}

func (r *articleRepository) SlugTaken(slug string, excludeID uint) (bool, error) {
	var count int64
	query := r.db.Model(&models.Article{}).Where("slug = ?", slug)
	if excludeID > 0 {
		query = query.Where("id <> ?", excludeID)
	}
	err := query.Count(&count).Error
	return count > 0, err
}

// GetList applies the independent filters, counts before paginating, and
// orders by creation time descending. favoritedIDs is nil when the favorited
// filter is absent; a non-nil empty slice means the favoriter has no edges
// and must yield an empty page.
func (r *articleRepository) GetList(params models.ArticleListParams, favoritedIDs []uint) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	if favoritedIDs != nil && len(favoritedIDs) == 0 {
		return []models.Article{}, 0, nil
	}

	query := r.db.Model(&models.Article{}).Preload("Author").Preload("Tags")

	if params.Author != "" {
		query = query.Joins("JOIN users ON users.id = articles.author_id").
			Where("users.username = ?", params.Author)
	}

	if params.Tag != "" {
		query = query.Joins("JOIN article_tags ON article_tags.article_id = articles.id").
			Joins("JOIN tags ON tags.id = article_tags.tag_id").
			Where("tags.name = ?", params.Tag)
	}

	if favoritedIDs != nil {
		query = query.Where("articles.id IN ?", favoritedIDs)
	}

	query.Count(&total)

	offset := params.Offset * params.Limit
	err := query.Order("articles.created_at desc, articles.id desc").
		Offset(offset).
		Limit(params.Limit).
		Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) GetFeed(authorIDs []uint, limit, offset int) ([]models.Article, int64, error) {
	var articles []models.Article
	var total int64

	if len(authorIDs) == 0 {
		return []models.Article{}, 0, nil
	}

	query := r.db.Model(&models.Article{}).Preload("Author").Preload("Tags").
		Where("author_id IN ?", authorIDs)

	query.Count(&total)

	err := query.Order("created_at desc, id desc").
		Offset(offset * limit).
		Limit(limit).
		Find(&articles).Error

	return articles, total, err
}

func (r *articleRepository) Update(article *models.Article) error {
	return r.db.Omit(clause.Associations).Save(article).Error
}

// DeleteCascade removes the article together with its comments, favorite
// edges, and tag links in one transaction. No partial state is observable.
func (r *articleRepository) DeleteCascade(article *models.Article) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("article_id = ?", article.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("article_id = ?", article.ID).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Model(article).Association("Tags").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Article{}, article.ID).Error
	})
}
