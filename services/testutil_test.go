package services

import (
	"testing"
	"time"

	"conduit-api/config"
	"conduit-api/models"
	"conduit-api/repositories"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Each suite gets its own in-memory database. A single connection keeps the
// whole schema on one :memory: handle.
func newTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))

	return db
}

type testEnv struct {
	db             *gorm.DB
	userRepo       repositories.UserRepository
	articleRepo    repositories.ArticleRepository
	tagRepo        repositories.TagRepository
	commentRepo    repositories.CommentRepository
	followRepo     repositories.FollowRepository
	favoriteRepo   repositories.FavoriteRepository
	presenter      PresenterService
	authService    AuthService
	profileService ProfileService
	articleService ArticleService
	commentService CommentService
}

func newTestEnv(t *testing.T) *testEnv {
	db := newTestDB(t)

	env := &testEnv{
		db:           db,
		userRepo:     repositories.NewUserRepository(db),
		articleRepo:  repositories.NewArticleRepository(db),
		tagRepo:      repositories.NewTagRepository(db),
		commentRepo:  repositories.NewCommentRepository(db),
		followRepo:   repositories.NewFollowRepository(db),
		favoriteRepo: repositories.NewFavoriteRepository(db),
	}

	env.presenter = NewPresenterService(env.followRepo, env.favoriteRepo)
	env.authService = NewAuthService(env.userRepo)
	env.profileService = NewProfileService(env.userRepo, env.followRepo, env.presenter)
	env.articleService = NewArticleService(env.articleRepo, env.tagRepo, env.userRepo, env.followRepo, env.favoriteRepo, env.presenter)
	env.commentService = NewCommentService(env.commentRepo, env.articleRepo, env.userRepo, env.presenter)

	return env
}

func (env *testEnv) seedUser(t *testing.T, username string) *models.User {
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed-password",
	}
	require.NoError(t, env.userRepo.Create(user))
	return user
}

func (env *testEnv) seedArticle(t *testing.T, authorID uint, title string, tags ...string) *models.ArticleView {
	view, err := env.articleService.CreateArticle(models.CreateArticleFields{
		Title:       title,
		Description: "test description",
		Body:        "test body",
		TagList:     tags,
	}, authorID)
	require.NoError(t, err)
	return view
}

// backdate pins an article's creation time so ordering assertions are
// deterministic even when rows are inserted within the same instant.
func (env *testEnv) backdate(t *testing.T, slug string, createdAt time.Time) {
	err := env.db.Model(&models.Article{}).
		Where("slug = ?", slug).
		Update("created_at", createdAt).Error
	require.NoError(t, err)
}
