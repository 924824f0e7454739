package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"conduit-api/config"
	"conduit-api/handlers"
	"conduit-api/middleware"
	"conduit-api/models"
	"conduit-api/repositories"
	"conduit-api/services"
)

type APITestSuite struct {
	suite.Suite
	db     *gorm.DB
	router *gin.Engine
}

func (suite *APITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	suite.Require().NoError(err)

	sqlDB, err := db.DB()
	suite.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	suite.Require().NoError(config.Migrate(db))

	suite.db = db
	suite.setupRouter()
}

func (suite *APITestSuite) setupRouter() {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(suite.db)
	articleRepo := repositories.NewArticleRepository(suite.db)
	tagRepo := repositories.NewTagRepository(suite.db)
	commentRepo := repositories.NewCommentRepository(suite.db)
	followRepo := repositories.NewFollowRepository(suite.db)
	favoriteRepo := repositories.NewFavoriteRepository(suite.db)

	// Initialize services
	presenter := services.NewPresenterService(followRepo, favoriteRepo)
	authService := services.NewAuthService(userRepo)
	profileService := services.NewProfileService(userRepo, followRepo, presenter)
	articleService := services.NewArticleService(articleRepo, tagRepo, userRepo, followRepo, favoriteRepo, presenter)
	commentService := services.NewCommentService(commentRepo, articleRepo, userRepo, presenter)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	profileHandler := handlers.NewProfileHandler(profileService)
	articleHandler := handlers.NewArticleHandler(articleService)
	commentHandler := handlers.NewCommentHandler(commentService)

	router := gin.New()

	router.POST("/users", authHandler.Register)
	router.POST("/users/login", authHandler.Login)

	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("", authHandler.CurrentUser)
		user.PUT("", authHandler.UpdateUser)
	}

	profiles := router.Group("/profiles")
	{
		profiles.GET("/:username", middleware.OptionalAuthMiddleware(), profileHandler.GetProfile)
		profiles.POST("/:username/follow", middleware.AuthMiddleware(), profileHandler.Follow)
		profiles.DELETE("/:username/follow", middleware.AuthMiddleware(), profileHandler.Unfollow)
	}

	articles := router.Group("/articles")
	{
		articles.GET("", middleware.OptionalAuthMiddleware(), articleHandler.GetArticles)
		articles.GET("/feed", middleware.AuthMiddleware(), articleHandler.GetFeed)
		articles.POST("", middleware.AuthMiddleware(), articleHandler.CreateArticle)
		articles.GET("/:slug", middleware.OptionalAuthMiddleware(), articleHandler.GetArticle)
		articles.PUT("/:slug", middleware.AuthMiddleware(), articleHandler.UpdateArticle)
		articles.DELETE("/:slug", middleware.AuthMiddleware(), articleHandler.DeleteArticle)
		articles.POST("/:slug/favorite", middleware.AuthMiddleware(), articleHandler.FavoriteArticle)
		articles.DELETE("/:slug/favorite", middleware.AuthMiddleware(), articleHandler.UnfavoriteArticle)
		articles.GET("/:slug/comments", middleware.OptionalAuthMiddleware(), commentHandler.GetComments)
		articles.POST("/:slug/comments", middleware.AuthMiddleware(), commentHandler.AddComment)
		articles.DELETE("/:slug/comments/:commentId", middleware.AuthMiddleware(), commentHandler.RemoveComment)
	}

	router.GET("/tags", articleHandler.GetTags)

	suite.router = router
}

func (suite *APITestSuite) do(method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		suite.Require().NoError(err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *APITestSuite) register(username string) string {
	w := suite.do("POST", "/users", "", gin.H{
		"user": gin.H{
			"username": username,
			"email":    username + "@example.com",
			"password": "secret123",
		},
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var resp struct {
		User models.AuthUser `json:"user"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotEmpty(resp.User.Token)
	return resp.User.Token
}

type articleEnvelope struct {
	Article models.ArticleView `json:"article"`
}

type articlesEnvelope struct {
	Articles      []models.ArticleView `json:"articles"`
	ArticlesCount int64                `json:"articlesCount"`
}

func (suite *APITestSuite) TestFollowFeedFavoriteScenario() {
	tokenA := suite.register("alice")
	tokenB := suite.register("bob")

	// Alice writes an article.
	w := suite.do("POST", "/articles", tokenA, gin.H{
		"article": gin.H{
			"title":       "Hello World",
			"description": "greeting",
			"body":        "hello from alice",
			"tagList":     []string{"golang", "introductions"},
		},
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	var created articleEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &created))
	suite.Equal("hello-world", created.Article.Slug)

	// Bob's feed is empty until he follows alice.
	w = suite.do("GET", "/articles/feed", tokenB, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var feed articlesEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &feed))
	suite.Empty(feed.Articles)
	suite.Equal(int64(0), feed.ArticlesCount)

	w = suite.do("POST", "/profiles/alice/follow", tokenB, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var followed struct {
		Profile models.Profile `json:"profile"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &followed))
	suite.True(followed.Profile.Following)

	w = suite.do("GET", "/articles/feed", tokenB, nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &feed))
	suite.Require().Len(feed.Articles, 1)
	suite.Equal("hello-world", feed.Articles[0].Slug)
	suite.True(feed.Articles[0].Author.Following)

	// Bob favorites the article.
	w = suite.do("POST", "/articles/hello-world/favorite", tokenB, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var favorited articleEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &favorited))
	suite.True(favorited.Article.Favorited)
	suite.Equal(int64(1), favorited.Article.FavoritesCount)

	// The same article fetched anonymously keeps the count but no membership.
	w = suite.do("GET", "/articles/hello-world", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var anonymous articleEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &anonymous))
	suite.False(anonymous.Article.Favorited)
	suite.Equal(int64(1), anonymous.Article.FavoritesCount)
}

func (suite *APITestSuite) TestArticleLifecycle() {
	tokenA := suite.register("alice")
	tokenB := suite.register("bob")

	w := suite.do("POST", "/articles", tokenA, gin.H{
		"article": gin.H{
			"title":       "Doomed Post",
			"description": "soon gone",
			"body":        "short lived",
			"tagList":     []string{"golang"},
		},
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	// A colliding title is rejected.
	w = suite.do("POST", "/articles", tokenB, gin.H{
		"article": gin.H{
			"title":       "Doomed Post",
			"description": "copycat",
			"body":        "copycat",
		},
	})
	suite.Equal(http.StatusUnprocessableEntity, w.Code)

	// Bob comments on it.
	w = suite.do("POST", "/articles/doomed-post/comments", tokenB, gin.H{
		"comment": gin.H{"body": "shame about the title"},
	})
	suite.Require().Equal(http.StatusCreated, w.Code)

	// Only the author can delete.
	w = suite.do("DELETE", "/articles/doomed-post", tokenB, nil)
	suite.Equal(http.StatusForbidden, w.Code)

	w = suite.do("DELETE", "/articles/doomed-post", tokenA, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	// The slug is gone for every subsequent read, comments included.
	w = suite.do("GET", "/articles/doomed-post", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)

	w = suite.do("GET", "/articles/doomed-post/comments", "", nil)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestUnauthorizedWrites() {
	w := suite.do("POST", "/articles", "", gin.H{
		"article": gin.H{"title": "t", "description": "d", "body": "b"},
	})
	suite.Equal(http.StatusUnauthorized, w.Code)

	w = suite.do("POST", "/profiles/alice/follow", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)

	var resp struct {
		Errors struct {
			Body []string `json:"body"`
		} `json:"errors"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Errors.Body)
}

func (suite *APITestSuite) TestListByTagAndAuthor() {
	tokenA := suite.register("alice")
	suite.register("bob")

	for i, title := range []string{"Go Guide", "Rust Guide"} {
		tag := []string{"golang", "rustlang"}[i]
		w := suite.do("POST", "/articles", tokenA, gin.H{
			"article": gin.H{
				"title":       title,
				"description": "guide",
				"body":        "contents",
				"tagList":     []string{tag},
			},
		})
		suite.Require().Equal(http.StatusCreated, w.Code)
	}

	w := suite.do("GET", "/articles?tag=golang", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var list articlesEnvelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Require().Len(list.Articles, 1)
	suite.Equal("go-guide", list.Articles[0].Slug)

	w = suite.do("GET", "/articles?author=bob", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &list))
	suite.Empty(list.Articles)

	w = suite.do("GET", "/tags", "", nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var tags struct {
		Tags []string `json:"tags"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &tags))
	suite.ElementsMatch([]string{"golang", "rustlang"}, tags.Tags)
}

func (suite *APITestSuite) TestCurrentUserRoundTrip() {
	token := suite.register("alice")

	w := suite.do("GET", "/user", token, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp struct {
		User models.User `json:"user"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("alice", resp.User.Username)

	w = suite.do("PUT", "/user", token, gin.H{
		"user": gin.H{"bio": "gopher"},
	})
	suite.Require().Equal(http.StatusOK, w.Code)

	var updated struct {
		User models.AuthUser `json:"user"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &updated))
	suite.Equal("gopher", updated.User.Bio)
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
