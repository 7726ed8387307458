package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/lucasmtr/blog-platform/backend/internal/middleware"
	"github.com/lucasmtr/blog-platform/backend/internal/models"
	"github.com/lucasmtr/blog-platform/backend/internal/repositories"
	"gorm.io/gorm"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository    repositories.PostRepository
	commentRepository repositories.CommentRepository // To assemble the post detail view
	likeRepository    repositories.LikeRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository, likeRepo repositories.LikeRepository) *PostHandler {
	return &PostHandler{
		postRepository:    postRepo,
		commentRepository: commentRepo,
		likeRepository:    likeRepo,
	}
}

// RegisterPublicPostRoutes registers the anonymous-tier post routes
func (h *PostHandler) RegisterPublicPostRoutes(e *echo.Echo, jwtSecret string) {
	e.GET("/posts", h.GetPosts)
	// Post detail is readable anonymously but enriched for authenticated users
	e.GET("/posts/:id", h.GetPost, middleware.OptionalJWTAuth(jwtSecret))
}

// RegisterAdminPostRoutes registers the admin-tier post routes
func (h *PostHandler) RegisterAdminPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.DELETE("/posts/:id", h.DeletePost)
}

// GetPosts retrieves all posts, newest first, with author usernames
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts, err := h.postRepository.GetAllPosts()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch posts")
	}

	return c.JSON(http.StatusOK, posts)
}

// GetPost retrieves a post by ID with its comments, like count and, for
// authenticated callers, whether they liked it
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := parsePostID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	post, err := h.postRepository.GetPostWithAuthor(postID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch post")
	}

	comments, err := h.commentRepository.GetCommentsByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch comments")
	}

	likesCount, err := h.likeRepository.GetLikesCountByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch likes")
	}

	isLiked := false
	if claims := middleware.GetUserClaims(c); claims != nil {
		isLiked, err = h.likeRepository.HasUserLikedPost(postID, claims.UserID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to fetch likes")
		}
	}

	return c.JSON(http.StatusOK, models.PostDetail{
		PostWithAuthor: *post,
		Comments:       comments,
		LikesCount:     likesCount,
		IsLikedByUser:  isLiked,
	})
}

// CreatePost creates a new post. Admin only.
func (h *PostHandler) CreatePost(c echo.Context) error {
	claims := middleware.GetUserClaims(c)

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post := &models.Post{
		Title:    req.Title,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		AuthorID: claims.UserID,
	}

	if err := h.postRepository.CreatePost(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create post")
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Post created successfully",
		"post":    post,
	})
}

// DeletePost deletes a post and its comments and likes. Admin only.
func (h *PostHandler) DeletePost(c echo.Context) error {
	postID, err := parsePostID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	post, err := h.postRepository.DeletePost(postID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete post")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Post deleted successfully",
		"post":    post,
	})
}

func parsePostID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
