package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lucasmtr/blog-platform/backend/internal/middleware"
	"github.com/lucasmtr/blog-platform/backend/internal/repositories"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct {
	likeRepository repositories.LikeRepository
	postRepository repositories.PostRepository // To verify the post exists
}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository: likeRepo,
		postRepository: postRepo,
	}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/likes", h.ToggleLike)
}

// ToggleLike flips the (user, post) like membership. Any authenticated user.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	claims := middleware.GetUserClaims(c)

	postID, err := parsePostID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	// Verify post exists
	if _, err := h.postRepository.GetPostByID(postID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	liked, err := h.likeRepository.ToggleLike(postID, claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to process like")
	}

	message := "Post unliked successfully"
	if liked {
		message = "Post liked successfully"
	}

	return c.JSON(http.StatusOK, echo.Map{"message": message})
}
