package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmtr/blog-platform/backend/internal/models"
)

func TestToggleLike(t *testing.T) {
	e, db := setupServer(t)
	admin := adminToken(t, e, db)
	user := userToken(t, e)
	createPost(t, e, admin, "likeable")

	rec := doRequest(e, http.MethodPost, "/posts/1/likes", user, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["message"], "liked")

	detail := doRequest(e, http.MethodGet, "/posts/1", user, nil)
	var post models.PostDetail
	require.NoError(t, json.Unmarshal(detail.Body.Bytes(), &post))
	assert.Equal(t, int64(1), post.LikesCount)
	assert.True(t, post.IsLikedByUser)
}

func TestToggleLikeTwiceRestoresState(t *testing.T) {
	e, db := setupServer(t)
	admin := adminToken(t, e, db)
	user := userToken(t, e)
	createPost(t, e, admin, "likeable")

	first := doRequest(e, http.MethodPost, "/posts/1/likes", user, nil)
	require.Equal(t, http.StatusOK, first.Code)
	second := doRequest(e, http.MethodPost, "/posts/1/likes", user, nil)
	require.Equal(t, http.StatusOK, second.Code)

	detail := doRequest(e, http.MethodGet, "/posts/1", user, nil)
	var post models.PostDetail
	require.NoError(t, json.Unmarshal(detail.Body.Bytes(), &post))
	assert.Zero(t, post.LikesCount)
	assert.False(t, post.IsLikedByUser)

	var rows int64
	require.NoError(t, db.Model(&models.Like{}).Count(&rows).Error)
	assert.Zero(t, rows)
}

func TestToggleLikeRequiresAuth(t *testing.T) {
	e, db := setupServer(t)
	admin := adminToken(t, e, db)
	createPost(t, e, admin, "likeable")

	rec := doRequest(e, http.MethodPost, "/posts/1/likes", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestToggleLikePostNotFound(t *testing.T) {
	e, _ := setupServer(t)
	user := userToken(t, e)

	rec := doRequest(e, http.MethodPost, "/posts/999/likes", user, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLikeStatusIsPerUser(t *testing.T) {
	e, db := setupServer(t)
	admin := adminToken(t, e, db)
	user := userToken(t, e)
	createPost(t, e, admin, "likeable")

	rec := doRequest(e, http.MethodPost, "/posts/1/likes", user, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// The liker sees their like, the admin does not
	likerView := doRequest(e, http.MethodGet, "/posts/1", user, nil)
	var likerDetail models.PostDetail
	require.NoError(t, json.Unmarshal(likerView.Body.Bytes(), &likerDetail))
	assert.True(t, likerDetail.IsLikedByUser)

	adminView := doRequest(e, http.MethodGet, "/posts/1", admin, nil)
	var adminDetail models.PostDetail
	require.NoError(t, json.Unmarshal(adminView.Body.Bytes(), &adminDetail))
	assert.False(t, adminDetail.IsLikedByUser)
	assert.Equal(t, int64(1), adminDetail.LikesCount)
}
