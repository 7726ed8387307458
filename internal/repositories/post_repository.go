package repositories

import (
	"github.com/lucasmtr/blog-platform/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(post *models.Post) error
	GetPostByID(id uint) (*models.Post, error)
	GetPostWithAuthor(id uint) (*models.PostWithAuthor, error)
	GetAllPosts() ([]models.PostWithAuthor, error)
	DeletePost(id uint) (*models.Post, error)
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

// NewPostgresPostRepository creates a new PostgresPostRepository
func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

// CreatePost creates a new post in PostgreSQL
func (r *PostgresPostRepository) CreatePost(post *models.Post) error {
	return r.db.Create(post).Error
}

// GetPostByID retrieves a post by ID from PostgreSQL
func (r *PostgresPostRepository) GetPostByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetPostWithAuthor retrieves a post joined with its author's username
func (r *PostgresPostRepository) GetPostWithAuthor(id uint) (*models.PostWithAuthor, error) {
	var row models.PostWithAuthor
	err := r.db.Model(&models.Post{}).
		Select("posts.id, posts.title, posts.content, posts.image_url, posts.created_at, users.username AS author_username").
		Joins("JOIN users ON users.id = posts.author_id").
		Where("posts.id = ?", id).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// GetAllPosts retrieves all posts joined with author usernames, newest first
func (r *PostgresPostRepository) GetAllPosts() ([]models.PostWithAuthor, error) {
	rows := []models.PostWithAuthor{}
	err := r.db.Model(&models.Post{}).
		Select("posts.id, posts.title, posts.content, posts.image_url, posts.created_at, users.username AS author_username").
		Joins("JOIN users ON users.id = posts.author_id").
		Order("posts.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DeletePost deletes a post and its comments and likes in one transaction.
// Returns gorm.ErrRecordNotFound when the post does not exist.
func (r *PostgresPostRepository) DeletePost(id uint) (*models.Post, error) {
	var post models.Post
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}
