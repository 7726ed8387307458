package models

// Like represents a like on a post. The composite key guarantees at most
// one like per (user, post) pair.
type Like struct {
	UserID uint `json:"user_id" gorm:"primaryKey;autoIncrement:false"`
	PostID uint `json:"post_id" gorm:"primaryKey;autoIncrement:false"`
}
