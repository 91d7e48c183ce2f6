package models

import "postline/db"

type Follow struct {
	ID        uint64 `gorm:"primaryKey"`
	CreatedAt int64
	UserID    uint64 `gorm:"index:uniq_user_author,priority:1,unique"`
	User      User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	AuthorID  uint64 `gorm:"index:uniq_user_author,priority:2,unique"`
	Author    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// FollowGetOrCreate is idempotent: following an already-followed author
// returns the existing row.
func FollowGetOrCreate(userID, authorID uint64) (f Follow, err error) {
	return f, db.Instance.
		Where(Follow{UserID: userID, AuthorID: authorID}).
		FirstOrCreate(&f).Error
}

// Unfollow is a no-op if no such follow exists.
func Unfollow(userID, authorID uint64) error {
	return db.Instance.
		Where("user_id = ? and author_id = ?", userID, authorID).
		Delete(&Follow{}).Error
}

func IsFollowing(userID, authorID uint64) bool {
	var count int64
	db.Instance.Model(&Follow{}).
		Where("user_id = ? and author_id = ?", userID, authorID).
		Count(&count)
	return count > 0
}

func FollowsByUser(userID uint64) (follows []Follow, err error) {
	return follows, db.Instance.
		Preload("User").
		Preload("Author").
		Where("user_id = ?", userID).
		Order("id").
		Find(&follows).Error
}
