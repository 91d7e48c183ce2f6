package models

import (
	"time"

	"postline/db"
)

type Comment struct {
	ID       uint64    `gorm:"primaryKey"`
	Created  time.Time `gorm:"autoCreateTime;index"`
	AuthorID uint64
	Author   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PostID   uint64 `gorm:"index"`
	Post     Post   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Text     string `gorm:"type:text"`
}

func CommentsForPost(postID uint64) (comments []Comment, err error) {
	return comments, db.Instance.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created DESC, id DESC").
		Find(&comments).Error
}

func CommentByID(id uint64) (c Comment, err error) {
	return c, db.Instance.Preload("Author").First(&c, id).Error
}
