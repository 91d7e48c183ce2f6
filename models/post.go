package models

import (
	"time"

	"postline/db"

	"gorm.io/gorm"
)

type Post struct {
	ID       uint64    `gorm:"primaryKey"`
	PubDate  time.Time `gorm:"autoCreateTime;index"`
	AuthorID uint64    `gorm:"index"`
	Author   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GroupID  *uint64   `gorm:"index"`
	Group    *Group    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Text     string    `gorm:"type:text"`
	Image    string    `gorm:"type:varchar(300)"` // Relative media path, empty if none
}

// postsQuery is the base for all post listings: newest first, with the
// author and group available to templates and serializers.
func postsQuery() *gorm.DB {
	return db.Instance.
		Preload("Author").
		Preload("Group").
		Order("pub_date DESC, id DESC")
}

func PostsAll(offset, limit int) (posts []Post, err error) {
	return posts, postsQuery().Offset(offset).Limit(limit).Find(&posts).Error
}

func PostsCount() (count int64, err error) {
	return count, db.Instance.Model(&Post{}).Count(&count).Error
}

func PostsByGroup(groupID uint64, offset, limit int) (posts []Post, err error) {
	return posts, postsQuery().
		Where("group_id = ?", groupID).
		Offset(offset).Limit(limit).
		Find(&posts).Error
}

func PostsCountByGroup(groupID uint64) (count int64, err error) {
	return count, db.Instance.Model(&Post{}).Where("group_id = ?", groupID).Count(&count).Error
}

func PostsByAuthor(authorID uint64, offset, limit int) (posts []Post, err error) {
	return posts, postsQuery().
		Where("author_id = ?", authorID).
		Offset(offset).Limit(limit).
		Find(&posts).Error
}

func PostsCountByAuthor(authorID uint64) (count int64, err error) {
	return count, db.Instance.Model(&Post{}).Where("author_id = ?", authorID).Count(&count).Error
}

// PostsByFollowed lists posts whose author is followed by the given user.
func PostsByFollowed(userID uint64, offset, limit int) (posts []Post, err error) {
	followed := db.Instance.Model(&Follow{}).Select("author_id").Where("user_id = ?", userID)
	return posts, postsQuery().
		Where("author_id IN (?)", followed).
		Offset(offset).Limit(limit).
		Find(&posts).Error
}

func PostsCountByFollowed(userID uint64) (count int64, err error) {
	followed := db.Instance.Model(&Follow{}).Select("author_id").Where("user_id = ?", userID)
	return count, db.Instance.Model(&Post{}).Where("author_id IN (?)", followed).Count(&count).Error
}

func PostByID(id uint64) (p Post, err error) {
	return p, db.Instance.Preload("Author").Preload("Group").First(&p, id).Error
}
