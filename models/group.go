package models

import "postline/db"

type Group struct {
	ID          uint64 `gorm:"primaryKey"`
	CreatedAt   int64
	UpdatedAt   int64
	Title       string `gorm:"type:varchar(200)"`
	Slug        string `gorm:"type:varchar(200);index:uniq_slug,unique"`
	Description string `gorm:"type:text"`
}

func GroupCreate(title, slug, description string) (g Group, err error) {
	g.Title = title
	g.Slug = slug
	g.Description = description
	return g, db.Instance.Create(&g).Error
}

func GroupBySlug(slug string) (g Group, err error) {
	return g, db.Instance.First(&g, "slug = ?", slug).Error
}

func GroupByID(id uint64) (g Group, err error) {
	return g, db.Instance.First(&g, id).Error
}

func GroupsAll() (groups []Group, err error) {
	return groups, db.Instance.Order("id").Find(&groups).Error
}
