package model

import "time"

type Category struct {
	ID            int64         `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	Name          string        `gorm:"type:varchar(255);not null;uniqueIndex" json:"name"`
	Slug          string        `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	CreatedAt     time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
	Subcategories []Subcategory `gorm:"foreignKey:CategoryID;references:ID" json:"subcategories,omitempty"`
}

// slugはカテゴリ内で一意
type Subcategory struct {
	ID         int64     `gorm:"column:subcategory_id;primaryKey;autoIncrement" json:"subcategory_id"`
	CategoryID int64     `gorm:"not null;uniqueIndex:idx_subcategories_category_slug" json:"category_id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Slug       string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_subcategories_category_slug" json:"slug"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
