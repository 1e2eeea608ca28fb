package model

import (
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// 商品スペック（任意のキー => 値）
type Specs map[string]string

type Product struct {
	ID            int64                     `gorm:"column:product_id;primaryKey;autoIncrement" json:"product_id"`
	Name          string                    `gorm:"type:varchar(255);not null;index" json:"name"`
	Slug          string                    `gorm:"type:varchar(255);not null;uniqueIndex" json:"slug"`
	Description   *string                   `gorm:"type:text" json:"description"`
	Price         decimal.Decimal           `gorm:"type:decimal(10,2);not null" json:"price"`
	OriginalPrice decimal.NullDecimal       `gorm:"type:decimal(10,2)" json:"original_price"`
	Stock         int64                     `gorm:"not null;default:0" json:"stock"`
	SKU           *string                   `gorm:"column:sku;type:varchar(100);uniqueIndex" json:"sku"`
	ImageURL      *string                   `gorm:"type:varchar(1024)" json:"image_url"`
	Images        pq.StringArray            `gorm:"type:text[]" json:"images"`
	CategoryID    *int64                    `gorm:"index" json:"category_id"`
	SubcategoryID *int64                    `gorm:"index" json:"subcategory_id"`
	Specs         datatypes.JSONType[Specs] `gorm:"type:jsonb;not null;default:'{}'" json:"specs"`
	IsActive      bool                      `gorm:"not null;index" json:"is_active"`
	CreatedAt     time.Time                 `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time                 `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 書き込み直前に image_url を images[0] に揃える
func (p *Product) BeforeSave(tx *gorm.DB) error {
	p.SyncPrimaryImage()
	if p.Specs.Data() == nil {
		p.Specs = datatypes.NewJSONType(Specs{})
	}
	return nil
}

// imagesを正規化し、image_urlをimages[0]（空ならnil）にする。
func (p *Product) SyncPrimaryImage() {
	p.Images = CleanImages(p.Images)
	if len(p.Images) == 0 {
		p.ImageURL = nil
		return
	}
	first := p.Images[0]
	p.ImageURL = &first
}

// 空文字を除き、0件ならnil（=未設定）にする
func CleanImages(images []string) pq.StringArray {
	if images == nil {
		return nil
	}
	out := make(pq.StringArray, 0, len(images))
	for _, u := range images {
		if strings.TrimSpace(u) == "" {
			continue
		}
		out = append(out, u)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
