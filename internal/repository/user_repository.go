package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// プロフィールで変更できる項目
type ProfileUpdate struct {
	Name           *string
	WhatsappNumber *string
}

// 保存・取得を約束
type UserRepository interface {
	// IDからユーザーを1件取得する（無ければ ErrNotFound）
	FindByID(ctx context.Context, userID int64) (model.User, error)
	UpdateProfile(ctx context.Context, userID int64, u ProfileUpdate) error
}
