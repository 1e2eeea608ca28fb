package usecase

import (
	"context"
	"net/http"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type UserUsecase struct {
	tx    repo.TransactionManager
	users repo.UserRepository
}

func NewUserUsecase(tx repo.TransactionManager, users repo.UserRepository) *UserUsecase {
	return &UserUsecase{tx: tx, users: users}
}

func (u *UserUsecase) GetProfile(ctx context.Context, userID int64) (model.User, error) {
	if userID <= 0 {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return model.User{}, toHTTPError(err, "user not found")
	}
	return user, nil
}

// 送られてきた項目だけ変更する
type UpdateProfileInput struct {
	Name           *string
	WhatsappNumber *string
}

// 更新してから読み直した値を返す
func (u *UserUsecase) UpdateProfile(ctx context.Context, userID int64, in UpdateProfileInput) (model.User, error) {
	if userID <= 0 {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	upd := repo.ProfileUpdate{WhatsappNumber: in.WhatsappNumber}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return model.User{}, NewHTTPError(http.StatusBadRequest, "name must not be empty")
		}
		upd.Name = &name
	}

	var out model.User
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if err := r.Users().UpdateProfile(ctx, userID, upd); err != nil {
			return err
		}
		var err error
		out, err = r.Users().FindByID(ctx, userID)
		return err
	})
	if err != nil {
		return model.User{}, toHTTPError(err, "user not found")
	}
	return out, nil
}
