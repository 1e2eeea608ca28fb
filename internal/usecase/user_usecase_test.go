package usecase

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetProfile(t *testing.T) {
	users := new(UserRepoMock)
	uc := NewUserUsecase(&fakeTx{users: users}, users)

	users.On("FindByID", mock.Anything, int64(3)).Return(model.User{ID: 3, Name: "Ana"}, nil)
	users.On("FindByID", mock.Anything, int64(4)).Return(model.User{}, repo.ErrNotFound)

	u, err := uc.GetProfile(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "Ana", u.Name)

	_, err = uc.GetProfile(context.Background(), 4)
	assertHTTPStatus(t, err, http.StatusNotFound)
}

func TestUpdateProfile_RereadsAfterUpdate(t *testing.T) {
	users := new(UserRepoMock)
	uc := NewUserUsecase(&fakeTx{users: users}, users)

	users.On("UpdateProfile", mock.Anything, int64(3), repo.ProfileUpdate{
		Name:           strPtr("Ana Maria"),
		WhatsappNumber: strPtr("5511999"),
	}).Return(nil).Once()
	users.On("FindByID", mock.Anything, int64(3)).
		Return(model.User{ID: 3, Name: "Ana Maria", WhatsappNumber: strPtr("5511999")}, nil).Once()

	u, err := uc.UpdateProfile(context.Background(), 3, UpdateProfileInput{
		Name:           strPtr("  Ana Maria "),
		WhatsappNumber: strPtr("5511999"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", u.Name)
	users.AssertExpectations(t)
}

func TestUpdateProfile_Validation(t *testing.T) {
	users := new(UserRepoMock)
	uc := NewUserUsecase(&fakeTx{users: users}, users)

	_, err := uc.UpdateProfile(context.Background(), 3, UpdateProfileInput{Name: strPtr("  ")})
	assertHTTPStatus(t, err, http.StatusBadRequest)

	_, err = uc.UpdateProfile(context.Background(), 0, UpdateProfileInput{})
	assertHTTPStatus(t, err, http.StatusUnauthorized)

	users.AssertNotCalled(t, "UpdateProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProfile_MissingUser(t *testing.T) {
	users := new(UserRepoMock)
	uc := NewUserUsecase(&fakeTx{users: users}, users)
	users.On("UpdateProfile", mock.Anything, int64(9), mock.Anything).Return(repo.ErrNotFound)

	_, err := uc.UpdateProfile(context.Background(), 9, UpdateProfileInput{Name: strPtr("x")})
	assertHTTPStatus(t, err, http.StatusNotFound)
}
