package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-identity/internal/mock"
	"github.com/MKhiriev/go-identity/internal/store"
	"github.com/MKhiriev/go-identity/internal/validators"
	"github.com/MKhiriev/go-identity/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── AuthValidationService ─────────────────────────────────────────────────────

func TestAuthValidation_SignUp_InvalidFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService(repo).Wrap(inner)

	// neither the repository nor the inner service may be reached
	_, err := svc.SignUp(context.Background(), models.SignUpRequest{Email: "not-an-email", Name: " ", Password: "123"})
	require.Error(t, err)

	var se *Error
	require.ErrorAs(t, err, &se)
	assert.Equal(t, KindValidation, se.Kind)

	data, ok := se.Data.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, data, validators.FieldEmail)
	assert.Contains(t, data, validators.FieldName)
	assert.Contains(t, data, validators.FieldPassword)
}

func TestAuthValidation_SignUp_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService(repo).Wrap(inner)

	repo.EXPECT().FindByEmail(gomock.Any(), "a@b.io").Return(models.User{ID: "u-1"}, nil)

	_, err := svc.SignUp(context.Background(), models.SignUpRequest{Email: "a@b.io", Name: "Ann", Password: "secret1"})
	require.Error(t, err)
	assert.Equal(t, KindValidation, KindOf(err))
	assert.ErrorIs(t, err, validators.ErrEmailAlreadyExists)
}

func TestAuthValidation_SignUp_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService(repo).Wrap(inner)

	req := models.SignUpRequest{Email: "a@b.io", Name: "Ann", Password: "secret1"}
	repo.EXPECT().FindByEmail(gomock.Any(), "a@b.io").Return(models.User{}, store.ErrUserNotFound)
	inner.EXPECT().SignUp(gomock.Any(), req).Return(models.User{ID: "u-1"}, nil)

	user, err := svc.SignUp(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
}

func TestAuthValidation_SignUp_LookupFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthValidationService(repo).Wrap(mock.NewMockAuthService(ctrl))

	repo.EXPECT().FindByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrScanningRow)

	_, err := svc.SignUp(context.Background(), models.SignUpRequest{Email: "a@b.io", Name: "Ann", Password: "secret1"})
	assert.Equal(t, KindInternal, KindOf(err))
}

func TestAuthValidation_SignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthService(ctrl)
	svc := NewAuthValidationService(mock.NewMockUserRepository(ctrl)).Wrap(inner)

	_, err := svc.SignIn(context.Background(), models.SignInRequest{Email: "", Password: ""})
	assert.Equal(t, KindValidation, KindOf(err))

	req := models.SignInRequest{Email: "a@b.io", Password: "x"}
	inner.EXPECT().SignIn(gomock.Any(), req).Return(models.Token{SignedString: "jwt"}, nil)

	token, err := svc.SignIn(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "jwt", token.SignedString)
}

// ── ProfileValidationService ──────────────────────────────────────────────────

func TestProfileValidation_RejectsBeforeInner(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockProfileService(ctrl)
	svc := NewProfileValidationService().Wrap(inner)
	ctx := context.Background()

	tests := []struct {
		name string
		call func() error
	}{
		{name: "empty name", call: func() error {
			_, err := svc.UpdateProfile(ctx, "u-1", models.UpdateProfileRequest{Name: ""})
			return err
		}},
		{name: "short new password", call: func() error {
			_, err := svc.ChangePassword(ctx, "u-1", models.ChangePasswordRequest{OldPassword: "secret1", NewPassword: "123"})
			return err
		}},
		{name: "missing old password", call: func() error {
			_, err := svc.ChangePassword(ctx, "u-1", models.ChangePasswordRequest{NewPassword: "secret2"})
			return err
		}},
		{name: "empty item id on add", call: func() error {
			_, err := svc.AddFavorite(ctx, "u-1", models.FavoriteRequest{ItemID: ""})
			return err
		}},
		{name: "blank item id on remove", call: func() error {
			_, err := svc.RemoveFavorite(ctx, "u-1", "  ")
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			require.Error(t, err)
			assert.Equal(t, KindValidation, KindOf(err))
		})
	}
}

func TestProfileValidation_PassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockProfileService(ctrl)
	svc := NewProfileValidationService().Wrap(inner)
	ctx := context.Background()

	inner.EXPECT().UpdateProfile(ctx, "u-1", models.UpdateProfileRequest{Name: "Ann"}).Return(models.User{Name: "Ann"}, nil)
	inner.EXPECT().ChangePassword(ctx, "u-1", gomock.Any()).Return(models.User{}, nil)
	inner.EXPECT().DeleteUser(ctx, "u-1").Return(models.User{ID: "u-1"}, nil)
	inner.EXPECT().AddFavorite(ctx, "u-1", models.FavoriteRequest{ItemID: "x"}).Return(models.User{}, nil)
	inner.EXPECT().RemoveFavorite(ctx, "u-1", "x").Return(models.User{}, nil)

	_, err := svc.UpdateProfile(ctx, "u-1", models.UpdateProfileRequest{Name: "Ann"})
	require.NoError(t, err)
	_, err = svc.ChangePassword(ctx, "u-1", models.ChangePasswordRequest{OldPassword: "secret1", NewPassword: "secret2"})
	require.NoError(t, err)
	_, err = svc.DeleteUser(ctx, "u-1")
	require.NoError(t, err)
	_, err = svc.AddFavorite(ctx, "u-1", models.FavoriteRequest{ItemID: "x"})
	require.NoError(t, err)
	_, err = svc.RemoveFavorite(ctx, "u-1", "x")
	require.NoError(t, err)
}
