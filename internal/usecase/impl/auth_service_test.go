package impl

import (
	"context"
	"testing"

	domainerrors "stockroom/internal/domain/errors"
	"stockroom/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest(userRepo *fakeUserRepo, hasher *fakeHasher, tokens *fakeTokenService) usecase.AuthUsecase {
	return NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokens,
		Logger:       testLogger(),
	})
}

func TestRegister_Success(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newAuthServiceForTest(userRepo, &fakeHasher{}, &fakeTokenService{})

	out, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Email:    "Alice@Example.COM",
		Password: "Str0ng!pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", out.User.Email, "stored email must be lowercased")
	assert.Equal(t, "alice", out.User.Username)
	assert.Equal(t, "hashed:Str0ng!pass", out.User.PasswordHash)

	stored, err := userRepo.FindByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice", stored.Username)
}

func TestRegister_CollectsEveryViolationInOrder(t *testing.T) {
	svc := newAuthServiceForTest(newFakeUserRepo(), &fakeHasher{}, &fakeTokenService{})

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Username: "",
		Email:    "not-an-email",
		Password: "short",
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		"The username cannot exceed 20 characters and is required.",
		"Must be a valid email.",
		"The password must be at least 8 characters long.",
		"The password must have at least one uppercase letter.",
		"The password must have at least one special character.",
	}, validationErr.Messages)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.createErr = domainerrors.ErrDuplicateEmail.WrapMessage("user already registered")
	svc := newAuthServiceForTest(userRepo, &fakeHasher{}, &fakeTokenService{})

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Str0ng!pass",
	})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"Error registering user"}, validationErr.Messages)
}

func TestLogin_Success(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newAuthServiceForTest(userRepo, &fakeHasher{}, &fakeTokenService{})

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	out, err := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "ALICE@example.com",
		Password: "Str0ng!pass",
	})

	require.NoError(t, err)
	assert.Equal(t, "access:alice@example.com", out.AccessToken)
	assert.Equal(t, "refresh:alice@example.com", out.RefreshToken)
	assert.Equal(t, "alice", out.User.Username)
}

func TestLogin_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newAuthServiceForTest(userRepo, &fakeHasher{}, &fakeTokenService{})

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	_, unknownErr := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "Str0ng!pass",
	})
	_, wrongPassErr := svc.Login(context.Background(), &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "Wr0ng!pass",
	})

	assert.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassErr, domainerrors.ErrInvalidCredentials)
}

func TestLogin_ValidationRunsBeforeLookup(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.findErr = errors.New("repository must not be called")
	svc := newAuthServiceForTest(userRepo, &fakeHasher{}, &fakeTokenService{})

	_, err := svc.Login(context.Background(), &usecase.LoginInput{Email: "", Password: ""})

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{
		"Must be a valid email.",
		"The password must be at least 8 characters long.",
	}, validationErr.Messages)
}

func TestRefreshToken_IssuesNewAccessTokenOnly(t *testing.T) {
	userRepo := newFakeUserRepo()
	svc := newAuthServiceForTest(userRepo, &fakeHasher{}, &fakeTokenService{})

	_, err := svc.Register(context.Background(), &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Str0ng!pass",
	})
	require.NoError(t, err)

	out, err := svc.RefreshToken(context.Background(), &usecase.RefreshTokenInput{
		RefreshToken: "refresh:alice@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "access:alice@example.com", out.AccessToken)
}

func TestRefreshToken_Missing(t *testing.T) {
	svc := newAuthServiceForTest(newFakeUserRepo(), &fakeHasher{}, &fakeTokenService{})

	_, err := svc.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: ""})

	assert.ErrorIs(t, err, domainerrors.ErrMissingRefreshToken)
}

func TestRefreshToken_Invalid(t *testing.T) {
	svc := newAuthServiceForTest(newFakeUserRepo(), &fakeHasher{}, &fakeTokenService{})

	_, err := svc.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidRefreshToken)
}

func TestRefreshToken_HonoredWithoutUserLookup(t *testing.T) {
	userRepo := newFakeUserRepo()
	userRepo.findErr = errors.New("user store must not be touched during refresh")
	svc := newAuthServiceForTest(userRepo, &fakeHasher{}, &fakeTokenService{})

	// A structurally valid, unexpired refresh token is honored even when the
	// account row is gone; there is no revocation list.
	out, err := svc.RefreshToken(context.Background(), &usecase.RefreshTokenInput{
		RefreshToken: "refresh:ghost@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "access:ghost@example.com", out.AccessToken)
}
