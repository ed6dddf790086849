package usecase

import (
	"context"
	"regexp"
	"strings"

	"availio-admin/internal/domain/entity"
	"availio-admin/internal/domain/repository"
	"availio-admin/pkg/errors"
	"availio-admin/pkg/logger"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	firebaseAuth FirebaseAuthClient
}

func NewAuthUseCase(userRepo repository.UserRepository, firebaseAuth FirebaseAuthClient) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		firebaseAuth: firebaseAuth,
	}
}

type LoginResult struct {
	User         *entity.User
	Token        string
	RefreshToken string
}

// Login runs the dashboard's sign-in sequence. Validation and role checks
// come first; the identity provider is only contacted once the account is
// known to be an admin, and its failure message is passed through raw.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = strings.TrimSpace(email)
	password = strings.TrimSpace(password)

	if email == "" || password == "" {
		return nil, errors.BadRequest("Please enter both email and password.", nil)
	}
	if !emailPattern.MatchString(email) {
		return nil, errors.BadRequest("Invalid email format.", nil)
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.NotFound("User", nil)
		}
		return nil, err
	}

	if user.Role != entity.RoleAdmin {
		return nil, errors.Forbidden("Insufficient Permission", nil)
	}

	token, refreshToken, err := uc.firebaseAuth.SignInWithEmailPasswordWithRefresh(email, password)
	if err != nil {
		logger.Warn("Login rejected by identity provider for %s: %v", email, err)
		return nil, errors.Unauthorized(err.Error(), err)
	}

	return &LoginResult{
		User:         user,
		Token:        token,
		RefreshToken: refreshToken,
	}, nil
}

// Session resolves a bearer token to the authenticated admin account.
func (uc *AuthUseCase) Session(ctx context.Context, token string) (*entity.User, error) {
	uid, err := uc.firebaseAuth.VerifyToken(ctx, token)
	if err != nil {
		return nil, errors.Unauthorized("Invalid or expired token", err)
	}

	user, err := uc.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, errors.NotFound("User", err)
	}

	return user, nil
}

func (uc *AuthUseCase) Logout(ctx context.Context, uid string) error {
	if err := uc.firebaseAuth.RevokeRefreshTokens(ctx, uid); err != nil {
		return errors.Internal("Failed to revoke session", err)
	}
	return nil
}
