package usecase

import (
	"context"
	"errors"
	"strings"

	"cast-match/internal/domain/user"
	"cast-match/internal/pkg/jwt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Email       string
	Password    string
	AccountRole string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, string, string, error)
	Login(ctx context.Context, in LoginInput) (user.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	users user.Repository
	jwt   jwt.Service
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (user.User, string, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || !isValidPassword(in.Password) {
		return user.User{}, "", "", ErrInvalidInput
	}

	accountRole := strings.ToLower(strings.TrimSpace(in.AccountRole))
	if accountRole == "" {
		accountRole = user.RoleDirector
	}
	if accountRole != user.RoleDirector && accountRole != user.RoleTalent {
		return user.User{}, "", "", ErrInvalidInput
	}

	exists, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}
	if exists {
		return user.User{}, "", "", ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}

	usr := user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		AccountRole:  accountRole,
	}
	if err := u.users.Create(ctx, usr); err != nil {
		// Concurrent registration of the same email loses the unique-index
		// race; report it as taken rather than internal.
		exists, exErr := u.users.ExistsByEmail(ctx, email)
		if exErr == nil && exists {
			return user.User{}, "", "", ErrEmailAlreadyRegistered
		}
		return user.User{}, "", "", ErrInternal
	}

	created, err := u.users.GetByID(ctx, usr.ID)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}

	return u.withTokens(sanitize(created))
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (user.User, string, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, "", "", ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, "", "", ErrInvalidCredentials
		}
		return user.User{}, "", "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, "", "", ErrInvalidCredentials
	}

	return u.withTokens(sanitize(usr))
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", "", ErrInvalidRefreshToken
		}
		return "", "", ErrInternal
	}

	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email, usr.AccountRole)
	if err != nil {
		return "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

func (u *Auth) withTokens(usr user.User) (user.User, string, string, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email, usr.AccountRole)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}
	return usr, access, refresh, nil
}

func normalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return ""
	}
	return strings.ToLower(email)
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func sanitize(usr user.User) user.User {
	usr.PasswordHash = ""
	return usr
}
