package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cast-match/internal/domain/user"
	"cast-match/internal/pkg/jwt"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byID: map[uuid.UUID]user.User{}, byEmail: map[string]user.User{}}
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) error {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	if u, ok := m.byID[id]; ok {
		return u, nil
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	if u, ok := m.byEmail[email]; ok {
		return u, nil
	}
	return user.User{}, user.ErrNotFound
}

func (m *mockUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := m.byEmail[email]
	return ok, nil
}

func newAuthUsecase() (*Auth, *mockUserRepo) {
	repo := newMockUserRepo()
	jwtSvc := jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
	return NewAuthUsecase(repo, jwtSvc), repo
}

func TestRegister_ThenLogin(t *testing.T) {
	uc, _ := newAuthUsecase()

	usr, access, refresh, err := uc.Register(context.Background(), RegisterInput{
		Email:       "Director@Example.com",
		Password:    "s3cret-password",
		AccountRole: "director",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if usr.Email != "director@example.com" {
		t.Fatalf("email not normalized: %q", usr.Email)
	}
	if usr.PasswordHash != "" {
		t.Fatalf("password hash must not leave the usecase")
	}
	if access == "" || refresh == "" {
		t.Fatalf("expected both tokens")
	}

	if _, _, _, err := uc.Login(context.Background(), LoginInput{Email: "director@example.com", Password: "s3cret-password"}); err != nil {
		t.Fatalf("login: %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	uc, _ := newAuthUsecase()

	cases := []RegisterInput{
		{Email: "", Password: "s3cret-password"},
		{Email: "no-at-sign", Password: "s3cret-password"},
		{Email: "a@b.com", Password: "short"},
		{Email: "a@b.com", Password: "s3cret-password", AccountRole: "admin"},
	}
	for i, in := range cases {
		if _, _, _, err := uc.Register(context.Background(), in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newAuthUsecase()

	in := RegisterInput{Email: "a@b.com", Password: "s3cret-password"}
	if _, _, _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, _, _, err := uc.Register(context.Background(), in); !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	uc, _ := newAuthUsecase()

	if _, _, _, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "s3cret-password"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, _, _, err := uc.Login(context.Background(), LoginInput{Email: "a@b.com", Password: "wrong-password"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	uc, _ := newAuthUsecase()

	_, access, refresh, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.com", Password: "s3cret-password"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, _, err := uc.Refresh(context.Background(), access); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("access token must not refresh, got %v", err)
	}
	if _, _, err := uc.Refresh(context.Background(), refresh); err != nil {
		t.Fatalf("refresh token rejected: %v", err)
	}
	if _, _, err := uc.Refresh(context.Background(), ""); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("empty token must be unauthorized")
	}
}
