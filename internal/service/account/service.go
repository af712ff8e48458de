package account

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"storefront/internal/domain"
	"storefront/internal/repository/kv"
)

// Service handles signup/login flows and the per-profile session flag. The
// user directory is append-only: records are never updated or deleted.
type Service struct {
	repo   store
	logger *log.Logger
}

type store interface {
	Get(ctx context.Context, profile, key string) ([]byte, error)
	Set(ctx context.Context, profile, key string, value []byte) error
	Delete(ctx context.Context, profile, key string) error
}

func New(repo kv.Repository, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, logger: logger}
}

// Signup appends a new user record. Email is the identity key, compared
// case-sensitively; a matching record fails the signup without appending.
func (s *Service) Signup(ctx context.Context, profile, name, email, password string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return errors.New("name required")
	}
	if email == "" {
		return errors.New("email required")
	}
	if password == "" {
		return errors.New("password required")
	}

	users, err := s.users(ctx, profile)
	if err != nil {
		return err
	}
	for _, u := range users {
		if u.Email == email {
			return domain.ErrDuplicateEmail
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	users = append(users, domain.User{Name: name, Email: email, PasswordHash: string(hashed)})
	raw, err := json.Marshal(users)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, profile, kv.KeyUsers, raw)
}

// Login checks credentials against the directory and, on success, sets the
// session flag and display name. Every failure folds into
// ErrInvalidCredentials; unknown email and wrong password are not
// distinguished.
func (s *Service) Login(ctx context.Context, profile, email, password string) (*domain.User, error) {
	users, err := s.users(ctx, profile)
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return nil, domain.ErrInvalidCredentials
		}
		if err := s.setSession(ctx, profile, u.Name); err != nil {
			return nil, err
		}
		return &u, nil
	}
	return nil, domain.ErrInvalidCredentials
}

// Logout clears the session flag and display name unconditionally.
func (s *Service) Logout(ctx context.Context, profile string) error {
	if err := s.repo.Delete(ctx, profile, kv.KeyUserLoggedIn); err != nil {
		return err
	}
	return s.repo.Delete(ctx, profile, kv.KeyUserName)
}

// Session reports whether a user is logged in and under what display name.
func (s *Service) Session(ctx context.Context, profile string) (domain.Session, error) {
	raw, err := s.repo.Get(ctx, profile, kv.KeyUserLoggedIn)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Session{}, nil
		}
		return domain.Session{}, err
	}
	var flag string
	if err := json.Unmarshal(raw, &flag); err != nil || flag != "true" {
		return domain.Session{}, nil
	}

	var name string
	if raw, err := s.repo.Get(ctx, profile, kv.KeyUserName); err == nil {
		if err := json.Unmarshal(raw, &name); err != nil {
			name = ""
		}
	}
	return domain.Session{LoggedIn: true, Name: name}, nil
}

func (s *Service) users(ctx context.Context, profile string) ([]domain.User, error) {
	raw, err := s.repo.Get(ctx, profile, kv.KeyUsers)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var users []domain.User
	if err := json.Unmarshal(raw, &users); err != nil {
		s.logger.Printf("account: discarding malformed user directory profile=%s err=%v", profile, err)
		return nil, nil
	}
	return users, nil
}

func (s *Service) setSession(ctx context.Context, profile, name string) error {
	flag, err := json.Marshal("true")
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, profile, kv.KeyUserLoggedIn, flag); err != nil {
		return err
	}
	display, err := json.Marshal(name)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, profile, kv.KeyUserName, display)
}
