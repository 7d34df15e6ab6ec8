package services

import (
	"database/sql"
	"errors"

	"ecofinds/internal/domain"
	"ecofinds/internal/repos"
	"ecofinds/internal/validate"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	Users *repos.UserRepo
}

// Register creates a user with a bcrypt hash and binds the session.
// The duplicate check rides on the unique index over LOWER(email).
func (s *AuthService) Register(sid, email, password, username string) (*domain.User, error) {
	email, ok := validate.Email(email)
	if !ok {
		return nil, domain.Invalid("email", "Please enter a valid email.")
	}
	username, ok = validate.Username(username)
	if !ok {
		return nil, domain.Invalid("username", "Username cannot be empty.")
	}
	if password == "" {
		return nil, domain.Invalid("password", "Password cannot be empty.")
	}

	if _, err := s.Users.ByEmail(email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &domain.User{ID: uuid.NewString(), Email: email, Username: username, Hash: string(hash)}
	if err := s.Users.Create(u.ID, u.Email, u.Username, u.Hash); err != nil {
		return nil, err
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

// Login never distinguishes unknown email from wrong password.
func (s *AuthService) Login(sid, email, password string) (*domain.User, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, domain.ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, domain.ErrBadCreds
	}
	if err := s.Users.BindSession(sid, u.ID); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *AuthService) Logout(sid string) error {
	return s.Users.UnbindSession(sid)
}

func (s *AuthService) CurrentUser(sid string) (*domain.User, error) {
	return s.Users.SessionUser(sid)
}

func (s *AuthService) UpdateProfile(userID, username string) error {
	username, ok := validate.Username(username)
	if !ok {
		return domain.Invalid("username", "Username cannot be empty.")
	}
	return s.Users.UpdateUsername(userID, username)
}
