// Package session keeps the signed-in user of one browser session.
//
// A Session holds at most one current user. Login looks the user up in the
// directory by email and role; the password is accepted as-is because this is
// a demo credential check. Signup appends a new record to the directory and
// makes it current. The role of a user never changes after creation.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/afrilink/platform_be/internal/directory"
	"github.com/afrilink/platform_be/internal/models"
	"github.com/afrilink/platform_be/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("name, email and role are required")
)

// InvalidCredentialsMessage is shown to the user when login fails.
const InvalidCredentialsMessage = "Invalid email or password. Try: amara@example.com (freelancer) or kofi@example.com (client)"

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     models.Role
	Bio      string
	Location string
	Skills   []string
}

// ProfileUpdate merges only the non-nil fields.
type ProfileUpdate struct {
	Name     *string
	Bio      *string
	Location *string
	Avatar   *string
	Skills   *[]string
}

type Session struct {
	ID string

	repo directory.Repository

	mu       sync.RWMutex
	current  *models.User
	lastSeen time.Time
}

func New(id string, repo directory.Repository) *Session {
	return &Session{ID: id, repo: repo}
}

// Current returns a copy of the signed-in user.
func (s *Session) Current() (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, false
	}
	return s.current.Clone(), true
}

// Touch records activity at t.
func (s *Session) Touch(t time.Time) {
	s.mu.Lock()
	s.lastSeen = t
	s.mu.Unlock()
}

func (s *Session) LastSeen() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeen
}

func (s *Session) IsAuthenticated() bool {
	_, ok := s.Current()
	return ok
}

// Login ignores password. On failure the current user is left untouched.
func (s *Session) Login(ctx context.Context, email, _ string, role models.Role) (*models.User, error) {
	u, err := s.repo.FindByEmailAndRole(ctx, strings.TrimSpace(email), role)
	if err != nil {
		if errors.Is(err, directory.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	s.mu.Lock()
	s.current = u
	s.mu.Unlock()

	return u.Clone(), nil
}

// Signup never rejects a duplicate email.
func (s *Session) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" || in.Role == "" {
		return nil, ErrMissingFields
	}

	u := &models.User{
		ID:            uuid.NewString(),
		Name:          name,
		Email:         email,
		Role:          in.Role,
		Bio:           in.Bio,
		Location:      in.Location,
		Skills:        in.Skills,
		Rating:        0,
		CompletedJobs: 0,
	}

	if in.Password != "" {
		hash, err := utils.HashPassword(in.Password)
		if err != nil {
			return nil, fmt.Errorf("signup: hash password: %w", err)
		}
		u.Password = hash
	}

	if err := s.repo.Insert(ctx, u); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	s.mu.Lock()
	s.current = u.Clone()
	s.mu.Unlock()

	return u.Clone(), nil
}

func (s *Session) Logout() {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()
}

// UpdateProfile returns (nil, nil) when nobody is signed in. A directory
// entry that has disappeared is not an error; the session copy is still
// updated.
func (s *Session) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, nil
	}

	merged := s.current.Clone()
	if upd.Name != nil {
		merged.Name = *upd.Name
	}
	if upd.Bio != nil {
		merged.Bio = *upd.Bio
	}
	if upd.Location != nil {
		merged.Location = *upd.Location
	}
	if upd.Avatar != nil {
		merged.Avatar = *upd.Avatar
	}
	if upd.Skills != nil {
		merged.Skills = append([]string(nil), (*upd.Skills)...)
	}

	if err := s.repo.Update(ctx, merged); err != nil && !errors.Is(err, directory.ErrNotFound) {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.current = merged
	return merged.Clone(), nil
}
