package services

import (
	"encoding/json"
	"fmt"
	"time"

	"checktrack/internal/models"
	"checktrack/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// UserService is the typed facade over the users collection. It stamps
// creation timestamps and keeps password hashing out of its callers.
type UserService struct {
	col *store.Collection[models.User, *models.User]
}

func NewUserService(col *store.Collection[models.User, *models.User]) *UserService {
	return &UserService{col: col}
}

func (s *UserService) List() []models.User {
	return s.col.List()
}

func (s *UserService) Get(id string) (models.User, error) {
	return s.col.Get(id)
}

// GetByUsername returns the first user with the given username. Uniqueness is
// not enforced at write time, matching the rest of the system.
func (s *UserService) GetByUsername(username string) (models.User, error) {
	matches := s.col.Query(func(u models.User) bool { return u.Username == username })
	if len(matches) == 0 {
		return models.User{}, store.ErrNotFound
	}
	return matches[0], nil
}

// Create stamps id and createdAt, hashes the password and inserts the user.
func (s *UserService) Create(u models.User) (models.User, error) {
	if u.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, fmt.Errorf("hash password: %w", err)
		}
		u.Password = string(hash)
	}
	u.CreatedAt = time.Now().UTC()
	u.LastLogin = nil
	return s.col.Insert(u)
}

// Update applies a shallow merge. A password in the patch is hashed before it
// reaches the store.
func (s *UserService) Update(id string, patch map[string]json.RawMessage) (models.User, error) {
	if raw, ok := patch["password"]; ok {
		var plain string
		if err := json.Unmarshal(raw, &plain); err != nil {
			return models.User{}, fmt.Errorf("invalid password field: %w", err)
		}
		if plain == "" {
			delete(patch, "password")
		} else {
			hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
			if err != nil {
				return models.User{}, fmt.Errorf("hash password: %w", err)
			}
			hashed, _ := json.Marshal(string(hash))
			patch["password"] = hashed
		}
	}
	return s.col.Update(id, patch)
}

func (s *UserService) Delete(id string) error {
	return s.col.Delete(id)
}

// TouchLastLogin stamps lastLogin = now on the user and returns the updated
// record.
func (s *UserService) TouchLastLogin(id string) (models.User, error) {
	now, err := json.Marshal(time.Now().UTC())
	if err != nil {
		return models.User{}, err
	}
	return s.col.Update(id, map[string]json.RawMessage{"lastLogin": now})
}
