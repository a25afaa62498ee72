//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"timebank/domain"
	"timebank/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const profilePrefix = "profile:"

type IUserRepository interface {
	CreateUser(email, hashedPassword string) (string, error)
	GetUserByEmail(email string) (User, error)
	CreateProfile(profile domain.Profile) error
	UpdateProfile(profile domain.Profile) error
	GetProfile(userID string) (domain.Profile, error)
	ListProfiles() ([]domain.Profile, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// User is the account record, keyed by email. The profile is stored apart, keyed by ID.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	Roles        []string  `json:"roles"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateUser persists a new account and returns its generated ID.
func (u UserRepository) CreateUser(email, hashedPassword string) (string, error) {
	user := User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hashedPassword,
		Roles:        []string{"user"},
		CreatedAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(user)
	if err != nil {
		return "", fmt.Errorf("marshal failed: %w", err)
	}

	err = u.db.Update(func(txn *badger.Txn) error {
		key := []byte("user:" + email)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrUserAlreadyExists
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func (u UserRepository) GetUserByEmail(email string) (User, error) {
	var user User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte("user:" + email))
		if err != nil {
			return err // Will be handled as ErrInvalidCredentials by the service
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &user)
		})
	})
	if err != nil {
		return User{}, err
	}
	return user, nil
}

// CreateProfile stores the registration of a user; a user registers once.
func (u UserRepository) CreateProfile(profile domain.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return u.db.Update(func(txn *badger.Txn) error {
		key := []byte(profilePrefix + profile.ID)
		if _, err := txn.Get(key); err == nil {
			return errors.ErrProfileAlreadyExists
		}
		return txn.Set(key, data)
	})
}

func (u UserRepository) UpdateProfile(profile domain.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	return u.db.Update(func(txn *badger.Txn) error {
		key := []byte(profilePrefix + profile.ID)
		if _, err := txn.Get(key); stderrors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrProfileNotFound
		} else if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

func (u UserRepository) GetProfile(userID string) (domain.Profile, error) {
	var profile domain.Profile
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(profilePrefix + userID))
		if stderrors.Is(err, badger.ErrKeyNotFound) {
			return errors.ErrProfileNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &profile)
		})
	})
	return profile, err
}

// ListProfiles scans every profile, in key order.
func (u UserRepository) ListProfiles() ([]domain.Profile, error) {
	var profiles []domain.Profile
	err := u.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(profilePrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var profile domain.Profile
				if err := json.Unmarshal(val, &profile); err != nil {
					return err
				}
				profiles = append(profiles, profile)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}
