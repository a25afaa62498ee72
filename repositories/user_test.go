package repositories

import (
	"testing"
	"time"

	"timebank/domain"
	"timebank/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openBadger(t *testing.T) *badger.DB {
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_User_Create_And_Get(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openBadger(t))

	id, err := repository.CreateUser("alice@example.com", "$argon2id$hash")
	req.NoError(err)
	req.NotEmpty(id)

	user, err := repository.GetUserByEmail("alice@example.com")
	req.NoError(err)
	req.Equal(id, user.ID)
	req.Equal([]string{"user"}, user.Roles)

	_, err = repository.CreateUser("alice@example.com", "other")
	req.ErrorIs(err, errors.ErrUserAlreadyExists)

	_, err = repository.GetUserByEmail("nobody@example.com")
	req.ErrorIs(err, badger.ErrKeyNotFound)
}

func Test_Profile_Lifecycle(t *testing.T) {
	req := require.New(t)
	repository := NewUserRepository(openBadger(t))
	profile := domain.Profile{
		ID:        "u1",
		FullName:  "Alice Martin",
		Phone:     "+33612345678",
		Email:     "alice@example.com",
		Role:      domain.RoleExecutive,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	_, err := repository.GetProfile("u1")
	req.ErrorIs(err, errors.ErrProfileNotFound)
	req.ErrorIs(repository.UpdateProfile(profile), errors.ErrProfileNotFound)

	req.NoError(repository.CreateProfile(profile))
	req.ErrorIs(repository.CreateProfile(profile), errors.ErrProfileAlreadyExists)

	profile.Phone = "+33700000000"
	req.NoError(repository.UpdateProfile(profile))

	stored, err := repository.GetProfile("u1")
	req.NoError(err)
	req.Equal(profile, stored)

	req.NoError(repository.CreateProfile(domain.Profile{ID: "u2", FullName: "Bob", Role: domain.RoleAdmin}))
	profiles, err := repository.ListProfiles()
	req.NoError(err)
	req.Len(profiles, 2)
	req.Equal("u1", profiles[0].ID)
	req.Equal("u2", profiles[1].ID)
}
