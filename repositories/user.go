//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	stderrors "errors"
	"fmt"
	"strings"
	"talk/errors"
	"time"

	"github.com/dgraph-io/badger/v4"
)

type IUserRepository interface {
	CreateUser(user User) error
	GetUserByEmail(email string) (User, error)
	GetUserByID(id string) (User, error)
	UpdateDisplayName(id, displayName string) (User, error)
}

type UserRepository struct {
	db *badger.DB
}

func NewUserRepository(db *badger.DB) IUserRepository {
	return &UserRepository{db: db}
}

// User is the stored account. Anonymous accounts have no email and no password hash.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	Anonymous    bool
	CreatedAt    time.Time
}

// Keys: "user:{id}" holds the record, "email:{email}" points to the id.
func userKey(id string) []byte { return []byte("user:" + id) }

func emailKey(email string) []byte {
	return []byte("email:" + strings.ToLower(strings.TrimSpace(email)))
}

// CreateUser persists a new account and its email index in one transaction.
// A taken email fails with ErrEmailAlreadyInUse.
func (u *UserRepository) CreateUser(user User) error {
	data, err := encodeRecord(fromUser(user))
	if err != nil {
		return err
	}

	return u.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(userKey(user.ID)); err == nil {
			return errors.ErrAlreadyExists
		}
		if user.Email != "" {
			if _, err := txn.Get(emailKey(user.Email)); err == nil {
				return errors.ErrEmailAlreadyInUse
			}
			if err := txn.Set(emailKey(user.Email), []byte(user.ID)); err != nil {
				return err
			}
		}
		return txn.Set(userKey(user.ID), data)
	})
}

// GetUserByEmail resolves the email index then loads the account.
func (u *UserRepository) GetUserByEmail(email string) (User, error) {
	var user User
	err := u.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(emailKey(email))
		if err != nil {
			return notFound(err)
		}
		id, err := item.ValueCopy(nil)
		if err != nil {
			return err
		}
		user, err = getUser(txn, string(id))
		return err
	})
	return user, err
}

func (u *UserRepository) GetUserByID(id string) (User, error) {
	var user User
	err := u.db.View(func(txn *badger.Txn) error {
		var err error
		user, err = getUser(txn, id)
		return err
	})
	return user, err
}

func (u *UserRepository) UpdateDisplayName(id, displayName string) (User, error) {
	var user User
	err := u.db.Update(func(txn *badger.Txn) error {
		var err error
		user, err = getUser(txn, id)
		if err != nil {
			return err
		}
		user.DisplayName = displayName
		data, err := encodeRecord(fromUser(user))
		if err != nil {
			return err
		}
		return txn.Set(userKey(id), data)
	})
	return user, err
}

func getUser(txn *badger.Txn, id string) (User, error) {
	item, err := txn.Get(userKey(id))
	if err != nil {
		return User{}, notFound(err)
	}
	var user User
	err = item.Value(func(val []byte) error {
		fields, err := decodeRecord(val)
		if err != nil {
			return err
		}
		user = toUser(fields)
		return nil
	})
	return user, err
}

func notFound(err error) error {
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return errors.ErrUserNotFound
	}
	return fmt.Errorf("user lookup failed: %w", err)
}

func fromUser(user User) map[string]any {
	return map[string]any{
		"id":           user.ID,
		"email":        user.Email,
		"passwordHash": user.PasswordHash,
		"displayName":  user.DisplayName,
		"anonymous":    user.Anonymous,
		"createdAt":    float64(user.CreatedAt.UnixMilli()),
	}
}

func toUser(fields map[string]any) User {
	str := func(key string) string {
		s, _ := fields[key].(string)
		return s
	}
	anonymous, _ := fields["anonymous"].(bool)
	createdAt, _ := fields["createdAt"].(float64)
	return User{
		ID:           str("id"),
		Email:        str("email"),
		PasswordHash: str("passwordHash"),
		DisplayName:  str("displayName"),
		Anonymous:    anonymous,
		CreatedAt:    time.UnixMilli(int64(createdAt)).UTC(),
	}
}
