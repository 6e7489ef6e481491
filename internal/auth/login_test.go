package auth

import (
	"context"
	"errors"
	"testing"
)

type fakeUserFinder struct {
	users map[string]User
}

func (f *fakeUserFinder) UserByUsername(_ context.Context, username string) (User, error) {
	user, ok := f.users[username]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func TestLogin(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	users := &fakeUserFinder{users: map[string]User{
		"ivan": {ID: "user-1", Username: "ivan", PasswordHash: hash, Status: UserStatusActive},
		"off":  {ID: "user-2", Username: "off", PasswordHash: hash, Status: UserStatusDisabled},
	}}
	store := newFakeSessionStore()
	mgr := NewSessionManager(store)
	authn, err := NewAuthenticator(users, mgr)
	if err != nil {
		t.Fatalf("NewAuthenticator: %v", err)
	}

	token, _, err := authn.Login(context.Background(), "ivan", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	session, err := mgr.Validate(context.Background(), token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if session.UserID != "user-1" {
		t.Fatalf("unexpected session owner: %s", session.UserID)
	}

	cases := []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "ivan", "nope"},
		{"unknown user", "ghost", "s3cret"},
		{"disabled user", "off", "s3cret"},
		{"empty username", "", "s3cret"},
		{"empty password", "ivan", ""},
	}
	for _, tc := range cases {
		if _, _, err := authn.Login(context.Background(), tc.username, tc.password); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("%s: expected ErrInvalidCredentials, got %v", tc.name, err)
		}
	}
}
