package authservice

import (
	"time"

	authdomain "github.com/tomato-game/tomato-api/app/modules/auth/domain"
)

// ------------------------
// Fake JWT Provider
// ------------------------

type FakeJWTProvider struct {
	GenerateTokenFunc func(userID int64, ttl time.Duration) (string, error)
	ValidateTokenFunc func(tokenString string) (*authdomain.Claims, error)
}

func (f *FakeJWTProvider) GenerateToken(userID int64, ttl time.Duration) (string, error) {
	if f.GenerateTokenFunc != nil {
		return f.GenerateTokenFunc(userID, ttl)
	}
	return "fake-token", nil
}

func (f *FakeJWTProvider) ValidateToken(tokenString string) (*authdomain.Claims, error) {
	if f.ValidateTokenFunc != nil {
		return f.ValidateTokenFunc(tokenString)
	}
	return &authdomain.Claims{
		UserID:    1,
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

// ------------------------
// Fake Password Hasher
// ------------------------

type FakeHasher struct {
	HashFunc   func(password string) (string, error)
	VerifyFunc func(password, hash string) bool
}

func (f *FakeHasher) Hash(password string) (string, error) {
	if f.HashFunc != nil {
		return f.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (f *FakeHasher) Verify(password, hash string) bool {
	if f.VerifyFunc != nil {
		return f.VerifyFunc(password, hash)
	}
	return hash == "hashed:"+password
}
