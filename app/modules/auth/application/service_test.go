package authservice

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	authdomain "github.com/tomato-game/tomato-api/app/modules/auth/domain"
	userdb "github.com/tomato-game/tomato-api/app/modules/user/infrastructure/repositories"
)

func newTestService(repo userdb.Repository, jwtProvider *FakeJWTProvider, h *FakeHasher) Service {
	if jwtProvider == nil {
		jwtProvider = &FakeJWTProvider{}
	}
	if h == nil {
		h = &FakeHasher{}
	}
	return NewService(jwtProvider, h, repo, Config{AccessTTL: time.Hour}, slog.Default())
}

func TestLogin(t *testing.T) {
	activeUser := &userdb.User{
		ID:           1,
		Email:        "a@b.com",
		Username:     "alice",
		PasswordHash: "hashed:secret",
		IsActive:     true,
	}

	tests := []struct {
		name      string
		setupRepo func(*userdb.FakeRepository)
		email     string
		password  string
		wantErr   error
		wantToken string
	}{
		{
			name: "happy path",
			setupRepo: func(f *userdb.FakeRepository) {
				f.GetUserByEmailFunc = func(ctx context.Context, email string) (*userdb.User, error) {
					return activeUser, nil
				}
			},
			email:     "a@b.com",
			password:  "secret",
			wantToken: "fake-token",
		},
		{
			name: "unknown email",
			setupRepo: func(f *userdb.FakeRepository) {
				f.GetUserByEmailFunc = func(ctx context.Context, email string) (*userdb.User, error) {
					return nil, userdb.ErrNotFound
				}
			},
			email:    "nobody@b.com",
			password: "secret",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setupRepo: func(f *userdb.FakeRepository) {
				f.GetUserByEmailFunc = func(ctx context.Context, email string) (*userdb.User, error) {
					return activeUser, nil
				}
			},
			email:    "a@b.com",
			password: "wrong",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name: "repository failure",
			setupRepo: func(f *userdb.FakeRepository) {
				f.GetUserByEmailFunc = func(ctx context.Context, email string) (*userdb.User, error) {
					return nil, errors.New("database connection failed")
				}
			},
			email:    "a@b.com",
			password: "secret",
			wantErr:  nil, // opaque failure, but must not be ErrInvalidCredentials
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &userdb.FakeRepository{}
			tt.setupRepo(repo)

			svc := newTestService(repo, nil, nil)
			resp, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.name == "repository failure" {
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrInvalidCredentials)
				return
			}

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantToken, resp.AccessToken)
			assert.Equal(t, TokenTypeBearer, resp.TokenType)
		})
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLogin_UniformFailure(t *testing.T) {
	repo := &userdb.FakeRepository{
		GetUserByEmailFunc: func(ctx context.Context, email string) (*userdb.User, error) {
			if email == "known@b.com" {
				return &userdb.User{ID: 1, Email: email, PasswordHash: "hashed:secret", IsActive: true}, nil
			}
			return nil, userdb.ErrNotFound
		},
	}

	svc := newTestService(repo, nil, nil)

	_, errUnknown := svc.Login(context.Background(), "unknown@b.com", "secret")
	_, errWrongPw := svc.Login(context.Background(), "known@b.com", "wrong")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestLogin_PassesConfiguredTTL(t *testing.T) {
	var gotTTL time.Duration
	jwtProvider := &FakeJWTProvider{
		GenerateTokenFunc: func(userID int64, ttl time.Duration) (string, error) {
			gotTTL = ttl
			return "fake-token", nil
		},
	}
	repo := &userdb.FakeRepository{
		GetUserByEmailFunc: func(ctx context.Context, email string) (*userdb.User, error) {
			return &userdb.User{ID: 7, Email: email, PasswordHash: "hashed:pw", IsActive: true}, nil
		},
	}

	svc := NewService(jwtProvider, &FakeHasher{}, repo, Config{AccessTTL: 30 * time.Minute}, slog.Default())

	_, err := svc.Login(context.Background(), "a@b.com", "pw")
	assert.NoError(t, err)
	assert.Equal(t, 30*time.Minute, gotTTL)
}

func TestResolveIdentity(t *testing.T) {
	validClaims := &authdomain.Claims{
		UserID:    42,
		IssuedAt:  time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	tests := []struct {
		name      string
		token     string
		setupJWT  func(*FakeJWTProvider)
		setupRepo func(*userdb.FakeRepository)
		wantErr   error
		wantID    int64
	}{
		{
			name:  "happy path",
			token: "valid-token",
			setupJWT: func(f *FakeJWTProvider) {
				f.ValidateTokenFunc = func(string) (*authdomain.Claims, error) {
					return validClaims, nil
				}
			},
			setupRepo: func(f *userdb.FakeRepository) {
				f.GetUserByIDFunc = func(ctx context.Context, id int64) (*userdb.User, error) {
					return &userdb.User{ID: id, IsActive: true}, nil
				}
			},
			wantID: 42,
		},
		{
			name:    "missing token",
			token:   "",
			wantErr: ErrMissingToken,
		},
		{
			name:  "invalid token",
			token: "garbage",
			setupJWT: func(f *FakeJWTProvider) {
				f.ValidateTokenFunc = func(string) (*authdomain.Claims, error) {
					return nil, errors.New("invalid token")
				}
			},
			wantErr: ErrUnauthorized,
		},
		{
			name:  "user deleted after issuance",
			token: "valid-token",
			setupJWT: func(f *FakeJWTProvider) {
				f.ValidateTokenFunc = func(string) (*authdomain.Claims, error) {
					return validClaims, nil
				}
			},
			setupRepo: func(f *userdb.FakeRepository) {
				f.GetUserByIDFunc = func(ctx context.Context, id int64) (*userdb.User, error) {
					return nil, userdb.ErrNotFound
				}
			},
			wantErr: ErrUnauthorized,
		},
		{
			name:  "deactivated user",
			token: "valid-token",
			setupJWT: func(f *FakeJWTProvider) {
				f.ValidateTokenFunc = func(string) (*authdomain.Claims, error) {
					return validClaims, nil
				}
			},
			setupRepo: func(f *userdb.FakeRepository) {
				f.GetUserByIDFunc = func(ctx context.Context, id int64) (*userdb.User, error) {
					return &userdb.User{ID: id, IsActive: false}, nil
				}
			},
			wantErr: ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jwtProvider := &FakeJWTProvider{}
			if tt.setupJWT != nil {
				tt.setupJWT(jwtProvider)
			}
			repo := &userdb.FakeRepository{}
			if tt.setupRepo != nil {
				tt.setupRepo(repo)
			}

			svc := newTestService(repo, jwtProvider, nil)
			user, err := svc.ResolveIdentity(context.Background(), tt.token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantID, user.ID)
		})
	}
}
