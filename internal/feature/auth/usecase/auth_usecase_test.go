package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"gamereview_backend/internal/feature/auth/domain/entity"
)

// mockUserRepo is a mock implementation of the UserRepository interface.
type mockUserRepo struct {
	CreateFunc      func(ctx context.Context, user *entity.User) error
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	FindByIDFunc    func(ctx context.Context, id uint) (*entity.User, error)
	UpdateFunc      func(ctx context.Context, user *entity.User) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	user.ID = 1
	return nil
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func (m *mockUserRepo) Update(ctx context.Context, user *entity.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, user)
	}
	return nil
}

// mockSessionRepo is a mock implementation of the SessionRepository interface.
type mockSessionRepo struct {
	CreateFunc               func(ctx context.Context, session *entity.Session) error
	FindByIDFunc             func(ctx context.Context, id string) (*entity.Session, error)
	RevokeFunc               func(ctx context.Context, id string) error
	RevokeAllByUserIDFunc    func(ctx context.Context, userID uint) error
	DeleteExpiredFunc        func(ctx context.Context) (int64, error)
	CountByUserIDFunc        func(ctx context.Context, userID uint) (int64, error)
	DeleteOldestByUserIDFunc func(ctx context.Context, userID uint) error
}

func (m *mockSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

func (m *mockSessionRepo) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrSessionNotFound
}

func (m *mockSessionRepo) Revoke(ctx context.Context, id string) error {
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, id)
	}
	return nil
}

func (m *mockSessionRepo) RevokeAllByUserID(ctx context.Context, userID uint) error {
	if m.RevokeAllByUserIDFunc != nil {
		return m.RevokeAllByUserIDFunc(ctx, userID)
	}
	return nil
}

func (m *mockSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	return 0, nil
}

func (m *mockSessionRepo) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	if m.CountByUserIDFunc != nil {
		return m.CountByUserIDFunc(ctx, userID)
	}
	return 0, nil
}

func (m *mockSessionRepo) DeleteOldestByUserID(ctx context.Context, userID uint) error {
	if m.DeleteOldestByUserIDFunc != nil {
		return m.DeleteOldestByUserIDFunc(ctx, userID)
	}
	return nil
}

// mockTokenGen is a mock implementation of the TokenGenerator interface.
type mockTokenGen struct {
	GenerateTokenFunc func(userID uint) (string, error)
}

func (m *mockTokenGen) GenerateToken(userID uint) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID)
	}
	return "test-token", nil
}

func newTestUsecase(users *mockUserRepo, sessions *mockSessionRepo) *authUsecase {
	return NewAuthUsecase(users, sessions, &mockTokenGen{}, time.Hour)
}

func hashPassword(t *testing.T, plain string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ann@example.com", NormalizeEmail("  Ann@Example.COM "))
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("hashes the password and issues both credentials", func(t *testing.T) {
		var stored *entity.User
		var createdSession *entity.Session
		users := &mockUserRepo{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				user.ID = 7
				stored = user
				return nil
			},
		}
		sessions := &mockSessionRepo{
			CreateFunc: func(ctx context.Context, session *entity.Session) error {
				createdSession = session
				return nil
			},
		}
		uc := newTestUsecase(users, sessions)

		user, creds, err := uc.Register(context.Background(), "  Ann  ", "Ann@Example.com", "secret123",
			ClientInfo{UserAgent: "go-test", IPAddress: "127.0.0.1"})

		require.NoError(t, err)
		assert.Equal(t, "Ann", user.Name)
		assert.Equal(t, "ann@example.com", user.Email)
		assert.NotEqual(t, "secret123", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))

		assert.Equal(t, "test-token", creds.Token)
		require.NotNil(t, creds.Session)
		assert.Len(t, creds.Session.ID, 64)
		assert.Equal(t, uint(7), creds.Session.UserID)
		assert.Equal(t, "go-test", createdSession.UserAgent)
		assert.WithinDuration(t, time.Now().Add(time.Hour), createdSession.ExpiresAt, 5*time.Second)
	})

	t.Run("propagates duplicate email", func(t *testing.T) {
		users := &mockUserRepo{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrEmailAlreadyExists
			},
		}
		uc := newTestUsecase(users, &mockSessionRepo{})

		_, _, err := uc.Register(context.Background(), "Ann", "ann@example.com", "secret123", ClientInfo{})

		assert.ErrorIs(t, err, ErrEmailAlreadyExists)
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	hash := hashPassword(t, "secret123")
	existing := &entity.User{ID: 1, Name: "Ann", Email: "ann@example.com", Password: hash}

	tests := []struct {
		name     string
		email    string
		password string
		found    *entity.User
		wantErr  error
	}{
		{
			name:     "success",
			email:    "Ann@Example.com",
			password: "secret123",
			found:    existing,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "secret123",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "ann@example.com",
			password: "wrong",
			found:    existing,
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserRepo{
				FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
					assert.Equal(t, NormalizeEmail(tt.email), email)
					if tt.found != nil {
						return tt.found, nil
					}
					return nil, ErrUserNotFound
				},
			}
			uc := newTestUsecase(users, &mockSessionRepo{})

			user, creds, err := uc.Login(context.Background(), tt.email, tt.password, ClientInfo{})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
				assert.Nil(t, creds)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, existing.ID, user.ID)
			assert.NotEmpty(t, creds.Token)
			assert.NotNil(t, creds.Session)
		})
	}
}

func TestAuthUsecase_Login_EvictsOldestSessionAtCap(t *testing.T) {
	hash := hashPassword(t, "secret123")
	users := &mockUserRepo{
		FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
			return &entity.User{ID: 1, Email: email, Password: hash}, nil
		},
	}
	evicted := false
	sessions := &mockSessionRepo{
		CountByUserIDFunc: func(ctx context.Context, userID uint) (int64, error) {
			return maxSessionsPerUser, nil
		},
		DeleteOldestByUserIDFunc: func(ctx context.Context, userID uint) error {
			evicted = true
			return nil
		},
	}
	uc := newTestUsecase(users, sessions)

	_, _, err := uc.Login(context.Background(), "ann@example.com", "secret123", ClientInfo{})

	require.NoError(t, err)
	assert.True(t, evicted)
}

func TestAuthUsecase_UpdateProfile(t *testing.T) {
	user := &entity.User{ID: 1, Name: "Ann", Email: "ann@example.com", Bio: "old bio"}
	var saved *entity.User
	users := &mockUserRepo{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
			return user, nil
		},
		UpdateFunc: func(ctx context.Context, u *entity.User) error {
			saved = u
			return nil
		},
	}
	uc := newTestUsecase(users, &mockSessionRepo{})

	bio := "  RPG fan  "
	got, err := uc.UpdateProfile(context.Background(), 1, ProfileUpdate{Bio: &bio})

	require.NoError(t, err)
	assert.Equal(t, "RPG fan", got.Bio)
	assert.Equal(t, "Ann", got.Name) // untouched field stays
	assert.Same(t, got, saved)
}

func TestAuthUsecase_ChangePassword(t *testing.T) {
	t.Run("rehashes and revokes all sessions", func(t *testing.T) {
		hash := hashPassword(t, "oldpass")
		user := &entity.User{ID: 1, Password: hash}
		revoked := false
		users := &mockUserRepo{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return user, nil
			},
		}
		sessions := &mockSessionRepo{
			RevokeAllByUserIDFunc: func(ctx context.Context, userID uint) error {
				revoked = true
				return nil
			},
		}
		uc := newTestUsecase(users, sessions)

		err := uc.ChangePassword(context.Background(), 1, "oldpass", "newpass1")

		require.NoError(t, err)
		assert.True(t, revoked)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("newpass1")))
	})

	t.Run("rejects a wrong current password", func(t *testing.T) {
		hash := hashPassword(t, "oldpass")
		users := &mockUserRepo{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return &entity.User{ID: 1, Password: hash}, nil
			},
		}
		uc := newTestUsecase(users, &mockSessionRepo{})

		err := uc.ChangePassword(context.Background(), 1, "wrong", "newpass1")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthUsecase_Logout(t *testing.T) {
	t.Run("revokes the session", func(t *testing.T) {
		var revokedID string
		sessions := &mockSessionRepo{
			RevokeFunc: func(ctx context.Context, id string) error {
				revokedID = id
				return nil
			},
		}
		uc := newTestUsecase(&mockUserRepo{}, sessions)

		err := uc.Logout(context.Background(), "abc123")

		require.NoError(t, err)
		assert.Equal(t, "abc123", revokedID)
	})

	t.Run("is idempotent for missing sessions", func(t *testing.T) {
		sessions := &mockSessionRepo{
			RevokeFunc: func(ctx context.Context, id string) error {
				return ErrSessionNotFound
			},
		}
		uc := newTestUsecase(&mockUserRepo{}, sessions)

		assert.NoError(t, uc.Logout(context.Background(), "gone"))
	})

	t.Run("ignores an empty session id", func(t *testing.T) {
		uc := newTestUsecase(&mockUserRepo{}, &mockSessionRepo{})
		assert.NoError(t, uc.Logout(context.Background(), ""))
	})

	t.Run("surfaces storage errors", func(t *testing.T) {
		sessions := &mockSessionRepo{
			RevokeFunc: func(ctx context.Context, id string) error {
				return errors.New("redis down")
			},
		}
		uc := newTestUsecase(&mockUserRepo{}, sessions)

		assert.Error(t, uc.Logout(context.Background(), "abc123"))
	})
}
