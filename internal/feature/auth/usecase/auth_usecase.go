package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gamereview_backend/internal/feature/auth/domain/entity"
)

// maxSessionsPerUser caps concurrent sessions; the oldest one is evicted
// when a new login would exceed it.
const maxSessionsPerUser = 5

// dummyHash is compared against when the user does not exist, so login takes
// the same time whether the email is registered or not.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when the
	// email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the (already normalized) email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Update persists changes to an existing user.
	Update(ctx context.Context, user *entity.User) error
}

// TokenGenerator signs a stateless bearer token for a user.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (platform/jwt).
type TokenGenerator interface {
	GenerateToken(userID uint) (string, error)
}

// ClientInfo carries request metadata recorded on the session for auditing.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

// Credentials is what a successful registration or login hands back: a signed
// bearer token for API clients and a server-side session for cookie clients.
// Both are issued at once so either client type can authenticate later.
type Credentials struct {
	Token   string
	Session *entity.Session
}

// ProfileUpdate is a partial update; nil fields are left unchanged.
type ProfileUpdate struct {
	Name          *string
	Bio           *string
	FavoriteGenre *string
}

// authUsecase implements the account business logic.
type authUsecase struct {
	users      UserRepository
	sessions   SessionRepository
	tokens     TokenGenerator
	sessionTTL time.Duration
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, tokens TokenGenerator, sessionTTL time.Duration) *authUsecase {
	if sessionTTL <= 0 {
		sessionTTL = time.Hour
	}
	return &authUsecase{
		users:      users,
		sessions:   sessions,
		tokens:     tokens,
		sessionTTL: sessionTTL,
	}
}

// NormalizeEmail lowers and trims an email address; lookups and storage
// always go through this so email matching is case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user with a hashed password and issues credentials.
// Field shape is validated at the transport layer; the unique-email rule is
// enforced here via the store (ErrEmailAlreadyExists).
func (u *authUsecase) Register(ctx context.Context, name, email, password string, client ClientInfo) (*entity.User, *Credentials, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Name:     strings.TrimSpace(name),
		Email:    NormalizeEmail(email),
		Password: string(hashed),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, nil, err
	}

	creds, err := u.issueCredentials(ctx, user.ID, client)
	if err != nil {
		return nil, nil, err
	}
	return user, creds, nil
}

// Login authenticates a user and issues credentials on success.
// A dummy bcrypt comparison runs even when the email is unknown, so the two
// failure modes are indistinguishable by both response and timing.
func (u *authUsecase) Login(ctx context.Context, email, password string, client ClientInfo) (*entity.User, *Credentials, error) {
	user, err := u.users.FindByEmail(ctx, NormalizeEmail(email))

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.Password
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, nil, ErrInvalidCredentials
	}

	creds, err := u.issueCredentials(ctx, user.ID, client)
	if err != nil {
		return nil, nil, err
	}
	return user, creds, nil
}

// GetProfile returns the user for the given ID.
func (u *authUsecase) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	return u.users.FindByID(ctx, userID)
}

// UpdateProfile applies only the supplied fields and returns the updated user.
func (u *authUsecase) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		user.Name = strings.TrimSpace(*update.Name)
	}
	if update.Bio != nil {
		user.Bio = strings.TrimSpace(*update.Bio)
	}
	if update.FavoriteGenre != nil {
		user.FavoriteGenre = strings.TrimSpace(*update.FavoriteGenre)
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ChangePassword verifies the current password, stores a new hash and revokes
// every session so stolen cookies stop working. Outstanding bearer tokens stay
// valid until their natural expiry.
func (u *authUsecase) ChangePassword(ctx context.Context, userID uint, current, next string) error {
	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(current)); err != nil {
		return ErrInvalidCredentials
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(next), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)
	if err := u.users.Update(ctx, user); err != nil {
		return err
	}

	return u.sessions.RevokeAllByUserID(ctx, userID)
}

// Logout revokes the session. Revoking an already-gone session is not an
// error; logout is idempotent.
func (u *authUsecase) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := u.sessions.Revoke(ctx, sessionID); err != nil && err != ErrSessionNotFound {
		return err
	}
	return nil
}

// issueCredentials creates both auth carriers for a verified user ID.
func (u *authUsecase) issueCredentials(ctx context.Context, userID uint, client ClientInfo) (*Credentials, error) {
	token, err := u.tokens.GenerateToken(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	// Evict the oldest session once the cap is reached.
	count, err := u.sessions.CountByUserID(ctx, userID)
	if err == nil && count >= maxSessionsPerUser {
		_ = u.sessions.DeleteOldestByUserID(ctx, userID)
	}

	id, err := newSessionID()
	if err != nil {
		return nil, err
	}
	now := time.Now()
	session := &entity.Session{
		ID:        id,
		UserID:    userID,
		UserAgent: client.UserAgent,
		IPAddress: client.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(u.sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	return &Credentials{Token: token, Session: session}, nil
}

// newSessionID returns a 64-character hex string from a CSPRNG.
func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
