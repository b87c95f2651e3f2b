package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"workout-tracker/internal/repository"
	"workout-tracker/internal/repository/sqlite"
)

var testDBSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:svctest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := sqlite.NewDB(dsn)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func newAuthService(t *testing.T, lifetime time.Duration) (AuthService, repository.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	userRepo := sqlite.NewUserRepository(db)
	return NewAuthService(userRepo, "test-token-secret", "test-password-secret", lifetime), userRepo
}

const goodPassword = "Str0ngPass"

func TestSignupAndLogin(t *testing.T) {
	svc, _ := newAuthService(t, time.Hour)
	ctx := context.Background()

	user, token, err := svc.Signup(ctx, "jane@example.com", "Jane", "Doe", goodPassword)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEmpty(t, token)
	assert.Empty(t, user.HashedPassword)

	loginToken, loginUser, err := svc.Login(ctx, "jane@example.com", goodPassword)
	require.NoError(t, err)
	assert.Equal(t, user.ID, loginUser.ID)
	assert.NotEmpty(t, loginToken)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t, time.Hour)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, "jane@example.com", "Jane", "Doe", goodPassword)
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "jane@example.com", "Wr0ngPassword")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)

	// Unknown email fails the same way.
	_, _, err = svc.Login(ctx, "nobody@example.com", goodPassword)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t, time.Hour)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, "jane@example.com", "Jane", "Doe", goodPassword)
	require.NoError(t, err)

	_, _, err = svc.Signup(ctx, "jane@example.com", "Other", "Person", goodPassword)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestSignupMissingFields(t *testing.T) {
	svc, _ := newAuthService(t, time.Hour)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, "", "Jane", "Doe", goodPassword)
	assert.ErrorIs(t, err, ErrMissingParameter)

	_, _, err = svc.Signup(ctx, "jane@example.com", "", "Doe", goodPassword)
	assert.ErrorIs(t, err, ErrMissingParameter)
}

func TestPasswordPolicy(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"all classes present", "Str0ngPass", true},
		{"minimum length", "Aa1bcdef", true},
		{"too short", "Aa1bcde", false},
		{"no uppercase", "str0ngpass", false},
		{"no lowercase", "STR0NGPASS", false},
		{"no digit", "StrongPass", false},
		{"contains space", "Str0ng Pass", false},
		{"contains tab", "Str0ng\tPass", false},
		{"over maximum length", "Aa1" + repeatRune('x', 98), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, validPassword(tt.password))
		})
	}
}

func repeatRune(r rune, n int) string {
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = r
	}
	return string(runes)
}

func TestWeakPasswordRejectedBeforeHashing(t *testing.T) {
	svc, userRepo := newAuthService(t, time.Hour)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, "jane@example.com", "Jane", "Doe", "weak")
	assert.ErrorIs(t, err, ErrWeakPassword)

	_, err = userRepo.GetByEmail(ctx, "jane@example.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestVerifyTokenRoundTrip(t *testing.T) {
	svc, _ := newAuthService(t, time.Hour)
	ctx := context.Background()

	user, token, err := svc.Signup(ctx, "jane@example.com", "Jane", "Doe", goodPassword)
	require.NoError(t, err)

	userID, err := svc.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestVerifyTokenTampered(t *testing.T) {
	svc, _ := newAuthService(t, time.Hour)
	ctx := context.Background()

	_, token, err := svc.Signup(ctx, "jane@example.com", "Jane", "Doe", goodPassword)
	require.NoError(t, err)

	_, err = svc.VerifyToken(token + "tampered")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = svc.VerifyToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	db := newTestDB(t)
	userRepo := sqlite.NewUserRepository(db)
	issuer := NewAuthService(userRepo, "secret-one", "pepper", time.Hour)
	verifier := NewAuthService(userRepo, "secret-two", "pepper", time.Hour)
	ctx := context.Background()

	_, token, err := issuer.Signup(ctx, "jane@example.com", "Jane", "Doe", goodPassword)
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenExpired(t *testing.T) {
	svc, _ := newAuthService(t, time.Nanosecond)
	ctx := context.Background()

	_, token, err := svc.Signup(ctx, "jane@example.com", "Jane", "Doe", goodPassword)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	_, err = svc.VerifyToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestPepperedHashesDifferAcrossSecrets(t *testing.T) {
	db := newTestDB(t)
	userRepo := sqlite.NewUserRepository(db)
	svcA := NewAuthService(userRepo, "token-secret", "pepper-a", time.Hour)
	svcB := NewAuthService(userRepo, "token-secret", "pepper-b", time.Hour)
	ctx := context.Background()

	_, _, err := svcA.Signup(ctx, "jane@example.com", "Jane", "Doe", goodPassword)
	require.NoError(t, err)

	// Without the right password secret the stored digest is unusable.
	_, _, err = svcB.Login(ctx, "jane@example.com", goodPassword)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}
