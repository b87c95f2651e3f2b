package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"workout-tracker/internal/domain"
	"workout-tracker/internal/repository"
)

// --- Error Definitions ---
var (
	ErrUserAlreadyExists    = errors.New("user with this email already exists")
	ErrAuthenticationFailed = errors.New("invalid email or password")
	ErrWeakPassword         = errors.New("password must contain at least 8 characters, including uppercase, lowercase, numbers and must not contain spaces")
	ErrHashingFailed        = errors.New("failed to hash password")
	ErrTokenGeneration      = errors.New("failed to generate authentication token")
	ErrInvalidToken         = errors.New("invalid or expired token")
)

// AuthService turns passwords into verifiable credentials and identities
// into signed, expiring session tokens.
type AuthService interface {
	Signup(ctx context.Context, email, firstName, lastName, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (token string, user *domain.User, err error)
	VerifyToken(token string) (uint, error)
	JWTSecret() string
}

// authService implements the AuthService interface.
type authService struct {
	userRepo       repository.UserRepository
	jwtSecret      string
	passwordSecret string
	tokenLifetime  time.Duration
}

// NewAuthService creates a new instance of authService. Both secrets are
// process-wide, read-only after startup, and must be identical on every
// node that issues or verifies credentials.
func NewAuthService(userRepo repository.UserRepository, jwtSecret, passwordSecret string, tokenLifetime time.Duration) AuthService {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty") // Critical configuration
	}
	if passwordSecret == "" {
		panic("password secret cannot be empty")
	}
	if tokenLifetime <= 0 {
		tokenLifetime = 8 * time.Hour
	}
	return &authService{
		userRepo:       userRepo,
		jwtSecret:      jwtSecret,
		passwordSecret: passwordSecret,
		tokenLifetime:  tokenLifetime,
	}
}

// Signup registers a new user and issues a session token for it.
func (s *authService) Signup(ctx context.Context, email, firstName, lastName, password string) (*domain.User, string, error) {
	if email == "" || firstName == "" || lastName == "" || password == "" {
		return nil, "", ErrMissingParameter
	}
	if !validPassword(password) {
		return nil, "", ErrWeakPassword
	}

	hashed, err := s.hashPassword(password)
	if err != nil {
		return nil, "", ErrHashingFailed
	}

	user := &domain.User{
		Email:          email,
		FirstName:      firstName,
		LastName:       lastName,
		HashedPassword: hashed,
	}

	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, "", ErrUserAlreadyExists
		}
		return nil, "", err
	}
	user.ID = userID

	token, err := s.generateJWT(user.ID)
	if err != nil {
		return nil, "", ErrTokenGeneration
	}

	user.HashedPassword = ""
	return user, token, nil
}

// Login authenticates a user and issues a session token.
func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, ErrMissingParameter
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Unknown email and wrong password are indistinguishable to the caller.
			return "", nil, ErrAuthenticationFailed
		}
		return "", nil, err
	}

	if !s.verifyPassword(password, user.HashedPassword) {
		return "", nil, ErrAuthenticationFailed
	}

	token, err := s.generateJWT(user.ID)
	if err != nil {
		return "", nil, ErrTokenGeneration
	}

	user.HashedPassword = ""
	return token, user, nil
}

// --- Password hashing ---

// hashPassword runs the plaintext through a keyed HMAC-SHA256 first, then
// bcrypt. A stolen digest is useless without the server-held password
// secret, even if bcrypt is later broken.
func (s *authService) hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(s.prehash(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (s *authService) verifyPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), s.prehash(password)) == nil
}

func (s *authService) prehash(password string) []byte {
	mac := hmac.New(sha256.New, []byte(s.passwordSecret))
	mac.Write([]byte(password))
	return []byte(hex.EncodeToString(mac.Sum(nil)))
}

// validPassword enforces the complexity policy: 8..100 characters, at
// least one uppercase letter, one lowercase letter, one digit, and no
// whitespace.
func validPassword(password string) bool {
	runes := []rune(password)
	if len(runes) < 8 || len(runes) > 100 {
		return false
	}
	var upper, lower, digit bool
	for _, r := range runes {
		switch {
		case unicode.IsSpace(r):
			return false
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	return upper && lower && digit
}

// --- JWT helpers ---

// sessionClaims is the JWT payload: the user id plus the registered
// expiry/issuance claims.
type sessionClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// generateJWT mints a signed token for the given user, expiring an
// absolute tokenLifetime from now. There is no server-side revocation:
// possession of a valid token authenticates as the user until expiry.
func (s *authService) generateJWT(userID uint) (string, error) {
	now := time.Now()
	claims := &sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "workout-tracker",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// VerifyToken validates a session token and returns the user id it was
// issued for. Malformed, tampered and expired tokens all fail the same way.
func (s *authService) VerifyToken(tokenString string) (uint, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid || claims.UserID == 0 {
		return 0, ErrInvalidToken
	}
	return claims.UserID, nil
}

// JWTSecret returns the signing secret for middleware authentication.
func (s *authService) JWTSecret() string {
	return s.jwtSecret
}
