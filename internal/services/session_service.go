package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"loja/internal/models"
	"loja/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Authentication failure taxonomy. Handlers map all three to a generic
// denial; the distinction exists for logging and tests only.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMalformedToken     = errors.New("malformed token")
	ErrExpiredToken       = errors.New("expired token")
)

// adminClaims is the token payload: a base64-JSON structure binding the
// admin identity to an expiry, HMAC-signed so clients cannot forge it.
type adminClaims struct {
	AdminID  uint   `json:"admin_id"`
	Username string `json:"username"`
	jwt.StandardClaims
}

// SessionService issues and validates admin session tokens. Sessions are
// stateless: the token carries the full session, there is no server-side
// session record and hence no server-side revocation before expiry.
type SessionService struct {
	adminRepo repositories.AdminRepository
	secret    []byte
	tokenTTL  time.Duration
}

// NewSessionService creates a new SessionService.
func NewSessionService(adminRepo repositories.AdminRepository, secret string) *SessionService {
	return &SessionService{
		adminRepo: adminRepo,
		secret:    []byte(secret),
		tokenTTL:  24 * time.Hour, // Token valid for 24 hours
	}
}

// RegisterAdmin creates an admin account with a bcrypt-hashed password.
func (s *SessionService) RegisterAdmin(username, password string) error {
	if existing, err := s.adminRepo.GetByUsername(username); err == nil && existing != nil {
		return fmt.Errorf("admin '%s' already exists", username)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.Admin{
		Username:     username,
		PasswordHash: string(hashed),
	}
	if err := s.adminRepo.Create(admin); err != nil {
		return fmt.Errorf("failed to register admin: %w", err)
	}
	return nil
}

// IssueToken authenticates the credential pair and returns a signed session
// token valid for 24 hours. The caller must not be able to tell whether the
// username or the password was wrong.
func (s *SessionService) IssueToken(username, password string) (string, error) {
	admin, err := s.adminRepo.GetByUsername(username)
	if err != nil {
		log.Printf("authentication failure for user %q: unknown username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		log.Printf("authentication failure for user %q: password mismatch", username)
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := adminClaims{
		AdminID:  admin.ID,
		Username: admin.Username,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(s.tokenTTL).Unix(),
			IssuedAt:  now.Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken decodes and verifies a session token. It returns
// ErrMalformedToken when the token does not decode to signed admin claims,
// ErrExpiredToken when the embedded expiry has passed, and the decoded
// session otherwise.
func (s *SessionService) ValidateToken(tokenString string) (*models.AdminSession, error) {
	claims := &adminClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, ErrExpiredToken
		}
		return nil, ErrMalformedToken
	}
	if !token.Valid {
		return nil, ErrMalformedToken
	}

	return &models.AdminSession{
		AdminID:   claims.AdminID,
		Username:  claims.Username,
		ExpiresAt: time.Unix(claims.ExpiresAt, 0),
	}, nil
}
