package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"storefront/internal/models"
	"storefront/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// Sentinel errors surfaced to handlers for response shaping.
var (
	ErrEmailTaken         = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrEmailNotRegistered = errors.New("email not registered")
)

// resetTokenTTL bounds how long a password-reset token stays usable.
const resetTokenTTL = 15 * time.Minute

// AuthService handles signup, login, OTP orchestration, and token issuance.
type AuthService struct {
	userRepo     repositories.UserRepository
	otpCache     *OTPCache
	mailer       MailDispatcher
	jwtSecret    []byte
	resetBaseURL string
}

// NewAuthService creates a new AuthService. resetBaseURL is the frontend URL
// the password-reset link points at.
func NewAuthService(userRepo repositories.UserRepository, otpCache *OTPCache, mailer MailDispatcher, jwtSecret string, resetBaseURL string) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		otpCache:     otpCache,
		mailer:       mailer,
		jwtSecret:    []byte(jwtSecret),
		resetBaseURL: resetBaseURL,
	}
}

// RequestSignupOTP issues a one-time code for an email and dispatches it via
// the mail collaborator. Emails already bound to an account are rejected.
func (s *AuthService) RequestSignupOTP(email string) error {
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return ErrEmailTaken
	}

	code, err := s.otpCache.Issue(email)
	if err != nil {
		return err
	}
	if err := s.mailer.SendOTP(email, code); err != nil {
		return fmt.Errorf("failed to dispatch OTP email: %w", err)
	}
	return nil
}

// Register creates a new account with a bcrypt-hashed password and a
// zero-filled cart, and returns a session token for it.
func (s *AuthService) Register(name, email, password string) (string, error) {
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return "", ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		CartData: models.NewCart(),
	}
	if err := s.userRepo.Create(user); err != nil {
		return "", fmt.Errorf("failed to register user: %w", err)
	}

	return s.GenerateToken(user.ID)
}

// RegisterWithOTP verifies the submitted one-time code before creating the
// account. The code is consumed on success and left for retry on mismatch.
func (s *AuthService) RegisterWithOTP(name, email, password, otp string) (string, error) {
	if !s.otpCache.Verify(email, otp) {
		return "", ErrInvalidOTP
	}
	return s.Register(name, email, password)
}

// Login authenticates a user and returns a session token. Unknown emails and
// wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(email, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.GenerateToken(user.ID)
}

// GenerateToken issues a signed session token carrying the user id. Session
// tokens do not expire; they remain valid until the signing key changes.
func (s *AuthService) GenerateToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": map[string]interface{}{"id": userID},
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return tokenString, nil
}

// GenerateResetToken issues a password-reset token for the user, valid for
// fifteen minutes.
func (s *AuthService) GenerateResetToken(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": map[string]interface{}{"id": userID},
		"exp":  time.Now().Add(resetTokenTTL).Unix(),
	})
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and validates a token, returning the embedded user id.
// Expired tokens fail with ErrTokenExpired; anything else malformed or
// mis-signed fails with ErrInvalidToken.
func (s *AuthService) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Validate the alg is what we expect:
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if vErr, ok := err.(*jwt.ValidationError); ok && vErr.Errors&jwt.ValidationErrorExpired != 0 {
			return "", ErrTokenExpired
		}
		log.Printf("Token validation error: %v", err)
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	userClaim, ok := claims["user"].(map[string]interface{})
	if !ok {
		return "", ErrInvalidToken
	}
	userID, ok := userClaim["id"].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}

// RequestPasswordReset issues a reset token for the account bound to the
// email and dispatches the reset link via the mail collaborator.
func (s *AuthService) RequestPasswordReset(email string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		return ErrEmailNotRegistered
	}

	token, err := s.GenerateResetToken(user.ID)
	if err != nil {
		return err
	}
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.resetBaseURL, token)
	if err := s.mailer.SendPasswordReset(user.Email, resetLink); err != nil {
		return fmt.Errorf("failed to dispatch password reset email: %w", err)
	}
	return nil
}

// ResetPassword validates a reset token and stores a new bcrypt-hashed
// password for its user.
func (s *AuthService) ResetPassword(tokenString, newPassword string) error {
	userID, err := s.ValidateToken(tokenString)
	if err != nil {
		return err
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePassword(userID, string(hashedPassword)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
