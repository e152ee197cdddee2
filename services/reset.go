package services

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tuinuewasichana/tuinue-be/models"
	"gorm.io/gorm"
)

const resetTokenTTL = time.Hour

type resetClaims struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// ResetService issues and redeems password-reset tokens. Tokens are signed
// with the app secret, scoped to the reset purpose so an access token can
// never double as one, and expire after an hour.
type ResetService struct {
	db    *gorm.DB
	auth  *AuthService
	email *EmailService
}

func NewResetService(db *gorm.DB) *ResetService {
	return &ResetService{
		db:    db,
		auth:  NewAuthService(db),
		email: NewEmailService(),
	}
}

func (s *ResetService) generateToken(email string) (string, error) {
	claims := resetClaims{
		Email:   email,
		Purpose: "password-reset",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(resetTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func (s *ResetService) confirmToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &resetClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidInput
	}
	claims, ok := token.Claims.(*resetClaims)
	if !ok || claims.Purpose != "password-reset" {
		return "", ErrInvalidInput
	}
	return claims.Email, nil
}

// Request mails a reset token when the email belongs to an account. It
// reports nothing about whether it did, so the endpoint cannot be used to
// probe for registered addresses.
func (s *ResetService) Request(email string) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return
	}
	token, err := s.generateToken(user.Email)
	if err != nil {
		return
	}
	go s.email.SendPasswordReset(user.Email, token)
}

// Confirm validates the token and replaces the account password.
func (s *ResetService) Confirm(tokenString, newPassword string) error {
	email, err := s.confirmToken(tokenString)
	if err != nil {
		return err
	}

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	hashed, err := s.auth.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.db.Model(&user).Update("password", hashed).Error
}
