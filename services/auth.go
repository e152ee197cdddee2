package services

import (
	"errors"
	"os"
	"regexp"
	"time"
	"unicode"

	"github.com/golang-jwt/jwt/v5"
	"github.com/tuinuewasichana/tuinue-be/middleware"
	"github.com/tuinuewasichana/tuinue-be/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[\w.\-]+@[\w.\-]+\.\w+$`)

type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// CharityApplication is the profile submitted alongside a charity registration.
type CharityApplication struct {
	Name             string
	Description      string
	MissionStatement string
	Location         string
	FoundedYear      int
	ImpactMetrics    string
	ContactPerson    string
	ContactPhone     string
	Website          string
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func (s *AuthService) CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func (s *AuthService) GenerateToken(user *models.User) (string, error) {
	claims := middleware.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidPassword requires at least 8 characters with an uppercase letter and
// a digit.
func ValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasUpper, hasDigit := false, false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	return hasUpper && hasDigit
}

// Register creates the account, and for charity registrations the pending
// profile with it, in one transaction. Email uniqueness and the password
// policy are enforced here.
func (s *AuthService) Register(username, email, password string, role models.UserRole, application *CharityApplication) (*models.User, *models.Charity, error) {
	if !ValidEmail(email) {
		return nil, nil, ErrInvalidInput
	}
	if !ValidPassword(password) {
		return nil, nil, ErrInvalidInput
	}
	if role != models.RoleDonor && role != models.RoleCharity && role != models.RoleAdmin {
		return nil, nil, ErrInvalidInput
	}
	if role == models.RoleCharity && application == nil {
		return nil, nil, ErrInvalidInput
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, nil, err
	}
	if count > 0 {
		return nil, nil, ErrInvalidInput
	}

	hashedPassword, err := s.HashPassword(password)
	if err != nil {
		return nil, nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
		Role:     role,
		Credits:  0,
	}
	var charity *models.Charity

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if role == models.RoleCharity {
			charity = &models.Charity{
				UserID:           user.ID,
				Name:             application.Name,
				Description:      application.Description,
				MissionStatement: application.MissionStatement,
				Location:         application.Location,
				FoundedYear:      application.FoundedYear,
				ImpactMetrics:    application.ImpactMetrics,
				ContactPerson:    application.ContactPerson,
				ContactPhone:     application.ContactPhone,
				Website:          application.Website,
				Status:           models.CharityPending,
			}
			if err := tx.Create(charity).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return &user, charity, nil
}

// Login verifies credentials and mints a token. Charity users are refused
// while their application is pending or after rejection.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", errors.New("invalid credentials")
	}

	if !s.CheckPassword(password, user.Password) {
		return nil, "", errors.New("invalid credentials")
	}

	if user.Role == models.RoleCharity {
		var charity models.Charity
		if err := s.db.Where("user_id = ?", user.ID).First(&charity).Error; err != nil {
			return nil, "", ErrNotFound
		}
		if charity.Status != models.CharityApproved {
			return nil, "", ErrCharityUnavailable
		}
	}

	token, err := s.GenerateToken(&user)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}
