package services

import (
	"errors"

	"github.com/tuinuewasichana/tuinue-be/models"
	"gorm.io/gorm"
)

const defaultStoryImage = "https://via.placeholder.com/150?text=Story"

type StoryService struct {
	db *gorm.DB
}

func NewStoryService(db *gorm.DB) *StoryService {
	return &StoryService{db: db}
}

type StoryInput struct {
	Title           string
	Content         string
	ImageURL        string
	BeneficiaryName string
	BeneficiaryAge  int
}

// Create publishes a story for the authenticated charity user. Only approved
// charities may publish.
func (s *StoryService) Create(userID uint, in StoryInput) (*models.Story, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if user.Role != models.RoleCharity {
		return nil, ErrAccessDenied
	}

	var charity models.Charity
	if err := s.db.Where("user_id = ?", userID).First(&charity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if charity.Status != models.CharityApproved {
		return nil, ErrCharityUnavailable
	}

	imageURL := in.ImageURL
	if imageURL == "" {
		imageURL = defaultStoryImage
	}

	story := models.Story{
		CharityID:       charity.ID,
		Title:           in.Title,
		Content:         in.Content,
		ImageURL:        imageURL,
		BeneficiaryName: in.BeneficiaryName,
		BeneficiaryAge:  in.BeneficiaryAge,
	}
	if err := s.db.Create(&story).Error; err != nil {
		return nil, err
	}
	return &story, nil
}

// ListByCharity returns a charity's published stories, oldest first.
func (s *StoryService) ListByCharity(charityID uint) ([]models.Story, error) {
	var stories []models.Story
	err := s.db.Where("charity_id = ?", charityID).
		Order("created_at ASC, id ASC").
		Find(&stories).Error
	return stories, err
}
