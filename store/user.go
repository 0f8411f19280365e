package store

import (
	"context"
	"errors"
	"log"
	"math/rand"

	"gorm.io/gorm"

	"github.com/Jlcht/Aurelian-Timeworks/models"
)

// defaultProfileImages is the fixed set a new account's picture is drawn from.
var defaultProfileImages = []string{
	"https://res.cloudinary.com/aurelian-timeworks/image/upload/defaultprofilepic/monkey_space_cartoon.png",
	"https://res.cloudinary.com/aurelian-timeworks/image/upload/defaultprofilepic/monkey_space_pirate.png",
}

// UserStore is the gateway to the per-user account documents.
type UserStore interface {
	// RoleOf resolves the stored role for a subject id. A missing row or an
	// empty role field resolves to customer; a store failure is returned to
	// the caller, which must treat it as no role at all.
	RoleOf(ctx context.Context, id string) (string, error)
	// GetProfile returns the stored profile, or a zero-value profile when no
	// document exists yet.
	GetProfile(ctx context.Context, id string) (models.Profile, error)
	// MergeProfile persists the supplied fields, preserving any stored field
	// the patch leaves empty.
	MergeProfile(ctx context.Context, id string, patch models.Profile) error
	// EnsureUser creates the account document on first sign-in, assigning a
	// random default profile image. Existing documents are never clobbered.
	EnsureUser(ctx context.Context, id, email string) (*models.User, error)
}

// GormUserStore backs UserStore with the shared database handle.
type GormUserStore struct {
	db *gorm.DB
}

func NewGormUserStore(db *gorm.DB) *GormUserStore {
	return &GormUserStore{db: db}
}

func (s *GormUserStore) RoleOf(ctx context.Context, id string) (string, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.RoleCustomer, nil
	}
	if err != nil {
		return "", err
	}
	if user.Role == "" {
		return models.RoleCustomer, nil
	}
	return user.Role, nil
}

func (s *GormUserStore) GetProfile(ctx context.Context, id string) (models.Profile, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Profile{}, nil
	}
	if err != nil {
		return models.Profile{}, err
	}
	return user.Profile, nil
}

func (s *GormUserStore) MergeProfile(ctx context.Context, id string, patch models.Profile) error {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{ID: id, Role: models.RoleCustomer, Profile: patch}
		return s.db.WithContext(ctx).Create(&user).Error
	}
	if err != nil {
		return err
	}
	user.Profile = mergeProfile(user.Profile, patch)
	return s.db.WithContext(ctx).Save(&user).Error
}

func (s *GormUserStore) EnsureUser(ctx context.Context, id, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		user = models.User{
			ID:      id,
			Email:   email,
			Role:    models.RoleCustomer,
			Profile: models.Profile{ProfileImage: randomProfileImage()},
		}
		if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
			return nil, err
		}
		log.Printf("🆕 New user created: %s (%s)", id, email)
		return &user, nil
	}
	if err != nil {
		return nil, err
	}
	if user.Profile.ProfileImage == "" {
		user.Profile.ProfileImage = randomProfileImage()
		if err := s.db.WithContext(ctx).Save(&user).Error; err != nil {
			return nil, err
		}
	}
	return &user, nil
}

func randomProfileImage() string {
	return defaultProfileImages[rand.Intn(len(defaultProfileImages))]
}

// mergeProfile overlays the non-empty fields of patch onto base.
func mergeProfile(base, patch models.Profile) models.Profile {
	if patch.DisplayName != "" {
		base.DisplayName = patch.DisplayName
	}
	if patch.Bio != "" {
		base.Bio = patch.Bio
	}
	if patch.Location != "" {
		base.Location = patch.Location
	}
	if patch.ProfileImage != "" {
		base.ProfileImage = patch.ProfileImage
	}
	return base
}
