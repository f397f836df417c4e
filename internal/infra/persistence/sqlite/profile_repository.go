package sqlite

import (
	"context"

	"antigaspi/internal/domain/entity"
	"antigaspi/internal/domain/repository"
	"antigaspi/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// Load returns the single profile row, stored under the fixed key.
func (repo *profileRepository) Load(ctx context.Context) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Where("key = ?", model.ProfileKey).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	return toProfileDomain(&profileM), nil
}

// Save upserts the profile row under the fixed key.
func (repo *profileRepository) Save(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			UpdateAll: true,
		}).
		Create(profileM).Error
	if err != nil {
		return errors.Wrap(err, "failed to save profile")
	}
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Clear removes the profile row entirely.
func (repo *profileRepository) Clear(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Where("key = ?", model.ProfileKey).
		Delete(&model.ProfileModel{}).Error

	return errors.Wrap(err, "failed to clear profile")
}

// --- Mapper Functions ---
// These helpers convert between the domain entity and the persistence model.

func toProfileDomain(data *model.ProfileModel) *entity.Profile {
	if data == nil {
		return nil
	}

	return &entity.Profile{
		ID:           data.ID,
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		City:         data.City,
		AvatarURL:    data.AvatarURL,
		PasswordHash: data.PasswordHash,
		RegisteredAt: data.RegisteredAt,
		LoggedIn:     data.LoggedIn,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromProfileDomain(profile *entity.Profile) *model.ProfileModel {
	return &model.ProfileModel{
		Key:          model.ProfileKey,
		ID:           profile.ID,
		Name:         profile.Name,
		Email:        profile.Email,
		Phone:        profile.Phone,
		City:         profile.City,
		AvatarURL:    profile.AvatarURL,
		PasswordHash: profile.PasswordHash,
		RegisteredAt: profile.RegisteredAt,
		LoggedIn:     profile.LoggedIn,
	}
}
