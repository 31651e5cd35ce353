package repository

import (
	"errors"

	"backend/entity"

	"gorm.io/gorm"
)

type MentorRepository struct{ DB *gorm.DB }

func NewMentorRepository(db *gorm.DB) *MentorRepository {
	return &MentorRepository{DB: db}
}

// SlugExists probes a candidate slug. Used by the allocator; the uniqueIndex
// on mentors.slug is the backstop for the probe/insert race.
func (r *MentorRepository) SlugExists(slug string) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Mentor{}).Where("slug = ?", slug).Count(&count).Error
	return count > 0, err
}

// FindByUserID returns nil, nil when the account has no profile yet.
func (r *MentorRepository) FindByUserID(userID uint) (*entity.Mentor, error) {
	var m entity.Mentor
	if err := r.DB.Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *MentorRepository) FindBySlug(slug string) (*entity.Mentor, error) {
	var m entity.Mentor
	if err := r.DB.Where("slug = ?", slug).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MentorRepository) Create(m *entity.Mentor) error {
	return r.DB.Create(m).Error
}

func (r *MentorRepository) Save(m *entity.Mentor) error {
	return r.DB.Save(m).Error
}

// UpdateStanding flips bookability for the account's profile. No profile is
// a no-op, not an error.
func (r *MentorRepository) UpdateStanding(userID uint, standing string) error {
	return r.DB.Model(&entity.Mentor{}).
		Where("user_id = ?", userID).
		Update("account_standing", standing).Error
}

// ListApproved is the public directory: bookable mentors only, optional tag
// filter applied in memory because tags live in a JSON column.
func (r *MentorRepository) ListApproved(tag string) ([]entity.Mentor, error) {
	var mentors []entity.Mentor
	err := r.DB.Where("account_standing = ?", entity.StandingApproved).
		Order("id DESC").
		Find(&mentors).Error
	if err != nil || tag == "" {
		return mentors, err
	}
	out := make([]entity.Mentor, 0, len(mentors))
	for _, m := range mentors {
		for _, t := range m.Tags {
			if t == tag {
				out = append(out, m)
				break
			}
		}
	}
	return out, nil
}
