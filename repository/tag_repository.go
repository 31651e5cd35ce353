package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type TagRepository struct{ DB *gorm.DB }

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{DB: db}
}

func (r *TagRepository) ListActive() ([]entity.TagOption, error) {
	var tags []entity.TagOption
	err := r.DB.Where("active = ?", true).
		Order("sort_order ASC").Order("name ASC").
		Find(&tags).Error
	return tags, err
}

// FindActiveNames resolves admin-controlled tag ids to names; unknown or
// inactive ids are dropped silently.
func (r *TagRepository) FindActiveNames(ids []uint) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var tags []entity.TagOption
	err := r.DB.Where("id IN ?", ids).Where("active = ?", true).Find(&tags).Error
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return names, nil
}
