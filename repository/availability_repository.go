package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type AvailabilityRepository struct{ DB *gorm.DB }

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{DB: db}
}

func (r *AvailabilityRepository) FindByMentor(mentorID uint) ([]entity.Availability, error) {
	var slots []entity.Availability
	err := r.DB.Where("mentor_id = ?", mentorID).
		Order("weekday ASC").Order("start_time ASC").
		Find(&slots).Error
	return slots, err
}

func (r *AvailabilityRepository) Create(slot *entity.Availability) error {
	return r.DB.Create(slot).Error
}

// DeleteOwned removes a window only when it belongs to the mentor.
func (r *AvailabilityRepository) DeleteOwned(id, mentorID uint) (int64, error) {
	res := r.DB.Where("id = ? AND mentor_id = ?", id, mentorID).
		Delete(&entity.Availability{})
	return res.RowsAffected, res.Error
}
