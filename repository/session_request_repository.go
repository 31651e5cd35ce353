package repository

import (
	"backend/entity"

	"gorm.io/gorm"
)

type SessionRequestRepository struct{ DB *gorm.DB }

func NewSessionRequestRepository(db *gorm.DB) *SessionRequestRepository {
	return &SessionRequestRepository{DB: db}
}

func (r *SessionRequestRepository) Create(req *entity.SessionRequest) error {
	return r.DB.Create(req).Error
}

func (r *SessionRequestRepository) FindByMentorSlug(slug string, limit int) ([]entity.SessionRequest, error) {
	var reqs []entity.SessionRequest
	err := r.DB.Where("mentor_slug = ?", slug).
		Order("created_at DESC").
		Limit(limit).
		Find(&reqs).Error
	return reqs, err
}

func (r *SessionRequestRepository) FindByRequester(userID uint) ([]entity.SessionRequest, error) {
	var reqs []entity.SessionRequest
	err := r.DB.Where("requester_id = ?", userID).
		Order("created_at DESC").
		Find(&reqs).Error
	return reqs, err
}
