package repository

import (
	"backend/entity"
	"time"

	"gorm.io/gorm"
)

type ApplicationRepository struct{ DB *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

func (r *ApplicationRepository) CreateApplication(app *entity.MentorApplication) error {
	return r.DB.Create(app).Error
}

// Moderator view: list by status, newest first.
func (r *ApplicationRepository) FindByStatus(status entity.Status) ([]entity.MentorApplication, error) {
	var apps []entity.MentorApplication
	err := r.DB.
		Preload("User").
		Where("status = ?", status).
		Order("id DESC").
		Find(&apps).Error
	return apps, err
}

// Applicant's own applications (optional status filter).
func (r *ApplicationRepository) FindByUser(userID uint, status string) ([]entity.MentorApplication, error) {
	var apps []entity.MentorApplication
	q := r.DB.Where("user_id = ?", userID).Order("id DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) FindByID(id uint) (*entity.MentorApplication, error) {
	var app entity.MentorApplication
	if err := r.DB.Preload("User").First(&app, id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

// FindLatestByUser returns the most recent application or nil when the user
// never applied.
func (r *ApplicationRepository) FindLatestByUser(userID uint) (*entity.MentorApplication, error) {
	var apps []entity.MentorApplication
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Limit(1).Find(&apps).Error
	if err != nil {
		return nil, err
	}
	if len(apps) == 0 {
		return nil, nil
	}
	return &apps[0], nil
}

// UpdateStatusGuard writes the new status only while the row still holds the
// expected current status, so a concurrent transition surfaces as zero
// affected rows instead of a silent overwrite.
func (r *ApplicationRepository) UpdateStatusGuard(id uint, from, to entity.Status, reviewedAt time.Time) (int64, error) {
	res := r.DB.Model(&entity.MentorApplication{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]any{"status": to, "reviewed_at": reviewedAt})
	return res.RowsAffected, res.Error
}

// UpdatePendingFields lets the applicant edit a still-pending application.
// Returns affected rows; zero means the application left the pending state.
func (r *ApplicationRepository) UpdatePendingFields(id, userID uint, updates map[string]any) (int64, error) {
	res := r.DB.Model(&entity.MentorApplication{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userID, entity.StatusPending).
		Updates(updates)
	return res.RowsAffected, res.Error
}
