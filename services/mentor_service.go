package services

import (
	"errors"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

type MentorService struct{ Repo *repository.MentorRepository }

func NewMentorService(repo *repository.MentorRepository) *MentorService {
	return &MentorService{Repo: repo}
}

// List is the public directory: approved standing only.
func (s *MentorService) List(tag string) ([]entity.Mentor, error) {
	return s.Repo.ListApproved(tag)
}

// BySlug resolves a public profile page; suspended and blocked mentors are
// not visible, same as a missing slug.
func (s *MentorService) BySlug(slug string) (*entity.Mentor, error) {
	m, err := s.Repo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if m.AccountStanding != entity.StandingApproved {
		return nil, ErrNotFound
	}
	return m, nil
}

// Mine returns the caller's own profile regardless of standing, nil when the
// account was never promoted.
func (s *MentorService) Mine(userID uint) (*entity.Mentor, error) {
	return s.Repo.FindByUserID(userID)
}
