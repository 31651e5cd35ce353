package services

import (
	"errors"
	"regexp"

	"backend/entity"
	"backend/repository"
)

var timeOfDay = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

type AvailabilityService struct {
	Repo    *repository.AvailabilityRepository
	Mentors *repository.MentorRepository
}

func NewAvailabilityService(repo *repository.AvailabilityRepository, mentors *repository.MentorRepository) *AvailabilityService {
	return &AvailabilityService{Repo: repo, Mentors: mentors}
}

func (s *AvailabilityService) mentorFor(userID uint) (*entity.Mentor, error) {
	mentor, err := s.Mentors.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if mentor == nil {
		return nil, ErrNotFound
	}
	return mentor, nil
}

func (s *AvailabilityService) ListMine(userID uint) ([]entity.Availability, error) {
	mentor, err := s.mentorFor(userID)
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByMentor(mentor.ID)
}

func (s *AvailabilityService) Add(userID uint, weekday int, start, end string) (*entity.Availability, error) {
	mentor, err := s.mentorFor(userID)
	if err != nil {
		return nil, err
	}
	if weekday < 0 || weekday > 6 {
		return nil, errors.New("weekday out of range")
	}
	if !timeOfDay.MatchString(start) || !timeOfDay.MatchString(end) || end <= start {
		return nil, errors.New("invalid time window")
	}
	slot := entity.Availability{
		MentorID:  mentor.ID,
		Weekday:   weekday,
		StartTime: start,
		EndTime:   end,
	}
	if err := s.Repo.Create(&slot); err != nil {
		return nil, err
	}
	return &slot, nil
}

func (s *AvailabilityService) Remove(userID, slotID uint) error {
	mentor, err := s.mentorFor(userID)
	if err != nil {
		return err
	}
	affected, err := s.Repo.DeleteOwned(slotID, mentor.ID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
