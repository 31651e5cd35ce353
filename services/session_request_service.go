package services

import (
	"errors"
	"strings"

	"backend/entity"
	"backend/repository"

	"github.com/google/uuid"
)

var ErrMentorNotBookable = errors.New("mentor_not_bookable")

type SessionRequestService struct {
	Repo    *repository.SessionRequestRepository
	Mentors *repository.MentorRepository
}

func NewSessionRequestService(repo *repository.SessionRequestRepository, mentors *repository.MentorRepository) *SessionRequestService {
	return &SessionRequestService{Repo: repo, Mentors: mentors}
}

type SessionRequestInput struct {
	MentorSlug    string
	PreferredTime string
	Message       string
	ProposedRate  *int
}

// Create stores a booking request against an approved mentor. Suspended or
// blocked mentors are not bookable.
func (s *SessionRequestService) Create(requester *entity.User, in SessionRequestInput) (*entity.SessionRequest, error) {
	mentor, err := s.Mentors.FindBySlug(strings.TrimSpace(in.MentorSlug))
	if err != nil {
		return nil, ErrNotFound
	}
	if mentor.AccountStanding != entity.StandingApproved {
		return nil, ErrMentorNotBookable
	}

	req := entity.SessionRequest{
		PublicID:       uuid.NewString(),
		MentorSlug:     mentor.Slug,
		RequesterID:    requester.ID,
		RequesterName:  requester.DisplayName,
		RequesterEmail: requester.Email,
		PreferredTime:  strings.TrimSpace(in.PreferredTime),
		Message:        strings.TrimSpace(in.Message),
		ProposedRate:   in.ProposedRate,
		Status:         "new",
	}
	if err := s.Repo.Create(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// ListForMentor returns a mentor's incoming requests; only approved mentors
// may read their inbox.
func (s *SessionRequestService) ListForMentor(userID uint) ([]entity.SessionRequest, string, error) {
	mentor, err := s.Mentors.FindByUserID(userID)
	if err != nil {
		return nil, "", err
	}
	if mentor == nil {
		return nil, "", ErrNotFound
	}
	if mentor.AccountStanding != entity.StandingApproved {
		return nil, "", ErrMentorNotBookable
	}
	reqs, err := s.Repo.FindByMentorSlug(mentor.Slug, 200)
	return reqs, mentor.Slug, err
}

func (s *SessionRequestService) ListMine(userID uint) ([]entity.SessionRequest, error) {
	return s.Repo.FindByRequester(userID)
}
