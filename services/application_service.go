// services/application_service.go
package services

import (
	"errors"
	"strings"
	"time"

	"backend/entity"
	"backend/repository"

	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("not_found")
	ErrInvalidTransition = errors.New("invalid_transition")
	ErrSlugExhausted     = errors.New("slug_exhausted")
	ErrNotPending        = errors.New("application is not pending")
)

// PartialPromotionError marks a transition whose side effects committed but
// whose final status write failed. The inconsistency is recoverable:
// re-running the same approve refreshes the profile in place and keeps the
// slug, so the caller may retry.
type PartialPromotionError struct {
	Slug string
	Err  error
}

func (e *PartialPromotionError) Error() string { return "partial_promotion: " + e.Err.Error() }
func (e *PartialPromotionError) Unwrap() error { return e.Err }

type ApplicationService struct {
	Repo     *repository.ApplicationRepository
	Mentors  *repository.MentorRepository
	Tags     *repository.TagRepository
	Promoter *PromotionService
}

func NewApplicationService(repo *repository.ApplicationRepository, mentors *repository.MentorRepository, tags *repository.TagRepository, promoter *PromotionService) *ApplicationService {
	return &ApplicationService{Repo: repo, Mentors: mentors, Tags: tags, Promoter: promoter}
}

// TransitionResult carries the updated application and, after an approval,
// the public profile slug.
type TransitionResult struct {
	Application *entity.MentorApplication
	MentorSlug  string
}

// Transition applies a moderator-requested status change: load, validate
// against the transition table, run the side effects, then write the status.
// Side-effect failure aborts before the status write (the application never
// advances on a failed promotion); a status-write failure after side effects
// comes back as *PartialPromotionError, never as success.
func (s *ApplicationService) Transition(appID uint, target entity.Status) (*TransitionResult, error) {
	app, err := s.Repo.FindByID(appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	effect, err := ValidateTransition(app.Status, target)
	if err != nil {
		return nil, err
	}

	res := &TransitionResult{Application: app}

	switch effect {
	case EffectPromote:
		slug, err := s.Promoter.Promote(app)
		if err != nil {
			return nil, err
		}
		res.MentorSlug = slug
	case EffectStanding:
		if err := s.Promoter.SetStanding(app.UserID, string(target)); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	affected, err := s.Repo.UpdateStatusGuard(app.ID, app.Status, target, now)
	if err == nil && affected == 0 {
		// a concurrent transition moved the row first; last write wins at
		// the store, so report the lost race instead of claiming success
		err = ErrInvalidTransition
	}
	if err != nil {
		if effect != EffectNone {
			return nil, &PartialPromotionError{Slug: res.MentorSlug, Err: err}
		}
		return nil, err
	}

	app.Status = target
	app.ReviewedAt = &now
	return res, nil
}

// ApplyInput is the validated intake payload; tag ids reference
// admin-controlled options and resolve to names here.
type ApplyInput struct {
	FirstName    string
	LastName     string
	Headline     string
	Bio          string
	LinkedinURL  string
	PortfolioURL string
	Country      string
	City         string
	PhotoURL     string
	Rate         int
	Roles        []entity.ExperienceRole
	TagIDs       []uint
}

func (s *ApplicationService) Apply(userID uint, in ApplyInput) (*entity.MentorApplication, error) {
	tagNames, err := s.Tags.FindActiveNames(in.TagIDs)
	if err != nil {
		return nil, err
	}

	first := strings.TrimSpace(in.FirstName)
	last := strings.TrimSpace(in.LastName)

	app := entity.MentorApplication{
		UserID:       userID,
		DisplayName:  strings.TrimSpace(first + " " + last),
		FirstName:    first,
		LastName:     last,
		Headline:     strings.TrimSpace(in.Headline),
		Bio:          strings.TrimSpace(in.Bio),
		LinkedinURL:  strings.TrimSpace(in.LinkedinURL),
		PortfolioURL: strings.TrimSpace(in.PortfolioURL),
		Country:      strings.TrimSpace(in.Country),
		City:         strings.TrimSpace(in.City),
		PhotoURL:     in.PhotoURL,
		Rate:         in.Rate,
		Tags:         tagNames,
		Experience:   in.Roles,
		Status:       entity.StatusPending,
	}
	if err := s.Repo.CreateApplication(&app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *ApplicationService) List(status string) ([]entity.MentorApplication, error) {
	if status == "" {
		status = string(entity.StatusPending)
	}
	st, err := entity.ParseStatus(status)
	if err != nil {
		return nil, err
	}
	return s.Repo.FindByStatus(st)
}

func (s *ApplicationService) ListMine(userID uint, status string) ([]entity.MentorApplication, error) {
	return s.Repo.FindByUser(userID, status)
}

func (s *ApplicationService) FindByID(id uint) (*entity.MentorApplication, error) {
	app, err := s.Repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return app, nil
}

// UpdateMine lets the applicant edit their own application while it is still
// pending; anything past pending belongs to the moderators.
func (s *ApplicationService) UpdateMine(appID, userID uint, updates map[string]any) (*entity.MentorApplication, error) {
	affected, err := s.Repo.UpdatePendingFields(appID, userID, updates)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotPending
	}
	return s.FindByID(appID)
}

// MyStatus reports the applicant-facing state: an existing mentor profile
// wins (approved), else the latest application's status, else none.
func (s *ApplicationService) MyStatus(userID uint) (string, error) {
	mentor, err := s.Mentors.FindByUserID(userID)
	if err != nil {
		return "", err
	}
	if mentor != nil {
		return string(entity.StatusApproved), nil
	}

	app, err := s.Repo.FindLatestByUser(userID)
	if err != nil {
		return "", err
	}
	if app != nil {
		return string(app.Status), nil
	}
	return "none", nil
}
