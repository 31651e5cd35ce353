// services/promotion_service.go
package services

import (
	"strings"
	"time"

	"backend/entity"
	"backend/repository"
)

// PromotionService turns an approved application into a public mentor
// profile and keeps the owner's role in sync. Profile upsert, role flip and
// the caller's status write are separate store writes. There is no single
// cross-entity transaction, so the driver must classify mid-sequence
// failures (see ApplicationService.Transition).
type PromotionService struct {
	Mentors *repository.MentorRepository
	Users   *repository.UserRepository
}

func NewPromotionService(mentors *repository.MentorRepository, users *repository.UserRepository) *PromotionService {
	return &PromotionService{Mentors: mentors, Users: users}
}

// NameSource records which field the display name came from, so the fallback
// policy stays auditable.
type NameSource string

const (
	NameFromDisplay NameSource = "display_name"
	NameFromParts   NameSource = "name_parts"
	NameFromDefault NameSource = "default"
)

// resolveDisplayName picks the profile name: explicit display name first,
// then first/last concatenation, then a fixed default.
func resolveDisplayName(app *entity.MentorApplication) (string, NameSource) {
	if s := strings.TrimSpace(app.DisplayName); s != "" {
		return s, NameFromDisplay
	}
	parts := strings.TrimSpace(strings.TrimSpace(app.FirstName) + " " + strings.TrimSpace(app.LastName))
	if parts != "" {
		return parts, NameFromParts
	}
	return "Mentor", NameFromDefault
}

func joinLocation(city, country string) string {
	parts := make([]string, 0, 2)
	for _, p := range []string{strings.TrimSpace(city), strings.TrimSpace(country)} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// Promote creates the mentor profile on first approval, or refreshes it in
// place on re-approval (the slug never changes once assigned), then makes
// sure the owner carries the mentor role. Returns the profile slug. Safe to
// run again for an already promoted application.
func (s *PromotionService) Promote(app *entity.MentorApplication) (string, error) {
	name, _ := resolveDisplayName(app)
	years := TotalYears(app.Experience, time.Now())
	location := joinLocation(app.City, app.Country)

	existing, err := s.Mentors.FindByUserID(app.UserID)
	if err != nil {
		return "", err
	}

	var slug string
	if existing == nil {
		slug, err = AllocateSlug(s.Mentors, name)
		if err != nil {
			return "", err
		}
		m := entity.Mentor{
			UserID:          app.UserID,
			Slug:            slug,
			DisplayName:     name,
			Headline:        app.Headline,
			Bio:             app.Bio,
			Rate:            app.Rate,
			Tags:            app.Tags,
			Location:        location,
			YearsExp:        years,
			PhotoURL:        app.PhotoURL,
			AccountStanding: entity.StandingApproved,
		}
		if err := s.Mentors.Create(&m); err != nil {
			return "", err
		}
	} else {
		slug = existing.Slug
		existing.DisplayName = name
		existing.Headline = app.Headline
		existing.Bio = app.Bio
		existing.Rate = app.Rate
		existing.Tags = app.Tags
		existing.Location = location
		existing.YearsExp = years
		existing.PhotoURL = app.PhotoURL
		existing.AccountStanding = entity.StandingApproved
		if err := s.Mentors.Save(existing); err != nil {
			return "", err
		}
	}

	if err := s.Users.PromoteToMentor(app.UserID); err != nil {
		return "", err
	}
	return slug, nil
}

// SetStanding flips the profile's bookability state. A missing profile is a
// no-op; the account role is never touched here. A suspended mentor keeps
// the role but loses bookability.
func (s *PromotionService) SetStanding(userID uint, standing string) error {
	return s.Mentors.UpdateStanding(userID, standing)
}
