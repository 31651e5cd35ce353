package services

import (
	"fmt"
	"testing"
	"time"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// unique in-memory DB per test name to avoid leakage via shared cache
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open db")
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.MentorApplication{},
		&entity.Mentor{},
		&entity.TagOption{},
		&entity.SessionRequest{},
		&entity.Availability{},
	), "migrate")
	return db
}

func seedApplicant(t *testing.T, db *gorm.DB) *entity.User {
	t.Helper()
	u := entity.User{
		Email:     fmt.Sprintf("%s@example.com", t.Name()),
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      entity.RoleMentee,
	}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func pendingApplication(t *testing.T, db *gorm.DB, user *entity.User) *entity.MentorApplication {
	t.Helper()
	end := "2021-06"
	app := entity.MentorApplication{
		UserID:      user.ID,
		DisplayName: "Jane Doe",
		FirstName:   "Jane",
		LastName:    "Doe",
		Headline:    "Staff Engineer",
		Bio:         "15 years of shipping things",
		Country:     "NL",
		City:        "Amsterdam",
		Rate:        80,
		Tags:        []string{"Backend"},
		Experience: []entity.ExperienceRole{
			{Title: "Eng", Company: "Acme", Start: "2019-01", End: &end},
			{Title: "Sr Eng", Company: "Acme", Start: "2021-07", Current: true},
		},
		Status: entity.StatusPending,
	}
	require.NoError(t, db.Create(&app).Error)
	return &app
}

func newPromoter(db *gorm.DB) *PromotionService {
	return NewPromotionService(repository.NewMentorRepository(db), repository.NewUserRepository(db))
}

func TestPromote_CreatesProfileAndFlipsRole(t *testing.T) {
	db := openTestDB(t)
	user := seedApplicant(t, db)
	app := pendingApplication(t, db, user)

	slug, err := newPromoter(db).Promote(app)
	assert.NoError(t, err)
	assert.Equal(t, "jane-doe", slug)

	var mentor entity.Mentor
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&mentor).Error)
	assert.Equal(t, "Jane Doe", mentor.DisplayName)
	assert.Equal(t, "Staff Engineer", mentor.Headline)
	assert.Equal(t, "Amsterdam, NL", mentor.Location)
	assert.Equal(t, entity.StandingApproved, mentor.AccountStanding)
	assert.Equal(t, TotalYears(app.Experience, time.Now()), mentor.YearsExp)

	var fresh entity.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, entity.RoleMentor, fresh.Role)
}

func TestPromote_ReapprovalKeepsSlugAndProfile(t *testing.T) {
	db := openTestDB(t)
	user := seedApplicant(t, db)
	app := pendingApplication(t, db, user)
	promoter := newPromoter(db)

	first, err := promoter.Promote(app)
	require.NoError(t, err)

	app.Headline = "Principal Engineer"
	second, err := promoter.Promote(app)
	assert.NoError(t, err)
	assert.Equal(t, first, second, "slug must be immutable on re-approval")

	var count int64
	db.Model(&entity.Mentor{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 1, count, "re-approval must not create a second profile")

	var mentor entity.Mentor
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&mentor).Error)
	assert.Equal(t, "Principal Engineer", mentor.Headline, "re-approval refreshes fields")
}

func TestPromote_SlugCollisionGetsSuffix(t *testing.T) {
	db := openTestDB(t)
	other := entity.User{Email: "other@example.com", Role: entity.RoleMentor}
	require.NoError(t, db.Create(&other).Error)
	require.NoError(t, db.Create(&entity.Mentor{
		UserID: other.ID, Slug: "jane-doe", DisplayName: "Jane Doe",
		AccountStanding: entity.StandingApproved,
	}).Error)

	user := seedApplicant(t, db)
	app := pendingApplication(t, db, user)

	slug, err := newPromoter(db).Promote(app)
	assert.NoError(t, err)
	assert.NotEqual(t, "jane-doe", slug)
	assert.Contains(t, slug, "jane-doe-")
}

func TestSetStanding_FlipsProfileNotRole(t *testing.T) {
	db := openTestDB(t)
	user := seedApplicant(t, db)
	app := pendingApplication(t, db, user)
	promoter := newPromoter(db)

	_, err := promoter.Promote(app)
	require.NoError(t, err)

	require.NoError(t, promoter.SetStanding(user.ID, entity.StandingSuspended))

	var mentor entity.Mentor
	require.NoError(t, db.Where("user_id = ?", user.ID).First(&mentor).Error)
	assert.Equal(t, entity.StandingSuspended, mentor.AccountStanding)

	var fresh entity.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	assert.Equal(t, entity.RoleMentor, fresh.Role, "suspension keeps the role")
}

func TestSetStanding_NoProfileIsNoop(t *testing.T) {
	db := openTestDB(t)
	user := seedApplicant(t, db)

	assert.NoError(t, newPromoter(db).SetStanding(user.ID, entity.StandingBlocked))

	var count int64
	db.Model(&entity.Mentor{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestResolveDisplayName_Order(t *testing.T) {
	name, src := resolveDisplayName(&entity.MentorApplication{DisplayName: " Ada L. ", FirstName: "Ada", LastName: "Lovelace"})
	assert.Equal(t, "Ada L.", name)
	assert.Equal(t, NameFromDisplay, src)

	name, src = resolveDisplayName(&entity.MentorApplication{FirstName: "Ada", LastName: "Lovelace"})
	assert.Equal(t, "Ada Lovelace", name)
	assert.Equal(t, NameFromParts, src)

	name, src = resolveDisplayName(&entity.MentorApplication{LastName: "Lovelace"})
	assert.Equal(t, "Lovelace", name)
	assert.Equal(t, NameFromParts, src)

	name, src = resolveDisplayName(&entity.MentorApplication{})
	assert.Equal(t, "Mentor", name)
	assert.Equal(t, NameFromDefault, src)
}
