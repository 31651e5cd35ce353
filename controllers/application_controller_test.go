package controllers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"backend/configs"
	"backend/entity"
	"backend/routes"
	"backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	cfg := &configs.Config{
		JWTSecret:   testSecret,
		JWTTTL:      time.Hour,
		AdminEmails: []string{"mod@example.com"},
	}

	r := gin.New()
	routes.RegisterRoutes(r, db, cfg)
	return r, db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) *entity.User {
	t.Helper()
	u := entity.User{Email: email, FirstName: "Jane", LastName: "Doe", Role: role}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func tokenFor(t *testing.T, u *entity.User) string {
	t.Helper()
	tok, err := utils.GenerateToken(u.ID, u.Role, u.Email, testSecret, time.Hour)
	require.NoError(t, err)
	return tok
}

func createPendingApp(t *testing.T, db *gorm.DB, user *entity.User) *entity.MentorApplication {
	t.Helper()
	app := entity.MentorApplication{
		UserID:      user.ID,
		DisplayName: "Jane Doe",
		FirstName:   "Jane",
		LastName:    "Doe",
		Headline:    "Staff Engineer",
		Bio:         "bio",
		Country:     "NL",
		City:        "Amsterdam",
		Rate:        80,
		Experience: []entity.ExperienceRole{
			{Title: "Eng", Company: "Acme", Start: "2020-01", Current: true},
		},
		Status: entity.StatusPending,
	}
	require.NoError(t, db.Create(&app).Error)
	return &app
}

func doJSON(r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUpdateStatus_RequiresToken(t *testing.T) {
	r, _ := setupRouter(t)
	w := doJSON(r, http.MethodPatch, "/admin/applications/1/status", "", `{"status":"approved"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "no_token")
}

func TestUpdateStatus_RejectsNonModerator(t *testing.T) {
	r, db := setupRouter(t)
	mentee := createUser(t, db, "mentee@example.com", entity.RoleMentee)
	w := doJSON(r, http.MethodPatch, "/admin/applications/1/status", tokenFor(t, mentee), `{"status":"approved"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden")
}

func TestUpdateStatus_AllowListModerator(t *testing.T) {
	r, db := setupRouter(t)
	// role is plain mentee but the email is on the allow-list
	mod := createUser(t, db, "mod@example.com", entity.RoleMentee)
	applicant := createUser(t, db, "jane@example.com", entity.RoleMentee)
	app := createPendingApp(t, db, applicant)

	w := doJSON(r, http.MethodPatch,
		fmt.Sprintf("/admin/applications/%d/status", app.ID),
		tokenFor(t, mod), `{"status":"declined"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateStatus_InvalidStatusValue(t *testing.T) {
	r, db := setupRouter(t)
	admin := createUser(t, db, "admin@example.com", entity.RoleAdmin)
	w := doJSON(r, http.MethodPatch, "/admin/applications/1/status", tokenFor(t, admin), `{"status":"rejected"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_status")
}

func TestUpdateStatus_NotFound(t *testing.T) {
	r, db := setupRouter(t)
	admin := createUser(t, db, "admin@example.com", entity.RoleAdmin)
	w := doJSON(r, http.MethodPatch, "/admin/applications/424242/status", tokenFor(t, admin), `{"status":"approved"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not_found")
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	r, db := setupRouter(t)
	admin := createUser(t, db, "admin@example.com", entity.RoleAdmin)
	applicant := createUser(t, db, "jane@example.com", entity.RoleMentee)
	app := createPendingApp(t, db, applicant)

	w := doJSON(r, http.MethodPatch,
		fmt.Sprintf("/admin/applications/%d/status", app.ID),
		tokenFor(t, admin), `{"status":"blocked"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_transition")

	var stored entity.MentorApplication
	require.NoError(t, db.First(&stored, app.ID).Error)
	assert.Equal(t, entity.StatusPending, stored.Status)
}

func TestUpdateStatus_ApproveReturnsSlug(t *testing.T) {
	r, db := setupRouter(t)
	admin := createUser(t, db, "admin@example.com", entity.RoleAdmin)
	applicant := createUser(t, db, "jane@example.com", entity.RoleMentee)
	app := createPendingApp(t, db, applicant)

	w := doJSON(r, http.MethodPatch,
		fmt.Sprintf("/admin/applications/%d/status", app.ID),
		tokenFor(t, admin), `{"status":"approved"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		OK          bool   `json:"ok"`
		MentorSlug  string `json:"mentorSlug"`
		Application struct {
			Status string `json:"status"`
		} `json:"application"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.OK)
	assert.Equal(t, "jane-doe", body.MentorSlug)
	assert.Equal(t, "approved", body.Application.Status)

	var mentor entity.Mentor
	require.NoError(t, db.Where("user_id = ?", applicant.ID).First(&mentor).Error)
	assert.Equal(t, "jane-doe", mentor.Slug)

	var fresh entity.User
	require.NoError(t, db.First(&fresh, applicant.ID).Error)
	assert.Equal(t, entity.RoleMentor, fresh.Role)
}

func TestUpdateStatus_PartialPromotionSurfaced(t *testing.T) {
	r, db := setupRouter(t)
	admin := createUser(t, db, "admin@example.com", entity.RoleAdmin)
	applicant := createUser(t, db, "jane@example.com", entity.RoleMentee)
	app := createPendingApp(t, db, applicant)

	// swallow the guarded status update so it affects zero rows after the
	// promotion writes have landed
	require.NoError(t, db.Exec(`CREATE TRIGGER swallow_status_write
		BEFORE UPDATE ON mentor_applications
		BEGIN SELECT RAISE(IGNORE); END`).Error)

	w := doJSON(r, http.MethodPatch,
		fmt.Sprintf("/admin/applications/%d/status", app.ID),
		tokenFor(t, admin), `{"status":"approved"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "partial_promotion")
	assert.NotContains(t, w.Body.String(), `"error":"invalid_transition"`)
	assert.Contains(t, w.Body.String(), `"mentorSlug":"jane-doe"`)

	// profile committed, application still pending
	var mentor entity.Mentor
	require.NoError(t, db.Where("user_id = ?", applicant.ID).First(&mentor).Error)
	var stored entity.MentorApplication
	require.NoError(t, db.First(&stored, app.ID).Error)
	assert.Equal(t, entity.StatusPending, stored.Status)
}

func TestMentorProfile_Mine(t *testing.T) {
	r, db := setupRouter(t)
	admin := createUser(t, db, "admin@example.com", entity.RoleAdmin)
	applicant := createUser(t, db, "jane@example.com", entity.RoleMentee)
	app := createPendingApp(t, db, applicant)

	doJSON(r, http.MethodPatch,
		fmt.Sprintf("/admin/applications/%d/status", app.ID),
		tokenFor(t, admin), `{"status":"approved"}`)

	w := doJSON(r, http.MethodGet, "/mentor/profile", tokenFor(t, applicant), "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"slug":"jane-doe"`)

	other := createUser(t, db, "nobody@example.com", entity.RoleMentee)
	w = doJSON(r, http.MethodGet, "/mentor/profile", tokenFor(t, other), "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "no_mentor_profile")
}

func TestMyStatus_Progression(t *testing.T) {
	r, db := setupRouter(t)
	admin := createUser(t, db, "admin@example.com", entity.RoleAdmin)
	applicant := createUser(t, db, "jane@example.com", entity.RoleMentee)
	token := tokenFor(t, applicant)

	w := doJSON(r, http.MethodGet, "/me/application-status", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"state":"none"`)

	app := createPendingApp(t, db, applicant)
	w = doJSON(r, http.MethodGet, "/me/application-status", token, "")
	assert.Contains(t, w.Body.String(), `"state":"pending"`)

	doJSON(r, http.MethodPatch,
		fmt.Sprintf("/admin/applications/%d/status", app.ID),
		tokenFor(t, admin), `{"status":"approved"}`)
	w = doJSON(r, http.MethodGet, "/me/application-status", token, "")
	assert.Contains(t, w.Body.String(), `"state":"approved"`)
}

func TestApplyEndpoint_CreatesPendingApplication(t *testing.T) {
	r, db := setupRouter(t)
	applicant := createUser(t, db, "jane@example.com", entity.RoleMentee)

	payload := `{
		"first":"Jane","last":"Doe","headline":"Staff Engineer","bio":"bio",
		"linkedin":"https://linkedin.com/in/janedoe","country":"NL","city":"Amsterdam",
		"rate":80,
		"roles":[{"title":"Eng","company":"Acme","start":"2020-01","current":true}]
	}`
	w := doJSON(r, http.MethodPost, "/applications", tokenFor(t, applicant), payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"status":"pending"`)

	var count int64
	db.Model(&entity.MentorApplication{}).Where("user_id = ?", applicant.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestApplyEndpoint_MissingFields(t *testing.T) {
	r, db := setupRouter(t)
	applicant := createUser(t, db, "jane@example.com", entity.RoleMentee)
	w := doJSON(r, http.MethodPost, "/applications", tokenFor(t, applicant), `{"first":"Jane"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing_fields")
}
