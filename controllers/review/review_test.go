package reviewController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"messfeed/config"
	reviewController "messfeed/controllers/review"
	"messfeed/middleware"
	"messfeed/models"
	reviewRoutes "messfeed/routers/reviewRoutes"
	"messfeed/store"
	"messfeed/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "test-secret", EmailDomain: "@iitkgp.ac.in"}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Hall{}, &models.Review{}, &models.Complaint{}))

	s := store.New(db)
	app := fiber.New()
	reviewRoutes.SetupReviewRoutes(app, reviewController.NewHandler(s))

	return app, s
}

func seedUser(t *testing.T, s *store.Store, email string) (*models.User, string) {
	t.Helper()

	user := models.User{Name: "Asha", Email: email, Password: "hashed", Hall: "RK"}
	require.NoError(t, s.CreateUser(&user))

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.Hall)
	require.NoError(t, err)
	return &user, token
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, payload any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if payload != nil {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		reader = bytes.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return resp.StatusCode, env
}

func TestReviewRoutesRequireAuth(t *testing.T) {
	app, _ := newTestApp(t)

	status, _ := doJSON(t, app, "GET", "/api/reviews/my", "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestCreateReviewAndFetchToday(t *testing.T) {
	app, s := newTestApp(t)
	_, token := seedUser(t, s, "asha@iitkgp.ac.in")

	// Nothing yet
	status, _ := doJSON(t, app, "GET", "/api/reviews/today", token, nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, env := doJSON(t, app, "POST", "/api/reviews/", token, fiber.Map{
		"hallCode":        "RK",
		"reviewDate":      utils.Today(),
		"breakfastRating": 4,
		"lunchComment":    "paneer was good",
	})
	require.Equal(t, fiber.StatusCreated, status)

	var created models.Review
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, 4, *created.BreakfastRating)
	assert.Nil(t, created.LunchRating)
	assert.Equal(t, "paneer was good", created.LunchComment)

	status, env = doJSON(t, app, "GET", "/api/reviews/today", token, nil)
	require.Equal(t, fiber.StatusOK, status)

	var fetched models.Review
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, created.ReviewDate, fetched.ReviewDate)
	assert.Equal(t, *created.BreakfastRating, *fetched.BreakfastRating)
}

func TestCreateReviewRejectsSecondForSameDay(t *testing.T) {
	app, s := newTestApp(t)
	_, token := seedUser(t, s, "asha@iitkgp.ac.in")

	payload := fiber.Map{"hallCode": "RK", "reviewDate": utils.Today(), "dinnerRating": 3}

	status, _ := doJSON(t, app, "POST", "/api/reviews/", token, payload)
	require.Equal(t, fiber.StatusCreated, status)

	status, _ = doJSON(t, app, "POST", "/api/reviews/", token, payload)
	assert.Equal(t, fiber.StatusConflict, status)
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	app, s := newTestApp(t)
	_, token := seedUser(t, s, "asha@iitkgp.ac.in")

	status, _ := doJSON(t, app, "POST", "/api/reviews/", token, fiber.Map{
		"hallCode":     "RK",
		"reviewDate":   utils.Today(),
		"dinnerRating": 6,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doJSON(t, app, "POST", "/api/reviews/", token, fiber.Map{
		"hallCode":        "RK",
		"reviewDate":      utils.Today(),
		"breakfastRating": 0,
	})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestUpdateReviewMergesFields(t *testing.T) {
	app, s := newTestApp(t)
	user, token := seedUser(t, s, "asha@iitkgp.ac.in")

	rating := 2
	review := models.Review{UserID: user.ID, HallCode: "RK", ReviewDate: utils.Today(), LunchRating: &rating, LunchComment: "cold"}
	require.NoError(t, s.CreateReview(&review))

	status, env := doJSON(t, app, "PUT", fmt.Sprintf("/api/reviews/%d", review.ID), token, fiber.Map{
		"dinnerRating": 5,
	})
	require.Equal(t, fiber.StatusOK, status)

	var updated models.Review
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, 5, *updated.DinnerRating)
	// untouched fields survive the merge
	assert.Equal(t, 2, *updated.LunchRating)
	assert.Equal(t, "cold", updated.LunchComment)
}

func TestUpdateReviewUnknownID(t *testing.T) {
	app, s := newTestApp(t)
	_, token := seedUser(t, s, "asha@iitkgp.ac.in")

	status, _ := doJSON(t, app, "PUT", "/api/reviews/9999", token, fiber.Map{"dinnerRating": 5})
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestUpdateReviewForbiddenForNonOwner(t *testing.T) {
	app, s := newTestApp(t)
	owner, _ := seedUser(t, s, "owner@iitkgp.ac.in")
	_, intruderToken := seedUser(t, s, "intruder@iitkgp.ac.in")

	review := models.Review{UserID: owner.ID, HallCode: "RK", ReviewDate: utils.Today()}
	require.NoError(t, s.CreateReview(&review))

	status, _ := doJSON(t, app, "PUT", fmt.Sprintf("/api/reviews/%d", review.ID), intruderToken, fiber.Map{"dinnerRating": 1})
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestUpdateReviewRejectedAfterDayRollover(t *testing.T) {
	app, s := newTestApp(t)
	user, token := seedUser(t, s, "asha@iitkgp.ac.in")

	review := models.Review{UserID: user.ID, HallCode: "RK", ReviewDate: utils.Yesterday()}
	require.NoError(t, s.CreateReview(&review))

	status, _ := doJSON(t, app, "PUT", fmt.Sprintf("/api/reviews/%d", review.ID), token, fiber.Map{"dinnerRating": 5})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestMyReviewsNewestDayFirst(t *testing.T) {
	app, s := newTestApp(t)
	user, token := seedUser(t, s, "asha@iitkgp.ac.in")

	require.NoError(t, s.CreateReview(&models.Review{UserID: user.ID, HallCode: "RK", ReviewDate: utils.Yesterday()}))
	require.NoError(t, s.CreateReview(&models.Review{UserID: user.ID, HallCode: "RK", ReviewDate: utils.Today()}))

	status, env := doJSON(t, app, "GET", "/api/reviews/my", token, nil)
	require.Equal(t, fiber.StatusOK, status)

	var reviews []models.Review
	require.NoError(t, json.Unmarshal(env.Data, &reviews))
	require.Len(t, reviews, 2)
	assert.Equal(t, utils.Today(), reviews[0].ReviewDate)
	assert.Equal(t, utils.Yesterday(), reviews[1].ReviewDate)
}
