package store

import (
	"testing"

	"messfeed/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.User{}, &models.Hall{}, &models.Review{}, &models.Complaint{})
	require.NoError(t, err)

	return New(db)
}

func intPtr(v int) *int {
	return &v
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := newTestStore(t)

	first := models.User{Name: "Asha", Email: "asha@iitkgp.ac.in", Password: "x", Hall: "RK"}
	require.NoError(t, s.CreateUser(&first))

	second := models.User{Name: "Asha Again", Email: "asha@iitkgp.ac.in", Password: "y", Hall: "RK"}
	err := s.CreateUser(&second)
	require.ErrorIs(t, err, ErrDuplicate)
}

func TestUserByEmailNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.UserByEmail("ghost@iitkgp.ac.in")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCreateReviewRoundTrip(t *testing.T) {
	s := newTestStore(t)

	review := models.Review{
		UserID:           1,
		HallCode:         "RK",
		ReviewDate:       "2026-08-28",
		BreakfastRating:  intPtr(4),
		BreakfastComment: "idli was fresh",
		DinnerRating:     intPtr(2),
	}
	require.NoError(t, s.CreateReview(&review))
	require.NotZero(t, review.ID)

	got, err := s.ReviewByUserAndDate(1, "2026-08-28")
	require.NoError(t, err)
	require.Equal(t, review.ID, got.ID)
	require.Equal(t, "RK", got.HallCode)
	require.Equal(t, 4, *got.BreakfastRating)
	require.Equal(t, "idli was fresh", got.BreakfastComment)
	require.Nil(t, got.LunchRating)
	require.Nil(t, got.SnacksRating)
	require.Equal(t, 2, *got.DinnerRating)
}

func TestCreateReviewDuplicateDay(t *testing.T) {
	s := newTestStore(t)

	first := models.Review{UserID: 7, HallCode: "RK", ReviewDate: "2026-08-28"}
	require.NoError(t, s.CreateReview(&first))

	// Same user, same day: the unique index must reject it.
	second := models.Review{UserID: 7, HallCode: "RK", ReviewDate: "2026-08-28", LunchRating: intPtr(3)}
	err := s.CreateReview(&second)
	require.ErrorIs(t, err, ErrDuplicate)

	// A different day is fine.
	third := models.Review{UserID: 7, HallCode: "RK", ReviewDate: "2026-08-29"}
	require.NoError(t, s.CreateReview(&third))

	// So is the same day for another user.
	fourth := models.Review{UserID: 8, HallCode: "RK", ReviewDate: "2026-08-28"}
	require.NoError(t, s.CreateReview(&fourth))
}

func TestReviewByUserAndDateAbsent(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ReviewByUserAndDate(1, "2026-08-28")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestReviewsByUserOrderedByDateDesc(t *testing.T) {
	s := newTestStore(t)

	for _, date := range []string{"2026-08-25", "2026-08-27", "2026-08-26"} {
		require.NoError(t, s.CreateReview(&models.Review{UserID: 3, HallCode: "RK", ReviewDate: date}))
	}

	reviews, err := s.ReviewsByUser(3)
	require.NoError(t, err)
	require.Len(t, reviews, 3)
	require.Equal(t, "2026-08-27", reviews[0].ReviewDate)
	require.Equal(t, "2026-08-26", reviews[1].ReviewDate)
	require.Equal(t, "2026-08-25", reviews[2].ReviewDate)
}

func TestReviewsByHallLimit(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 12; i++ {
		review := models.Review{UserID: uint(i + 1), HallCode: "RK", ReviewDate: "2026-08-28"}
		require.NoError(t, s.CreateReview(&review))
	}
	require.NoError(t, s.CreateReview(&models.Review{UserID: 99, HallCode: "LLR", ReviewDate: "2026-08-28"}))

	reviews, err := s.ReviewsByHall("RK", 10)
	require.NoError(t, err)
	require.Len(t, reviews, 10)
	for _, r := range reviews {
		require.Equal(t, "RK", r.HallCode)
	}
}

func TestUpdateReviewMutatesRow(t *testing.T) {
	s := newTestStore(t)

	review := models.Review{UserID: 5, HallCode: "RK", ReviewDate: "2026-08-28", LunchRating: intPtr(2)}
	require.NoError(t, s.CreateReview(&review))

	review.LunchRating = intPtr(5)
	review.LunchComment = "much better today"
	require.NoError(t, s.UpdateReview(&review))

	got, err := s.ReviewByID(review.ID)
	require.NoError(t, err)
	require.Equal(t, 5, *got.LunchRating)
	require.Equal(t, "much better today", got.LunchComment)
}

func TestComplaintsByHallNewestFirst(t *testing.T) {
	s := newTestStore(t)

	for i := 0; i < 3; i++ {
		complaint := models.Complaint{
			UserID:        uint(i + 1),
			HallCode:      "RK",
			MealType:      models.MealLunch,
			Category:      models.CategoryTaste,
			Text:          "the dal was far too watery",
			ComplaintDate: "2026-08-28",
		}
		require.NoError(t, s.CreateComplaint(&complaint))
	}

	complaints, err := s.ComplaintsByHall("RK", 10)
	require.NoError(t, err)
	require.Len(t, complaints, 3)
	require.GreaterOrEqual(t, complaints[0].ID, complaints[1].ID)
	require.GreaterOrEqual(t, complaints[1].ID, complaints[2].ID)
}

func TestHallsReturnsOnlyActive(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateHall(&models.Hall{HallCode: "RK", HallName: "Radhakrishnan Hall", IsActive: true}))
	require.NoError(t, s.CreateHall(&models.Hall{HallCode: "OLD", HallName: "Closed Hall", IsActive: false}))

	halls, err := s.Halls()
	require.NoError(t, err)
	require.Len(t, halls, 1)
	require.Equal(t, "RK", halls[0].HallCode)
}
