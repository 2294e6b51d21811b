package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/blueberries/blueberries-backend/internal/app/model"
	"github.com/blueberries/blueberries-backend/internal/app/repository"
	"github.com/blueberries/blueberries-backend/internal/db"
)

func setupReviewServiceTest(t *testing.T) (*gorm.DB, ReviewService, *model.User, *model.Product) {
	gdb, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(gdb) })

	user := &model.User{Email: "first@example.com", Password: "hash"}
	require.NoError(t, gdb.Create(user).Error)

	product := &model.Product{
		Title:       "HyperX Cloud Mini 3.5 мм",
		Description: "Компактные игровые наушники",
		Price:       3500,
		PriceUnit:   "рублей",
		Category:    "наушники",
	}
	require.NoError(t, gdb.Create(product).Error)

	svc := NewReviewService(
		repository.NewReviewRepository(gdb),
		repository.NewProductRepository(gdb),
		repository.NewUserRepository(gdb),
	)
	return gdb, svc, user, product
}

func productReviewCount(t *testing.T, gdb *gorm.DB, productID uint) int {
	var product model.Product
	require.NoError(t, gdb.First(&product, productID).Error)
	return product.ReviewCount
}

func TestReviewService_CreateReviewGoesToModeration(t *testing.T) {
	gdb, svc, user, product := setupReviewServiceTest(t)

	review, err := svc.CreateReview(user.ID, product.ID, 5, "Отличный товар")
	require.NoError(t, err)
	assert.False(t, review.Approved)

	// Pending review is invisible publicly and does not count.
	reviews, err := svc.GetProductReviews(product.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
	assert.Zero(t, productReviewCount(t, gdb, product.ID))
}

func TestReviewService_CreateReviewValidation(t *testing.T) {
	_, svc, user, product := setupReviewServiceTest(t)

	for _, rating := range []int{0, -1, 6, 100} {
		_, err := svc.CreateReview(user.ID, product.ID, rating, "текст")
		assert.ErrorIs(t, err, ErrInvalidRating)
	}

	_, err := svc.CreateReview(user.ID, 9999, 4, "текст")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestReviewService_DuplicateReview(t *testing.T) {
	_, svc, user, product := setupReviewServiceTest(t)

	_, err := svc.CreateReview(user.ID, product.ID, 4, "Первый обзор")
	require.NoError(t, err)

	_, err = svc.CreateReview(user.ID, product.ID, 5, "Второй обзор")
	assert.ErrorIs(t, err, ErrDuplicateReview)
}

func TestReviewService_ApprovalFlow(t *testing.T) {
	gdb, svc, user, product := setupReviewServiceTest(t)

	review, err := svc.CreateReview(user.ID, product.ID, 5, "На модерацию")
	require.NoError(t, err)

	approved, err := svc.SetApproval(review.ID, true)
	require.NoError(t, err)
	assert.Equal(t, review.ID, approved.ID)

	reviews, err := svc.GetProductReviews(product.ID)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
	assert.Equal(t, 1, productReviewCount(t, gdb, product.ID))

	_, err = svc.SetApproval(review.ID, false)
	require.NoError(t, err)
	assert.Zero(t, productReviewCount(t, gdb, product.ID))

	_, err = svc.SetApproval(9999, true)
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestReviewService_AdminCreateSkipsModeration(t *testing.T) {
	gdb, svc, user, product := setupReviewServiceTest(t)

	review, err := svc.AdminCreateReview(user.ID, product.ID, 5, "От администрации")
	require.NoError(t, err)
	assert.True(t, review.Approved)
	assert.Equal(t, 1, productReviewCount(t, gdb, product.ID))

	// No duplicate check for admin-created reviews.
	_, err = svc.AdminCreateReview(user.ID, product.ID, 4, "Ещё один")
	require.NoError(t, err)
	assert.Equal(t, 2, productReviewCount(t, gdb, product.ID))
}

func TestReviewService_DeleteReviewRecounts(t *testing.T) {
	gdb, svc, user, product := setupReviewServiceTest(t)

	review, err := svc.AdminCreateReview(user.ID, product.ID, 5, "Удаляемый")
	require.NoError(t, err)
	assert.Equal(t, 1, productReviewCount(t, gdb, product.ID))

	require.NoError(t, svc.DeleteReview(review.ID))
	assert.Zero(t, productReviewCount(t, gdb, product.ID))

	assert.ErrorIs(t, svc.DeleteReview(review.ID), ErrReviewNotFound)
}

func TestReviewService_AdminResponse(t *testing.T) {
	_, svc, user, product := setupReviewServiceTest(t)

	review, err := svc.CreateReview(user.ID, product.ID, 2, "Есть вопросы")
	require.NoError(t, err)

	updated, err := svc.SetAdminResponse(review.ID, "Спасибо за отзыв, мы разберёмся")
	require.NoError(t, err)
	require.NotNil(t, updated.AdminResponse)
	assert.Equal(t, "Спасибо за отзыв, мы разберёмся", *updated.AdminResponse)

	_, err = svc.SetAdminResponse(9999, "ответ")
	assert.ErrorIs(t, err, ErrReviewNotFound)
}

func TestReviewService_GenerateReviews(t *testing.T) {
	gdb, svc, user, product := setupReviewServiceTest(t)

	second := &model.Product{
		Title:       "Видеокабель HDMI - Type C",
		Description: "Кабель 4K",
		Price:       1200,
		PriceUnit:   "рублей",
		Category:    "аксессуары",
	}
	require.NoError(t, gdb.Create(second).Error)

	created, total, err := svc.GenerateReviews()
	require.NoError(t, err)
	assert.Equal(t, 2, created)
	assert.Equal(t, 2, total)

	assert.Equal(t, 1, productReviewCount(t, gdb, product.ID))
	assert.Equal(t, 1, productReviewCount(t, gdb, second.ID))

	reviews, err := svc.GetProductReviews(product.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 4, reviews[0].Rating)
	assert.Equal(t, user.ID, reviews[0].UserID)
	assert.Contains(t, reviews[0].Text, "Обзор товара \"HyperX Cloud Mini 3.5 мм\"")
	assert.Contains(t, reviews[0].Text, "категория - наушники")
}
