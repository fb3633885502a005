package services

import (
	"context"
	"strings"
	"testing"

	"homebites/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newReviewFixture() (*ReviewService, *fakeReviews, *models.CookProfile) {
	cook := &models.CookProfile{
		ID:           primitive.NewObjectID(),
		UserID:       primitive.NewObjectID(),
		BusinessName: "Amma's Kitchen",
	}
	reviews := &fakeReviews{}
	return NewReviewService(reviews, newFakeCooks(cook)), reviews, cook
}

func reviewInput(cookID primitive.ObjectID, rating int) ReviewInput {
	return ReviewInput{
		UserID:   primitive.NewObjectID(),
		UserName: "Priya",
		CookID:   cookID,
		Rating:   rating,
		Comment:  "Absolutely delicious home food",
	}
}

func TestReviewService_Create_recomputesRating(t *testing.T) {
	ctx := context.Background()
	svc, _, cook := newReviewFixture()
	cooks := svc.cooks.(*fakeCooks)

	for _, tc := range []struct {
		rating int
		want   float64
	}{
		{5, 5.0},
		{4, 4.5},
		{2, 3.7}, // mean(5,4,2) = 3.666... -> 3.7
	} {
		_, err := svc.Create(ctx, reviewInput(cook.ID, tc.rating))
		require.NoError(t, err)

		got, err := cooks.CookByID(ctx, cook.ID)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.Rating)
		assert.GreaterOrEqual(t, got.Rating, 0.0)
		assert.LessOrEqual(t, got.Rating, 5.0)
	}
}

func TestReviewService_Create_duplicateRejected(t *testing.T) {
	ctx := context.Background()
	svc, _, cook := newReviewFixture()
	cooks := svc.cooks.(*fakeCooks)

	input := reviewInput(cook.ID, 4)
	_, err := svc.Create(ctx, input)
	require.NoError(t, err)

	before, err := cooks.CookByID(ctx, cook.ID)
	require.NoError(t, err)

	// Same user reviewing the same cook again is a conflict, and the
	// rejected attempt leaves the rating unchanged.
	input.Rating = 1
	_, err = svc.Create(ctx, input)
	assert.ErrorIs(t, err, ErrDuplicateReview)

	after, err := cooks.CookByID(ctx, cook.ID)
	require.NoError(t, err)
	assert.Equal(t, before.Rating, after.Rating)
}

func TestReviewService_Create_validation(t *testing.T) {
	ctx := context.Background()
	svc, _, cook := newReviewFixture()

	tests := []struct {
		name   string
		mutate func(*ReviewInput)
	}{
		{"rating_too_low", func(in *ReviewInput) { in.Rating = 0 }},
		{"rating_too_high", func(in *ReviewInput) { in.Rating = 6 }},
		{"missing_user_name", func(in *ReviewInput) { in.UserName = "  " }},
		{"comment_too_short", func(in *ReviewInput) { in.Comment = "ok food" }},
		{"comment_too_long", func(in *ReviewInput) { in.Comment = strings.Repeat("x", 1001) }},
		{"missing_cook", func(in *ReviewInput) { in.CookID = primitive.NilObjectID }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			input := reviewInput(cook.ID, 4)
			tc.mutate(&input)
			_, err := svc.Create(ctx, input)
			var validation *ValidationError
			assert.ErrorAs(t, err, &validation)
		})
	}
}

func TestReviewService_Create_unknownCook(t *testing.T) {
	svc, _, _ := newReviewFixture()
	_, err := svc.Create(context.Background(), reviewInput(primitive.NewObjectID(), 3))
	assert.ErrorIs(t, err, ErrCookNotFound)
}

func TestReviewService_List(t *testing.T) {
	ctx := context.Background()
	svc, _, cook := newReviewFixture()

	first, err := svc.Create(ctx, reviewInput(cook.ID, 5))
	require.NoError(t, err)
	_, err = svc.Create(ctx, reviewInput(cook.ID, 3))
	require.NoError(t, err)

	byCook, err := svc.List(ctx, ReviewFilter{CookID: cook.ID})
	require.NoError(t, err)
	assert.Len(t, byCook, 2)

	byUser, err := svc.List(ctx, ReviewFilter{UserID: first.UserID})
	require.NoError(t, err)
	require.Len(t, byUser, 1)
	assert.Equal(t, first.ID, byUser[0].ID)
}
