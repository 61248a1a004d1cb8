package service_test

import (
	"context"
	"strings"
	"testing"

	"fitweek/fitness-tracker/internal/domain"
	"fitweek/fitness-tracker/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func premiumFixture(t *testing.T) (service.PremiumService, *fakePaymentRepo, *fakePostRepo) {
	t.Helper()
	paymentRepo := newFakePaymentRepo()
	postRepo := newFakePostRepo()
	svc := service.NewPremiumService(postRepo, paymentRepo, &fakeMedia{})

	_, err := svc.CreatePost(context.Background(), "post-1", "12-Week Strength Program", "", 19.99)
	require.NoError(t, err)
	return svc, paymentRepo, postRepo
}

func TestCreatePost_DuplicateRejected(t *testing.T) {
	svc, _, _ := premiumFixture(t)
	_, err := svc.CreatePost(context.Background(), "post-1", "Again", "", 5)
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestMediaDownloadURL_RequiresSucceededPayment(t *testing.T) {
	svc, paymentRepo, postRepo := premiumFixture(t)
	userID := primitive.NewObjectID()

	require.NoError(t, postRepo.SetMedia(context.Background(), "post-1", "premium/post-1/key", "video/mp4"))

	// No payment at all.
	_, err := svc.MediaDownloadURL(context.Background(), "post-1", userID.Hex())
	assert.ErrorIs(t, err, service.ErrNotPurchased)

	// Pending payment is not enough.
	_, err = paymentRepo.CreatePending(context.Background(), &domain.PremiumPayment{PostID: "post-1", UserID: userID})
	require.NoError(t, err)
	_, err = svc.MediaDownloadURL(context.Background(), "post-1", userID.Hex())
	assert.ErrorIs(t, err, service.ErrNotPurchased)

	// Succeeded payment unlocks the URL.
	require.NoError(t, paymentRepo.MarkSucceeded(context.Background(), "post-1", userID, "pi_1"))
	url, err := svc.MediaDownloadURL(context.Background(), "post-1", userID.Hex())
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(url, "premium/post-1/key"))
}

func TestMediaDownloadURL_NoMediaAttached(t *testing.T) {
	svc, paymentRepo, _ := premiumFixture(t)
	userID := primitive.NewObjectID()

	_, err := paymentRepo.CreatePending(context.Background(), &domain.PremiumPayment{PostID: "post-1", UserID: userID})
	require.NoError(t, err)
	require.NoError(t, paymentRepo.MarkSucceeded(context.Background(), "post-1", userID, "pi_1"))

	_, err = svc.MediaDownloadURL(context.Background(), "post-1", userID.Hex())
	assert.ErrorIs(t, err, service.ErrNoMedia)
}

func TestRequestMediaUploadURL_UnknownPost(t *testing.T) {
	svc, _, _ := premiumFixture(t)
	_, err := svc.RequestMediaUploadURL(context.Background(), "nope", "video/mp4")
	assert.ErrorIs(t, err, service.ErrPostNotFound)
}

func TestRequestMediaUploadURL_KeyIsScopedToPost(t *testing.T) {
	svc, _, _ := premiumFixture(t)
	ticket, err := svc.RequestMediaUploadURL(context.Background(), "post-1", "video/mp4")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ticket.ObjectKey, "premium/post-1/"))
	assert.NotEmpty(t, ticket.UploadURL)
}
