package service

import (
	"context"
	"errors"
	"fmt"
	"path"
	"time"

	"fitweek/fitness-tracker/internal/domain"
	"fitweek/fitness-tracker/internal/repository"
	"fitweek/fitness-tracker/internal/storage"

	"github.com/google/uuid"
)

var (
	ErrPostNotFound  = errors.New("premium post not found")
	ErrNotPurchased  = errors.New("premium content has not been purchased")
	ErrNoMedia       = errors.New("premium post has no media attached")
	ErrMediaURLError = errors.New("failed to generate media URL")
)

// MediaUploadTicket carries a presigned PUT URL plus the object key the
// uploader must confirm back.
type MediaUploadTicket struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

// PremiumService manages premium posts and gated media delivery.
type PremiumService interface {
	CreatePost(ctx context.Context, postID, title, description string, price float64) (*domain.Post, error)
	GetPost(ctx context.Context, postID string) (*domain.Post, error)

	// RequestMediaUploadURL returns a presigned PUT ticket for attaching
	// media to a post (admin path).
	RequestMediaUploadURL(ctx context.Context, postID, contentType string) (*MediaUploadTicket, error)
	ConfirmMediaUpload(ctx context.Context, postID, objectKey, contentType string) error

	// MediaDownloadURL returns a presigned GET URL, but only when a
	// succeeded payment exists for (postID, userID).
	MediaDownloadURL(ctx context.Context, postID, userID string) (string, error)
}

type premiumService struct {
	postRepo    repository.PostRepository
	paymentRepo repository.PaymentRepository
	media       storage.MediaStorage
}

// NewPremiumService creates a new PremiumService.
func NewPremiumService(postRepo repository.PostRepository, paymentRepo repository.PaymentRepository, media storage.MediaStorage) PremiumService {
	return &premiumService{
		postRepo:    postRepo,
		paymentRepo: paymentRepo,
		media:       media,
	}
}

func (s *premiumService) CreatePost(ctx context.Context, postID, title, description string, price float64) (*domain.Post, error) {
	if postID == "" || title == "" || price <= 0 {
		return nil, fmt.Errorf("%w: postId, title and price are required", ErrValidation)
	}
	post := &domain.Post{
		PostID:      postID,
		Title:       title,
		Description: description,
		PriceAmount: price,
	}
	id, err := s.postRepo.Create(ctx, post)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: post %q already exists", ErrValidation, postID)
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	post.ID = id
	return post, nil
}

func (s *premiumService) GetPost(ctx context.Context, postID string) (*domain.Post, error) {
	post, err := s.postRepo.GetByPostID(ctx, postID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return post, nil
}

func (s *premiumService) RequestMediaUploadURL(ctx context.Context, postID, contentType string) (*MediaUploadTicket, error) {
	if _, err := s.GetPost(ctx, postID); err != nil {
		return nil, err
	}
	// Unique object key so a re-upload never clobbers media a member might
	// be mid-download on.
	objectKey := path.Join("premium", postID, uuid.NewString())

	url, err := s.media.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMediaURLError, err)
	}
	return &MediaUploadTicket{UploadURL: url, ObjectKey: objectKey}, nil
}

func (s *premiumService) ConfirmMediaUpload(ctx context.Context, postID, objectKey, contentType string) error {
	if objectKey == "" {
		return fmt.Errorf("%w: object key is required", ErrValidation)
	}
	if err := s.postRepo.SetMedia(ctx, postID, objectKey, contentType); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

func (s *premiumService) MediaDownloadURL(ctx context.Context, postID, userID string) (string, error) {
	uid, err := parseUserID(userID)
	if err != nil {
		return "", err
	}

	payment, err := s.paymentRepo.GetByPostAndUser(ctx, postID, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotPurchased
		}
		return "", fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if payment.Status != domain.PaymentSucceeded {
		return "", ErrNotPurchased
	}

	post, err := s.GetPost(ctx, postID)
	if err != nil {
		return "", err
	}
	if post.MediaObjectKey == "" {
		return "", ErrNoMedia
	}

	url, err := s.media.GeneratePresignedDownloadURL(ctx, post.MediaObjectKey, 1*time.Hour)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMediaURLError, err)
	}
	return url, nil
}
