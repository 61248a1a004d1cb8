package api

import (
	"errors"
	"fmt"
	"net/http"

	"fitweek/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// PremiumHandler serves premium post metadata and gated media delivery.
type PremiumHandler struct {
	premiumService service.PremiumService
}

// NewPremiumHandler creates a new PremiumHandler.
func NewPremiumHandler(premiumService service.PremiumService) *PremiumHandler {
	return &PremiumHandler{premiumService: premiumService}
}

// --- DTOs ---

type CreatePostRequest struct {
	PostID      string  `json:"postId" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

type MediaUploadRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type ConfirmMediaRequest struct {
	ObjectKey   string `json:"objectKey" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
}

// --- Handler Methods ---

// CreatePost creates a premium post (admin only, enforced by routing).
func (h *PremiumHandler) CreatePost(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	post, err := h.premiumService.CreatePost(c.Request.Context(), req.PostID, req.Title, req.Description, req.Price)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create post")
		}
		return
	}
	c.JSON(http.StatusCreated, post)
}

// GetPost returns premium post metadata.
func (h *PremiumHandler) GetPost(c *gin.Context) {
	post, err := h.premiumService.GetPost(c.Request.Context(), c.Param("postId"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to load post")
		}
		return
	}
	c.JSON(http.StatusOK, post)
}

// RequestMediaUpload returns a presigned PUT ticket for a post's media
// (admin only, enforced by routing).
func (h *PremiumHandler) RequestMediaUpload(c *gin.Context) {
	var req MediaUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	ticket, err := h.premiumService.RequestMediaUploadURL(c.Request.Context(), c.Param("postId"), req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create upload URL")
		}
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// ConfirmMediaUpload records the uploaded object key on the post.
func (h *PremiumHandler) ConfirmMediaUpload(c *gin.Context) {
	var req ConfirmMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.premiumService.ConfirmMediaUpload(c.Request.Context(), c.Param("postId"), req.ObjectKey, req.ContentType); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			abortWithError(c, http.StatusNotFound, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to confirm media upload")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"confirmed": true})
}

// GetMediaURL returns a presigned download URL when the member has a
// succeeded payment for the post.
func (h *PremiumHandler) GetMediaURL(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	url, err := h.premiumService.MediaDownloadURL(c.Request.Context(), c.Param("postId"), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotPurchased):
			abortWithError(c, http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrPostNotFound), errors.Is(err, service.ErrNoMedia):
			abortWithError(c, http.StatusNotFound, err.Error())
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to generate media URL")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
