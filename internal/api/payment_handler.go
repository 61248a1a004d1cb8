package api

import (
	"errors"
	"io"
	"net/http"

	"fitweek/fitness-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Stripe sends the webhook signature in this header.
const stripeSignatureHeader = "Stripe-Signature"

// PaymentHandler serves the premium-content payment round trip.
type PaymentHandler struct {
	paymentService service.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// --- DTOs ---

type CreateCheckoutRequest struct {
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	PostID    string  `json:"postId" binding:"required"`
	UserEmail string  `json:"userEmail" binding:"omitempty,email"`
}

type VerifyPaymentRequest struct {
	SessionID string `json:"sessionId" binding:"required"`
	PostID    string `json:"postId" binding:"required"`
}

// --- Handler Methods ---

// CreateCheckoutSession opens a hosted checkout session for a premium post.
func (h *PaymentHandler) CreateCheckoutSession(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req CreateCheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "amount and postId are required")
		return
	}

	result, err := h.paymentService.CreateCheckoutSession(c.Request.Context(), req.Amount, req.PostID, userID, req.UserEmail)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUpstream):
			abortWithError(c, http.StatusBadGateway, "Payment provider is unavailable")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to create checkout session")
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// VerifyPayment reconciles a checkout session against the pending record.
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	var req VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "sessionId and postId are required")
		return
	}

	status, err := h.paymentService.VerifySession(c.Request.Context(), req.SessionID, req.PostID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrUpstream):
			abortWithError(c, http.StatusBadGateway, "Payment provider is unavailable")
		case errors.Is(err, service.ErrPaymentUpdateFailed):
			// A paid session we could not record — surfaced loudly so the
			// caller knows reconciliation is needed.
			abortWithError(c, http.StatusInternalServerError, "Payment confirmed but could not be recorded; contact support")
		default:
			abortWithError(c, http.StatusInternalServerError, "Failed to verify payment")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// Webhook receives asynchronous processor events. It is unauthenticated;
// trust comes from the signature check inside the service.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Failed to read webhook payload")
		return
	}

	err = h.paymentService.HandleWebhook(c.Request.Context(), payload, c.GetHeader(stripeSignatureHeader))
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			abortWithError(c, http.StatusBadRequest, "Invalid webhook payload or signature")
			return
		}
		// Non-2xx makes the processor redeliver, which is what we want for
		// transient persistence failures.
		logrus.WithError(err).Error("webhook processing failed")
		abortWithError(c, http.StatusInternalServerError, "Webhook processing failed")
		return
	}
	c.JSON(http.StatusOK, gin.H{"received": true})
}
