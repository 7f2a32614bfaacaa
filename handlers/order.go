package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	recordsRepo "washly/database/repository/records"
	"washly/models"
	"washly/services/order"
	"washly/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler exposes the order-building engine over HTTP.
type OrderHandler struct {
	Service order.OrderSessionService
	Records recordsRepo.OrderRecordRepository
}

func NewOrderHandler(svc order.OrderSessionService, records recordsRepo.OrderRecordRepository) *OrderHandler {
	return &OrderHandler{Service: svc, Records: records}
}

func requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request.Context(), 15*time.Second)
}

func currentUserID(c *gin.Context) string {
	if v, exists := c.Get("userID"); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// sessionResponse shapes every session-returning endpoint identically.
// pendingPrices carries the names still showing as TBD.
func sessionResponse(sess *models.OrderSession) gin.H {
	return gin.H{
		"session":       sess,
		"pendingPrices": order.PendingPrices(sess.Draft),
	}
}

func (h *OrderHandler) respondServiceError(c *gin.Context, err error) {
	var incomplete *order.IncompleteDraftError
	var submission *order.OrderSubmissionFailure
	switch {
	case errors.Is(err, order.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Order session not found", err.Error())
	case errors.As(err, &incomplete):
		utils.JSONError(c, http.StatusBadRequest, "Order draft is incomplete", err.Error())
	case errors.As(err, &submission):
		utils.JSONError(c, http.StatusBadGateway, "Order submission failed, draft preserved", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Order operation failed", err.Error())
	}
}

// StartOrder opens a SERVICE-flow session.
func (h *OrderHandler) StartOrder(c *gin.Context) {
	var input struct {
		ServiceType string `json:"serviceType"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()
	sess, err := h.Service.StartOrder(ctx, currentUserID(c), input.ServiceType)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// StartOrderFromStore opens a STORE-flow session with the store fixed.
func (h *OrderHandler) StartOrderFromStore(c *gin.Context) {
	var input struct {
		ServiceType string       `json:"serviceType"`
		Store       models.Store `json:"store"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()
	sess, err := h.Service.StartOrderFromStore(ctx, currentUserID(c), input.ServiceType, input.Store)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// GetSession returns the live session for resume.
func (h *OrderHandler) GetSession(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()
	sess, err := h.Service.GetSession(ctx, c.Param("sessionID"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// SetPickup applies pickup details to the draft.
func (h *OrderHandler) SetPickup(c *gin.Context) {
	var input models.PickupDetails
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()
	sess, err := h.Service.SetPickup(ctx, c.Param("sessionID"), input)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// SetItems replaces the draft's item selection.
func (h *OrderHandler) SetItems(c *gin.Context) {
	var input order.ItemSelection
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()
	sess, err := h.Service.SetItems(ctx, c.Param("sessionID"), input)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// SetStore records the chosen store and re-resolves prices.
func (h *OrderHandler) SetStore(c *gin.Context) {
	var input models.Store
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()
	sess, err := h.Service.SetStore(ctx, c.Param("sessionID"), input)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// SetAddOns replaces the add-on selection.
func (h *OrderHandler) SetAddOns(c *gin.Context) {
	var input struct {
		AddOns []models.AddOnSelection `json:"addOns"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()
	sess, err := h.Service.SetAddOns(ctx, c.Param("sessionID"), input.AddOns)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// NextStep advances the flow machine.
func (h *OrderHandler) NextStep(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()
	sess, err := h.Service.NextStep(ctx, c.Param("sessionID"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// PrevStep walks the flow machine backward.
func (h *OrderHandler) PrevStep(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()
	sess, err := h.Service.PrevStep(ctx, c.Param("sessionID"))
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, sessionResponse(sess))
}

// ListCoupons returns the gateway's current coupon candidates.
func (h *OrderHandler) ListCoupons(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()
	coupons, err := h.Service.ListCoupons(ctx)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"coupons": coupons})
}

// ApplyCoupon attaches a coupon and reconciles the breakdown.
func (h *OrderHandler) ApplyCoupon(c *gin.Context) {
	var input struct {
		Code string `json:"code"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()
	sess, err := h.Service.ApplyCoupon(ctx, c.Param("sessionID"), input.Code)
	var pricingErr *order.RemotePricingFailure
	if err != nil && !errors.As(err, &pricingErr) {
		h.respondServiceError(c, err)
		return
	}
	resp := sessionResponse(sess)
	resp["provisional"] = sess.Draft.PaymentBreakdown.Provisional
	c.JSON(http.StatusOK, resp)
}

// ReconcileBreakdown refreshes the server-computed fee breakdown. When the
// pricing service is down the deterministic fallback figures come back
// flagged provisional instead of an error.
func (h *OrderHandler) ReconcileBreakdown(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()
	sess, err := h.Service.ReconcileBreakdown(ctx, c.Param("sessionID"))
	var pricingErr *order.RemotePricingFailure
	if err != nil && !errors.As(err, &pricingErr) {
		h.respondServiceError(c, err)
		return
	}
	resp := sessionResponse(sess)
	resp["provisional"] = sess.Draft.PaymentBreakdown.Provisional
	c.JSON(http.StatusOK, resp)
}

// SubmitOrder assembles and submits the final payload.
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var input struct {
		CampaignID    string `json:"campaignId"`
		PricingTierID string `json:"pricingTierId"`
	}
	// Campaign and pricing tier are optional; an empty body is fine.
	_ = c.ShouldBindJSON(&input)

	ctx, cancel := requestContext(c)
	defer cancel()
	result, err := h.Service.SubmitOrder(ctx, c.Param("sessionID"), input.CampaignID, input.PricingTierID)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ResetOrder abandons the draft.
func (h *OrderHandler) ResetOrder(c *gin.Context) {
	ctx, cancel := requestContext(c)
	defer cancel()
	if err := h.Service.ResetOrder(ctx, c.Param("sessionID")); err != nil {
		h.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

// OrderHistory lists the caller's submitted orders, newest first.
func (h *OrderHandler) OrderHistory(c *gin.Context) {
	userID := currentUserID(c)
	if userID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "Insufficient authorization", "missing user identity")
		return
	}

	ctx, cancel := requestContext(c)
	defer cancel()
	records, err := h.Records.GetByUserID(ctx, userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load order history", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": records})
}
