package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/models"
	"storefront/repository"
)

type PromoController struct {
	promos repository.PromoCodeRepository
}

func NewPromoController(promos repository.PromoCodeRepository) *PromoController {
	return &PromoController{promos: promos}
}

// Validate requires an exact code match, the active flag, and either no
// expiry or an expiry in the future. Wrong, inactive and expired codes all
// come back as the same 404.
func (pc *PromoController) Validate(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	promo, err := pc.promos.FindValid(ctx, c.Param("code"), time.Now())
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Invalid or expired promo code"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate promo code"})
		return
	}

	c.JSON(http.StatusOK, promo)
}

func (pc *PromoController) Create(c *gin.Context) {
	var input struct {
		Code               string     `json:"code" binding:"required"`
		DiscountPercentage float64    `json:"discount_percentage" binding:"required"`
		DiscountAmount     *float64   `json:"discount_amount"`
		MinOrderAmount     *float64   `json:"min_order_amount"`
		ExpiresAt          *time.Time `json:"expires_at"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	promo := models.PromoCode{
		ID:                 primitive.NewObjectID(),
		Code:               input.Code,
		DiscountPercentage: input.DiscountPercentage,
		DiscountAmount:     input.DiscountAmount,
		MinOrderAmount:     input.MinOrderAmount,
		Active:             true,
		ExpiresAt:          input.ExpiresAt,
		CreatedAt:          time.Now(),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := pc.promos.Insert(ctx, &promo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create promo code"})
		return
	}

	c.JSON(http.StatusOK, promo)
}
