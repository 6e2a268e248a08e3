package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/middleware"
	"storefront/models"
	"storefront/repository"
)

type CartController struct {
	cart     repository.CartRepository
	products repository.ProductRepository
}

func NewCartController(cart repository.CartRepository, products repository.ProductRepository) *CartController {
	return &CartController{cart: cart, products: products}
}

// List joins each cart row to its product. Rows whose product has since been
// deleted are dropped from the response.
func (cc *CartController) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	items, err := cc.cart.ListByUser(ctx, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	entries := []models.CartEntry{}
	for _, item := range items {
		product, err := cc.products.FindByID(ctx, item.ProductID)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		entries = append(entries, models.CartEntry{
			ID:       item.ID,
			Quantity: item.Quantity,
			Product:  *product,
		})
	}

	c.JSON(http.StatusOK, entries)
}

// Add merges into the existing (user, product) row by incrementing its
// quantity, inserting a new row otherwise. There is no upper bound against
// inventory.
func (cc *CartController) Add(c *gin.Context) {
	var body struct {
		ProductID string `json:"product_id" binding:"required"`
		Quantity  int    `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	productID, err := primitive.ObjectIDFromHex(body.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
		return
	}

	user := middleware.CurrentUser(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	existing, err := cc.cart.FindByUserAndProduct(ctx, user.ID, productID)
	switch {
	case err == nil:
		if err := cc.cart.SetQuantity(ctx, existing.ID, user.ID, existing.Quantity+body.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart updated successfully"})
	case errors.Is(err, repository.ErrNotFound):
		item := models.CartItem{
			ID:        primitive.NewObjectID(),
			UserID:    user.ID,
			ProductID: productID,
			Quantity:  body.Quantity,
			CreatedAt: time.Now(),
		}
		if err := cc.cart.Insert(ctx, &item); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Item added to cart successfully"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
	}
}

// Update sets the quantity of a user-scoped row. Zero and negative values
// are accepted and persisted as-is.
func (cc *CartController) Update(c *gin.Context) {
	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}

	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user := middleware.CurrentUser(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err = cc.cart.SetQuantity(ctx, itemID, user.ID, *body.Quantity)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart item updated successfully"})
}

func (cc *CartController) Remove(c *gin.Context) {
	itemID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}

	user := middleware.CurrentUser(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	err = cc.cart.Delete(ctx, itemID, user.ID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart successfully"})
}
