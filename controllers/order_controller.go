package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/middleware"
	"storefront/models"
	"storefront/repository"
)

type OrderController struct {
	orders repository.OrderRepository
	cart   repository.CartRepository
}

func NewOrderController(orders repository.OrderRepository, cart repository.CartRepository) *OrderController {
	return &OrderController{orders: orders, cart: cart}
}

// Create persists an order from the client-submitted snapshot. Items, total
// and payment method are trusted as given; nothing is recomputed from the
// catalog and no inventory is decremented. The cart clear runs after the
// insert and is retried once, since deleting zero rows is a no-op.
func (oc *OrderController) Create(c *gin.Context) {
	var body struct {
		Items         []models.OrderItem `json:"items" binding:"required"`
		Total         float64            `json:"total"`
		PaymentMethod string             `json:"payment_method" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user := middleware.CurrentUser(c)

	order := models.Order{
		ID:            primitive.NewObjectID(),
		UserID:        user.ID,
		Items:         body.Items,
		Total:         body.Total,
		Status:        models.OrderStatusPending,
		PaymentMethod: body.PaymentMethod,
		PaymentStatus: "pending",
		CreatedAt:     time.Now(),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := oc.orders.Insert(ctx, &order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	if err := oc.clearCart(ctx, user.ID); err != nil {
		// The order is already persisted; surface it anyway and leave the
		// stale cart for the next successful clear.
		log.Println("clear cart after order:", err)
	}

	c.JSON(http.StatusOK, order)
}

func (oc *OrderController) clearCart(ctx context.Context, userID primitive.ObjectID) error {
	if err := oc.cart.ClearUser(ctx, userID); err == nil {
		return nil
	}
	return oc.cart.ClearUser(ctx, userID)
}

func (oc *OrderController) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	orders, err := oc.orders.ListByUser(ctx, user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// Get is scoped to the requesting user. Another user's order id yields the
// same 404 as a missing one.
func (oc *OrderController) Get(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	user := middleware.CurrentUser(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	order, err := oc.orders.FindByIDAndUser(ctx, orderID, user.ID)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return
	}

	c.JSON(http.StatusOK, order)
}
