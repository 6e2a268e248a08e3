package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/models"
	"storefront/repository"
)

// AdminController backs the MVP admin surface. It is deliberately
// unauthenticated, matching the rest of the admin routes.
type AdminController struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	orders     repository.OrderRepository
	users      repository.UserRepository
	promos     repository.PromoCodeRepository
}

func NewAdminController(
	products repository.ProductRepository,
	categories repository.CategoryRepository,
	orders repository.OrderRepository,
	users repository.UserRepository,
	promos repository.PromoCodeRepository,
) *AdminController {
	return &AdminController{
		products:   products,
		categories: categories,
		orders:     orders,
		users:      users,
		promos:     promos,
	}
}

func (ac *AdminController) Dashboard(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	totalProducts, err := ac.products.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard"})
		return
	}
	totalOrders, err := ac.orders.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard"})
		return
	}
	totalUsers, err := ac.users.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dashboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_products": totalProducts,
		"total_orders":   totalOrders,
		"total_users":    totalUsers,
	})
}

// InitSampleData seeds a demo catalog. Seeding is skipped when products
// already exist so repeated calls don't duplicate the data.
func (ac *AdminController) InitSampleData(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	count, err := ac.products.Count(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to init sample data"})
		return
	}
	if count > 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Sample data already initialized"})
		return
	}

	categories := sampleCategories()
	for i := range categories {
		if err := ac.categories.Insert(ctx, &categories[i]); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to init sample data"})
			return
		}
	}

	products := sampleProducts()
	for i := range products {
		if err := ac.products.Insert(ctx, &products[i]); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to init sample data"})
			return
		}
	}

	promos := samplePromoCodes()
	for i := range promos {
		if err := ac.promos.Insert(ctx, &promos[i]); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to init sample data"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Sample data initialized",
		"categories":  len(categories),
		"products":    len(products),
		"promo_codes": len(promos),
	})
}

func sampleCategories() []models.Category {
	now := time.Now()
	return []models.Category{
		{ID: primitive.NewObjectID(), Name: "Electronics", Description: "Gadgets, audio and accessories", CreatedAt: now},
		{ID: primitive.NewObjectID(), Name: "Books", Description: "Print and digital reading", CreatedAt: now},
		{ID: primitive.NewObjectID(), Name: "Services", Description: "Consulting and support plans", CreatedAt: now},
	}
}

func sampleProducts() []models.Product {
	now := time.Now()
	return []models.Product{
		{
			ID:          primitive.NewObjectID(),
			Name:        "Wireless Headphones",
			Description: "Over-ear wireless headphones with active noise cancellation",
			Price:       129.99,
			Images:      []string{},
			Category:    "Electronics",
			Inventory:   50,
			Type:        models.ProductTypePhysical,
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "Bluetooth Speaker",
			Description: "Portable speaker with 12 hour battery life",
			Price:       59.99,
			Images:      []string{},
			Category:    "Electronics",
			Inventory:   80,
			Type:        models.ProductTypePhysical,
			Featured:    false,
			CreatedAt:   now,
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "USB-C Charging Cable",
			Description: "Braided 2m fast-charging cable",
			Price:       12.50,
			Images:      []string{},
			Category:    "Electronics",
			Inventory:   200,
			Type:        models.ProductTypePhysical,
			Featured:    false,
			CreatedAt:   now,
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "Go Programming Handbook",
			Description: "Downloadable e-book covering practical Go patterns",
			Price:       24.00,
			Images:      []string{},
			Category:    "Books",
			Inventory:   0,
			Type:        models.ProductTypeDigital,
			Featured:    true,
			CreatedAt:   now,
		},
		{
			ID:          primitive.NewObjectID(),
			Name:        "Setup Consultation",
			Description: "One hour remote consultation for store setup",
			Price:       95.00,
			Images:      []string{},
			Category:    "Services",
			Inventory:   0,
			Type:        models.ProductTypeService,
			Featured:    false,
			CreatedAt:   now,
		},
	}
}

func samplePromoCodes() []models.PromoCode {
	now := time.Now()
	minWelcome := 50.0
	minSave := 100.0
	return []models.PromoCode{
		{
			ID:                 primitive.NewObjectID(),
			Code:               "WELCOME10",
			DiscountPercentage: 10.0,
			MinOrderAmount:     &minWelcome,
			Active:             true,
			CreatedAt:          now,
		},
		{
			ID:                 primitive.NewObjectID(),
			Code:               "SAVE20",
			DiscountPercentage: 20.0,
			MinOrderAmount:     &minSave,
			Active:             true,
			CreatedAt:          now,
		},
		{
			ID:                 primitive.NewObjectID(),
			Code:               "NEWUSER",
			DiscountPercentage: 15.0,
			Active:             true,
			CreatedAt:          now,
		},
	}
}
