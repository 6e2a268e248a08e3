package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product type tags.
const (
	ProductTypePhysical = "physical"
	ProductTypeDigital  = "digital"
	ProductTypeService  = "service"
)

type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name" binding:"required"`
	Description string             `bson:"description" json:"description" binding:"required"`
	Price       float64            `bson:"price" json:"price" binding:"required"`
	Images      []string           `bson:"images" json:"images"`
	Category    string             `bson:"category" json:"category" binding:"required"`
	Inventory   int                `bson:"inventory" json:"inventory"`
	Type        string             `bson:"type" json:"type" binding:"required,oneof=physical digital service"`
	Featured    bool               `bson:"featured" json:"featured"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
}
