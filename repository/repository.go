package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"storefront/models"
)

// ErrNotFound is returned when a lookup matches no document. Handlers map it
// to 404.
var ErrNotFound = errors.New("not found")

// Collection names.
const (
	colUsers      = "users"
	colSessions   = "sessions"
	colProducts   = "products"
	colCategories = "categories"
	colCartItems  = "cart_items"
	colOrders     = "orders"
	colPromoCodes = "promo_codes"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	Count(ctx context.Context) (int64, error)
}

type SessionRepository interface {
	Insert(ctx context.Context, session *models.Session) error
	FindByToken(ctx context.Context, token string) (*models.Session, error)
}

type ProductRepository interface {
	List(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
	Replace(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type CategoryRepository interface {
	List(ctx context.Context) ([]models.Category, error)
	Insert(ctx context.Context, category *models.Category) error
}

type CartRepository interface {
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.CartItem, error)
	FindByUserAndProduct(ctx context.Context, userID, productID primitive.ObjectID) (*models.CartItem, error)
	Insert(ctx context.Context, item *models.CartItem) error
	SetQuantity(ctx context.Context, id, userID primitive.ObjectID, quantity int) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
	ClearUser(ctx context.Context, userID primitive.ObjectID) error
}

type OrderRepository interface {
	Insert(ctx context.Context, order *models.Order) error
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	FindByIDAndUser(ctx context.Context, id, userID primitive.ObjectID) (*models.Order, error)
	Count(ctx context.Context) (int64, error)
}

type PromoCodeRepository interface {
	Insert(ctx context.Context, promo *models.PromoCode) error
	FindValid(ctx context.Context, code string, now time.Time) (*models.PromoCode, error)
}

// Repositories bundles one repository per collection for injection into the
// handlers.
type Repositories struct {
	Users      UserRepository
	Sessions   SessionRepository
	Products   ProductRepository
	Categories CategoryRepository
	Cart       CartRepository
	Orders     OrderRepository
	PromoCodes PromoCodeRepository
}

// NewMongo wires every repository onto the shared database handle.
func NewMongo(db *mongo.Database) *Repositories {
	return &Repositories{
		Users:      NewUserRepo(db),
		Sessions:   NewSessionRepo(db),
		Products:   NewProductRepo(db),
		Categories: NewCategoryRepo(db),
		Cart:       NewCartRepo(db),
		Orders:     NewOrderRepo(db),
		PromoCodes: NewPromoCodeRepo(db),
	}
}
