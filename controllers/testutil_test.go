package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"storefront/controllers"
	"storefront/models"
	"storefront/repository"
	"storefront/routes"
)

// In-memory repository fakes, mirroring the Mongo implementations' contract
// (ErrNotFound on empty matches, user-scoped updates and deletes).

type memUserRepo struct {
	users map[primitive.ObjectID]models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[primitive.ObjectID]models.User{}}
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	user := u
	return &user, nil
}

func (m *memUserRepo) Insert(_ context.Context, user *models.User) error {
	m.users[user.ID] = *user
	return nil
}

func (m *memUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.users)), nil
}

type memSessionRepo struct {
	sessions map[string]models.Session
}

func newMemSessionRepo() *memSessionRepo {
	return &memSessionRepo{sessions: map[string]models.Session{}}
}

func (m *memSessionRepo) Insert(_ context.Context, session *models.Session) error {
	m.sessions[session.Token] = *session
	return nil
}

func (m *memSessionRepo) FindByToken(_ context.Context, token string) (*models.Session, error) {
	s, ok := m.sessions[token]
	if !ok {
		return nil, repository.ErrNotFound
	}
	session := s
	return &session, nil
}

type memProductRepo struct {
	products map[primitive.ObjectID]models.Product
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{products: map[primitive.ObjectID]models.Product{}}
}

func (m *memProductRepo) List(_ context.Context, filter repository.ProductFilter) ([]models.Product, error) {
	matched := []models.Product{}
	for _, p := range m.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Search != "" {
			term := strings.ToLower(filter.Search)
			if !strings.Contains(strings.ToLower(p.Name), term) &&
				!strings.Contains(strings.ToLower(p.Description), term) {
				continue
			}
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.Featured != nil && p.Featured != *filter.Featured {
			continue
		}
		matched = append(matched, p)
	}
	return matched, nil
}

func (m *memProductRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	p, ok := m.products[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	product := p
	return &product, nil
}

func (m *memProductRepo) Insert(_ context.Context, product *models.Product) error {
	m.products[product.ID] = *product
	return nil
}

func (m *memProductRepo) Replace(_ context.Context, product *models.Product) error {
	if _, ok := m.products[product.ID]; !ok {
		return repository.ErrNotFound
	}
	m.products[product.ID] = *product
	return nil
}

func (m *memProductRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.products[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.products, id)
	return nil
}

func (m *memProductRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.products)), nil
}

type memCategoryRepo struct {
	categories []models.Category
}

func (m *memCategoryRepo) List(_ context.Context) ([]models.Category, error) {
	out := []models.Category{}
	out = append(out, m.categories...)
	return out, nil
}

func (m *memCategoryRepo) Insert(_ context.Context, category *models.Category) error {
	m.categories = append(m.categories, *category)
	return nil
}

type memCartRepo struct {
	items map[primitive.ObjectID]models.CartItem
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{items: map[primitive.ObjectID]models.CartItem{}}
}

func (m *memCartRepo) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.CartItem, error) {
	out := []models.CartItem{}
	for _, item := range m.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (m *memCartRepo) FindByUserAndProduct(_ context.Context, userID, productID primitive.ObjectID) (*models.CartItem, error) {
	for _, item := range m.items {
		if item.UserID == userID && item.ProductID == productID {
			found := item
			return &found, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memCartRepo) Insert(_ context.Context, item *models.CartItem) error {
	m.items[item.ID] = *item
	return nil
}

func (m *memCartRepo) SetQuantity(_ context.Context, id, userID primitive.ObjectID, quantity int) error {
	item, ok := m.items[id]
	if !ok || item.UserID != userID {
		return repository.ErrNotFound
	}
	item.Quantity = quantity
	m.items[id] = item
	return nil
}

func (m *memCartRepo) Delete(_ context.Context, id, userID primitive.ObjectID) error {
	item, ok := m.items[id]
	if !ok || item.UserID != userID {
		return repository.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *memCartRepo) ClearUser(_ context.Context, userID primitive.ObjectID) error {
	for id, item := range m.items {
		if item.UserID == userID {
			delete(m.items, id)
		}
	}
	return nil
}

type memOrderRepo struct {
	orders map[primitive.ObjectID]models.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: map[primitive.ObjectID]models.Order{}}
}

func (m *memOrderRepo) Insert(_ context.Context, order *models.Order) error {
	m.orders[order.ID] = *order
	return nil
}

func (m *memOrderRepo) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	out := []models.Order{}
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (m *memOrderRepo) FindByIDAndUser(_ context.Context, id, userID primitive.ObjectID) (*models.Order, error) {
	o, ok := m.orders[id]
	if !ok || o.UserID != userID {
		return nil, repository.ErrNotFound
	}
	order := o
	return &order, nil
}

func (m *memOrderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.orders)), nil
}

type memPromoRepo struct {
	promos map[string]models.PromoCode
}

func newMemPromoRepo() *memPromoRepo {
	return &memPromoRepo{promos: map[string]models.PromoCode{}}
}

func (m *memPromoRepo) Insert(_ context.Context, promo *models.PromoCode) error {
	m.promos[promo.Code] = *promo
	return nil
}

func (m *memPromoRepo) FindValid(_ context.Context, code string, now time.Time) (*models.PromoCode, error) {
	p, ok := m.promos[code]
	if !ok || !p.Active {
		return nil, repository.ErrNotFound
	}
	if p.ExpiresAt != nil && now.After(*p.ExpiresAt) {
		return nil, repository.ErrNotFound
	}
	promo := p
	return &promo, nil
}

// fakeIdentity stands in for the external provider.
type fakeIdentity struct {
	payload *controllers.IdentityPayload
	err     error
	calls   int
}

func (f *fakeIdentity) SessionData(_ context.Context, _ string) (*controllers.IdentityPayload, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.payload, nil
}

type testEnv struct {
	router   *gin.Engine
	users    *memUserRepo
	sessions *memSessionRepo
	products *memProductRepo
	cart     *memCartRepo
	orders   *memOrderRepo
	promos   *memPromoRepo
	identity *fakeIdentity
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:    newMemUserRepo(),
		sessions: newMemSessionRepo(),
		products: newMemProductRepo(),
		cart:     newMemCartRepo(),
		orders:   newMemOrderRepo(),
		promos:   newMemPromoRepo(),
		identity: &fakeIdentity{},
	}

	repos := &repository.Repositories{
		Users:      env.users,
		Sessions:   env.sessions,
		Products:   env.products,
		Categories: &memCategoryRepo{},
		Cart:       env.cart,
		Orders:     env.orders,
		PromoCodes: env.promos,
	}

	env.router = gin.New()
	routes.Register(env.router, routes.Deps{Repos: repos, Identity: env.identity})
	return env
}

// seedUser creates a user plus a live session and returns its token.
func (env *testEnv) seedUser(email string) (models.User, string) {
	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Name:      "Test User",
		CreatedAt: time.Now(),
	}
	env.users.users[user.ID] = user

	token := uuid.NewString()
	env.sessions.sessions[token] = models.Session{
		ID:        primitive.NewObjectID(),
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: time.Now().Add(models.SessionTTL),
		CreatedAt: time.Now(),
	}
	return user, token
}

func (env *testEnv) seedProduct(p models.Product) models.Product {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	env.products.products[p.ID] = p
	return p
}

func (env *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("X-Session-ID", token)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}
