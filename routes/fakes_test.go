package routes

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Madhav-Gupta-28/catalog-backend-go/errs"
	"github.com/Madhav-Gupta-28/catalog-backend-go/models"
	"github.com/Madhav-Gupta-28/catalog-backend-go/repository"
)

// memoryProducts mirrors MongoDBProductRepository semantics on a map.
// Values are copied in and out so handlers never share state with the store.
type memoryProducts struct {
	mu    sync.Mutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]models.Product
}

var _ repository.ProductRepository = (*memoryProducts)(nil)

func newMemoryProducts() *memoryProducts {
	return &memoryProducts{docs: map[primitive.ObjectID]models.Product{}}
}

func clone(p models.Product) *models.Product {
	out := p
	out.Images = append([]models.Image{}, p.Images...)
	return &out
}

func (m *memoryProducts) Find(_ context.Context, filter models.ProductFilter) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	products := []models.Product{}
	for _, id := range m.order {
		p, ok := m.docs[id]
		if ok && filter.Match(p) {
			products = append(products, *clone(p))
		}
	}
	return products, nil
}

func (m *memoryProducts) FindByID(_ context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.docs[oid]
	if !ok {
		return nil, nil
	}
	return clone(p), nil
}

func (m *memoryProducts) Create(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.ID = primitive.NewObjectID()
	p.Normalize()
	m.docs[p.ID] = *clone(*p)
	m.order = append(m.order, p.ID)
	return nil
}

func (m *memoryProducts) UpdateByID(_ context.Context, id string, update models.ProductUpdate) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.docs[oid]
	if !ok {
		return nil, nil
	}
	if update.NameTR != nil {
		p.NameTR = *update.NameTR
	}
	if update.NameAR != nil {
		p.NameAR = *update.NameAR
	}
	if update.DescriptionTR != nil {
		p.DescriptionTR = *update.DescriptionTR
	}
	if update.DescriptionAR != nil {
		p.DescriptionAR = *update.DescriptionAR
	}
	p.UpdatedAt = time.Now().UTC()
	m.docs[oid] = p
	return clone(p), nil
}

func (m *memoryProducts) DeleteByID(_ context.Context, id string) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.docs[oid]
	if !ok {
		return nil, nil
	}
	delete(m.docs, oid)
	return clone(p), nil
}

func (m *memoryProducts) DeleteAll(context.Context) (models.DeleteSummary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := int64(len(m.docs))
	m.docs = map[primitive.ObjectID]models.Product{}
	m.order = nil
	return models.DeleteSummary{Acknowledged: true, DeletedCount: n}, nil
}

func (m *memoryProducts) Save(_ context.Context, p *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.docs[p.ID]; !ok {
		return repository.ErrNotFound
	}
	p.UpdatedAt = time.Now().UTC()
	p.Normalize()
	m.docs[p.ID] = *clone(*p)
	return nil
}

type memoryUsers struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]models.User
}

var _ repository.UserRepository = (*memoryUsers)(nil)

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[primitive.ObjectID]models.User{}}
}

func (m *memoryUsers) Create(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == u.Username {
			return errs.ErrUserAlreadyExists
		}
	}
	u.ID = primitive.NewObjectID()
	m.users[u.ID] = *u
	return nil
}

func (m *memoryUsers) FindByID(_ context.Context, id string) (*models.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[oid]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memoryUsers) FindByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memoryUsers) List(context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	users := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	return users, nil
}

func (m *memoryUsers) SetAdmin(_ context.Context, id primitive.ObjectID, admin bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Admin = admin
	m.users[id] = u
	return nil
}
