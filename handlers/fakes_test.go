package handlers

import (
	"context"
	"errors"
	"sync"

	"github.com/anjiri1684/precision_martial/models"
	"github.com/anjiri1684/precision_martial/services"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errStoreDown = errors.New("store unavailable")

type memoryUsers struct {
	mu   sync.Mutex
	docs []models.User
	err  error
}

func (m *memoryUsers) Create(_ context.Context, user *models.User) (*models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	doc := *user
	doc.ID = primitive.NewObjectID()
	m.docs = append(m.docs, doc)
	return &models.InsertResult{Acknowledged: true, InsertedID: doc.ID}, nil
}

func (m *memoryUsers) List(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]models.User{}, m.docs...), nil
}

func (m *memoryUsers) ListByRole(_ context.Context, role string) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.User{}
	for _, u := range m.docs {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out, nil
}

func (m *memoryUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, u := range m.docs {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memoryUsers) SetRole(_ context.Context, id primitive.ObjectID, role string) (*models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	res := &models.UpdateResult{Acknowledged: true}
	for i := range m.docs {
		if m.docs[i].ID == id {
			res.MatchedCount = 1
			if m.docs[i].Role != role {
				m.docs[i].Role = role
				res.ModifiedCount = 1
			}
		}
	}
	return res, nil
}

func (m *memoryUsers) Delete(_ context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	res := &models.DeleteResult{Acknowledged: true}
	for i := range m.docs {
		if m.docs[i].ID == id {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			res.DeletedCount = 1
			break
		}
	}
	return res, nil
}

type memoryClasses struct {
	mu   sync.Mutex
	docs []models.Class
	err  error
}

func (m *memoryClasses) Create(_ context.Context, class *models.Class) (*models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	doc := *class
	doc.ID = primitive.NewObjectID()
	m.docs = append(m.docs, doc)
	return &models.InsertResult{Acknowledged: true, InsertedID: doc.ID}, nil
}

func (m *memoryClasses) filter(keep func(models.Class) bool) ([]models.Class, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Class{}
	for _, c := range m.docs {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memoryClasses) List(_ context.Context) ([]models.Class, error) {
	return m.filter(func(models.Class) bool { return true })
}

func (m *memoryClasses) ListByInstructor(_ context.Context, email string) ([]models.Class, error) {
	return m.filter(func(c models.Class) bool { return c.Email == email })
}

func (m *memoryClasses) ListByStatus(_ context.Context, status models.ClassStatus) ([]models.Class, error) {
	return m.filter(func(c models.Class) bool { return c.Status == status })
}

func (m *memoryClasses) FindByID(_ context.Context, id primitive.ObjectID) (*models.Class, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, c := range m.docs {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

// apply mutates the class with id, inserting an empty one first when upsert is set.
func (m *memoryClasses) apply(id primitive.ObjectID, upsert bool, mutate func(*models.Class)) (*models.UpdateResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.docs {
		if m.docs[i].ID == id {
			mutate(&m.docs[i])
			return &models.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		}
	}
	if !upsert {
		return &models.UpdateResult{Acknowledged: true}, nil
	}
	doc := models.Class{ID: id}
	mutate(&doc)
	m.docs = append(m.docs, doc)
	return &models.UpdateResult{Acknowledged: true, UpsertedCount: 1, UpsertedID: id}, nil
}

func (m *memoryClasses) SetStatus(_ context.Context, id primitive.ObjectID, status models.ClassStatus) (*models.UpdateResult, error) {
	return m.apply(id, false, func(c *models.Class) { c.Status = status })
}

func (m *memoryClasses) UpsertFeedback(_ context.Context, id primitive.ObjectID, feedback string) (*models.UpdateResult, error) {
	return m.apply(id, true, func(c *models.Class) { c.Feedback = feedback })
}

func (m *memoryClasses) Upsert(_ context.Context, id primitive.ObjectID, f models.ClassUpdate) (*models.UpdateResult, error) {
	return m.apply(id, true, func(c *models.Class) {
		c.Name, c.Email, c.ClassName = f.Name, f.Email, f.ClassName
		c.Price, c.Seats, c.Photo = f.Price, f.Seats, f.Photo
	})
}

type memoryEnrollments struct {
	mu   sync.Mutex
	docs []models.Enrollment
	err  error
}

func (m *memoryEnrollments) Create(_ context.Context, e *models.Enrollment) (*models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	doc := *e
	doc.ID = primitive.NewObjectID()
	m.docs = append(m.docs, doc)
	return &models.InsertResult{Acknowledged: true, InsertedID: doc.ID}, nil
}

func (m *memoryEnrollments) ListByStudent(_ context.Context, email string) ([]models.Enrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := []models.Enrollment{}
	for _, e := range m.docs {
		if e.Email == email {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memoryEnrollments) FindByID(_ context.Context, id primitive.ObjectID) (*models.Enrollment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, e := range m.docs {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}
	return nil, nil
}

func (m *memoryEnrollments) Delete(_ context.Context, id primitive.ObjectID) (*models.DeleteResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	res := &models.DeleteResult{Acknowledged: true}
	for i := range m.docs {
		if m.docs[i].ID == id {
			m.docs = append(m.docs[:i], m.docs[i+1:]...)
			res.DeletedCount = 1
			break
		}
	}
	return res, nil
}

// MockPaymentProvider implements PaymentProvider for testing
type MockPaymentProvider struct {
	mock.Mock
}

func (m *MockPaymentProvider) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	args := m.Called(ctx, amount, currency)
	return args.String(0), args.Error(1)
}

// MockUploadSigner implements UploadSigner for testing
type MockUploadSigner struct {
	mock.Mock
}

func (m *MockUploadSigner) Sign() (*services.UploadSignature, error) {
	args := m.Called()
	sig, _ := args.Get(0).(*services.UploadSignature)
	return sig, args.Error(1)
}
