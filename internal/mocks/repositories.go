package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/vehicle-catalog-api/internal/models"
)

// MockReferenceRepository is a mock implementation of ReferenceRepository
type MockReferenceRepository struct {
	Entries     []*models.ReferenceEntry
	FindError   error
	FindCalls   int
	CreateError error
}

func NewMockReferenceRepository() *MockReferenceRepository {
	return &MockReferenceRepository{}
}

func (m *MockReferenceRepository) FindByName(ctx context.Context, kind models.ReferenceKind, name string) (*models.ReferenceEntry, error) {
	m.FindCalls++
	if m.FindError != nil {
		return nil, m.FindError
	}
	for _, entry := range m.Entries {
		if entry.Kind != kind {
			continue
		}
		for _, n := range entry.Names() {
			if strings.EqualFold(n, name) {
				return entry, nil
			}
		}
	}
	return nil, nil
}

func (m *MockReferenceRepository) CountByKind(ctx context.Context, kind models.ReferenceKind) (int, error) {
	count := 0
	for _, entry := range m.Entries {
		if entry.Kind == kind {
			count++
		}
	}
	return count, nil
}

func (m *MockReferenceRepository) Create(ctx context.Context, entry *models.ReferenceEntry) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Entries = append(m.Entries, entry)
	return nil
}

// MockBrandRepository is a mock implementation of BrandRepository.
// Mutex-guarded: the sync worker calls it from concurrent batch goroutines.
type MockBrandRepository struct {
	mu          sync.Mutex
	Brands      map[string]*models.Brand // keyed by slug
	CreateError error
	UpdateError error
	CreateCalls int
	UpdateCalls int
}

func NewMockBrandRepository() *MockBrandRepository {
	return &MockBrandRepository{
		Brands: make(map[string]*models.Brand),
	}
}

func (m *MockBrandRepository) GetBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Brands[slug], nil
}

func (m *MockBrandRepository) Create(ctx context.Context, brand *models.Brand) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Brands[brand.Slug] = brand
	return nil
}

func (m *MockBrandRepository) Update(ctx context.Context, brand *models.Brand) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++
	if m.UpdateError != nil {
		return m.UpdateError
	}
	m.Brands[brand.Slug] = brand
	return nil
}

func (m *MockBrandRepository) ListByVehicleType(ctx context.Context, vehicleType string) ([]*models.Brand, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var brands []*models.Brand
	for _, brand := range m.Brands {
		if brand.HasVehicleType(vehicleType) {
			brands = append(brands, brand)
		}
	}
	return brands, nil
}

func (m *MockBrandRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Brands), nil
}

// MockModelRepository is a mock implementation of ModelRepository.
// Mutex-guarded: the sync worker calls it from concurrent batch goroutines.
type MockModelRepository struct {
	mu          sync.Mutex
	Models      map[string]*models.Model // keyed by brandID+"/"+slug
	CreateError error
	CreateCalls int
}

func NewMockModelRepository() *MockModelRepository {
	return &MockModelRepository{
		Models: make(map[string]*models.Model),
	}
}

func (m *MockModelRepository) GetByBrandAndSlug(ctx context.Context, brandID, slug string) (*models.Model, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Models[brandID+"/"+slug], nil
}

func (m *MockModelRepository) Create(ctx context.Context, model *models.Model) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Models[model.BrandID+"/"+model.Slug] = model
	return nil
}

func (m *MockModelRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Models), nil
}

// MockVehicleRepository is a mock implementation of VehicleRepository.
// Guarded by a mutex because the importer resolves fields concurrently while
// tests inspect state.
type MockVehicleRepository struct {
	mu          sync.Mutex
	Vehicles    map[string]*models.Vehicle // keyed by slug
	CreateError error
	UpdateError error
	CreateCalls int
	UpdateCalls int
	FailSlugs   map[string]error // per-slug injected failures
}

func NewMockVehicleRepository() *MockVehicleRepository {
	return &MockVehicleRepository{
		Vehicles:  make(map[string]*models.Vehicle),
		FailSlugs: make(map[string]error),
	}
}

func (m *MockVehicleRepository) GetBySlug(ctx context.Context, slug string) (*models.Vehicle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Vehicles[slug], nil
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *models.Vehicle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++
	if m.CreateError != nil {
		return m.CreateError
	}
	if err, ok := m.FailSlugs[vehicle.Slug]; ok {
		return err
	}
	m.Vehicles[vehicle.Slug] = vehicle
	return nil
}

func (m *MockVehicleRepository) Update(ctx context.Context, vehicle *models.Vehicle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++
	if m.UpdateError != nil {
		return m.UpdateError
	}
	if err, ok := m.FailSlugs[vehicle.Slug]; ok {
		return err
	}
	m.Vehicles[vehicle.Slug] = vehicle
	return nil
}

func (m *MockVehicleRepository) DeleteAll(ctx context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := int64(len(m.Vehicles))
	m.Vehicles = make(map[string]*models.Vehicle)
	return count, nil
}

func (m *MockVehicleRepository) Count(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Vehicles), nil
}

func (m *MockVehicleRepository) CountByVehicleType(ctx context.Context) (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[string]int)
	for _, v := range m.Vehicles {
		counts[v.VehicleType]++
	}
	return counts, nil
}
