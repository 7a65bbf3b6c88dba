package mocks

import (
	"context"

	"github.com/vehicle-catalog-api/internal/models"
)

// MockCatalogService is a mock implementation of service.CatalogService
type MockCatalogService struct {
	StartError error
	RunError   error
	State      models.ProgressState
	CatStats   *models.CatalogStats
	StatsError error
	StartCalls int
	RunCalls   int
}

func NewMockCatalogService() *MockCatalogService {
	return &MockCatalogService{
		CatStats: &models.CatalogStats{VehiclesByType: map[string]int{}},
	}
}

func (m *MockCatalogService) StartInitialization() error {
	m.StartCalls++
	return m.StartError
}

func (m *MockCatalogService) RunInitialization(ctx context.Context) error {
	m.RunCalls++
	return m.RunError
}

func (m *MockCatalogService) Progress() models.ProgressState {
	return m.State
}

func (m *MockCatalogService) Stats(ctx context.Context) (*models.CatalogStats, error) {
	if m.StatsError != nil {
		return nil, m.StatsError
	}
	return m.CatStats, nil
}

// MockImportService is a mock implementation of service.ImportService
type MockImportService struct {
	Report      *models.ImportReport
	ImportError error
	LastRecords []models.RawVehicle
	LastClear   bool
	Calls       int
}

func NewMockImportService() *MockImportService {
	return &MockImportService{Report: &models.ImportReport{}}
}

func (m *MockImportService) ImportVehicles(ctx context.Context, raw []models.RawVehicle, clearExisting bool) (*models.ImportReport, error) {
	m.Calls++
	m.LastRecords = raw
	m.LastClear = clearExisting
	if m.ImportError != nil {
		return nil, m.ImportError
	}
	return m.Report, nil
}
