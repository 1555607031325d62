package source

import (
	"context"

	"github.com/huangsam/salesrank/internal/contract"
	"github.com/huangsam/salesrank/schema"
	"github.com/stretchr/testify/mock"
)

// MockPeopleSource is a mock implementation of PeopleSource for testing.
type MockPeopleSource struct {
	mock.Mock
}

var _ contract.PeopleSource = &MockPeopleSource{} // Compile-time check

// LoadPeople implements the PeopleSource interface.
func (m *MockPeopleSource) LoadPeople(ctx context.Context, location string) ([]schema.Person, error) {
	args := m.Called(ctx, location)
	people, _ := args.Get(0).([]schema.Person)
	return people, args.Error(1)
}

// Close implements the PeopleSource interface.
func (m *MockPeopleSource) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockDefinitionSource is a mock implementation of DefinitionSource for testing.
type MockDefinitionSource struct {
	mock.Mock
}

var _ contract.DefinitionSource = &MockDefinitionSource{} // Compile-time check

// LoadDefinition implements the DefinitionSource interface.
func (m *MockDefinitionSource) LoadDefinition(ctx context.Context, location string) (schema.ReportDefinition, error) {
	args := m.Called(ctx, location)
	return args.Get(0).(schema.ReportDefinition), args.Error(1)
}
