package outwriter

import (
	"github.com/huangsam/salesrank/internal/contract"
	"github.com/huangsam/salesrank/schema"
	"github.com/stretchr/testify/mock"
)

// MockResultWriter is a mock implementation of ResultWriter for testing.
type MockResultWriter struct {
	mock.Mock
}

var _ contract.ResultWriter = &MockResultWriter{} // Compile-time check

// WriteReport implements the ResultWriter interface.
func (m *MockResultWriter) WriteReport(report schema.Report, meta schema.RunMeta, cfg *contract.Config) error {
	args := m.Called(report, meta, cfg)
	return args.Error(0)
}

// WriteRanking implements the ResultWriter interface.
func (m *MockResultWriter) WriteRanking(report schema.Report, meta schema.RunMeta, cfg *contract.Config) error {
	args := m.Called(report, meta, cfg)
	return args.Error(0)
}
