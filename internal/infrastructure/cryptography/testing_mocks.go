//go:build unit
// +build unit

package cryptography

import (
	"github.com/stretchr/testify/mock"
)

// MockLogger is a mock implementation of logger.Logger
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(args ...interface{}) { m.Called(args...) }
func (m *MockLogger) Info(args ...interface{})  { m.Called(args...) }
func (m *MockLogger) Warn(args ...interface{})  { m.Called(args...) }
func (m *MockLogger) Error(args ...interface{}) { m.Called(args...) }
func (m *MockLogger) Fatal(args ...interface{}) { m.Called(args...) }
func (m *MockLogger) Panic(args ...interface{}) { m.Called(args...) }
