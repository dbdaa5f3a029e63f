package commands_test

import (
	"context"
	"errors"
	"testing"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"
	"fleet/internal/core/domain/model/ship"
	"fleet/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// discardSink swallows report lines the command tests do not care about.
type discardSink struct{}

func (discardSink) WriteLine(string) {}

// Mock implementations for testing.
type MockShipRepository struct {
	mock.Mock
}

func (m *MockShipRepository) Add(ctx context.Context, aggregate *ship.Ship) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipRepository) Update(ctx context.Context, aggregate *ship.Ship) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipRepository) Get(ctx context.Context, id kernel.UUID) (*ship.Ship, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*ship.Ship), args.Error(1)
}

func (m *MockShipRepository) GetAll(ctx context.Context) ([]*ship.Ship, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*ship.Ship), args.Error(1)
}

type MockContainerRepository struct {
	mock.Mock
}

func (m *MockContainerRepository) Add(ctx context.Context, aggregate container.Container) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockContainerRepository) Update(ctx context.Context, aggregate container.Container) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockContainerRepository) Get(ctx context.Context, serial kernel.SerialNumber) (container.Container, error) {
	args := m.Called(ctx, serial)
	return args.Get(0).(container.Container), args.Error(1)
}

func (m *MockContainerRepository) GetUnboarded(ctx context.Context) ([]container.Container, error) {
	args := m.Called(ctx)
	return args.Get(0).([]container.Container), args.Error(1)
}

type MockShipUoW struct {
	mock.Mock
}

func (m *MockShipUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockShipUoW) ShipRepository() ports.ShipRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipRepository)
}

type MockShipUoWFactory struct {
	mock.Mock
}

func (m *MockShipUoWFactory) Create() commands.ShipUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipUoW)
}

type MockContainerUoW struct {
	mock.Mock
}

func (m *MockContainerUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContainerUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContainerUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContainerUoW) ContainerRepository() ports.ContainerRepository {
	args := m.Called()
	return args.Get(0).(ports.ContainerRepository)
}

type MockContainerUoWFactory struct {
	mock.Mock
}

func (m *MockContainerUoWFactory) Create() commands.ContainerUoW {
	args := m.Called()
	return args.Get(0).(commands.ContainerUoW)
}

type MockUoW struct {
	mock.Mock
}

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipRepository() ports.ShipRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipRepository)
}

func (m *MockUoW) ContainerRepository() ports.ContainerRepository {
	args := m.Called()
	return args.Get(0).(ports.ContainerRepository)
}

type MockUoWFactory struct {
	mock.Mock
}

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

func TestCreateShipCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateShipCommand("Poseidon", 10, 50)
	require.NoError(t, err)

	var capturedShip *ship.Ship
	mockRepo := new(MockShipRepository)
	mockUoW := new(MockShipUoW)
	mockFactory := new(MockShipUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.MatchedBy(func(s *ship.Ship) bool {
			capturedShip = s
			return true
		})).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateShipCommandHandler(mockFactory, discardSink{})

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, capturedShip)
	assert.Equal(t, "Poseidon", capturedShip.Name())
	assert.Equal(t, 10, capturedShip.MaxContainers())
	assert.InDelta(t, 50000, capturedShip.MaxWeightCapacity(), 0)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateShipCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.CreateShipCommand

	mockFactory := new(MockShipUoWFactory)
	handler := commands.NewCreateShipCommandHandler(mockFactory, discardSink{})

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrCreateShipCommandIsNotConstructed)
	mockFactory.AssertExpectations(t)
}

func TestCreateShipCommandHandler_Handle_RepositoryAddError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateShipCommand("Poseidon", 10, 50)
	require.NoError(t, err)

	expectedError := errors.New("repository add failed")
	mockRepo := new(MockShipRepository)
	mockUoW := new(MockShipUoW)
	mockFactory := new(MockShipUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*ship.Ship")).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateShipCommandHandler(mockFactory, discardSink{})

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestCreateShipCommandHandler_Handle_CommitError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewCreateShipCommand("Poseidon", 10, 50)
	require.NoError(t, err)

	expectedError := errors.New("commit failed")
	mockRepo := new(MockShipRepository)
	mockUoW := new(MockShipUoW)
	mockFactory := new(MockShipUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*ship.Ship")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewCreateShipCommandHandler(mockFactory, discardSink{})

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
