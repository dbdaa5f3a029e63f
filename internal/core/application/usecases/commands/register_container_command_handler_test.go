package commands_test

import (
	"errors"
	"testing"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/container"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// discardNotifier swallows hazard messages the command tests do not care about.
type discardNotifier struct{}

func (discardNotifier) NotifyDanger(string) {}

func newRegistry(t *testing.T) *container.Registry {
	t.Helper()
	registry, err := container.NewRegistry(discardNotifier{})
	require.NoError(t, err)
	return registry
}

func TestRegisterContainerCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterContainerCommand("gas", 5000, 2.5, 6, false, 50, "", 0)
	require.NoError(t, err)

	mockRepo := new(MockContainerRepository)
	mockUoW := new(MockContainerUoW)
	mockFactory := new(MockContainerUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ContainerRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*container.GasContainer")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterContainerCommandHandler(mockFactory, newRegistry(t))

	// Act
	registered, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, registered)
	assert.Equal(t, container.KindGas, registered.Kind())
	assert.Equal(t, "KON-G-1", registered.SerialNumber().String())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestRegisterContainerCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.RegisterContainerCommand

	mockFactory := new(MockContainerUoWFactory)
	handler := commands.NewRegisterContainerCommandHandler(mockFactory, newRegistry(t))

	// Act
	registered, err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.ErrorIs(t, err, commands.ErrRegisterContainerCommandIsNotConstructed)
	assert.Nil(t, registered)
	mockFactory.AssertExpectations(t)
}

func TestRegisterContainerCommandHandler_Handle_RepositoryAddError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterContainerCommand("basic", 1000, 2.5, 6, false, 0, "", 0)
	require.NoError(t, err)

	expectedError := errors.New("repository add failed")
	mockRepo := new(MockContainerRepository)
	mockUoW := new(MockContainerUoW)
	mockFactory := new(MockContainerUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ContainerRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*container.BasicContainer")).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterContainerCommandHandler(mockFactory, newRegistry(t))

	// Act
	registered, err := handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	assert.Nil(t, registered)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestRegisterContainerCommandHandler_Handle_SequenceFollowsRegistrationOrder(t *testing.T) {
	// Arrange
	ctx := t.Context()
	registry := newRegistry(t)

	mockRepo := new(MockContainerRepository)
	mockRepo.On("Add", ctx, mock.Anything).Return(nil).Times(2)
	mockUoW := new(MockContainerUoW)
	mockUoW.On("Begin", ctx).Return(nil).Times(2)
	mockUoW.On("ContainerRepository").Return(mockRepo).Times(2)
	mockUoW.On("Commit", ctx).Return(nil).Times(2)
	mockUoW.On("Rollback", ctx).Return(nil).Times(2)
	mockFactory := new(MockContainerUoWFactory)
	mockFactory.On("Create").Return(mockUoW).Times(2)

	handler := commands.NewRegisterContainerCommandHandler(mockFactory, registry)

	liquidCmd, err := commands.NewRegisterContainerCommand("liquid", 14000, 2.5, 6, true, 0, "", 0)
	require.NoError(t, err)
	basicCmd, err := commands.NewRegisterContainerCommand("basic", 1000, 2.5, 6, false, 0, "", 0)
	require.NoError(t, err)

	// Act
	liquid, err := handler.Handle(ctx, liquidCmd)
	require.NoError(t, err)
	basic, err := handler.Handle(ctx, basicCmd)
	require.NoError(t, err)

	// Assert
	assert.Equal(t, "KON-L-1", liquid.SerialNumber().String())
	assert.Equal(t, "KON-B-2", basic.SerialNumber().String())
}
