package commands_test

import (
	"testing"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func restoreGas(t *testing.T, sequence uint64, loadMass, maxWeight float64) *container.GasContainer {
	t.Helper()
	serial, err := kernel.NewSerialNumber(kernel.TypeCodeGas, sequence)
	require.NoError(t, err)
	c, err := container.RestoreGasContainer(serial, loadMass, maxWeight, 2.5, 6, 50, discardNotifier{})
	require.NoError(t, err)
	return c
}

func TestLoadCargoCommandHandler_Handle_Accepted(t *testing.T) {
	// Arrange
	ctx := t.Context()
	gas := restoreGas(t, 1, 0, 5000)
	cmd, err := commands.NewLoadCargoCommand(gas.SerialNumber().String(), 2500)
	require.NoError(t, err)

	mockRepo := new(MockContainerRepository)
	mockUoW := new(MockContainerUoW)
	mockFactory := new(MockContainerUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ContainerRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, gas.SerialNumber()).Return(gas, nil).Once(),
		mockRepo.On("Update", ctx, gas).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewLoadCargoCommandHandler(mockFactory)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Accepted())
	assert.InDelta(t, 2500, gas.LoadMass(), 0)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestLoadCargoCommandHandler_Handle_Rejected(t *testing.T) {
	// Arrange
	ctx := t.Context()
	gas := restoreGas(t, 1, 0, 5000)
	cmd, err := commands.NewLoadCargoCommand(gas.SerialNumber().String(), 6000)
	require.NoError(t, err)

	mockRepo := new(MockContainerRepository)
	mockUoW := new(MockContainerUoW)
	mockFactory := new(MockContainerUoWFactory)

	// Nothing is persisted for a rejected load; the transaction rolls back.
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ContainerRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, gas.SerialNumber()).Return(gas, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewLoadCargoCommandHandler(mockFactory)

	// Act
	result, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, result.Rejected())
	assert.Contains(t, result.Reason(), "Danger!")
	assert.InDelta(t, 0, gas.LoadMass(), 0)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestLoadCargoCommandHandler_Handle_BasicOverfillFailsHard(t *testing.T) {
	// Arrange
	ctx := t.Context()
	serial, err := kernel.NewSerialNumber(kernel.TypeCodeBasic, 1)
	require.NoError(t, err)
	basic, err := container.RestoreBasicContainer(serial, 800, 1000, 2.5, 6)
	require.NoError(t, err)

	cmd, err := commands.NewLoadCargoCommand(basic.SerialNumber().String(), 300)
	require.NoError(t, err)

	mockRepo := new(MockContainerRepository)
	mockUoW := new(MockContainerUoW)
	mockFactory := new(MockContainerUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ContainerRepository").Return(mockRepo).Once(),
		mockRepo.On("Get", ctx, basic.SerialNumber()).Return(basic, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewLoadCargoCommandHandler(mockFactory)

	// Act
	_, err = handler.Handle(ctx, cmd)

	// Assert
	require.ErrorIs(t, err, container.ErrOverfill)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestNewLoadCargoCommand_Invalid(t *testing.T) {
	t.Run("malformed serial", func(t *testing.T) {
		_, err := commands.NewLoadCargoCommand("KON-X-1", 100)

		require.Error(t, err)
	})

	t.Run("negative mass", func(t *testing.T) {
		_, err := commands.NewLoadCargoCommand("KON-G-1", -1)

		require.ErrorIs(t, err, commands.ErrMassIsInvalid)
	})
}
