package commands_test

import (
	"testing"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUnloadContainerCommandHandler_Handle_Removed(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate := newTestShip(t, "Poseidon", 10, 50)
	removed := restoreBasic(t, 1, 400, 1000)
	accepted, err := aggregate.LoadContainer(removed)
	require.NoError(t, err)
	require.True(t, accepted)

	cmd, err := commands.NewUnloadContainerCommand(aggregate.ID().String(), removed.SerialNumber().String())
	require.NoError(t, err)

	mockShipRepo := new(MockShipRepository)
	mockUoW := new(MockShipUoW)
	mockFactory := new(MockShipUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipRepository").Return(mockShipRepo).Once(),
		mockShipRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		mockShipRepo.On("Update", ctx, aggregate).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUnloadContainerCommandHandler(mockFactory)

	// Act
	ok, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, aggregate.Containers())
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockShipRepo.AssertExpectations(t)
}

func TestUnloadContainerCommandHandler_Handle_NotOnBoard(t *testing.T) {
	// Arrange
	ctx := t.Context()
	aggregate := newTestShip(t, "Poseidon", 10, 50)
	serial, err := kernel.NewSerialNumber(kernel.TypeCodeBasic, 42)
	require.NoError(t, err)

	cmd, err := commands.NewUnloadContainerCommand(aggregate.ID().String(), serial.String())
	require.NoError(t, err)

	mockShipRepo := new(MockShipRepository)
	mockUoW := new(MockShipUoW)
	mockFactory := new(MockShipUoWFactory)

	// A missing serial is reported to the ship's sink; nothing is persisted.
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("ShipRepository").Return(mockShipRepo).Once(),
		mockShipRepo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewUnloadContainerCommandHandler(mockFactory)

	// Act
	ok, err := handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	assert.False(t, ok)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockShipRepo.AssertExpectations(t)
}
