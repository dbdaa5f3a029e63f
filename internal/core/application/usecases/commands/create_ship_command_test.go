package commands_test

import (
	"testing"

	"fleet/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateShipCommand(t *testing.T) {
	t.Run("should create command with valid parameters", func(t *testing.T) {
		cmd, err := commands.NewCreateShipCommand("Poseidon", 10, 50)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Poseidon", cmd.Name())
		assert.Equal(t, 10, cmd.MaxContainers())
		assert.InDelta(t, 50, cmd.CapacityTonnes(), 0)
		require.NoError(t, cmd.ShipID().Validate())
	})

	t.Run("should reject invalid parameters", func(t *testing.T) {
		testCases := []struct {
			name           string
			shipName       string
			maxContainers  int
			capacityTonnes float64
			expectedErr    error
		}{
			{"empty name", "", 10, 50, commands.ErrNameIsRequired},
			{"zero container limit", "Poseidon", 0, 50, commands.ErrMaxContainersIsInvalid},
			{"negative capacity", "Poseidon", 10, -1, commands.ErrCapacityTonnesIsInvalid},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := commands.NewCreateShipCommand(tc.shipName, tc.maxContainers, tc.capacityTonnes)

				require.ErrorIs(t, err, tc.expectedErr)
			})
		}
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.CreateShipCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateShipCommandIsNotConstructed)
	})

	t.Run("commands generate unique ship IDs", func(t *testing.T) {
		cmd1, err := commands.NewCreateShipCommand("Poseidon", 10, 50)
		require.NoError(t, err)
		cmd2, err := commands.NewCreateShipCommand("Triton", 10, 50)
		require.NoError(t, err)

		assert.False(t, cmd1.ShipID().IsEqual(cmd2.ShipID()))
	})
}
