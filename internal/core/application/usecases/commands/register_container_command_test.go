package commands_test

import (
	"testing"

	"fleet/internal/core/application/usecases/commands"
	"fleet/internal/core/domain/model/container"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterContainerCommand(t *testing.T) {
	t.Run("should create command for each kind", func(t *testing.T) {
		testCases := []struct {
			kind     string
			expected container.Kind
		}{
			{"basic", container.KindBasic},
			{"liquid", container.KindLiquid},
			{"gas", container.KindGas},
			{"refrigerated", container.KindRefrigerated},
		}

		for _, tc := range testCases {
			t.Run(tc.kind, func(t *testing.T) {
				cmd, err := commands.NewRegisterContainerCommand(tc.kind, 5000, 2.5, 6, false, 0, "", 0)

				require.NoError(t, err)
				require.NoError(t, cmd.Validate())
				assert.Equal(t, tc.expected, cmd.Kind())
			})
		}
	})

	t.Run("should carry variant parameters", func(t *testing.T) {
		cmd, err := commands.NewRegisterContainerCommand("refrigerated", 8000, 2.5, 6, false, 0, "Bananas", 12)

		require.NoError(t, err)
		assert.Equal(t, "Bananas", cmd.ProductType())
		assert.InDelta(t, 12, cmd.Temperature(), 0)
	})

	t.Run("should reject invalid parameters", func(t *testing.T) {
		testCases := []struct {
			name      string
			kind      string
			maxWeight float64
			height    float64
			pressure  float64
		}{
			{"unknown kind", "submarine", 5000, 2.5, 0},
			{"zero capacity", "gas", 0, 2.5, 0},
			{"negative height", "gas", 5000, -1, 0},
			{"negative pressure", "gas", 5000, 2.5, -1},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := commands.NewRegisterContainerCommand(tc.kind, tc.maxWeight, tc.height, 6, false, tc.pressure, "", 0)

				require.Error(t, err)
			})
		}
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.RegisterContainerCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrRegisterContainerCommandIsNotConstructed)
	})
}
