package container_test

import (
	"fmt"
	"testing"

	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gasSerial(t *testing.T, sequence uint64) kernel.SerialNumber {
	t.Helper()
	serial, err := kernel.NewSerialNumber(kernel.TypeCodeGas, sequence)
	require.NoError(t, err)
	return serial
}

func createGasContainer(t *testing.T, maxWeight, pressure float64) (*container.GasContainer, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	c, err := container.NewGasContainer(gasSerial(t, 1), maxWeight, 2.5, 6, pressure, notifier)
	require.NoError(t, err)
	return c, notifier
}

func TestNewGasContainer(t *testing.T) {
	t.Run("should create gas container", func(t *testing.T) {
		c, _ := createGasContainer(t, 5000, 50)

		assert.Equal(t, container.KindGas, c.Kind())
		assert.InDelta(t, 50, c.Pressure(), 0)
		assert.InDelta(t, 0, c.LoadMass(), 0)
		require.NoError(t, c.Validate())
	})

	t.Run("should reject negative pressure", func(t *testing.T) {
		c, err := container.NewGasContainer(gasSerial(t, 1), 5000, 2.5, 6, -1, &recordingNotifier{})

		require.Error(t, err)
		assert.Nil(t, c)
		assert.Contains(t, err.Error(), "pressure is invalid")
	})

	t.Run("should require a hazard notifier", func(t *testing.T) {
		c, err := container.NewGasContainer(gasSerial(t, 1), 5000, 2.5, 6, 50, nil)

		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestGasContainer_Load(t *testing.T) {
	t.Run("should accept load up to full capacity", func(t *testing.T) {
		c, notifier := createGasContainer(t, 5000, 50)

		result, err := c.Load(5000)

		require.NoError(t, err)
		assert.True(t, result.Accepted())
		assert.InDelta(t, 5000, c.LoadMass(), 0)
		assert.Empty(t, notifier.messages)
	})

	t.Run("should warn and reject above capacity", func(t *testing.T) {
		c, notifier := createGasContainer(t, 5000, 50)

		result, err := c.Load(5001)

		require.NoError(t, err)
		assert.True(t, result.Rejected())
		assert.InDelta(t, 0, c.LoadMass(), 0)

		require.Len(t, notifier.messages, 1)
		expectedSuffix := fmt.Sprintf("Container Serial Number: %s", c.SerialNumber())
		assert.Contains(t, notifier.messages[0], expectedSuffix)
	})

	t.Run("should account for cargo already on board", func(t *testing.T) {
		c, notifier := createGasContainer(t, 5000, 50)

		result, err := c.Load(3000)
		require.NoError(t, err)
		require.True(t, result.Accepted())

		result, err = c.Load(2500)
		require.NoError(t, err)
		assert.True(t, result.Rejected())
		assert.InDelta(t, 3000, c.LoadMass(), 0)
		require.Len(t, notifier.messages, 1)
	})
}

func TestGasContainer_Unload(t *testing.T) {
	t.Run("should leave five percent residue", func(t *testing.T) {
		c, _ := createGasContainer(t, 5000, 50)
		result, err := c.Load(2500)
		require.NoError(t, err)
		require.True(t, result.Accepted())

		c.Unload()

		assert.InDelta(t, 125, c.LoadMass(), 1e-9)
	})

	t.Run("residue shrinks on repeated unloads", func(t *testing.T) {
		c, _ := createGasContainer(t, 5000, 50)
		result, err := c.Load(2000)
		require.NoError(t, err)
		require.True(t, result.Accepted())

		c.Unload()
		c.Unload()

		assert.InDelta(t, 5, c.LoadMass(), 1e-9)
	})

	t.Run("unloading an empty container keeps it empty", func(t *testing.T) {
		c, _ := createGasContainer(t, 5000, 50)

		c.Unload()

		assert.InDelta(t, 0, c.LoadMass(), 0)
	})
}

func TestRestoreGasContainer(t *testing.T) {
	t.Run("should restore persisted state", func(t *testing.T) {
		c, err := container.RestoreGasContainer(gasSerial(t, 4), 125, 5000, 2.5, 6, 50, &recordingNotifier{})

		require.NoError(t, err)
		assert.InDelta(t, 125, c.LoadMass(), 0)
		assert.InDelta(t, 50, c.Pressure(), 0)
	})
}
