package container_test

import (
	"fmt"
	"testing"

	"fleet/internal/core/domain/model/container"
	"fleet/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func refrigeratedSerial(t *testing.T, sequence uint64) kernel.SerialNumber {
	t.Helper()
	serial, err := kernel.NewSerialNumber(kernel.TypeCodeRefrigerated, sequence)
	require.NoError(t, err)
	return serial
}

func TestNewRefrigeratedContainer(t *testing.T) {
	t.Run("should create container with compliant temperature", func(t *testing.T) {
		notifier := &recordingNotifier{}

		c, err := container.NewRefrigeratedContainer(refrigeratedSerial(t, 1), 8000, 2.5, 6, "Sausages", 4, notifier)

		require.NoError(t, err)
		assert.Equal(t, container.KindRefrigerated, c.Kind())
		assert.Equal(t, "Sausages", c.ProductType())
		assert.InDelta(t, 4, c.Temperature(), 0)
		assert.Empty(t, notifier.messages)
	})

	t.Run("should warn but still construct below the required temperature", func(t *testing.T) {
		notifier := &recordingNotifier{}

		c, err := container.NewRefrigeratedContainer(refrigeratedSerial(t, 1), 8000, 2.5, 6, "Bananas", 5, notifier)

		require.NoError(t, err)
		assert.InDelta(t, 5, c.Temperature(), 0)

		require.Len(t, notifier.messages, 1)
		expected := fmt.Sprintf(
			"Danger! Temperature 5 is below the required 10 for Bananas - Container Serial Number: %s",
			c.SerialNumber(),
		)
		assert.Equal(t, expected, notifier.messages[0])
	})

	t.Run("should warn on unknown product type", func(t *testing.T) {
		notifier := &recordingNotifier{}

		c, err := container.NewRefrigeratedContainer(refrigeratedSerial(t, 1), 8000, 2.5, 6, "Icebergs", -5, notifier)

		require.NoError(t, err)
		require.Len(t, notifier.messages, 1)
		expected := fmt.Sprintf(
			"Danger! Unknown product type \"Icebergs\" - Container Serial Number: %s",
			c.SerialNumber(),
		)
		assert.Equal(t, expected, notifier.messages[0])
	})

	t.Run("should accept frozen food well below zero", func(t *testing.T) {
		notifier := &recordingNotifier{}

		_, err := container.NewRefrigeratedContainer(refrigeratedSerial(t, 1), 8000, 2.5, 6, "FrozenFood", -18, notifier)

		require.NoError(t, err)
		assert.Empty(t, notifier.messages)
	})

	t.Run("should require a hazard notifier", func(t *testing.T) {
		c, err := container.NewRefrigeratedContainer(refrigeratedSerial(t, 1), 8000, 2.5, 6, "Bananas", 12, nil)

		require.Error(t, err)
		assert.Nil(t, c)
	})
}

func TestRefrigeratedContainer_Load(t *testing.T) {
	t.Run("should accept load up to full capacity", func(t *testing.T) {
		notifier := &recordingNotifier{}
		c, err := container.NewRefrigeratedContainer(refrigeratedSerial(t, 1), 8000, 2.5, 6, "Bananas", 12, notifier)
		require.NoError(t, err)

		result, err := c.Load(8000)

		require.NoError(t, err)
		assert.True(t, result.Accepted())
		assert.InDelta(t, 8000, c.LoadMass(), 0)
		assert.Empty(t, notifier.messages)
	})

	t.Run("should warn and reject above capacity", func(t *testing.T) {
		notifier := &recordingNotifier{}
		c, err := container.NewRefrigeratedContainer(refrigeratedSerial(t, 1), 8000, 2.5, 6, "Bananas", 12, notifier)
		require.NoError(t, err)

		result, err := c.Load(8001)

		require.NoError(t, err)
		assert.True(t, result.Rejected())
		assert.InDelta(t, 0, c.LoadMass(), 0)

		require.Len(t, notifier.messages, 1)
		expected := fmt.Sprintf(
			"Danger! Refrigerated container overfill attempt - Container Serial Number: %s",
			c.SerialNumber(),
		)
		assert.Equal(t, expected, notifier.messages[0])
		assert.Equal(t, expected, result.Reason())
	})
}

func TestRestoreRefrigeratedContainer(t *testing.T) {
	t.Run("should restore without repeating the policy check", func(t *testing.T) {
		notifier := &recordingNotifier{}

		c, err := container.RestoreRefrigeratedContainer(
			refrigeratedSerial(t, 6), 2000, 8000, 2.5, 6, "Bananas", 5, notifier)

		require.NoError(t, err)
		assert.InDelta(t, 2000, c.LoadMass(), 0)
		assert.InDelta(t, 5, c.Temperature(), 0)
		assert.Empty(t, notifier.messages)
	})
}
