package init_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-arrower/typedrepo"
	warehouse "github.com/go-arrower/typedrepo/contexts/warehouse/init"
)

func TestNewWarehouseContext(t *testing.T) {
	t.Parallel()

	t.Run("missing dependencies", func(t *testing.T) {
		t.Parallel()

		wc, err := warehouse.NewWarehouseContext(&typedrepo.Container{})
		assert.ErrorIs(t, err, typedrepo.ErrMissingDependency)
		assert.Nil(t, wc)
	})
}

func TestWarehouseContext_Run(t *testing.T) {
	t.Parallel()

	di, logger := typedrepo.TestContainer(t)

	wc, err := warehouse.NewWarehouseContext(di)
	require.NoError(t, err)

	buf := &bytes.Buffer{}

	err = wc.Run(context.Background(), buf)
	assert.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "== Warehouse ==")
	assert.Contains(t, out, "[1] Laptop by Dell, 24 months warranty: 10 in stock")
	assert.Contains(t, out, "[2] Bread, expires 2025-02-20: 15 in stock")
	assert.Contains(t, out, "increased stock of electronic item 1 to 15")
	assert.Contains(t, out, "[1] Laptop by Dell, 24 months warranty: 15 in stock")
	assert.Contains(t, out, "set quantity of grocery item 2 to 40")

	// expected failures are reported and the run continues
	assert.Contains(t, out, "already exists: id 1")
	assert.Contains(t, out, "not found: id 99")
	assert.Contains(t, out, "invalid value: negative quantity -3")
	assert.NotContains(t, out, "Tablet by Lenovo")

	assert.Contains(t, out, "Electronics below 5 units (1):\n  [2] Smartphone")

	logger.Contains(`context=warehouse`)
	logger.Contains(`msg="failed to execute command"`)
	logger.Contains(`msg="repository operation rejected"`)
}
