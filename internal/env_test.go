package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvDefineAndGet(t *testing.T) {
	root := newEnv(nil)
	root.define("a", loxNumber(1))

	value, err := root.get("a")
	require.NoError(t, err)
	assert.Equal(t, loxNumber(1), value)

	// Redefinition in the same frame overwrites
	root.define("a", loxString("x"))
	value, err = root.get("a")
	require.NoError(t, err)
	assert.Equal(t, loxString("x"), value)

	// A nil value is still a binding
	root.define("n", nil)
	value, err = root.get("n")
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestEnvGetUndefined(t *testing.T) {
	root := newEnv(nil)
	child := newEnv(root)

	_, err := child.get("missing")
	require.Error(t, err)
	assert.ErrorIs(t, err, errUndefinedVar)
	assert.Equal(t, "Undefined variable 'missing'.", err.Error())
}

func TestEnvShadowing(t *testing.T) {
	root := newEnv(nil)
	root.define("a", loxNumber(1))
	child := newEnv(root)
	child.define("a", loxNumber(2))

	value, err := child.get("a")
	require.NoError(t, err)
	assert.Equal(t, loxNumber(2), value)

	value, err = root.get("a")
	require.NoError(t, err)
	assert.Equal(t, loxNumber(1), value)
}

func TestEnvLookupWalksOutward(t *testing.T) {
	root := newEnv(nil)
	root.define("a", loxNumber(1))
	grandchild := newEnv(newEnv(root))

	value, err := grandchild.get("a")
	require.NoError(t, err)
	assert.Equal(t, loxNumber(1), value)
	assert.Equal(t, 2, grandchild.depth())
	assert.Equal(t, 0, root.depth())
}

func TestEnvAssign(t *testing.T) {
	root := newEnv(nil)
	root.define("a", loxNumber(1))
	middle := newEnv(root)
	middle.define("a", loxNumber(2))
	inner := newEnv(middle)

	// Only the innermost frame holding the name changes
	require.NoError(t, inner.assign("a", loxNumber(3)))
	value, _ := middle.get("a")
	assert.Equal(t, loxNumber(3), value)
	value, _ = root.get("a")
	assert.Equal(t, loxNumber(1), value)
	_, isLocal := inner.values["a"]
	assert.False(t, isLocal)
}

func TestEnvAssignNeverCreates(t *testing.T) {
	root := newEnv(nil)
	child := newEnv(root)

	err := child.assign("a", loxNumber(1))
	require.Error(t, err)
	assert.Equal(t, "Undefined variable 'a'.", err.Error())
	assert.Empty(t, root.values)
	assert.Empty(t, child.values)
}
