package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFeatures(t *testing.T) {
	assert.True(t, DefaultFeatures.BlockBindings)
	assert.True(t, DefaultFeatures.UnicodeCodePointEscapes)
	assert.False(t, DefaultFeatures.ArrowFunctions)
	assert.False(t, DefaultFeatures.JSX)
}

func TestPresets(t *testing.T) {
	assert.Equal(t, ES5, Features{})
	assert.True(t, ES6.Generators)
	assert.False(t, ES6.JSX)
	assert.False(t, ES6.GlobalReturn)
	assert.True(t, ES6JSX.JSX)
	assert.True(t, ES6JSX.ArrowFunctions)
	assert.Equal(t, ES6JSX, Presets["es6-jsx"])
}

func TestSetAndEnabled(t *testing.T) {
	var f Features
	require.NoError(t, f.Set("arrowFunctions", true))
	assert.True(t, f.ArrowFunctions)
	assert.True(t, f.Enabled("arrowFunctions"))

	// Configuration loaders lower-case keys.
	require.NoError(t, f.Set("templatestrings", true))
	assert.True(t, f.TemplateStrings)

	err := f.Set("classes", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown feature "classes"`)
	assert.False(t, f.Enabled("classes"))

	err = f.Set("arowFunctions", true)
	require.Error(t, err)
	assert.Equal(t, `unknown feature "arowFunctions": did you mean 'arrowFunctions'?`, err.Error())
}

func TestApply(t *testing.T) {
	f, err := DefaultFeatures.Apply(map[string]bool{"jsx": true, "blockBindings": false})
	require.NoError(t, err)
	assert.True(t, f.JSX)
	assert.False(t, f.BlockBindings)
	// The receiver is a copy.
	assert.True(t, DefaultFeatures.BlockBindings)

	_, err = DefaultFeatures.Apply(map[string]bool{"nope": true})
	assert.Error(t, err)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Len(t, names, 21)
	assert.Equal(t, "arrowFunctions", names[0])
	assert.Contains(t, names, "globalReturn")
}
