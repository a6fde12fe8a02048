package preset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Check_Bool(t *testing.T) {
	v := Value{Kind: Bool}

	assert.NoError(t, v.Check(true))
	assert.Error(t, v.Check("yes"))
}

func TestValue_Check_IntBounds(t *testing.T) {
	v := Bounded(Int, 1, 10)

	assert.NoError(t, v.Check(1))
	assert.NoError(t, v.Check(10))
	assert.Error(t, v.Check(0))
	assert.Error(t, v.Check(11))
	assert.Error(t, v.Check(3.5))
}

func TestValue_Check_FloatBounds(t *testing.T) {
	v := Bounded(Float, 0, 2)

	assert.NoError(t, v.Check(0.0))
	assert.NoError(t, v.Check(1.7))
	assert.Error(t, v.Check(2.1))
	assert.Error(t, v.Check(-0.1))
	assert.Error(t, v.Check("hot"))
}

func TestValue_Check_Unbounded(t *testing.T) {
	v := Value{Kind: Int}

	assert.NoError(t, v.Check(-1000000))
	assert.NoError(t, v.Check(1000000))
}

func TestValue_Check_StringOptions(t *testing.T) {
	v := Value{Kind: String, Options: []string{"m1", "m2"}}

	assert.NoError(t, v.Check("m1"))
	assert.NoError(t, v.Check("m2"))
	assert.Error(t, v.Check("m3"))
}

func TestValue_Check_StringAnyValue(t *testing.T) {
	v := Value{Kind: String}

	assert.NoError(t, v.Check("anything"))
	assert.Error(t, v.Check(42))
}

func TestValue_Check_Map(t *testing.T) {
	v := Value{Kind: Map}

	assert.NoError(t, v.Check(map[string]any{"token": 1}))
	assert.Error(t, v.Check([]string{"not", "a", "map"}))
}

func TestValue_Check_None(t *testing.T) {
	allowed := Value{Kind: String, AllowNone: true}
	required := Value{Kind: String}

	assert.NoError(t, allowed.Check(nil))

	err := required.Check(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestSchema_IsSetting(t *testing.T) {
	// A schema entry can be a Value, a nested Schema, or Unsupported.
	s := Schema{
		"temperature": Bounded(Float, 0, 2),
		"tools":       Unsupported{},
		"model_kwargs": Schema{
			"top_p": Bounded(Float, 0, 1),
		},
	}

	_, isValue := s["temperature"].(Value)
	assert.True(t, isValue)

	_, isUnsupported := s["tools"].(Unsupported)
	assert.True(t, isUnsupported)

	nested, isSchema := s["model_kwargs"].(Schema)
	require.True(t, isSchema)
	_, isValue = nested["top_p"].(Value)
	assert.True(t, isValue)
}
