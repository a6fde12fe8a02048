package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistry_Names_Sorted(t *testing.T) {
	r := Registry{
		"zeta/model":  {MaxTokens: 4096},
		"alpha/model": {MaxTokens: 8192},
		"mid/model":   {MaxTokens: 2048},
	}

	assert.Equal(t, []string{"alpha/model", "mid/model", "zeta/model"}, r.Names())
}

func TestRegistry_Names_Empty(t *testing.T) {
	assert.Empty(t, Registry{}.Names())
	assert.Empty(t, Registry(nil).Names())
}

func TestRegistry_Has(t *testing.T) {
	r := Registry{"m1": {MaxTokens: 1024}}

	assert.True(t, r.Has("m1"))
	assert.False(t, r.Has("m2"))
}
