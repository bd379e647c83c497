package wordmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVocabulary(t *testing.T) {
	v := NewVocabulary()
	assert.Zero(t, v.Len())

	assert.Equal(t, 0, v.Assign("alpha"))
	assert.Equal(t, 1, v.Assign("beta"))
	assert.Equal(t, 0, v.Assign("alpha"))
	assert.Equal(t, 2, v.Len())

	id, ok := v.Lookup("beta")
	assert.True(t, ok)
	assert.Equal(t, 1, id)

	_, ok = v.Lookup("gamma")
	assert.False(t, ok)
	assert.Equal(t, 2, v.Len(), "lookup never assigns")

	key, ok := v.Key(1)
	assert.True(t, ok)
	assert.Equal(t, "beta", key)

	_, ok = v.Key(2)
	assert.False(t, ok)
	_, ok = v.Key(-1)
	assert.False(t, ok)
}

func TestVocabularyKeysIsCopy(t *testing.T) {
	v := NewVocabulary()
	v.Assign("alpha")

	keys := v.Keys()
	keys[0] = "changed"

	key, _ := v.Key(0)
	assert.Equal(t, "alpha", key)
}

func TestVocabularyReset(t *testing.T) {
	v := NewVocabulary()
	v.Assign("alpha")
	v.Assign("beta")

	v.Reset()
	assert.Zero(t, v.Len())
	assert.Equal(t, 0, v.Assign("beta"))
}
