package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		in        string
		namespace string
		name      string
		ok        bool
	}{
		{"core:dirt", "core", "dirt", true},
		{"my_mod:ores/copper-ore.v2", "my_mod", "ores/copper-ore.v2", true},
		{"core2:stone_1", "core2", "stone_1", true},
		{"dirt", "", "", false},
		{"core:", "", "", false},
		{":dirt", "", "", false},
		{"CORE:dirt", "", "", false},
		{"core:Dirt", "", "", false},
		{"core:dirt:wet", "", "", false},
		{"core/x:dirt", "", "", false},
	}

	for _, tt := range tests {
		ns, name, err := ParseIdentifier(tt.in)
		if !tt.ok {
			assert.ErrorIs(t, err, ErrMalformedIdentifier, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.namespace, ns)
		assert.Equal(t, tt.name, name)
	}
}

func TestCategory(t *testing.T) {
	for _, c := range []Category{CategorySolid, CategoryLiquid, CategoryGas, CategoryTransparent} {
		parsed, err := ParseCategory(c.String())
		assert.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	c, err := ParseCategory("solid")
	assert.NoError(t, err)
	assert.Equal(t, CategorySolid, c)

	_, err = ParseCategory("plasma")
	assert.ErrorIs(t, err, ErrUnknownCategory)

	assert.False(t, Category(99).Valid())
	assert.Equal(t, "Category(99)", Category(99).String())
}

func TestBlockType_EqualByIdentifier(t *testing.T) {
	a := BlockType{id: "core:dirt", displayName: "Dirt", category: CategorySolid}
	b := BlockType{id: "core:dirt", displayName: "Other", category: CategoryGas}
	c := BlockType{id: "core:stone", displayName: "Dirt", category: CategorySolid}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, BlockType{}.IsZero())
	assert.False(t, a.IsZero())
	assert.Equal(t, "core:dirt", a.String())
}
