package card

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialRoleBijection(t *testing.T) {
	for _, m := range Materials() {
		assert.Equal(t, m, m.Role().Material(), "material %s must round-trip through its role", m)
	}
	for _, r := range Roles() {
		assert.Equal(t, r, r.Material().Role(), "role %s must round-trip through its material", r)
	}
}

func TestMaterialValues(t *testing.T) {
	assert.Equal(t, 1, Rubble.Value())
	assert.Equal(t, 1, Wood.Value())
	assert.Equal(t, 2, Concrete.Value())
	assert.Equal(t, 2, Brick.Value())
	assert.Equal(t, 3, Stone.Value())
	assert.Equal(t, 3, Marble.Value())
}

func TestCatalogShape(t *testing.T) {
	assert.Len(t, Buildings(), 37)

	deck := Deck()
	assert.Len(t, deck, 37*CopiesPerBuilding)

	seen := make(map[ID]bool, len(deck))
	for _, id := range deck {
		assert.False(t, seen[id], "duplicate identity %s", id)
		seen[id] = true
	}

	jacks := Jacks()
	assert.Len(t, jacks, JackCount)
	for _, j := range jacks {
		assert.True(t, j.IsJack())
		assert.Equal(t, Material(""), j.Material())
	}
}

func TestIDWireFormat(t *testing.T) {
	id := ID{Name: "Ludus Magna", Index: 2}
	assert.Equal(t, "Ludus Magna#2", id.String())

	parsed, err := Parse("Ludus Magna#2")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	jack, err := Parse("Jack#5")
	require.NoError(t, err)
	assert.True(t, jack.IsJack())

	for _, bad := range []string{"", "Road", "Road#", "#1", "Road#-1", "Road#x", "Chateau#0"} {
		_, err := Parse(bad)
		assert.Error(t, err, "expected %q to fail", bad)
	}
}

func TestIDJSONRoundTrip(t *testing.T) {
	in := []ID{{Name: "Road", Index: 0}, {Name: JackName, Index: 3}}

	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `["Road#0","Jack#3"]`, string(raw))

	var out []ID
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}

func TestIDCardProperties(t *testing.T) {
	road := ID{Name: "Road", Index: 1}
	assert.Equal(t, Rubble, road.Material())
	assert.Equal(t, Laborer, road.Role())
	assert.Equal(t, 1, road.Value())

	temple := ID{Name: "Temple", Index: 0}
	assert.Equal(t, Marble, temple.Material())
	assert.Equal(t, Patron, temple.Role())
	assert.Equal(t, 3, temple.Value())
}
