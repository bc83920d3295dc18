package card

import (
	"fmt"
	"strconv"
	"strings"
)

// Material is one of the six building materials. Each material is
// bound to exactly one role and one value.
type Material string

const (
	Rubble   Material = "Rubble"
	Wood     Material = "Wood"
	Concrete Material = "Concrete"
	Brick    Material = "Brick"
	Stone    Material = "Stone"
	Marble   Material = "Marble"
)

// Role is one of the six role actions a card can be played for.
type Role string

const (
	Laborer   Role = "Laborer"
	Craftsman Role = "Craftsman"
	Architect Role = "Architect"
	Merchant  Role = "Merchant"
	Legionary Role = "Legionary"
	Patron    Role = "Patron"
)

// Materials returns all materials in canonical (value, then name) order.
func Materials() []Material {
	return []Material{Rubble, Wood, Concrete, Brick, Stone, Marble}
}

// Roles returns all roles in the order matching Materials.
func Roles() []Role {
	return []Role{Laborer, Craftsman, Architect, Legionary, Merchant, Patron}
}

// Value returns the material's value, which is also the completion
// threshold of buildings on a site of this material.
func (m Material) Value() int {
	switch m {
	case Rubble, Wood:
		return 1
	case Concrete, Brick:
		return 2
	case Stone, Marble:
		return 3
	}
	return 0
}

// Role returns the role bound to this material.
func (m Material) Role() Role {
	switch m {
	case Rubble:
		return Laborer
	case Wood:
		return Craftsman
	case Concrete:
		return Architect
	case Brick:
		return Legionary
	case Stone:
		return Merchant
	case Marble:
		return Patron
	}
	return ""
}

// Material returns the material bound to this role.
func (r Role) Material() Material {
	switch r {
	case Laborer:
		return Rubble
	case Craftsman:
		return Wood
	case Architect:
		return Concrete
	case Legionary:
		return Brick
	case Merchant:
		return Stone
	case Patron:
		return Marble
	}
	return ""
}

// ParseRole validates a role name from the wire.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles() {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// ParseMaterial validates a material name from the wire.
func ParseMaterial(s string) (Material, error) {
	for _, m := range Materials() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown material %q", s)
}

// JackName is the name of the wild role-leader card. Jacks carry no
// material and no role.
const JackName = "Jack"

// ID is the stable identity of one physical card in a game: catalog
// name plus deck-instance index. Two copies of the same building are
// distinct IDs and must never be conflated.
type ID struct {
	Name  string
	Index int
}

// String renders the wire form "Name#N".
func (id ID) String() string {
	return id.Name + "#" + strconv.Itoa(id.Index)
}

// Parse reads the wire form "Name#N" back into an ID.
func Parse(s string) (ID, error) {
	hash := strings.LastIndex(s, "#")
	if hash <= 0 || hash == len(s)-1 {
		return ID{}, fmt.Errorf("malformed card identity %q", s)
	}
	idx, err := strconv.Atoi(s[hash+1:])
	if err != nil || idx < 0 {
		return ID{}, fmt.Errorf("malformed card identity %q", s)
	}
	name := s[:hash]
	if name != JackName {
		if _, ok := Lookup(name); !ok {
			return ID{}, fmt.Errorf("unknown card name %q", name)
		}
	}
	return ID{Name: name, Index: idx}, nil
}

// MarshalText serializes the ID as "Name#N" so IDs render as JSON
// strings everywhere (payloads, snapshots, save documents).
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText parses the "Name#N" form.
func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// IsJack reports whether this card is a Jack.
func (id ID) IsJack() bool {
	return id.Name == JackName
}

// Material returns the card's material, or "" for a Jack.
func (id ID) Material() Material {
	if info, ok := Lookup(id.Name); ok {
		return info.Material
	}
	return ""
}

// Role returns the card's role, or "" for a Jack.
func (id ID) Role() Role {
	return id.Material().Role()
}

// Value returns the card's material value, 0 for a Jack.
func (id ID) Value() int {
	return id.Material().Value()
}
