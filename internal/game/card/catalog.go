package card

// Info is one catalog entry: a building name, the material it is made
// of, and its rule text. The catalog is fixed for every game.
type Info struct {
	Name     string
	Material Material
	Text     string
}

// CopiesPerBuilding is how many identical copies of each building the
// deck carries.
const CopiesPerBuilding = 3

// JackCount is how many Jacks sit in the shared jack pile.
const JackCount = 6

var catalog = []Info{
	// Rubble
	{"Bar", Rubble, "Patron may also take a client from hand."},
	{"Insula", Rubble, "Clientele limit +2."},
	{"Latrine", Rubble, "Before thinking, may discard one card to the pool."},
	{"Road", Rubble, "Any material may be added to a building on a Stone site."},
	// Wood
	{"Circus", Wood, "A petition needs only two matching cards."},
	{"Crane", Wood, "Craftsman may add a material from the pool."},
	{"Dock", Wood, "Laborer may also take a card from hand."},
	{"Palisade", Wood, "Immune to Legionary demands."},
	// Concrete
	{"Amphitheatre", Concrete, "Perform one craftsman action per influence."},
	{"Aqueduct", Concrete, "Patron may take a client from the deck; clientele limit doubled."},
	{"Bridge", Concrete, "Legionary takes from stockpiles and ignores Palisade."},
	{"Storeroom", Concrete, "All clients count as Laborers."},
	{"Tower", Concrete, "Rubble may be added to any building; may lay foundations out of town."},
	{"Vomitorium", Concrete, "Before thinking, may discard the whole hand to the pool."},
	{"Wall", Concrete, "Immune to Legionary demands; +1 point per two stockpile cards."},
	// Brick
	{"Academy", Brick, "May think at turn end after performing a craftsman action."},
	{"Archway", Brick, "Architect may add a material from the pool."},
	{"Atrium", Brick, "Merchant may take from the deck; vault limit +2."},
	{"Bath", Brick, "New clients perform their action once when hired."},
	{"Foundry", Brick, "Perform one laborer action per influence."},
	{"Gate", Brick, "Incomplete Marble buildings grant their power."},
	{"School", Brick, "May think once per influence."},
	{"Shrine", Brick, "Hand limit +2."},
	// Stone
	{"Coliseum", Stone, "Legionary may take an opponent client into the vault."},
	{"Garden", Stone, "Perform one patron action per influence."},
	{"Prison", Stone, "May take an opponent's completed building for three influence."},
	{"Scriptorium", Stone, "One Marble material completes any building."},
	{"Sewer", Stone, "At turn end, may move camp orders cards to the stockpile."},
	{"Villa", Stone, "One Architect material completes the Villa."},
	// Marble
	{"Basilica", Marble, "Merchant may also move a card from hand to the vault."},
	{"Forum", Marble, "Wins with one client of each role."},
	{"Fountain", Marble, "Craftsman may work from the top of the deck."},
	{"Ludus Magna", Marble, "Merchant clients count as any role."},
	{"Palace", Marble, "Multiple cards of the led role grant extra actions."},
	{"Stairway", Marble, "Architect may add to an opponent's completed building, sharing it."},
	{"Statue", Marble, "May be built on any site; +3 points."},
	{"Temple", Marble, "Hand limit +4."},
}

var byName = func() map[string]Info {
	m := make(map[string]Info, len(catalog))
	for _, info := range catalog {
		m[info.Name] = info
	}
	return m
}()

// Lookup returns the catalog entry for a building name.
func Lookup(name string) (Info, bool) {
	info, ok := byName[name]
	return info, ok
}

// Buildings returns the catalog in its fixed order.
func Buildings() []Info {
	out := make([]Info, len(catalog))
	copy(out, catalog)
	return out
}

// Deck returns every orders card of a fresh game in catalog order,
// unshuffled: three copies of each building, indexed 0..2.
func Deck() []ID {
	out := make([]ID, 0, len(catalog)*CopiesPerBuilding)
	for _, info := range catalog {
		for i := 0; i < CopiesPerBuilding; i++ {
			out = append(out, ID{Name: info.Name, Index: i})
		}
	}
	return out
}

// Jacks returns the six Jacks of a fresh game.
func Jacks() []ID {
	out := make([]ID, 0, JackCount)
	for i := 0; i < JackCount; i++ {
		out = append(out, ID{Name: JackName, Index: i})
	}
	return out
}
