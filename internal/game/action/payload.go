package action

import (
	"fmt"

	"glory-to-rome-backend/internal/game/card"
)

// Payload decoders. Each checks arity and scalar types only; rule
// checks (card in hand, limits, role match) belong to the engine.

// ThinkerOrLeadPayload: args [think(bool)].
type ThinkerOrLeadPayload struct {
	Think bool
}

func (a GameAction) ThinkerOrLead() (ThinkerOrLeadPayload, error) {
	think, err := a.boolean(0)
	if err != nil {
		return ThinkerOrLeadPayload{}, err
	}
	return ThinkerOrLeadPayload{Think: think}, nil
}

// ThinkerTypePayload: args [for_jack(bool)].
type ThinkerTypePayload struct {
	ForJack bool
}

func (a GameAction) ThinkerType() (ThinkerTypePayload, error) {
	forJack, err := a.boolean(0)
	if err != nil {
		return ThinkerTypePayload{}, err
	}
	return ThinkerTypePayload{ForJack: forJack}, nil
}

// LeadRolePayload: args [role(string), n_actions(int), cards...].
type LeadRolePayload struct {
	Role     card.Role
	NActions int
	Cards    []card.ID
}

func (a GameAction) LeadRole() (LeadRolePayload, error) {
	roleName, err := a.str(0)
	if err != nil {
		return LeadRolePayload{}, err
	}
	role, err := card.ParseRole(roleName)
	if err != nil {
		return LeadRolePayload{}, err
	}
	n, err := a.integer(1)
	if err != nil {
		return LeadRolePayload{}, err
	}
	cards, err := a.cardsFrom(2)
	if err != nil {
		return LeadRolePayload{}, err
	}
	if len(cards) == 0 {
		return LeadRolePayload{}, fmt.Errorf("leading requires at least one card")
	}
	return LeadRolePayload{Role: role, NActions: n, Cards: cards}, nil
}

// FollowRolePayload: args [think(bool), n_actions(int), cards...].
// When Think is set the remaining args are ignored.
type FollowRolePayload struct {
	Think    bool
	NActions int
	Cards    []card.ID
}

func (a GameAction) FollowRole() (FollowRolePayload, error) {
	think, err := a.boolean(0)
	if err != nil {
		return FollowRolePayload{}, err
	}
	if think {
		return FollowRolePayload{Think: true}, nil
	}
	n, err := a.integer(1)
	if err != nil {
		return FollowRolePayload{}, err
	}
	cards, err := a.cardsFrom(2)
	if err != nil {
		return FollowRolePayload{}, err
	}
	if len(cards) == 0 {
		return FollowRolePayload{}, fmt.Errorf("following requires at least one card")
	}
	return FollowRolePayload{NActions: n, Cards: cards}, nil
}

// LaborerPayload: args [from_pool(card|""), from_hand(card|"")], both
// optional and trailing args omissible.
type LaborerPayload struct {
	FromPool *card.ID
	FromHand *card.ID
}

func (a GameAction) Laborer() (LaborerPayload, error) {
	if len(a.Args) > 2 {
		return LaborerPayload{}, fmt.Errorf("laborer takes at most two cards")
	}
	fromPool, err := a.optionalCardAt(0)
	if err != nil {
		return LaborerPayload{}, err
	}
	fromHand, err := a.optionalCardAt(1)
	if err != nil {
		return LaborerPayload{}, err
	}
	return LaborerPayload{FromPool: fromPool, FromHand: fromHand}, nil
}

// CraftsmanPayload: args [building(card|""), material(card|""),
// site(material|"")]. Three shapes:
//   - pass: all empty
//   - lay foundation: building = hand card, site set, material empty
//   - add material: building = existing foundation, material = hand
//     card, site empty
type CraftsmanPayload struct {
	Building *card.ID
	Material *card.ID
	Site     *card.Material
}

func (p CraftsmanPayload) IsPass() bool {
	return p.Building == nil && p.Material == nil && p.Site == nil
}

func (a GameAction) Craftsman() (CraftsmanPayload, error) {
	if len(a.Args) > 3 {
		return CraftsmanPayload{}, fmt.Errorf("craftsman takes at most three args")
	}
	return decodeBuildPayload(a)
}

func decodeBuildPayload(a GameAction) (CraftsmanPayload, error) {
	var p CraftsmanPayload
	var err error
	if p.Building, err = a.optionalCardAt(0); err != nil {
		return CraftsmanPayload{}, err
	}
	if p.Material, err = a.optionalCardAt(1); err != nil {
		return CraftsmanPayload{}, err
	}
	if len(a.Args) > 2 {
		s, err := a.str(2)
		if err != nil {
			return CraftsmanPayload{}, err
		}
		if s != "" {
			m, err := card.ParseMaterial(s)
			if err != nil {
				return CraftsmanPayload{}, err
			}
			p.Site = &m
		}
	}
	if p.Building == nil && (p.Material != nil || p.Site != nil) {
		return CraftsmanPayload{}, fmt.Errorf("material or site named without a building")
	}
	if p.Building != nil && p.Material == nil && p.Site == nil {
		return CraftsmanPayload{}, fmt.Errorf("building named without a material or a site")
	}
	if p.Material != nil && p.Site != nil {
		return CraftsmanPayload{}, fmt.Errorf("cannot lay a foundation and add a material at once")
	}
	return p, nil
}

// ArchitectPayload is the craftsman shape plus an optional fourth arg:
// the index of the opponent whose completed building receives the
// material (requires a completed Stairway).
type ArchitectPayload struct {
	CraftsmanPayload
	TargetPlayer int // -1 when absent
}

func (a GameAction) Architect() (ArchitectPayload, error) {
	if len(a.Args) > 4 {
		return ArchitectPayload{}, fmt.Errorf("architect takes at most four args")
	}
	base, err := decodeBuildPayload(a)
	if err != nil {
		return ArchitectPayload{}, err
	}
	p := ArchitectPayload{CraftsmanPayload: base, TargetPlayer: -1}
	if len(a.Args) > 3 {
		target, err := a.integer(3)
		if err != nil {
			return ArchitectPayload{}, err
		}
		if target < 0 {
			return ArchitectPayload{}, fmt.Errorf("negative target player")
		}
		p.TargetPlayer = target
	}
	return p, nil
}

// MerchantPayload: args [from_stockpile(card|""), from_hand(card|""),
// from_deck(bool)], trailing args omissible.
type MerchantPayload struct {
	FromStockpile *card.ID
	FromHand      *card.ID
	FromDeck      bool
}

func (a GameAction) Merchant() (MerchantPayload, error) {
	if len(a.Args) > 3 {
		return MerchantPayload{}, fmt.Errorf("merchant takes at most three args")
	}
	var p MerchantPayload
	var err error
	if p.FromStockpile, err = a.optionalCardAt(0); err != nil {
		return MerchantPayload{}, err
	}
	if p.FromHand, err = a.optionalCardAt(1); err != nil {
		return MerchantPayload{}, err
	}
	if len(a.Args) > 2 {
		if p.FromDeck, err = a.boolean(2); err != nil {
			return MerchantPayload{}, err
		}
	}
	return p, nil
}

// PatronPayload: args [card|""] for pool and hand sources; an empty
// pool payload declines the hire. The deck variant takes no args.
type PatronPayload struct {
	Card *card.ID
}

func (a GameAction) Patron() (PatronPayload, error) {
	if len(a.Args) > 1 {
		return PatronPayload{}, fmt.Errorf("patron hires at most one card")
	}
	id, err := a.optionalCardAt(0)
	if err != nil {
		return PatronPayload{}, err
	}
	return PatronPayload{Card: id}, nil
}

// LegionaryPayload: args [cards...], each a demand revealed from hand.
// An empty reveal wastes the earned actions.
type LegionaryPayload struct {
	Cards []card.ID
}

func (a GameAction) Legionary() (LegionaryPayload, error) {
	cards, err := a.cardsFrom(0)
	if err != nil {
		return LegionaryPayload{}, err
	}
	return LegionaryPayload{Cards: cards}, nil
}

// GiveCardsPayload: args [cards...], possibly empty.
type GiveCardsPayload struct {
	Cards []card.ID
}

func (a GameAction) GiveCards() (GiveCardsPayload, error) {
	cards, err := a.cardsFrom(0)
	if err != nil {
		return GiveCardsPayload{}, err
	}
	return GiveCardsPayload{Cards: cards}, nil
}

// UseLatrinePayload: args [card|""] — one hand card to discard, or
// empty to decline.
type UseLatrinePayload struct {
	Card *card.ID
}

func (a GameAction) UseLatrine() (UseLatrinePayload, error) {
	if len(a.Args) > 1 {
		return UseLatrinePayload{}, fmt.Errorf("latrine discards at most one card")
	}
	id, err := a.optionalCardAt(0)
	if err != nil {
		return UseLatrinePayload{}, err
	}
	return UseLatrinePayload{Card: id}, nil
}

// UseVomitoriumPayload: args [use(bool)].
type UseVomitoriumPayload struct {
	Use bool
}

func (a GameAction) UseVomitorium() (UseVomitoriumPayload, error) {
	use, err := a.boolean(0)
	if err != nil {
		return UseVomitoriumPayload{}, err
	}
	return UseVomitoriumPayload{Use: use}, nil
}

// UseSewerPayload: args [cards...] — camp orders cards kept in the
// stockpile instead of going to the pool; empty declines.
type UseSewerPayload struct {
	Cards []card.ID
}

func (a GameAction) UseSewer() (UseSewerPayload, error) {
	cards, err := a.cardsFrom(0)
	if err != nil {
		return UseSewerPayload{}, err
	}
	return UseSewerPayload{Cards: cards}, nil
}
