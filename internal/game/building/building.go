package building

import (
	"fmt"

	"glory-to-rome-backend/internal/game/card"
	"glory-to-rome-backend/internal/game/zone"
)

// Building is a foundation laid on a site, accumulating materials
// until it reaches the site's completion threshold.
type Building struct {
	Foundation       card.ID
	Site             card.Material
	Materials        zone.Zone
	Complete         bool
	SharedByStairway bool
}

// New lays the foundation card on a site of the given material.
func New(foundation card.ID, site card.Material) *Building {
	return &Building{Foundation: foundation, Site: site}
}

// Name returns the building's catalog name.
func (b *Building) Name() string {
	return b.Foundation.Name
}

// Threshold returns how many materials the site demands.
func (b *Building) Threshold() int {
	return b.Site.Value()
}

// AddMaterial places a material card under the building. The caller
// decides whether the material must match the site (Road, Tower and
// Scriptorium relax the match); matchAny skips the check.
func (b *Building) AddMaterial(id card.ID, matchAny bool) error {
	if b.Complete {
		return fmt.Errorf("%s is already complete", b.Name())
	}
	if id.IsJack() {
		return fmt.Errorf("a Jack cannot serve as material")
	}
	if !matchAny && id.Material() != b.Site {
		return fmt.Errorf("%s does not match the %s site of %s", id, b.Site, b.Name())
	}
	b.Materials.Add(id)
	if b.Materials.Len() >= b.Threshold() {
		b.Complete = true
	}
	return nil
}

// ForceFinish completes the building regardless of material count.
// Scriptorium and Villa use this.
func (b *Building) ForceFinish() {
	b.Complete = true
}

// DeepCopy returns an independent copy.
func (b *Building) DeepCopy() *Building {
	cp := *b
	cp.Materials = b.Materials.DeepCopy()
	return &cp
}
