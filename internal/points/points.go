// Package points holds the scoring rules: the per-waste-type point table,
// the recycle bonus, and the level formula.
package points

import "github.com/ecosort/ecosort/internal/model"

// RecycleBonus is granted once when an item is marked recycled.
const RecycleBonus = 5

// perLevel is the point span of a single level.
const perLevel = 100

var table = map[model.WasteType]int{
	model.WasteOrganic:    10,
	model.WastePlastic:    15,
	model.WasteGlass:      12,
	model.WastePaper:      8,
	model.WasteElectronic: 25,
	model.WasteMetal:      20,
	model.WasteOther:      5,
}

// ForWasteType returns the points awarded for scanning an item of the given
// type. Unrecognized types score the same as "other".
func ForWasteType(wt model.WasteType) int {
	if p, ok := table[wt]; ok {
		return p
	}
	return table[model.WasteOther]
}

// Level derives the user level from accumulated points.
func Level(totalPoints int) int {
	return totalPoints/perLevel + 1
}
