package points

import (
	"testing"

	"github.com/ecosort/ecosort/internal/model"
)

func TestForWasteType_Table(t *testing.T) {
	cases := map[model.WasteType]int{
		model.WasteOrganic:    10,
		model.WastePlastic:    15,
		model.WasteGlass:      12,
		model.WastePaper:      8,
		model.WasteElectronic: 25,
		model.WasteMetal:      20,
		model.WasteOther:      5,
	}
	for wt, want := range cases {
		if got := ForWasteType(wt); got != want {
			t.Errorf("ForWasteType(%s) = %d, want %d", wt, got, want)
		}
	}
}

func TestForWasteType_Unrecognized(t *testing.T) {
	if got := ForWasteType(model.WasteType("styrofoam")); got != 5 {
		t.Fatalf("unrecognized type scored %d, want 5", got)
	}
	if got := ForWasteType(""); got != 5 {
		t.Fatalf("empty type scored %d, want 5", got)
	}
}

func TestLevel(t *testing.T) {
	cases := []struct {
		total, want int
	}{
		{0, 1},
		{5, 1},
		{95, 1},
		{99, 1},
		{100, 2},
		{199, 2},
		{200, 3},
		{249, 3},
		{1000, 11},
	}
	for _, c := range cases {
		if got := Level(c.total); got != c.want {
			t.Errorf("Level(%d) = %d, want %d", c.total, got, c.want)
		}
	}
}
