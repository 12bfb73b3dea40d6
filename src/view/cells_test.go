package view

import (
	"testing"

	"agelife/src/universe"

	"github.com/logrusorgru/aurora"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		cell universe.Cell
		want Tier
	}{
		{universe.Dead, TierEmpty},
		{universe.Alive(0), TierNewborn},
		{universe.Alive(2), TierNewborn},
		{universe.Alive(3), TierYoung},
		{universe.Alive(4), TierMature},
		{universe.Alive(5), TierOld},
		{universe.Alive(100), TierOld},
	}
	for _, tt := range tests {
		if got := Classify(tt.cell); got != tt.want {
			t.Errorf("Classify(%v) = %v, want %v", tt.cell, got, tt.want)
		}
	}
}

func TestSymbol(t *testing.T) {
	plain := aurora.NewAurora(false)
	if s := symbol(plain, universe.Dead); s != " " {
		t.Errorf("dead symbol %q", s)
	}
	if s := symbol(plain, universe.Alive(9)); s != "o" {
		t.Errorf("live symbol %q", s)
	}
	colored := aurora.NewAurora(true)
	young, old := symbol(colored, universe.Alive(0)), symbol(colored, universe.Alive(9))
	if young == old || young == "o" {
		t.Errorf("tiers must be colored differently: %q %q", young, old)
	}
}
