package view

import (
	"agelife/src/universe"

	"github.com/logrusorgru/aurora"
)

//Tier is the display class of a cell, older cells get a stronger emphasis
type Tier int

const (
	TierEmpty   Tier = iota //dead cell
	TierNewborn             //age 0..2
	TierYoung               //age 3
	TierMature              //age 4
	TierOld                 //age 5 and older
)

const (
	liveSymbol = "o"
	deadSymbol = " "
)

//Classify returns the display tier of the cell
func Classify(c universe.Cell) Tier {
	if !c.IsAlive() {
		return TierEmpty
	}
	switch age := c.Age(); {
	case age > 4:
		return TierOld
	case age > 3:
		return TierMature
	case age > 2:
		return TierYoung
	}
	return TierNewborn
}

var tierColors = map[Tier]aurora.Color{
	TierNewborn: aurora.WhiteFg,
	TierYoung:   aurora.YellowFg,
	TierMature:  aurora.GreenFg,
	TierOld:     aurora.BlueFg,
}

//symbol returns the colored symbol for the cell
func symbol(au aurora.Aurora, c universe.Cell) string {
	t := Classify(c)
	if t == TierEmpty {
		return deadSymbol
	}
	return au.Colorize(liveSymbol, tierColors[t]).String()
}
