package chat

import "strings"

// rankVarieties maps a minimum point count to a viewer rank, highest first.
var rankVarieties = []struct {
	min  int
	name string
}{
	{400, "HOLEE"},
	{300, "Nean"},
	{250, "Long fimsh"},
	{200, "fimsh"},
	{170, "Trackmaniac"},
	{140, "Explosive"},
	{130, "Creamed"},
	{120, "Sour"},
	{110, "Edged"},
	{90, "Dirty Bin Chicken"},
	{70, "Bin Chicken"},
	{50, "smoothed vegan meat"},
	{30, "smoothed meat"},
	{20, "vegan garden"},
	{10, "carnivorous garden"},
	{5, "uncommon"},
	{0, "common"},
}

// RankFor returns the rank variety for a point total.
func RankFor(points int) string {
	for _, r := range rankVarieties {
		if points >= r.min {
			return r.name
		}
	}
	return rankVarieties[len(rankVarieties)-1].name
}

// rankList lists varieties from lowest to highest.
func rankList() string {
	names := make([]string, 0, len(rankVarieties))
	for i := len(rankVarieties) - 1; i >= 0; i-- {
		names = append(names, rankVarieties[i].name)
	}
	return strings.Join(names, ", ")
}
