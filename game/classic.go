package game

// The classic world map: 42 territories in board order, grouped by
// continent. Continents only matter to the reinforcement rules of later
// phases; here the grouping just organizes the data.
var classicTerritories = []string{
	// North America
	"Alaska", "Northwest Territory", "Greenland", "Alberta", "Ontario",
	"Quebec", "Western United States", "Eastern United States",
	"Central America",
	// South America
	"Venezuela", "Brazil", "Peru", "Argentina",
	// Europe
	"Iceland", "Scandinavia", "Ukraine", "Great Britain",
	"Northern Europe", "Western Europe", "Southern Europe",
	// Africa
	"North Africa", "Egypt", "East Africa", "Congo", "South Africa",
	"Madagascar",
	// Asia
	"Ural", "Siberia", "Yakutsk", "Kamchatka", "Irkutsk", "Mongolia",
	"Japan", "Afghanistan", "China", "Middle East", "India", "Siam",
	// Australia
	"Indonesia", "New Guinea", "Western Australia", "Eastern Australia",
}

// ClassicBoard returns the standard world board with territory ids
// numbered from 1 in board order, every territory unclaimed.
func ClassicBoard() Board {
	ts := make([]Territory, len(classicTerritories))
	for i, name := range classicTerritories {
		ts[i] = NewTerritory(TerritoryID(i+1), name)
	}
	return NewBoard(ts)
}
