package geodist

type cityEntry struct {
	name string
	pos  coords
}

// cities maps known Swiss city names to coordinates. Kept as a slice so match
// precedence is fixed: earlier entries win on substring ambiguity.
var cities = []cityEntry{
	{"zürich", coords{47.3769, 8.5417}},
	{"zurich", coords{47.3769, 8.5417}},
	{"bern", coords{46.9480, 7.4474}},
	{"basel", coords{47.5596, 7.5886}},
	{"genève", coords{46.2044, 6.1432}},
	{"geneve", coords{46.2044, 6.1432}},
	{"lausanne", coords{46.5197, 6.6323}},
	{"luzern", coords{47.0502, 8.3093}},
	{"st. gallen", coords{47.4245, 9.3767}},
	{"winterthur", coords{47.5001, 8.7240}},
	{"lugano", coords{46.0037, 8.9511}},
	{"biel", coords{47.1368, 7.2467}},
	{"thun", coords{46.7580, 7.6280}},
	{"aarau", coords{47.3925, 8.0444}},
	{"chur", coords{46.8499, 9.5329}},
	{"schaffhausen", coords{47.6960, 8.6350}},
	{"frauenfeld", coords{47.5535, 8.8987}},
	{"solothurn", coords{47.2088, 7.5372}},
	{"zug", coords{47.1724, 8.5172}},
}
