package ranking

var palette = map[string]string{
	"color1":     "#1DB954",
	"color2":     "#145A32",
	"color3":     "#0B3D02",
	"color4":     "#064F26",
	"color5":     "#121212",
	"white":      "#E0E0E0",
	"black":      "#111111",
	"blackGreen": "#1A3322",
}

// Color returns the palette entry for key, or "" when there is none.
func Color(key string) string {
	return palette[key]
}

// PlaceColor is the badge color for a place in a ranking table.
func PlaceColor(place int) string {
	switch place {
	case 1:
		return "gold"
	case 2:
		return "silver"
	case 3:
		return "#804A00"
	default:
		return Color("color1")
	}
}
