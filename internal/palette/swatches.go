package palette

// Swatches is the default color picker palette.
var Swatches = []string{
	"#f44336", // red
	"#e91e63", // pink
	"#9c27b0", // purple
	"#673ab7", // deep purple
	"#3f51b5", // indigo
	"#2196f3", // blue
	"#03a9f4", // light blue
	"#00bcd4", // cyan
	"#009688", // teal
	"#4caf50", // green
	"#8bc34a", // light green
	"#cddc39", // lime
	"#ffeb3b", // yellow
	"#ffc107", // amber
	"#ff9800", // orange
	"#ff5722", // deep orange
	"#795548", // brown
	"#607d8b", // blue grey
}

// IndexOf returns the index of hex in swatches, or -1.
func IndexOf(swatches []string, hex string) int {
	norm, err := Normalize(hex)
	if err != nil {
		return -1
	}
	for i, s := range swatches {
		if n, err := Normalize(s); err == nil && n == norm {
			return i
		}
	}
	return -1
}
