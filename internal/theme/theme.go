// Package theme holds the fixed set of starfield color schemes.
package theme

import "image/color"

// Theme is an immutable color scheme for the starfield.
type Theme struct {
	Key        string
	Name       string
	Background color.RGBA
	Star       color.RGBA
	// Secondary is the second star color, used only when HasSecondary
	// is set. Roughly a third of particles pick it at spawn.
	Secondary    color.RGBA
	HasSecondary bool
}

// DefaultKey is the theme used when no preference is stored or the
// stored key is unknown.
const DefaultKey = "deep-space"

var themes = []Theme{
	{
		Key:        "deep-space",
		Name:       "Deep Space",
		Background: color.RGBA{R: 0x05, G: 0x05, B: 0x10, A: 0xff},
		Star:       color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	},
	{
		Key:          "nebula",
		Name:         "Nebula",
		Background:   color.RGBA{R: 0x0d, G: 0x05, B: 0x1a, A: 0xff},
		Star:         color.RGBA{R: 0xe8, G: 0xd5, B: 0xff, A: 0xff},
		Secondary:    color.RGBA{R: 0xff, G: 0x8a, B: 0xd1, A: 0xff},
		HasSecondary: true,
	},
	{
		Key:          "ember",
		Name:         "Ember",
		Background:   color.RGBA{R: 0x12, G: 0x08, B: 0x03, A: 0xff},
		Star:         color.RGBA{R: 0xff, G: 0xc8, B: 0x8a, A: 0xff},
		Secondary:    color.RGBA{R: 0xff, G: 0x6b, B: 0x35, A: 0xff},
		HasSecondary: true,
	},
	{
		Key:        "arctic",
		Name:       "Arctic",
		Background: color.RGBA{R: 0x03, G: 0x0c, B: 0x12, A: 0xff},
		Star:       color.RGBA{R: 0xd0, G: 0xf0, B: 0xff, A: 0xff},
	},
	{
		Key:          "matrix",
		Name:         "Matrix",
		Background:   color.RGBA{R: 0x00, G: 0x08, B: 0x00, A: 0xff},
		Star:         color.RGBA{R: 0x6a, G: 0xff, B: 0x6a, A: 0xff},
		Secondary:    color.RGBA{R: 0xc8, G: 0xff, B: 0xc8, A: 0xff},
		HasSecondary: true,
	},
}

// Lookup resolves a theme by key, falling back to the default theme
// for unknown or empty keys.
func Lookup(key string) Theme {
	for _, t := range themes {
		if t.Key == key {
			return t
		}
	}
	// The default theme is the first entry.
	return themes[0]
}

// Keys returns the theme keys in their fixed display order.
func Keys() []string {
	keys := make([]string, len(themes))
	for i, t := range themes {
		keys[i] = t.Key
	}
	return keys
}

// Next returns the key following the given one in display order,
// wrapping around. Unknown keys advance from the default.
func Next(key string) string {
	keys := Keys()
	for i, k := range keys {
		if k == key {
			return keys[(i+1)%len(keys)]
		}
	}
	return keys[0]
}
