package geotrellis

import (
	"fmt"
	"math"
	"strings"

	"github.com/hsluv/hsluv-go"
)

// ColorRamp names a palette known to the rendering engine.
type ColorRamp string

const (
	RampHot                                   ColorRamp = "Hot"
	RampCoolWarm                              ColorRamp = "CoolWarm"
	RampMagma                                 ColorRamp = "Magma"
	RampInferno                               ColorRamp = "Inferno"
	RampPlasma                                ColorRamp = "Plasma"
	RampViridis                               ColorRamp = "Viridis"
	RampBlueToOrange                          ColorRamp = "BlueToOrange"
	RampLightYellowToOrange                   ColorRamp = "LightYellowToOrange"
	RampBlueToRed                             ColorRamp = "BlueToRed"
	RampGreenToRedOrange                      ColorRamp = "GreenToRedOrange"
	RampLightToDarkSunset                     ColorRamp = "LightToDarkSunset"
	RampLightToDarkGreen                      ColorRamp = "LightToDarkGreen"
	RampHeatmapYellowToRed                    ColorRamp = "HeatmapYellowToRed"
	RampHeatmapBlueToYellowToRedSpectrum      ColorRamp = "HeatmapBlueToYellowToRedSpectrum"
	RampHeatmapDarkRedToYellowWhite           ColorRamp = "HeatmapDarkRedToYellowWhite"
	RampHeatmapLightPurpleToDarkPurpleToWhite ColorRamp = "HeatmapLightPurpleToDarkPurpleToWhite"
	RampClassificationBoldLandUse             ColorRamp = "ClassificationBoldLandUse"
	RampClassificationMutedTerrain            ColorRamp = "ClassificationMutedTerrain"
)

var ColorRamps = newEnumeration("ColorRamp",
	"ColorRamp names.",
	Member{"Hot", string(RampHot), ""},
	Member{"COOLWARM", string(RampCoolWarm), ""},
	Member{"MAGMA", string(RampMagma), ""},
	Member{"INFERNO", string(RampInferno), ""},
	Member{"PLASMA", string(RampPlasma), ""},
	Member{"VIRIDIS", string(RampViridis), ""},
	Member{"BLUE_TO_ORANGE", string(RampBlueToOrange), ""},
	Member{"LIGHT_YELLOW_TO_ORANGE", string(RampLightYellowToOrange), ""},
	Member{"BLUE_TO_RED", string(RampBlueToRed), ""},
	Member{"GREEN_TO_RED_ORANGE", string(RampGreenToRedOrange), ""},
	Member{"LIGHT_TO_DARK_SUNSET", string(RampLightToDarkSunset), ""},
	Member{"LIGHT_TO_DARK_GREEN", string(RampLightToDarkGreen), ""},
	Member{"HEATMAP_YELLOW_TO_RED", string(RampHeatmapYellowToRed), ""},
	Member{"HEATMAP_BLUE_TO_YELLOW_TO_RED_SPECTRUM", string(RampHeatmapBlueToYellowToRedSpectrum), ""},
	Member{"HEATMAP_DARK_RED_TO_YELLOW_WHITE", string(RampHeatmapDarkRedToYellowWhite), ""},
	Member{"HEATMAP_LIGHT_PURPLE_TO_DARK_PURPLE_TO_WHITE", string(RampHeatmapLightPurpleToDarkPurpleToWhite), ""},
	Member{"CLASSIFICATION_BOLD_LAND_USE", string(RampClassificationBoldLandUse), "Qualitative palette for land use classes."},
	Member{"CLASSIFICATION_MUTED_TERRAIN", string(RampClassificationMutedTerrain), "Qualitative palette for terrain classes."},
)

func ParseColorRamp(tag string) (ColorRamp, error) {
	return parseTag[ColorRamp](ColorRamps, tag)
}

func (r ColorRamp) Name() string                 { return nameOf(ColorRamps, r) }
func (r ColorRamp) Valid() bool                  { return ColorRamps.HasTag(string(r)) }
func (r ColorRamp) String() string               { return string(r) }
func (r ColorRamp) MarshalText() ([]byte, error) { return marshalTag(ColorRamps, r) }
func (r *ColorRamp) UnmarshalText(text []byte) error {
	return unmarshalTag(ColorRamps, r, text)
}

// rampStops are the anchor colors of each palette, from low to high values.
var rampStops = map[ColorRamp][]string{
	RampHot:      {"#000000", "#e60000", "#ffd200", "#ffffff"},
	RampCoolWarm: {"#3b4cc0", "#8db0fe", "#dddddd", "#f49a7b", "#b40426"},
	RampMagma:    {"#000004", "#51127c", "#b73779", "#fc8961", "#fcfdbf"},
	RampInferno:  {"#000004", "#56106e", "#bb3754", "#f98c0a", "#fcffa4"},
	RampPlasma:   {"#0d0887", "#7e03a8", "#cc4778", "#f89540", "#f0f921"},
	RampViridis:  {"#440154", "#3b528b", "#21908c", "#5dc963", "#fde725"},
	RampBlueToOrange: {"#2586ab", "#4ea3c8", "#7fb8d4", "#add8ea", "#c8e1e7", "#edecea",
		"#f0e7bb", "#f5cf7d", "#f9b737", "#e68f2d", "#d76b27"},
	RampLightYellowToOrange: {"#118c8c", "#429d91", "#61af96", "#75c59b", "#a2cf9f", "#c5daa3",
		"#e6e5a7", "#e3d28f", "#e0c078", "#ddad62", "#d29953", "#ca8746", "#c2773b"},
	RampBlueToRed: {"#2791c3", "#5da1ca", "#83b2d1", "#a8c5d8", "#ccdbe0", "#e9d3c1",
		"#dcad92", "#d08b6c", "#c66e4b", "#bd4e2e"},
	RampGreenToRedOrange: {"#569543", "#9ebd4d", "#bbca7a", "#d9e2b2", "#e4e7c4", "#e6d6be",
		"#e3c193", "#dfac6c", "#db9842", "#b96230"},
	RampLightToDarkSunset: {"#ffffff", "#fbedd1", "#f7e0a9", "#efd299", "#e8c58b", "#e0b97e",
		"#f2924d", "#c97877", "#946278", "#654a68", "#3b3449", "#000000"},
	RampLightToDarkGreen: {"#e8eddb", "#dce8d4", "#bedbad", "#a0cf88", "#81c561", "#4baf48",
		"#1ca049", "#3a6d35"},
	RampHeatmapYellowToRed: {"#d2e6a0", "#f6ea8b", "#f5c34e", "#ec8a38", "#dc4f29", "#c0231f"},
	RampHeatmapBlueToYellowToRedSpectrum: {"#2a2e7f", "#3d5ba9", "#4887c2", "#5bb5bb", "#a9d9a6",
		"#f5f29c", "#f8cf6c", "#f09b49", "#de5d3b", "#b82031"},
	RampHeatmapDarkRedToYellowWhite: {"#68101a", "#7a1a1c", "#a02a22", "#c4472b", "#e56e34",
		"#f9a442", "#fbd67e", "#ffffff"},
	RampHeatmapLightPurpleToDarkPurpleToWhite: {"#a99edd", "#8377c8", "#5e4fa2", "#48357f",
		"#341e5c", "#c8bfe8", "#ffffff"},
	RampClassificationBoldLandUse: {"#b2194b", "#d2ac1f", "#75b348", "#3f8f7a", "#2b7aa8",
		"#6a4c93", "#9f9f9f", "#e86d2e", "#c42c8a", "#1f4e79"},
	RampClassificationMutedTerrain: {"#cee1e8", "#7cbed6", "#9fcc93", "#d8e2b4", "#f2ebc4",
		"#dcc9a4", "#b9a28a", "#95826e", "#ffffff", "#b8b8b8"},
}

// Stops returns the anchor colors of the palette as #rrggbb strings.
func (r ColorRamp) Stops() ([]string, error) {
	stops, ok := rampStops[r]
	if !ok {
		return nil, &UnknownTagError{Enumeration: ColorRamps.name, Tag: string(r)}
	}
	result := make([]string, len(stops))
	copy(result, stops)
	return result, nil
}

// Colors returns n colors spread evenly over the palette. Intermediate
// colors are interpolated in HSLuv space so that lightness changes evenly;
// the first and last color are the first and last stop.
func (r ColorRamp) Colors(n int) ([]string, error) {
	stops, err := r.Stops()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%s: negative color count %d", r, n)
	}
	if n == 0 {
		return nil, nil
	}
	if n == 1 {
		return stops[:1], nil
	}

	points := make([]hsl, len(stops))
	for i, s := range stops {
		h, sat, l := hsluv.HsluvFromHex(s)
		points[i] = hsl{h, sat, l}
	}
	fillAchromaticHues(points)

	colors := make([]string, n)
	last := len(stops) - 1
	for i := 0; i < n; i++ {
		pos := float64(i) * float64(last) / float64(n-1)
		lo := int(math.Floor(pos))
		if lo >= last {
			colors[i] = stops[last]
			continue
		}
		t := pos - float64(lo)
		if t == 0 {
			colors[i] = stops[lo]
			continue
		}
		c := points[lo].lerp(points[lo+1], t)
		colors[i] = strings.ToLower(hsluv.HsluvToHex(c.h, c.s, c.l))
	}
	return colors, nil
}

type hsl struct {
	h, s, l float64
}

func (a hsl) lerp(b hsl, t float64) hsl {
	dh := b.h - a.h
	if dh > 180 {
		dh -= 360
	} else if dh < -180 {
		dh += 360
	}
	h := math.Mod(a.h+dh*t+360, 360)
	return hsl{
		h: h,
		s: a.s + (b.s-a.s)*t,
		l: a.l + (b.l-a.l)*t,
	}
}

const achromatic = 1e-2

// fillAchromaticHues gives grey stops the hue of their nearest chromatic
// neighbor, since their own hue carries no information.
func fillAchromaticHues(points []hsl) {
	for i := range points {
		if points[i].s > achromatic {
			continue
		}
		for d := 1; d < len(points); d++ {
			if j := i - d; j >= 0 && points[j].s > achromatic {
				points[i].h = points[j].h
				break
			}
			if j := i + d; j < len(points) && points[j].s > achromatic {
				points[i].h = points[j].h
				break
			}
		}
	}
}
