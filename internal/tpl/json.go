package tpl

import (
	"encoding/json"

	"github.com/blackwell-systems/palctl/internal/palette"
)

// JSONColor is one entry of the JSON export: a structural dump keyed by
// short id, with no round-trip obligation back into TPL.
type JSONColor struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Role      string         `json:"role"`
	Color     JSONRGBA       `json:"color"`
	Keyframes []JSONKeyframe `json:"keyframes"`
}

type JSONRGBA struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

type JSONKeyframe struct {
	Frame int   `json:"frame"`
	R     uint8 `json:"r"`
	G     uint8 `json:"g"`
	B     uint8 `json:"b"`
	A     uint8 `json:"a"`
}

// ExportJSON dumps the colors in document order.
func ExportJSON(colors []*palette.Color) ([]byte, error) {
	out := make([]JSONColor, 0, len(colors))
	for _, c := range colors {
		jc := JSONColor{
			ID:        c.ShortID(),
			Name:      c.Name,
			Role:      c.Role.String(),
			Color:     JSONRGBA{R: c.R, G: c.G, B: c.B, A: c.A},
			Keyframes: make([]JSONKeyframe, 0, len(c.Keyframes)),
		}
		for _, k := range c.Keyframes {
			jc.Keyframes = append(jc.Keyframes, JSONKeyframe{Frame: k.Frame, R: k.R, G: k.G, B: k.B, A: k.A})
		}
		out = append(out, jc)
	}
	return json.MarshalIndent(out, "", "  ")
}
