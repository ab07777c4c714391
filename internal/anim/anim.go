// Package anim implements the keyframe engine: frame-resolved color
// lookup with linear interpolation, keyframe toggling and track
// navigation. All operations work on a single palette color; there is no
// engine state.
package anim

import (
	"math"
	"sort"

	"github.com/blackwell-systems/palctl/internal/palette"
)

// Direction selects which way keyframe navigation moves.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Interpolate resolves the color's RGBA at the given frame. A color with
// no keyframes is static and returns its base value. Outside the keyframed
// range the nearest endpoint is held flat; between keyframes each channel
// interpolates linearly and rounds.
func Interpolate(c *palette.Color, frame int) palette.RGBA {
	ks := c.Keyframes
	if len(ks) == 0 {
		return c.Base()
	}

	var prev, next *palette.Keyframe
	for i := range ks {
		if ks[i].Frame <= frame {
			prev = &ks[i]
		}
		if ks[i].Frame >= frame {
			next = &ks[i]
			break
		}
	}
	if prev == nil {
		prev = next
	}
	if next == nil {
		next = prev
	}
	if prev.Frame == next.Frame {
		return palette.RGBA{R: prev.R, G: prev.G, B: prev.B, A: prev.A}
	}

	t := float64(frame-prev.Frame) / float64(next.Frame-prev.Frame)
	return palette.RGBA{
		R: lerpChannel(prev.R, next.R, t),
		G: lerpChannel(prev.G, next.G, t),
		B: lerpChannel(prev.B, next.B, t),
		A: lerpChannel(prev.A, next.A, t),
	}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// KeyframeAt returns the keyframe pinned exactly at frame, if any.
func KeyframeAt(c *palette.Color, frame int) (palette.Keyframe, bool) {
	for _, k := range c.Keyframes {
		if k.Frame == frame {
			return k, true
		}
	}
	return palette.Keyframe{}, false
}

// ToggleKeyframe removes the keyframe at frame if one exists, and
// otherwise inserts one whose RGBA is the currently interpolated color at
// that frame, so toggling never causes a visible jump. The track stays
// sorted by frame. Toggling twice with no intervening edit restores the
// original track.
func ToggleKeyframe(c *palette.Color, frame int) {
	for i, k := range c.Keyframes {
		if k.Frame == frame {
			c.Keyframes = append(c.Keyframes[:i], c.Keyframes[i+1:]...)
			return
		}
	}
	cur := Interpolate(c, frame)
	c.Keyframes = append(c.Keyframes, palette.Keyframe{
		Frame: frame, R: cur.R, G: cur.G, B: cur.B, A: cur.A,
	})
	sort.Slice(c.Keyframes, func(i, j int) bool {
		return c.Keyframes[i].Frame < c.Keyframes[j].Frame
	})
}

// NextKeyframe returns the frame of the nearest keyframe strictly after
// (Forward) or before (Backward) from, wrapping around the track when
// none is found in that direction. ok is false when the track is empty.
func NextKeyframe(c *palette.Color, from int, dir Direction) (int, bool) {
	ks := c.Keyframes
	if len(ks) == 0 {
		return 0, false
	}
	if dir == Forward {
		for _, k := range ks {
			if k.Frame > from {
				return k.Frame, true
			}
		}
		return ks[0].Frame, true
	}
	for i := len(ks) - 1; i >= 0; i-- {
		if ks[i].Frame < from {
			return ks[i].Frame, true
		}
	}
	return ks[len(ks)-1].Frame, true
}
