package color

import (
	"fmt"
	"math"
	"sort"
)

// group is a set of channels that a transform may modify together.
type group struct {
	space    Space
	channels []Channel // in the space's array order
}

// Groups in precedence order: a call touching red, green or blue is an RGB
// call; otherwise whiteness or blackness makes it HWB; otherwise HSL.
var groups = []group{
	{RGB, []Channel{Red, Green, Blue}},
	{HWB, []Channel{Hue, Whiteness, Blackness}},
	{HSL, []Channel{Hue, Saturation, Lightness}},
}

func (g group) index(ch Channel) int {
	for i, c := range g.channels {
		if c == ch {
			return i
		}
	}
	return -1
}

// groupFor picks the group for v and rejects channels outside it. A hue-only
// call uses the HWB group for HWB colors and the HSL group otherwise.
func groupFor(op string, v Values, native Space) (group, error) {
	var picked *group
	for i := range groups {
		for ch := range v {
			if ch != Hue && groups[i].index(ch) >= 0 {
				picked = &groups[i]
				break
			}
		}
		if picked != nil {
			break
		}
	}
	if picked == nil {
		// Only hue, or only channels no group accepts.
		picked = &groups[len(groups)-1]
		if native == HWB {
			picked = &groups[1]
		}
	}

	for _, ch := range sortedChannels(v) {
		if picked.index(ch) >= 0 {
			continue
		}
		if !transformable(ch) {
			return group{}, fmt.Errorf("%w: %s does not accept channel %s", ErrInvalidGroup, op, ch)
		}
		return group{}, fmt.Errorf("%w: %s cannot combine %s with %s channels",
			ErrInvalidGroup, op, ch, picked.space)
	}
	return *picked, nil
}

func transformable(ch Channel) bool {
	for _, g := range groups {
		if g.index(ch) >= 0 {
			return true
		}
	}
	return false
}

func sortedChannels(v Values) []Channel {
	chs := make([]Channel, 0, len(v))
	for ch := range v {
		chs = append(chs, ch)
	}
	sort.Slice(chs, func(i, j int) bool { return chs[i] < chs[j] })
	return chs
}

func channelMax(ch Channel) float64 {
	switch ch {
	case Red, Green, Blue:
		return 255
	case Hue:
		return 360
	}
	return 1
}

// apply validates every value first, then computes the new channels of g from
// the receiver's current (rounded) channels and converts back to c's space.
func (c *Color) apply(g group, v Values, check func(Channel, float64) error,
	next func(ch Channel, cur, x float64) float64) (*Color, error) {
	for _, ch := range sortedChannels(v) {
		if err := check(ch, v[ch]); err != nil {
			return nil, err
		}
	}

	values := c.rounded(g.space)
	for ch, x := range v {
		i := g.index(ch)
		values[i] = next(ch, values[i], x)
	}
	return build(g.space, values...).To(c.space), nil
}

// Adjust adds signed deltas to channels of one group: red/green/blue,
// hue/saturation/lightness or hue/whiteness/blackness. Results are clamped to
// the channel range; hue wraps around. RGB deltas must lie in [-255, 255] and
// ratio deltas in [-1, 1].
func (c *Color) Adjust(v Values) (*Color, error) {
	if len(v) == 0 {
		return c, nil
	}
	g, err := groupFor("adjust", v, c.space)
	if err != nil {
		return nil, err
	}

	check := func(ch Channel, d float64) error {
		if ch == Hue {
			return checkFinite(ch.String(), d)
		}
		m := channelMax(ch)
		return checkRange(ch.String(), d, -m, m)
	}
	next := func(ch Channel, cur, d float64) float64 {
		if ch == Hue {
			return wrapHue(cur + d)
		}
		return clamp(cur+d, 0, channelMax(ch))
	}
	return c.apply(g, v, check, next)
}

// Change replaces channels of one group with absolute values. RGB values must
// lie in [0, 255] and ratios in [0, 1]; hue wraps modulo 360.
func (c *Color) Change(v Values) (*Color, error) {
	if len(v) == 0 {
		return c, nil
	}
	g, err := groupFor("change", v, c.space)
	if err != nil {
		return nil, err
	}

	check := func(ch Channel, x float64) error {
		if ch == Hue {
			return checkFinite(ch.String(), x)
		}
		return checkRange(ch.String(), x, 0, channelMax(ch))
	}
	next := func(ch Channel, _, x float64) float64 {
		if ch == Hue {
			return wrapHue(x)
		}
		return x
	}
	return c.apply(g, v, check, next)
}

// Scale moves channels proportionally: a positive factor f moves a channel
// f of the way towards its maximum, a negative one |f| of the way towards
// zero. Factors must lie in [-1, 1]. Hue cannot be scaled.
func (c *Color) Scale(v Values) (*Color, error) {
	if len(v) == 0 {
		return c, nil
	}
	if _, ok := v[Hue]; ok {
		return nil, fmt.Errorf("%w: scale cannot be applied to hue", ErrInvalidGroup)
	}
	g, err := groupFor("scale", v, c.space)
	if err != nil {
		return nil, err
	}

	check := func(ch Channel, f float64) error {
		return checkRange(ch.String(), f, -1, 1)
	}
	next := func(ch Channel, cur, f float64) float64 {
		if f > 0 {
			return math.Min(cur+(channelMax(ch)-cur)*f, channelMax(ch))
		}
		return math.Max(cur-cur*math.Abs(f), 0)
	}
	return c.apply(g, v, check, next)
}

// Complement rotates the hue by 180 degrees.
func (c *Color) Complement() *Color {
	return must(c.Adjust(Values{Hue: 180}))
}

// Grayscale drops the HSL saturation, keeping lightness.
func (c *Color) Grayscale() *Color {
	return must(c.Change(Values{Saturation: 0}))
}

// Invert replaces each RGB channel x with 255 - x.
func (c *Color) Invert() *Color {
	rgb := c.rounded(RGB)
	return must(c.Change(Values{Red: 255 - rgb[0], Green: 255 - rgb[1], Blue: 255 - rgb[2]}))
}

// Mix blends c with other in RGB: each channel is c*weight + other*(1-weight),
// so weight 1 yields c and 0 yields other. Callers wanting an even blend pass
// 0.5. The result is in c's space.
func (c *Color) Mix(other *Color, weight float64) (*Color, error) {
	if other == nil {
		return nil, fmt.Errorf("%w: nothing to mix with", ErrParse)
	}
	if err := checkRange("weight", weight, 0, 1); err != nil {
		return nil, err
	}

	own, theirs := c.rounded(RGB), other.rounded(RGB)
	mixed := make([]float64, 3)
	for i := range mixed {
		mixed[i] = own[i]*weight + theirs[i]*(1-weight)
	}
	return build(RGB, mixed...).To(c.space), nil
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// must is for transforms whose inputs are fixed and known to be valid.
func must(c *Color, err error) *Color {
	if err != nil {
		panic("color: " + err.Error())
	}
	return c
}
