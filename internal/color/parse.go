package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	cmykPattern = regexp.MustCompile(`^cmyk\((\d+)%,\s*(\d+)%,\s*(\d+)%,\s*(\d+)%\)$`)
	hslPattern  = regexp.MustCompile(`^hsl\((\d+),\s*(\d+)%,\s*(\d+)%\)$`)
	hsvPattern  = regexp.MustCompile(`^hsv\((\d+),\s*(\d+)%,\s*(\d+)%\)$`)
	hwbPattern  = regexp.MustCompile(`^hwb\((\d+),\s*(\d+)%,\s*(\d+)%\)$`)
	rgbPattern  = regexp.MustCompile(`^rgb\((\d+),\s*(\d+),\s*(\d+)\)$`)
	hexPattern  = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

// Parse reads a color in any supported notation. The notation is chosen by
// prefix: "cmyk", "hsl", "hsv", "hwb", "rgb", "#", or a CSS keyword such as
// "cornflowerblue".
func Parse(s string) (*Color, error) {
	for _, space := range []Space{CMYK, HSL, HSV, HWB, RGB} {
		if strings.HasPrefix(s, space.String()) {
			return ParseAs(space, s)
		}
	}
	if strings.HasPrefix(s, "#") || isKeyword(s) {
		return ParseAs(RGB, s)
	}
	return nil, fmt.Errorf("%w: %q", ErrParse, s)
}

// ParseAs reads s using the notation of one space. RGB also accepts hex
// notation and keywords.
func ParseAs(space Space, s string) (*Color, error) {
	switch space {
	case CMYK:
		v, err := match(cmykPattern, s, 100, 100, 100, 100)
		if err != nil {
			return nil, err
		}
		return build(CMYK, v[0]/100, v[1]/100, v[2]/100, v[3]/100), nil
	case HSL, HSV, HWB:
		v, err := match(patternFor(space), s, 359, 100, 100)
		if err != nil {
			return nil, err
		}
		return build(space, v[0], v[1]/100, v[2]/100), nil
	case RGB:
		if strings.HasPrefix(s, "#") {
			return parseHex(s)
		}
		if c, ok := lookupKeyword(s); ok {
			return c, nil
		}
		v, err := match(rgbPattern, s, 255, 255, 255)
		if err != nil {
			return nil, err
		}
		return build(RGB, v[0], v[1], v[2]), nil
	}
	panic(fmt.Sprintf("color: unknown space %d", int(space)))
}

func patternFor(space Space) *regexp.Regexp {
	switch space {
	case HSL:
		return hslPattern
	case HSV:
		return hsvPattern
	}
	return hwbPattern
}

// match extracts the integer literals of s and checks each against its limit.
func match(re *regexp.Regexp, s string, limits ...int) ([]float64, error) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrParse, s)
	}

	values := make([]float64, len(limits))
	for i, limit := range limits {
		n, err := strconv.Atoi(m[i+1])
		if err != nil || n > limit {
			return nil, fmt.Errorf("%w: %q: component %d must be between 0 and %d", ErrParse, s, i+1, limit)
		}
		values[i] = float64(n)
	}
	return values, nil
}

// parseHex accepts "#rgb" (each digit duplicated) and "#rrggbb".
func parseHex(s string) (*Color, error) {
	if !hexPattern.MatchString(s) {
		return nil, fmt.Errorf("%w: %q", ErrParse, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrParse, s, err)
	}
	return FromRGB8(c.RGB255()), nil
}

// FromObject builds a color from a record keyed by channel name. The space is
// picked by field presence: "cyan" selects CMYK, "lightness" HSL, "value" HSV,
// "whiteness" HWB, anything else RGB. All fields of the selected space are
// required.
func FromObject(obj map[string]float64) (*Color, error) {
	space := RGB
	switch {
	case has(obj, "cyan"):
		space = CMYK
	case has(obj, "lightness"):
		space = HSL
	case has(obj, "value"):
		space = HSV
	case has(obj, "whiteness"):
		space = HWB
	}

	values := make([]float64, len(fields[space]))
	for i, name := range fields[space] {
		v, ok := obj[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s record is missing field %q", ErrParse, space, name)
		}
		values[i] = v
	}

	if err := checkChannels(space, values...); err != nil {
		return nil, err
	}
	return build(space, values...), nil
}

func has(obj map[string]float64, name string) bool {
	_, ok := obj[name]
	return ok
}

// New builds a color from a string in any notation, one of the record types
// (CMYKObject, HSLObject, HSVObject, HWBObject, RGBObject) or an existing
// *Color, which is returned as is.
func New(v any) (*Color, error) {
	switch t := v.(type) {
	case string:
		return Parse(t)
	case CMYKObject:
		return NewCMYK(t.Cyan, t.Magenta, t.Yellow, t.Key)
	case HSLObject:
		return NewHSL(t.Hue, t.Saturation, t.Lightness)
	case HSVObject:
		return NewHSV(t.Hue, t.Saturation, t.Value)
	case HWBObject:
		return NewHWB(t.Hue, t.Whiteness, t.Blackness)
	case RGBObject:
		return NewRGB(t.Red, t.Green, t.Blue)
	case map[string]float64:
		return FromObject(t)
	case *Color:
		if t == nil {
			break
		}
		return t, nil
	}
	return nil, fmt.Errorf("%w: unsupported input %T", ErrParse, v)
}
