package color

import "fmt"

// Space identifies one of the supported color spaces.
type Space int

const (
	CMYK Space = iota
	HSL
	HSV
	HWB
	RGB

	spaceCount = 5
)

var spaceNames = [spaceCount]string{"cmyk", "hsl", "hsv", "hwb", "rgb"}

// Spaces lists every space in a stable order.
var Spaces = []Space{CMYK, HSL, HSV, HWB, RGB}

func (s Space) String() string {
	if s < 0 || s >= spaceCount {
		return fmt.Sprintf("Space(%d)", int(s))
	}
	return spaceNames[s]
}

// ParseSpace returns the space with the given lower-case name ("cmyk", "hsl", ...).
func ParseSpace(name string) (Space, error) {
	for i, n := range spaceNames {
		if n == name {
			return Space(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown color space %q", ErrParse, name)
}

// Channel identifies a single coordinate of a color space.
type Channel int

const (
	Cyan Channel = iota
	Magenta
	Yellow
	Key
	Hue
	Saturation
	Lightness
	Value
	Whiteness
	Blackness
	Red
	Green
	Blue

	channelCount = 13
)

var channelNames = [channelCount]string{
	"cyan", "magenta", "yellow", "key",
	"hue", "saturation", "lightness", "value",
	"whiteness", "blackness",
	"red", "green", "blue",
}

func (ch Channel) String() string {
	if ch < 0 || ch >= channelCount {
		return fmt.Sprintf("Channel(%d)", int(ch))
	}
	return channelNames[ch]
}

// ParseChannel returns the channel with the given lower-case name.
func ParseChannel(name string) (Channel, error) {
	for i, n := range channelNames {
		if n == name {
			return Channel(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown channel %q", ErrInvalidGroup, name)
}

// Values maps channels to numbers. It is the input of Adjust, Change and Scale,
// where it holds deltas, absolute values or factors respectively.
type Values map[Channel]float64

// ValuesFromMap converts a channel-name keyed map, as decoded from JSON, into Values.
func ValuesFromMap(m map[string]float64) (Values, error) {
	v := make(Values, len(m))
	for name, n := range m {
		ch, err := ParseChannel(name)
		if err != nil {
			return nil, err
		}
		v[ch] = n
	}
	return v, nil
}

// fields holds the record field names of each space, in array order.
var fields = [spaceCount][]string{
	CMYK: {"cyan", "magenta", "yellow", "key"},
	HSL:  {"hue", "saturation", "lightness"},
	HSV:  {"hue", "saturation", "value"},
	HWB:  {"hue", "whiteness", "blackness"},
	RGB:  {"red", "green", "blue"},
}
