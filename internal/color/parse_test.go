package color

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"cmyk(10%, 20%, 30%, 40%)",
		"cmyk(0%, 100%, 100%, 0%)",
		"hsl(0, 0%, 50%)",
		"hsl(359, 100%, 25%)",
		"hsv(120, 30%, 40%)",
		"hwb(200, 10%, 90%)",
		"rgb(1, 2, 3)",
		"rgb(255, 255, 255)",
	}

	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			c, err := Parse(s)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if got := c.String(); got != s {
				t.Errorf("String: got %q, want %q", got, s)
			}
		})
	}
}

func TestParse_Spaces(t *testing.T) {
	tests := []struct {
		in    string
		space Space
		want  []float64
	}{
		{"cmyk(0%,50%,100%,10%)", CMYK, []float64{0, 0.5, 1, 0.1}},
		{"hsl(240,100%,50%)", HSL, []float64{240, 1, 0.5}},
		{"hsv(60, 50%, 50%)", HSV, []float64{60, 0.5, 0.5}},
		{"hwb(30, 20%, 20%)", HWB, []float64{30, 0.2, 0.2}},
		{"rgb(1,2,3)", RGB, []float64{1, 2, 3}},
		{"#ABC", RGB, []float64{170, 187, 204}},
		{"#336699", RGB, []float64{51, 102, 153}},
		{"red", RGB, []float64{255, 0, 0}},
		{"cornflowerblue", RGB, []float64{100, 149, 237}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}
			if c.Space() != tt.space {
				t.Errorf("Space: got %s, want %s", c.Space(), tt.space)
			}
			if diff := cmp.Diff(tt.want, c.Array()); diff != "" {
				t.Errorf("Array mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"hsl(360, 50%, 50%)",
		"hsl(-10, 50%, 50%)",
		"hsl(10, 50, 50)",
		"hsl(10, 101%, 50%)",
		"rgb(256,0,0)",
		"rgb(1.5, 2, 3)",
		"RGB(1,2,3)",
		"rgb(1, 2, 3",
		"cmyk(0%,0%,0%)",
		"cmyk(0%,0%,0%,101%)",
		"hwb(10, 20%)",
		"#abcd",
		"#ggg",
		"Red",
		"notacolor",
	}

	for _, s := range inputs {
		t.Run(s, func(t *testing.T) {
			c, err := Parse(s)
			if !errors.Is(err, ErrParse) {
				t.Errorf("Parse(%q): got (%v, %v), want ErrParse", s, c, err)
			}
		})
	}
}

func TestParseAs(t *testing.T) {
	c, err := ParseAs(RGB, "#0000ff")
	if err != nil {
		t.Fatalf("ParseAs(RGB, hex) failed: %v", err)
	}
	if c.Blue() != 255 {
		t.Errorf("Blue: got %v, want 255", c.Blue())
	}

	// A notation of another space is rejected.
	if _, err := ParseAs(HSL, "rgb(1, 2, 3)"); !errors.Is(err, ErrParse) {
		t.Errorf("ParseAs(HSL, rgb) error: got %v, want ErrParse", err)
	}
	if _, err := ParseAs(CMYK, "red"); !errors.Is(err, ErrParse) {
		t.Errorf("ParseAs(CMYK, keyword) error: got %v, want ErrParse", err)
	}
}

func TestFromObject(t *testing.T) {
	tests := []struct {
		name  string
		obj   map[string]float64
		space Space
		hex   string
	}{
		{"cmyk", map[string]float64{"cyan": 0, "magenta": 1, "yellow": 1, "key": 0}, CMYK, "#ff0000"},
		{"hsl", map[string]float64{"hue": 240, "saturation": 1, "lightness": 0.5}, HSL, "#0000ff"},
		{"hsv", map[string]float64{"hue": 120, "saturation": 1, "value": 1}, HSV, "#00ff00"},
		{"hwb", map[string]float64{"hue": 0, "whiteness": 1, "blackness": 0}, HWB, "#ffffff"},
		{"rgb", map[string]float64{"red": 51, "green": 102, "blue": 153}, RGB, "#336699"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := FromObject(tt.obj)
			if err != nil {
				t.Fatalf("FromObject failed: %v", err)
			}
			if c.Space() != tt.space {
				t.Errorf("Space: got %s, want %s", c.Space(), tt.space)
			}
			if c.Hex() != tt.hex {
				t.Errorf("Hex: got %s, want %s", c.Hex(), tt.hex)
			}
			if diff := cmp.Diff(tt.obj, c.Object()); diff != "" {
				t.Errorf("Object mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFromObject_Errors(t *testing.T) {
	tests := []struct {
		name string
		obj  map[string]float64
		want error
	}{
		{"missing cmyk field", map[string]float64{"cyan": 0.1}, ErrParse},
		{"hue and saturation only", map[string]float64{"hue": 10, "saturation": 0.5}, ErrParse},
		{"empty", map[string]float64{}, ErrParse},
		{"rgb out of range", map[string]float64{"red": 300, "green": 0, "blue": 0}, ErrRange},
		{"lightness out of range", map[string]float64{"hue": 0, "saturation": 0, "lightness": 2}, ErrRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromObject(tt.obj)
			if !errors.Is(err, tt.want) {
				t.Errorf("got error %v, want %v", err, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	existing := FromRGB8(1, 2, 3)

	tests := []struct {
		name string
		in   any
		hex  string
	}{
		{"string", "hsl(240, 100%, 50%)", "#0000ff"},
		{"cmyk record", CMYKObject{Cyan: 1, Magenta: 1}, "#0000ff"},
		{"hsl record", HSLObject{Hue: 240, Saturation: 1, Lightness: 0.5}, "#0000ff"},
		{"hsv record", HSVObject{Hue: 240, Saturation: 1, Value: 1}, "#0000ff"},
		{"hwb record", HWBObject{Hue: 240}, "#0000ff"},
		{"rgb record", RGBObject{Blue: 255}, "#0000ff"},
		{"map", map[string]float64{"red": 0, "green": 0, "blue": 255}, "#0000ff"},
		{"color", existing, "#010203"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.in)
			if err != nil {
				t.Fatalf("New failed: %v", err)
			}
			if c.Hex() != tt.hex {
				t.Errorf("Hex: got %s, want %s", c.Hex(), tt.hex)
			}
		})
	}

	if c, _ := New(existing); c != existing {
		t.Error("New(*Color) should return the same value")
	}
}

func TestNew_Unsupported(t *testing.T) {
	for _, in := range []any{42, nil, (*Color)(nil), []float64{1, 2, 3}} {
		if _, err := New(in); !errors.Is(err, ErrParse) {
			t.Errorf("New(%#v) error: got %v, want ErrParse", in, err)
		}
	}
}

func TestParseSpace(t *testing.T) {
	for _, s := range Spaces {
		got, err := ParseSpace(s.String())
		if err != nil {
			t.Fatalf("ParseSpace(%q) failed: %v", s, err)
		}
		if got != s {
			t.Errorf("ParseSpace(%q): got %s", s, got)
		}
	}
	if _, err := ParseSpace("lab"); !errors.Is(err, ErrParse) {
		t.Errorf("ParseSpace(lab) error: got %v, want ErrParse", err)
	}
}

func TestValuesFromMap(t *testing.T) {
	v, err := ValuesFromMap(map[string]float64{"hue": 10, "whiteness": 0.5})
	if err != nil {
		t.Fatalf("ValuesFromMap failed: %v", err)
	}
	if diff := cmp.Diff(Values{Hue: 10, Whiteness: 0.5}, v); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}

	if _, err := ValuesFromMap(map[string]float64{"alpha": 1}); !errors.Is(err, ErrInvalidGroup) {
		t.Errorf("unknown channel error: got %v, want ErrInvalidGroup", err)
	}
}

func TestDescribe(t *testing.T) {
	c, err := Parse("hsl(240, 100%, 50%)")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := Description{
		Space:  "hsl",
		String: "hsl(240, 100%, 50%)",
		Hex:    "#0000ff",
		CMYK:   []float64{1, 1, 0, 0},
		HSL:    []float64{240, 1, 0.5},
		HSV:    []float64{240, 1, 1},
		HWB:    []float64{240, 0, 0},
		RGB:    []float64{0, 0, 255},
	}
	if diff := cmp.Diff(want, c.Describe()); diff != "" {
		t.Errorf("Describe mismatch (-want +got):\n%s", diff)
	}
}
