package color

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string) *Color {
	t.Helper()
	c, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", s, err)
	}
	return c
}

func TestAdjust(t *testing.T) {
	tests := []struct {
		name  string
		color string
		delta Values
		want  []float64
	}{
		{"rgb single", "rgb(255, 0, 0)", Values{Red: -30}, []float64{225, 0, 0}},
		{"rgb clamped", "rgb(255, 0, 0)", Values{Red: -100, Green: 255}, []float64{155, 255, 0}},
		{"rgb clamp both ends", "rgb(255, 0, 0)", Values{Red: 255, Green: -100, Blue: 10}, []float64{255, 0, 10}},
		{"hsl hue wraps", "hsl(0, 100%, 50%)", Values{Hue: -30}, []float64{330, 1, 0.5}},
		{"hsl saturation clamped", "hsl(0, 100%, 50%)", Values{Hue: -100, Saturation: 0.5}, []float64{260, 1, 0.5}},
		{"hsl all channels", "hsl(0, 100%, 50%)", Values{Hue: 100, Saturation: -0.5, Lightness: 0.1}, []float64{100, 0.5, 0.6}},
		{"hwb hue wraps", "hwb(0, 0%, 0%)", Values{Hue: -30}, []float64{330, 0, 0}},
		{"hwb whiteness", "hwb(0, 0%, 0%)", Values{Hue: -100, Whiteness: 0.5}, []float64{260, 0.5, 0}},
		{"hwb all channels", "hwb(0, 0%, 0%)", Values{Hue: 100, Whiteness: -0.5, Blackness: 0.1}, []float64{100, 0, 0.1}},
		{"hue beyond a full turn", "hsl(10, 50%, 50%)", Values{Hue: 730}, []float64{20, 0.5, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustParse(t, tt.color)
			got, err := c.Adjust(tt.delta)
			if err != nil {
				t.Fatalf("Adjust failed: %v", err)
			}
			if got.Space() != c.Space() {
				t.Errorf("Space: got %s, want %s", got.Space(), c.Space())
			}
			if diff := cmp.Diff(tt.want, got.Array()); diff != "" {
				t.Errorf("Array mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAdjust_OtherGroupThanNative(t *testing.T) {
	// Lightening an RGB color goes through HSL and comes back as RGB.
	c := mustParse(t, "rgb(255, 0, 0)")
	got, err := c.Adjust(Values{Lightness: 0.25})
	if err != nil {
		t.Fatalf("Adjust failed: %v", err)
	}
	if got.Space() != RGB {
		t.Errorf("Space: got %s, want rgb", got.Space())
	}
	if diff := cmp.Diff([]float64{255, 128, 128}, got.Array()); diff != "" {
		t.Errorf("Array mismatch (-want +got):\n%s", diff)
	}
}

func TestAdjust_Range(t *testing.T) {
	tests := []struct {
		name  string
		color string
		delta Values
	}{
		{"red above 255", "rgb(255, 0, 0)", Values{Red: 256}},
		{"green below -255", "rgb(255, 0, 0)", Values{Green: -256}},
		{"saturation above 1", "hsl(0, 100%, 50%)", Values{Saturation: 1.5}},
		{"lightness below -1", "hsl(0, 100%, 50%)", Values{Lightness: -1.1}},
		{"whiteness above 1", "hwb(0, 0%, 0%)", Values{Whiteness: 2}},
		{"blackness below -1", "hwb(0, 0%, 0%)", Values{Blackness: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mustParse(t, tt.color).Adjust(tt.delta)
			if !errors.Is(err, ErrRange) {
				t.Errorf("got error %v, want ErrRange", err)
			}
		})
	}
}

func TestChange(t *testing.T) {
	tests := []struct {
		name  string
		color string
		value Values
		want  []float64
	}{
		{"rgb", "rgb(255, 0, 0)", Values{Green: 128}, []float64{255, 128, 0}},
		{"hsl", "hsl(0, 100%, 50%)", Values{Hue: 200, Lightness: 0.25}, []float64{200, 1, 0.25}},
		{"hsl hue wraps", "hsl(0, 100%, 50%)", Values{Hue: 400}, []float64{40, 1, 0.5}},
		{"hwb", "hwb(0, 0%, 0%)", Values{Whiteness: 0.3, Blackness: 0.2}, []float64{0, 0.3, 0.2}},
		{"hsv receiver through hsl", "hsv(0, 100%, 100%)", Values{Saturation: 0}, []float64{0, 0, 0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mustParse(t, tt.color).Change(tt.value)
			if err != nil {
				t.Fatalf("Change failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got.Array()); diff != "" {
				t.Errorf("Array mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChange_Range(t *testing.T) {
	tests := []struct {
		name  string
		value Values
	}{
		{"red above 255", Values{Red: 256}},
		{"red negative", Values{Red: -1}},
		{"saturation above 1", Values{Saturation: 1.01}},
		{"lightness negative", Values{Lightness: -0.5}},
		{"whiteness above 1", Values{Whiteness: 1.5}},
	}

	c := mustParse(t, "rgb(10, 20, 30)")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := c.Change(tt.value); !errors.Is(err, ErrRange) {
				t.Errorf("got error %v, want ErrRange", err)
			}
		})
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		name   string
		color  string
		factor Values
		want   []float64
	}{
		{"rgb towards zero", "rgb(255, 100, 0)", Values{Green: -0.5}, []float64{255, 50, 0}},
		{"rgb towards max", "rgb(255, 100, 0)", Values{Blue: 0.2}, []float64{255, 100, 51}},
		{"hsl both directions", "hsl(0, 50%, 40%)", Values{Lightness: 0.5, Saturation: -0.5}, []float64{0, 0.25, 0.7}},
		{"hwb full", "hwb(120, 20%, 20%)", Values{Whiteness: 1}, []float64{120, 1, 0.2}},
		{"zero factor", "rgb(10, 20, 30)", Values{Red: 0}, []float64{10, 20, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := mustParse(t, tt.color).Scale(tt.factor)
			if err != nil {
				t.Fatalf("Scale failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, got.Array()); diff != "" {
				t.Errorf("Array mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestScale_Range(t *testing.T) {
	c := mustParse(t, "rgb(10, 20, 30)")
	for _, f := range []float64{1.01, -1.5, 255} {
		if _, err := c.Scale(Values{Red: f}); !errors.Is(err, ErrRange) {
			t.Errorf("Scale(red %v) error: got %v, want ErrRange", f, err)
		}
	}
}

func TestTransforms_InvalidGroup(t *testing.T) {
	c := mustParse(t, "rgb(10, 20, 30)")

	tests := []struct {
		name string
		fn   func() (*Color, error)
	}{
		{"adjust red with hue", func() (*Color, error) { return c.Adjust(Values{Red: 1, Hue: 1}) }},
		{"adjust cyan", func() (*Color, error) { return c.Adjust(Values{Cyan: 0.1}) }},
		{"adjust hsv value", func() (*Color, error) { return c.Adjust(Values{Value: 0.1}) }},
		{"change whiteness with saturation", func() (*Color, error) {
			return c.Change(Values{Whiteness: 0.1, Saturation: 0.1})
		}},
		{"change lightness with blue", func() (*Color, error) { return c.Change(Values{Lightness: 0.5, Blue: 10}) }},
		{"scale hue", func() (*Color, error) { return c.Scale(Values{Hue: 0.5}) }},
		{"scale key", func() (*Color, error) { return c.Scale(Values{Key: 0.5}) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn()
			if !errors.Is(err, ErrInvalidGroup) {
				t.Errorf("got (%v, %v), want ErrInvalidGroup", got, err)
			}
		})
	}
}

func TestTransforms_EmptyValues(t *testing.T) {
	c := mustParse(t, "hsl(10, 20%, 30%)")
	for name, fn := range map[string]func(Values) (*Color, error){
		"adjust": c.Adjust,
		"change": c.Change,
		"scale":  c.Scale,
	} {
		got, err := fn(Values{})
		if err != nil {
			t.Errorf("%s: unexpected error %v", name, err)
		}
		if got != c {
			t.Errorf("%s: empty values should return the receiver", name)
		}
	}
}

func TestTransforms_ReceiverUnchanged(t *testing.T) {
	c := mustParse(t, "rgb(100, 150, 200)")
	before := c.Describe()

	if _, err := c.Adjust(Values{Red: 50}); err != nil {
		t.Fatalf("Adjust failed: %v", err)
	}
	if _, err := c.Change(Values{Hue: 10}); err != nil {
		t.Fatalf("Change failed: %v", err)
	}
	// A failing call must not touch the receiver either.
	if _, err := c.Adjust(Values{Red: 10, Green: 300}); !errors.Is(err, ErrRange) {
		t.Fatalf("Adjust error: got %v, want ErrRange", err)
	}
	c.Complement()
	c.Invert()

	if diff := cmp.Diff(before, c.Describe()); diff != "" {
		t.Errorf("receiver changed (-before +after):\n%s", diff)
	}
}

func TestComplement(t *testing.T) {
	tests := []struct {
		color string
		want  []float64
	}{
		{"hsl(0, 100%, 50%)", []float64{180, 1, 0.5}},
		{"hsl(300, 40%, 20%)", []float64{120, 0.4, 0.2}},
		{"rgb(255, 0, 0)", []float64{0, 255, 255}},
		{"hwb(90, 10%, 10%)", []float64{270, 0.1, 0.1}},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			got := mustParse(t, tt.color).Complement()
			if diff := cmp.Diff(tt.want, got.Array()); diff != "" {
				t.Errorf("Array mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGrayscale(t *testing.T) {
	got := mustParse(t, "rgb(255, 0, 0)").Grayscale()
	if got.Hex() != "#808080" {
		t.Errorf("Hex: got %s, want #808080", got.Hex())
	}
	if got.Saturation() != 0 {
		t.Errorf("Saturation: got %v, want 0", got.Saturation())
	}

	hsl := mustParse(t, "hsl(200, 80%, 30%)").Grayscale()
	if diff := cmp.Diff([]float64{0, 0, 0.3}, hsl.Array()); diff != "" {
		t.Errorf("Array mismatch (-want +got):\n%s", diff)
	}
}

func TestInvert(t *testing.T) {
	tests := []struct {
		color string
		hex   string
	}{
		{"rgb(255, 100, 0)", "#009bff"},
		{"#ffffff", "#000000"},
		{"hsl(0, 0%, 0%)", "#ffffff"},
		{"cmyk(0%, 100%, 100%, 0%)", "#00ffff"},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			c := mustParse(t, tt.color)
			got := c.Invert()
			if got.Space() != c.Space() {
				t.Errorf("Space: got %s, want %s", got.Space(), c.Space())
			}
			if got.Hex() != tt.hex {
				t.Errorf("Hex: got %s, want %s", got.Hex(), tt.hex)
			}
		})
	}
}

func TestMix(t *testing.T) {
	own := mustParse(t, "#036")
	other := mustParse(t, "#d2e1dd")

	tests := []struct {
		weight float64
		hex    string
	}{
		{0.5, "#698aa2"},
		{0.75, "#355f84"},
		{0.25, "#9eb6bf"},
		{1, "#003366"},
		{0, "#d2e1dd"},
	}

	for _, tt := range tests {
		got, err := own.Mix(other, tt.weight)
		if err != nil {
			t.Fatalf("Mix(%v) failed: %v", tt.weight, err)
		}
		if got.Hex() != tt.hex {
			t.Errorf("Mix(%v): got %s, want %s", tt.weight, got.Hex(), tt.hex)
		}
	}
}

func TestMix_KeepsReceiverSpace(t *testing.T) {
	own := mustParse(t, "hsl(0, 100%, 50%)")
	got, err := own.Mix(mustParse(t, "blue"), 0.5)
	if err != nil {
		t.Fatalf("Mix failed: %v", err)
	}
	if got.Space() != HSL {
		t.Errorf("Space: got %s, want hsl", got.Space())
	}
	if got.Hex() != "#800080" {
		t.Errorf("Hex: got %s, want #800080", got.Hex())
	}
}

func TestMix_Nil(t *testing.T) {
	if _, err := mustParse(t, "red").Mix(nil, 0.5); !errors.Is(err, ErrParse) {
		t.Errorf("Mix(nil) error: got %v, want ErrParse", err)
	}
}

func TestMix_Range(t *testing.T) {
	c := mustParse(t, "red")
	for _, w := range []float64{-0.1, 1.1} {
		if _, err := c.Mix(c, w); !errors.Is(err, ErrRange) {
			t.Errorf("Mix(weight %v) error: got %v, want ErrRange", w, err)
		}
	}
}
