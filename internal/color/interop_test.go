package color

import (
	"image"
	imgcolor "image/color"
	"image/draw"
	"testing"
)

func TestRGBA(t *testing.T) {
	r, g, b, a := mustParse(t, "rgb(255, 128, 0)").RGBA()
	if r != 0xffff || g != 0x8080 || b != 0 || a != 0xffff {
		t.Errorf("RGBA: got (%#x, %#x, %#x, %#x), want (0xffff, 0x8080, 0, 0xffff)", r, g, b, a)
	}
}

func TestRGBA_Draw(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: mustParse(t, "hsl(120, 100%, 25%)")}, image.Point{}, draw.Src)

	got := img.NRGBAAt(1, 1)
	want := imgcolor.NRGBA{R: 0, G: 128, B: 0, A: 255}
	if got != want {
		t.Errorf("pixel: got %v, want %v", got, want)
	}
}

func TestFromImageColor(t *testing.T) {
	tests := []struct {
		name string
		in   imgcolor.Color
		hex  string
	}{
		{"nrgba", imgcolor.NRGBA{R: 10, G: 20, B: 30, A: 255}, "#0a141e"},
		{"rgba", imgcolor.RGBA{R: 255, G: 0, B: 0, A: 255}, "#ff0000"},
		{"gray", imgcolor.Gray{Y: 128}, "#808080"},
		{"transparent", imgcolor.RGBA{}, "#000000"},
		{"color", mustParse(t, "#336699"), "#336699"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := FromImageColor(tt.in)
			if c.Space() != RGB {
				t.Errorf("Space: got %s, want rgb", c.Space())
			}
			if c.Hex() != tt.hex {
				t.Errorf("Hex: got %s, want %s", c.Hex(), tt.hex)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	red := mustParse(t, "red")
	if d := red.Distance(mustParse(t, "hsl(0, 100%, 50%)")); d != 0 {
		t.Errorf("Distance(red, red): got %v, want 0", d)
	}

	near := red.Distance(mustParse(t, "rgb(250, 5, 5)"))
	far := red.Distance(mustParse(t, "blue"))
	if near <= 0 || near >= far {
		t.Errorf("Distance ordering: near %v, far %v", near, far)
	}
}

func TestKeyword(t *testing.T) {
	tests := []struct {
		color string
		want  string
		ok    bool
	}{
		{"#ff0000", "red", true},
		{"hsl(180, 100%, 50%)", "aqua", true},
		{"cmyk(0%, 0%, 0%, 100%)", "black", true},
		{"rgb(1, 2, 3)", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			got, ok := mustParse(t, tt.color).Keyword()
			if got != tt.want || ok != tt.ok {
				t.Errorf("Keyword: got (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestNearestKeyword(t *testing.T) {
	name, d := mustParse(t, "#ff0000").NearestKeyword()
	if name != "red" || d != 0 {
		t.Errorf("NearestKeyword(#ff0000): got (%q, %v), want (red, 0)", name, d)
	}

	name, d = mustParse(t, "rgb(250, 2, 3)").NearestKeyword()
	if name != "red" {
		t.Errorf("NearestKeyword(rgb(250, 2, 3)): got %q, want red", name)
	}
	if d <= 0 {
		t.Errorf("distance: got %v, want > 0", d)
	}
}
