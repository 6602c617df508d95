package pattern

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
)

var gliderRLE = []string{
	"#N Glider",
	"#C A small spaceship",
	"x = 3, y = 3, rule = B3/S23",
	"bob$2bo$3o!",
}

func TestRLEDecodeGlider(t *testing.T) {
	spec, err := RLEDecoder{}.Decode(gliderRLE)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if spec.Rows != 3 || spec.Cols != 3 || spec.Rule != "B3/S23" {
		t.Fatalf("header = %dx%d rule %q", spec.Rows, spec.Cols, spec.Rule)
	}
	want := []model.Coord{{Row: 0, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}
	if len(spec.Cells) != len(want) {
		t.Fatalf("cells = %v, want %v", spec.Cells, want)
	}
	for i := range want {
		if spec.Cells[i] != want[i] {
			t.Fatalf("cells = %v, want %v", spec.Cells, want)
		}
	}
}

func TestRLEGliderMovesDiagonally(t *testing.T) {
	decoded, err := DecodeLines(".rle", []string{"x = 3, y = 3", "bob$2bo$3o!"})
	if err != nil {
		t.Fatalf("DecodeLines: %v", err)
	}
	start := decoded.LiveCells()

	// give the glider room to travel
	g, err := FromCoords(10, 10, start)
	if err != nil {
		t.Fatalf("FromCoords: %v", err)
	}
	e := rules.NewEngine()
	for range 4 {
		e.Advance(g)
	}

	got := g.LiveCells()
	if len(got) != len(start) {
		t.Fatalf("after 4 generations live = %v, started with %v", got, start)
	}
	for i, c := range start {
		if got[i] != (model.Coord{Row: c.Row + 1, Col: c.Col + 1}) {
			t.Fatalf("after 4 generations live = %v, want %v shifted by (1,1)", got, start)
		}
	}
}

func TestRLEMultiDigitRuns(t *testing.T) {
	g, err := DecodeLines(".rle", []string{"x = 14, y = 2", "12o$", "14b!"})
	if err != nil {
		t.Fatalf("DecodeLines: %v", err)
	}
	for c := range 14 {
		want := 0
		if c < 12 {
			want = 1
		}
		if got := g.Test(0, c); got != want {
			t.Errorf("Test(0, %d) = %d, want %d", c, got, want)
		}
	}
	if g.CountLivingCells() != 12 {
		t.Fatalf("living cells = %d, want 12", g.CountLivingCells())
	}
}

func TestRLERowSkipsAndDefaults(t *testing.T) {
	spec, err := RLEDecoder{}.Decode([]string{"x=4,y=5", "o3$b2o", "$3bo!"})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := []model.Coord{{Row: 0, Col: 0}, {Row: 3, Col: 1}, {Row: 3, Col: 2}, {Row: 4, Col: 3}}
	if len(spec.Cells) != len(want) {
		t.Fatalf("cells = %v, want %v", spec.Cells, want)
	}
	for i := range want {
		if spec.Cells[i] != want[i] {
			t.Fatalf("cells = %v, want %v", spec.Cells, want)
		}
	}
}

func TestRLEHeaderVariants(t *testing.T) {
	for _, header := range []string{
		"x = 3, y = 2",
		"x=3,y=2",
		"  x   =3 ,   y=  2  ",
		"y = 2, x = 3",
		"x = 3, y = 2, rule = 23/3",
		"X = 3, Y = 2, rule = b3/s23",
	} {
		spec, err := RLEDecoder{}.Decode([]string{header, "3o$3o!"})
		if err != nil {
			t.Errorf("header %q: %v", header, err)
			continue
		}
		if spec.Rows != 2 || spec.Cols != 3 || len(spec.Cells) != 6 {
			t.Errorf("header %q: size %dx%d with %d cells", header, spec.Rows, spec.Cols, len(spec.Cells))
		}
	}
}

func TestRLEStopsAtTerminator(t *testing.T) {
	spec, err := RLEDecoder{}.Decode([]string{"x = 5, y = 3", "2o!3o", "$5o"})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(spec.Cells) != 2 {
		t.Fatalf("cells = %v, want only the two before '!'", spec.Cells)
	}
}

func TestRLEClampsRunsPastWidth(t *testing.T) {
	g, err := DecodeLines(".rle", []string{"x = 3, y = 1", "2b5o!"})
	if err != nil {
		t.Fatalf("DecodeLines: %v", err)
	}
	if g.CountLivingCells() != 1 || g.Test(0, 2) != 1 {
		t.Fatalf("live = %v, want only (0,2)", g.LiveCells())
	}
}

func TestRLEErrors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		want  error
	}{
		{"empty", nil, model.ErrUnsupportedFormat},
		{"only comments", []string{"#C nothing"}, model.ErrUnsupportedFormat},
		{"body before header", []string{"bo$2bo!"}, model.ErrUnsupportedFormat},
		{"missing y", []string{"x = 3", "o!"}, model.ErrUnsupportedFormat},
		{"other rule", []string{"x = 3, y = 3, rule = B36/S23", "o!"}, model.ErrUnsupportedFormat},
		{"non numeric size", []string{"x = three, y = 3", "o!"}, model.ErrMalformedPattern},
		{"negative size", []string{"x = -3, y = 3", "o!"}, model.ErrInvalidDimension},
		{"unknown tag", []string{"x = 3, y = 3", "2z!"}, model.ErrMalformedPattern},
		{"zero run", []string{"x = 3, y = 3", "0o!"}, model.ErrMalformedPattern},
		{"dangling count", []string{"x = 3, y = 3", "2o3"}, model.ErrMalformedPattern},
		{"count before end", []string{"x = 3, y = 3", "o3!"}, model.ErrMalformedPattern},
		{"huge run", []string{"x = 3, y = 3", "99999999999o!"}, model.ErrMalformedPattern},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := (RLEDecoder{}).Decode(tc.lines); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestRLECellLimit(t *testing.T) {
	_, err := DecodeLines(".rle", []string{"x = 20, y = 1", "20o!"}, WithCellLimit(10))
	if !errors.Is(err, model.ErrPatternTooLarge) {
		t.Fatalf("err = %v, want ErrPatternTooLarge", err)
	}
}

func TestRLEHugeHeaderFailsWithoutPanic(t *testing.T) {
	for _, header := range []string{
		"x = 1, y = 9000000000000000000",
		"x = 9000000000000000000, y = 9000000000000000000",
		"x = 100000, y = 100000",
	} {
		func() {
			defer func() {
				if r := recover(); r != nil {
					t.Fatalf("header %q panicked: %v", header, r)
				}
			}()
			g, err := DecodeLines(".rle", []string{header, "o!"})
			if !errors.Is(err, model.ErrInvalidDimension) {
				t.Errorf("header %q err = %v, want ErrInvalidDimension", header, err)
			}
			if g != nil {
				t.Errorf("header %q produced a grid", header)
			}
		}()
	}
}

func TestRLEGridLimit(t *testing.T) {
	_, err := DecodeLines(".rle", []string{"x = 100, y = 100", "o!"}, WithGridLimit(5000))
	if !errors.Is(err, model.ErrPatternTooLarge) {
		t.Fatalf("err = %v, want ErrPatternTooLarge", err)
	}
	if _, err := DecodeLines(".rle", []string{"x = 50, y = 100", "o!"}, WithGridLimit(5000)); err != nil {
		t.Fatalf("grid at the limit: %v", err)
	}
}

func TestRLERowsPastHeightAreNotCounted(t *testing.T) {
	g, err := DecodeLines(".rle", []string{"x = 2, y = 1", "2o$2o$2o!"}, WithCellLimit(2))
	if err != nil {
		t.Fatalf("DecodeLines: %v", err)
	}
	if g.CountLivingCells() != 2 || g.Test(0, 0) != 1 || g.Test(0, 1) != 1 {
		t.Fatalf("live = %v, want row 0 only", g.LiveCells())
	}
}
