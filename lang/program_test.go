package lang

import (
	"bytes"
	"strings"
	"testing"
)

func runProgram(t *testing.T, source string, stdin string, maxSteps int) (string, error) {
	t.Helper()
	var out bytes.Buffer
	io := NewStdIO(strings.NewReader(stdin), &out)
	p, err := Load(source, io, io)
	if err != nil {
		return "", err
	}
	for i := 0; i < maxSteps && p.IsRunning(); i++ {
		p.Step()
	}
	return out.String(), nil
}

func loadProgram(t *testing.T, source string) *ProgramState {
	t.Helper()
	p, err := Load(source, NewStdIO(strings.NewReader(""), &bytes.Buffer{}), NewStdIO(strings.NewReader(""), &bytes.Buffer{}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return p
}

func TestHelloWorld(t *testing.T) {
	out, err := runProgram(t, `:"Hello World!"I;`, "", 1000)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out != "Hello World!" {
		t.Fatalf("got=%q, want=%q", out, "Hello World!")
	}
}

func TestArithmeticPrintsWithTrailingSpace(t *testing.T) {
	out, err := runProgram(t, `:23+N;`, "", 1000)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out != "5 " {
		t.Fatalf("got=%q, want=%q", out, "5 ")
	}
}

// A truthy top of stack makes '^' turn left; a zero leaves the IP going
// straight. The two variants must end up on different tiles.
func TestConditionalTurnDivergesOnTruthiness(t *testing.T) {
	taken := loadProgram(t, ":1^")
	skipped := loadProgram(t, ":0^")

	for i := 0; i < 2; i++ {
		taken.Step()
		skipped.Step()
	}

	takenIP, _ := taken.IP()
	skippedIP, _ := skipped.IP()
	if takenIP.Equal(skippedIP) {
		t.Fatalf("both variants reached %v; the taken turn should diverge", takenIP)
	}
}

func TestArrayUnwrapPrintsElements(t *testing.T) {
	out, err := runProgram(t, `:"ab"uN;`, "", 1000)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out != "97 98 " {
		t.Fatalf("got=%q, want=%q", out, "97 98 ")
	}
}

// Two turn-around cells bounce the IP between the origin and its
// southern neighbour, so every even step count lands back on the origin.
// The second line places its '|' by explicit address prefix.
func TestTurnAroundBouncesBackToOrigin(t *testing.T) {
	p := loadProgram(t, ":|\nbae:|")
	origin, originDir := p.IP()
	for i := 0; i < 4; i++ {
		p.Step()
	}
	got, gotDir := p.IP()
	if !got.Equal(origin) {
		t.Fatalf("after 4 steps got ip=%v, want=%v", got, origin)
	}
	if gotDir != originDir {
		t.Fatalf("after 4 steps got dir=%v, want=%v", gotDir, originDir)
	}
}

// Five '>' cells placed around the vertex south-east of the origin form a
// closed clockwise orbit: turning right on every step walks all five
// rhombs that meet there and returns to the start. This is the walk's
// involution made visible at the program level.
func TestRightTurnOrbitClosesAfterFiveSteps(t *testing.T) {
	p := loadProgram(t, ":>\ncae:>\ndbe:>\naae:>\nbae:>")
	origin, originDir := p.IP()

	for i := 0; i < 4; i++ {
		p.Step()
		mid, _ := p.IP()
		if mid.Equal(origin) {
			t.Fatalf("orbit returned early, after %d steps", i+1)
		}
	}
	p.Step()

	got, gotDir := p.IP()
	if !got.Equal(origin) {
		t.Fatalf("after 5 steps got ip=%v, want=%v", got, origin)
	}
	if gotDir != originDir {
		t.Fatalf("after 5 steps got dir=%v, want=%v", gotDir, originDir)
	}
}

func TestBadSpeciesCharacterInPrefix(t *testing.T) {
	_, err := Load("xyz:+", NewStdIO(strings.NewReader(""), &bytes.Buffer{}), NewStdIO(strings.NewReader(""), &bytes.Buffer{}))
	if err == nil {
		t.Fatalf("expected a parse error, got nil")
	}
	pe, ok := err.(ParseError)
	if !ok {
		t.Fatalf("got error of type %T, want ParseError", err)
	}
	if pe.Kind != BadCoordinate {
		t.Fatalf("got kind=%v, want=%v", pe.Kind, BadCoordinate)
	}
	if pe.Line != 0 || pe.Column != 0 {
		t.Fatalf("got line=%d column=%d, want line=0 column=0", pe.Line, pe.Column)
	}
}

// A char string pushes its code points as individual numbers, in reading
// order; an array string pushes exactly one array.
func TestCharStringPushesIndividualCodePoints(t *testing.T) {
	p := loadProgram(t, ":'hi'")
	for i := 0; i < 6; i++ {
		p.Step()
	}
	got := p.Stack().Snapshot()
	if len(got) != 2 {
		t.Fatalf("got %d stack values, want 2: %v", len(got), got)
	}
	if got[0].AsNumber() != 'h' || got[1].AsNumber() != 'i' {
		t.Fatalf("got stack %v, want [104 105]", got)
	}
}

func TestArrayStringPushesOneArray(t *testing.T) {
	p := loadProgram(t, `:"hi"`)
	for i := 0; i < 6; i++ {
		p.Step()
	}
	got := p.Stack().Snapshot()
	if len(got) != 1 {
		t.Fatalf("got %d stack values, want 1: %v", len(got), got)
	}
	if !got[0].IsArray() || got[0].Len() != 2 {
		t.Fatalf("got %v, want one two-element array", got[0])
	}
	elems := got[0].Elements()
	if elems[0].AsNumber() != 'h' || elems[1].AsNumber() != 'i' {
		t.Fatalf("got array %v, want [104 105]", got[0])
	}
}

// Build [104 105 106] via an array string, overwrite index 1 with 'Z'
// (90), then read index 1 back and print it.
func TestArrayIndexingRoundTrip(t *testing.T) {
	out, err := runProgram(t, `:"hij"1`+"`"+`Z]1[N;`, "", 1000)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out != "90 " {
		t.Fatalf("got=%q, want=%q", out, "90 ")
	}
}

// Push 1 2 3 (bottom to top), rotate left then right (a round trip back
// to 1 2 3), then print the whole stack: OutputNumber drains every
// remaining value.
func TestStackShuffleRoundTrip(t *testing.T) {
	out, err := runProgram(t, `:123{}N;`, "", 1000)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out != "1 2 3 " {
		t.Fatalf("got=%q, want=%q", out, "1 2 3 ")
	}
}

// Push 1 2, push index 0, CopyNth clones the current top (2) without
// consuming it, leaving 1 2 2 for OutputNumber to print.
func TestCopyNthReadsBelowTop(t *testing.T) {
	out, err := runProgram(t, `:120cN;`, "", 1000)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out != "1 2 2 " {
		t.Fatalf("got=%q, want=%q", out, "1 2 2 ")
	}
}

func TestCopyNthOutOfRangeDefaults(t *testing.T) {
	out, err := runProgram(t, `:19cN;`, "", 1000)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if out != "1 0 " {
		t.Fatalf("got=%q, want=%q", out, "1 0 ")
	}
}

func TestQuitStopsTheProgram(t *testing.T) {
	p := loadProgram(t, ":;")
	for i := 0; i < 5 && p.IsRunning(); i++ {
		p.Step()
	}
	if p.IsRunning() {
		t.Fatalf("program still running after hitting ';'")
	}
}

// A line with no ':' at all has no prefix; it loads as plain cells from
// the origin, which is what lets bare one-liner sources work.
func TestMissingColonHasNoPrefix(t *testing.T) {
	_, err := Load("abc", NewStdIO(strings.NewReader(""), &bytes.Buffer{}), NewStdIO(strings.NewReader(""), &bytes.Buffer{}))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
}

func TestEmptyDirectionTokenIsInvalidPrefix(t *testing.T) {
	_, err := Load("a-:x", NewStdIO(strings.NewReader(""), &bytes.Buffer{}), NewStdIO(strings.NewReader(""), &bytes.Buffer{}))
	pe, ok := err.(ParseError)
	if !ok {
		t.Fatalf("got error of type %T, want ParseError", err)
	}
	if pe.Kind != InvalidPrefix {
		t.Fatalf("got kind=%v, want=%v", pe.Kind, InvalidPrefix)
	}
}

func TestBadDirectionToken(t *testing.T) {
	_, err := Load("-nope:x", NewStdIO(strings.NewReader(""), &bytes.Buffer{}), NewStdIO(strings.NewReader(""), &bytes.Buffer{}))
	pe, ok := err.(ParseError)
	if !ok {
		t.Fatalf("got error of type %T, want ParseError", err)
	}
	if pe.Kind != BadDirection {
		t.Fatalf("got kind=%v, want=%v", pe.Kind, BadDirection)
	}
}

func TestLoadSequentialPlacesEveryCharacter(t *testing.T) {
	p, err := LoadSequential(">>:ab", NewStdIO(strings.NewReader(""), &bytes.Buffer{}), NewStdIO(strings.NewReader(""), &bytes.Buffer{}))
	if err != nil {
		t.Fatalf("LoadSequential: %v", err)
	}
	if got := len(p.Cells()); got != 5 {
		t.Fatalf("got %d cells, want 5", got)
	}
}

func TestDirectionPrefixSetsStartingWalk(t *testing.T) {
	// The same two cells land on different tiles when the prefix walks
	// east instead of the default north.
	north := loadProgram(t, "a-n:12")
	east := loadProgram(t, "a-e:12")

	northCells := north.Cells()
	eastCells := east.Cells()
	if len(northCells) != 2 || len(eastCells) != 2 {
		t.Fatalf("got %d/%d cells, want 2/2", len(northCells), len(eastCells))
	}
	same := 0
	for _, nc := range northCells {
		for _, ec := range eastCells {
			if nc.Addr.Equal(ec.Addr) {
				same++
			}
		}
	}
	if same != 1 {
		t.Fatalf("want exactly the shared starting cell in common, got %d shared addresses", same)
	}
}
