package lang

import (
	"fmt"
	"strings"

	"github.com/golang/glog"

	"github.com/mousetail/painrose-go/coord"
	"github.com/mousetail/painrose-go/tiling"
	"github.com/mousetail/painrose-go/tiling/rhomb"
	"github.com/mousetail/painrose-go/value"
)

// ParseErrorKind classifies why a source line failed to load.
type ParseErrorKind int

const (
	InvalidPrefix ParseErrorKind = iota
	BadDirection
	BadCoordinate
)

func (k ParseErrorKind) String() string {
	switch k {
	case InvalidPrefix:
		return "InvalidPrefix"
	case BadDirection:
		return "BadDirection"
	case BadCoordinate:
		return "BadCoordinate"
	default:
		return "unknown"
	}
}

// ParseError is the one fatal, load-time error taxonomy. Line and Column
// are zero-based.
type ParseError struct {
	Line   int
	Column int
	Kind   ParseErrorKind
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Kind, e.Line, e.Column)
}

// Cell is one occupied position in the program's code: the character that
// was placed there, and its decoded opcode, if any.
type Cell struct {
	Addr  coord.Address[rhomb.Tile, rhomb.Direction]
	Char  rune
	Op    Opcode
	HasOp bool
}

// ProgramState is the complete mutable state of a running program: the
// sparse cell map, the instruction pointer (address + direction), the
// value stack, and the current mode. It owns all of its allocations for
// its full lifetime.
type ProgramState struct {
	tiling tiling.Tiling[rhomb.Tile, rhomb.Direction]
	cells  map[string]Cell
	ip     coord.Address[rhomb.Tile, rhomb.Direction]
	dir    rhomb.Direction
	stack  *value.Stack
	mode   Mode

	src  InputSource
	sink OutputSink
}

// IsRunning reports whether Step should be called again.
func (p *ProgramState) IsRunning() bool {
	return p.mode.IsRunning()
}

// Stack exposes the value stack for debugging tools; callers must not
// mutate it directly except through Step.
func (p *ProgramState) Stack() *value.Stack { return p.stack }

// IP returns the current instruction pointer address and facing direction.
func (p *ProgramState) IP() (coord.Address[rhomb.Tile, rhomb.Direction], rhomb.Direction) {
	return p.ip, p.dir
}

// Mode returns the current lexing mode.
func (p *ProgramState) Mode() Mode { return p.mode }

// CellAt returns the cell stored at address, if any.
func (p *ProgramState) CellAt(addr coord.Address[rhomb.Tile, rhomb.Direction]) (Cell, bool) {
	c, ok := p.cells[addr.Key()]
	return c, ok
}

// Cells returns every occupied cell, in no particular order. It exists
// for renderers, which need the full sparse layout rather than one
// address at a time.
func (p *ProgramState) Cells() []Cell {
	out := make([]Cell, 0, len(p.cells))
	for _, c := range p.cells {
		out = append(out, c)
	}
	return out
}

// Step runs exactly one fetch/execute cycle: look up the current cell, run
// the mode table to get an IP behaviour, then cross to the next address via
// the edge-walk. The sole blocking point is an input opcode's read from the
// I/O source.
func (p *ProgramState) Step() {
	cell, ok := p.cells[p.ip.Key()]

	var behaviour IPBehaviour
	if ok && cell.HasOp && cell.Op.IsNonconditionalMovement() {
		_, behaviour = evaluate(cell.Op, p.mode, p.stack)
	} else if ok {
		newMode, b := applyChar(p.mode, cell.Char, cell.Op, cell.HasOp, p.stack, p.src, p.sink)
		p.mode = newMode
		behaviour = b
	} else {
		behaviour = Straight
	}

	nextDir := p.dir
	switch behaviour {
	case Left:
		nextDir = p.dir.TurnLeft()
	case Right:
		nextDir = p.dir.TurnRight()
	case Back:
		nextDir = p.dir.Opposite()
	}

	newAddr, incoming, err := p.ip.Go(nextDir)
	if err != nil {
		// Only reachable if the rhomb tables are inconsistent; see
		// coord.Go's doc comment.
		glog.Fatalf("lang: edge walk from %v going %v: %v", p.ip, nextDir, err)
	}
	p.ip = newAddr
	p.dir = incoming.Opposite()
}

// --- loading ---

// Load parses source one line at a time:
//
//	line    := [ address [ '-' direction ] ':' ] cells
//	address := tile-species characters (case-insensitive)
//	direction := n|north|e|east|s|south|w|west
//
// Starting from the parsed (address, direction) for each line (defaulting
// to the origin and the tiling's first direction), every character of
// cells is placed into the current cell; if the cell is already occupied,
// the cursor advances one tile via the edge-walk (direction flipped to the
// incoming direction's opposite) and retries.
func Load(source string, src InputSource, sink OutputSink) (*ProgramState, error) {
	rt := rhomb.Tiling{}
	p := newProgramState(rt, src, sink)

	for lineNo, line := range strings.Split(source, "\n") {
		if line == "" {
			continue
		}
		addr, dir, cellsStart, err := parsePrefix(rt, line, lineNo)
		if err != nil {
			return nil, err
		}

		cur := addr
		curDir := dir
		for col, ch := range []rune(line[cellsStart:]) {
			for {
				if _, occupied := p.cells[cur.Key()]; !occupied {
					break
				}
				next, incoming, walkErr := cur.Go(curDir)
				if walkErr != nil {
					return nil, ParseError{Line: lineNo, Column: cellsStart + col, Kind: BadCoordinate}
				}
				cur = next
				curDir = incoming.Opposite()
			}
			op, hasOp := Decode(ch)
			p.cells[cur.Key()] = Cell{Addr: cur, Char: ch, Op: op, HasOp: hasOp}

			next, incoming, walkErr := cur.Go(curDir)
			if walkErr != nil {
				return nil, ParseError{Line: lineNo, Column: cellsStart + col, Kind: BadCoordinate}
			}
			cur = next
			curDir = incoming.Opposite()
		}
	}

	return p, nil
}

// LoadSequential is the historical loader: characters are placed, in
// order, at addresses enumerated by repeatedly calling Address.Next from
// the origin, ignoring any line structure.
func LoadSequential(source string, src InputSource, sink OutputSink) (*ProgramState, error) {
	rt := rhomb.Tiling{}
	p := newProgramState(rt, src, sink)

	cur := coord.Origin[rhomb.Tile, rhomb.Direction](rt)
	for _, ch := range source {
		op, hasOp := Decode(ch)
		p.cells[cur.Key()] = Cell{Addr: cur, Char: ch, Op: op, HasOp: hasOp}
		cur = cur.Next()
	}
	return p, nil
}

func newProgramState(rt rhomb.Tiling, src InputSource, sink OutputSink) *ProgramState {
	return &ProgramState{
		tiling: rt,
		cells:  map[string]Cell{},
		ip:     coord.Origin[rhomb.Tile, rhomb.Direction](rt),
		dir:    rt.Directions()[0],
		stack:  value.NewStack(),
		mode:   NormalMode(),
		src:    src,
		sink:   sink,
	}
}

// parsePrefix parses the optional "[address[-direction]]:" prefix of one
// line, returning the starting address, direction and the byte offset
// where cells begins. A line with no ':' at all has no prefix: it is all
// cells, starting from the origin in the tiling's first direction.
func parsePrefix(rt rhomb.Tiling, line string, lineNo int) (coord.Address[rhomb.Tile, rhomb.Direction], rhomb.Direction, int, error) {
	origin := coord.Origin[rhomb.Tile, rhomb.Direction](rt)
	firstDir := rt.Directions()[0]

	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return origin, firstDir, 0, nil
	}
	prefix := line[:idx]
	if prefix == "" {
		return origin, firstDir, idx + 1, nil
	}

	addrPart := prefix
	dir := firstDir
	if dashIdx := strings.IndexByte(prefix, '-'); dashIdx >= 0 {
		addrPart = prefix[:dashIdx]
		dirToken := prefix[dashIdx+1:]
		if dirToken == "" {
			return origin, firstDir, dashIdx, ParseError{Line: lineNo, Column: dashIdx, Kind: InvalidPrefix}
		}
		parsedDir, ok := rhomb.ParseDirection(dirToken)
		if !ok {
			return origin, firstDir, dashIdx + 1, ParseError{Line: lineNo, Column: dashIdx + 1, Kind: BadDirection}
		}
		dir = parsedDir
	}

	var seq []rhomb.Tile
	for col, ch := range addrPart {
		tile, ok := rhomb.ParseTile(ch)
		if !ok {
			return origin, firstDir, col, ParseError{Line: lineNo, Column: col, Kind: BadCoordinate}
		}
		seq = append(seq, tile)
	}

	addr, err := coord.New[rhomb.Tile, rhomb.Direction](rt, seq)
	if err != nil {
		return origin, firstDir, 0, ParseError{Line: lineNo, Column: 0, Kind: BadCoordinate}
	}

	return addr, dir, idx + 1, nil
}
