package lang

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mousetail/painrose-go/value"
)

// InputSource supplies the four input opcodes. Implementations read from
// whatever medium backs the program (stdin, a fixed buffer for tests, ...).
// A source at end-of-input returns Number(0) from ReadChar and ReadNumber
// and an empty Array from ReadWord and ReadLine, matching the language's
// totality: input opcodes never error, they just read exhausted.
type InputSource interface {
	ReadChar() (value.Value, error)
	ReadWord() (value.Value, error)
	ReadLine() (value.Value, error)
	ReadNumber() (value.Value, error)
}

// OutputSink consumes the three output opcodes.
type OutputSink interface {
	io.Writer
}

// StdIO wraps a bufio.Reader/io.Writer pair as the default InputSource and
// OutputSink, used by the CLI for stdin/stdout.
type StdIO struct {
	r *bufio.Reader
	w io.Writer
}

// NewStdIO builds a StdIO over the given reader and writer.
func NewStdIO(r io.Reader, w io.Writer) *StdIO {
	return &StdIO{r: bufio.NewReader(r), w: w}
}

func (s *StdIO) Write(p []byte) (int, error) { return s.w.Write(p) }

func (s *StdIO) ReadChar() (value.Value, error) {
	ch, _, err := s.r.ReadRune()
	if err != nil {
		return value.Number(0), nil
	}
	return value.Number(float64(ch)), nil
}

func (s *StdIO) ReadWord() (value.Value, error) {
	var sb strings.Builder
	for {
		ch, _, err := s.r.ReadRune()
		if err != nil {
			break
		}
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			if sb.Len() == 0 {
				continue
			}
			break
		}
		sb.WriteRune(ch)
	}
	return charsToValue(sb.String()), nil
}

func (s *StdIO) ReadLine() (value.Value, error) {
	line, err := s.r.ReadString('\n')
	if err != nil && line == "" {
		return value.Array(nil), nil
	}
	line = strings.TrimRight(line, "\r\n")
	return charsToValue(line), nil
}

func (s *StdIO) ReadNumber() (value.Value, error) {
	var sb strings.Builder
	for {
		ch, _, err := s.r.ReadRune()
		if err != nil {
			break
		}
		if (ch >= '0' && ch <= '9') || ch == '-' || ch == '.' {
			sb.WriteRune(ch)
			continue
		}
		if sb.Len() > 0 {
			break
		}
		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			continue
		}
		break
	}
	n, err := strconv.ParseFloat(sb.String(), 64)
	if err != nil {
		return value.Number(0), nil
	}
	return value.Number(n), nil
}

func charsToValue(s string) value.Value {
	runes := []rune(s)
	elems := make([]value.Value, len(runes))
	for i, r := range runes {
		elems[i] = value.Number(float64(r))
	}
	return value.Array(elems)
}

// runInput executes one of the four input opcodes against src, pushing the
// result. A read error is swallowed to Number(0): I/O opcodes are total,
// matching the rest of the instruction set.
func runInput(op Opcode, stack *value.Stack, src InputSource) {
	var v value.Value
	var err error
	switch op {
	case InputCharacter:
		v, err = src.ReadChar()
	case InputWord:
		v, err = src.ReadWord()
	case InputLine:
		v, err = src.ReadLine()
	case InputNumber:
		v, err = src.ReadNumber()
	}
	if err != nil {
		v = value.Number(0)
	}
	stack.Push(v)
}

// runOutput executes one of the three output opcodes against sink.
// OutputCharacter and OutputNumber drain the entire stack, printing every
// remaining value's leaves in the order they were pushed (bottom to top);
// this is what lets a single output cell print a value that was earlier
// unwrapped into several independent stack entries. OutputN is narrower:
// it pops a count and prints exactly that many values off the top.
func runOutput(op Opcode, stack *value.Stack, sink OutputSink) {
	switch op {
	case OutputCharacter:
		for _, v := range stack.Drain() {
			printChars(v, sink)
		}
	case OutputNumber:
		for _, v := range stack.Drain() {
			printNumbers(v, sink)
		}
	case OutputN:
		n := int(stack.PopOrDefault().AsNumber())
		if n < 0 {
			n = 0
		}
		for i := 0; i < n; i++ {
			printChars(stack.PopOrDefault(), sink)
			fmt.Fprintln(sink)
		}
	}
}

func printChars(v value.Value, sink OutputSink) {
	if !v.IsArray() {
		fmt.Fprintf(sink, "%c", rune(int32(v.AsNumber())))
		return
	}
	for _, e := range v.Elements() {
		printChars(e, sink)
	}
}

func printNumbers(v value.Value, sink OutputSink) {
	if !v.IsArray() {
		fmt.Fprintf(sink, "%g ", v.AsNumber())
		return
	}
	for _, e := range v.Elements() {
		printNumbers(e, sink)
	}
}
