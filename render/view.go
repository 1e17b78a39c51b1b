package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Shaders for flat-colored polygons.
const (
	vertexShader = `
  #version 330

  attribute vec3 position;
  attribute vec3 color;
  varying vec3 vcolor;
  void main(void){
    gl_Position = vec4(position, 1.0);
    vcolor = color;
  }
  ` + "\x00"

	fragmentShader = `
  #version 330

  varying vec3 vcolor;
  void main(void){
    gl_FragColor = vec4(vcolor, 1.0);
  }
  ` + "\x00"
)

func compileShader(code string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	ccode := gl.Str(code)
	gl.ShaderSource(shader, 1, &ccode, nil)
	gl.CompileShader(shader)
	var result int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &result)
	if result == gl.FALSE {
		var length int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetShaderInfoLog(shader, length, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to compile a shader: %v\n %v", code, log)
	}
	return shader, nil
}

func newProgram() (uint32, error) {
	vs, err := compileShader(vertexShader, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fs, err := compileShader(fragmentShader, gl.FRAGMENT_SHADER)
	if err != nil {
		return 0, err
	}
	program := gl.CreateProgram()
	gl.AttachShader(program, vs)
	gl.AttachShader(program, fs)
	gl.LinkProgram(program)
	var result int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &result)
	if result == gl.FALSE {
		var length int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &length)
		log := strings.Repeat("\x00", int(length+1))
		gl.GetProgramInfoLog(program, length, nil, gl.Str(log))
		return 0, fmt.Errorf("failed to link a program: %v", log)
	}
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)
	return program, nil
}

// View is a live window drawing the current frame's tile polygons,
// redrawn once per caller-driven Draw call (typically once per Step).
// This is optional: only painrose -view constructs one, so a headless
// run never touches glfw or gl.
type View struct {
	window  *glfw.Window
	program uint32
}

// NewView opens a window of the given size. glfw must stay on the OS
// thread that called Init, so callers lock the thread with
// runtime.LockOSThread before constructing a View.
func NewView(width, height int) (*View, error) {
	if err := glfw.Init(); err != nil {
		return nil, err
	}
	window, err := glfw.CreateWindow(width, height, "Painrose", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, err
	}
	program, err := newProgram()
	if err != nil {
		glfw.Terminate()
		return nil, err
	}
	gl.UseProgram(program)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	return &View{window: window, program: program}, nil
}

// ShouldClose reports whether the window has been asked to close.
func (v *View) ShouldClose() bool {
	return v.window.ShouldClose()
}

// Close terminates glfw, releasing the window.
func (v *View) Close() {
	glfw.Terminate()
}

var colorRGB = map[string][3]float32{
	"red":     {0.8, 0.1, 0.1},
	"green":   {0.1, 0.7, 0.2},
	"blue":    {0.1, 0.2, 0.8},
	"magenta": {0.7, 0.1, 0.7},
	"orange":  {0.9, 0.5, 0.1},
	"black":   {0, 0, 0},
}

// Draw lays cells out on the same simple grid as WriteSVG and redraws the
// window: one triangle-fan per rhomb, its current-IP cell outlined by
// drawing a slightly larger black copy underneath.
func (v *View) Draw(cells []Cell) {
	gl.ClearColor(1, 1, 1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	cols := 8
	if len(cells) < cols {
		cols = len(cells)
	}
	if cols == 0 {
		cols = 1
	}
	rows := (len(cells) + cols - 1) / cols
	if rows == 0 {
		rows = 1
	}

	for i, c := range cells {
		cellW := 2.0 / float64(cols)
		cellH := 2.0 / float64(rows)
		cx := -1 + cellW*(float64(i%cols)+0.5)
		cy := 1 - cellH*(float64(i/cols)+0.5)
		scale := 0.4

		if c.IsCurrentIP {
			v.drawPolygon(c.Geometry.Outline, cx, cy, scale*1.15, [3]float32{0, 0, 0})
		}
		v.drawPolygon(c.Geometry.Outline, cx, cy, scale, colorRGB[c.Color])
	}

	v.window.SwapBuffers()
	glfw.PollEvents()
}

func (v *View) drawPolygon(outline []Point, cx, cy, scale float64, color [3]float32) {
	positions := make([]float32, 0, len(outline)*3)
	colors := make([]float32, 0, len(outline)*3)
	for _, p := range outline {
		positions = append(positions, float32(cx+p.X*scale), float32(cy+p.Y*scale), 0)
		colors = append(colors, color[0], color[1], color[2])
	}

	positionLocation := uint32(gl.GetAttribLocation(v.program, gl.Str("position\x00")))
	colorLocation := uint32(gl.GetAttribLocation(v.program, gl.Str("color\x00")))
	gl.EnableVertexAttribArray(positionLocation)
	gl.EnableVertexAttribArray(colorLocation)
	gl.VertexAttribPointer(positionLocation, 3, gl.FLOAT, false, 0, gl.Ptr(positions))
	gl.VertexAttribPointer(colorLocation, 3, gl.FLOAT, false, 0, gl.Ptr(colors))
	gl.DrawArrays(gl.TRIANGLE_FAN, 0, int32(len(outline)))
}
