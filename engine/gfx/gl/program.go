package glbackend

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/bryher/scribble/engine/core"
)

// Program is a linked vertex+fragment shader pair bound to a named vertex
// attribute layout.
type Program struct {
	handle uint32
}

// BuildProgram compiles and links both stages. Attribute locations are bound
// from the layout before linking, and every layout name must be active in the
// linked program; a name the shaders don't consume fails the build.
func BuildProgram(vsSrc, fsSrc string, layout core.VertexLayout) (*Program, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	vs, err := makeShader(vsSrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, err
	}
	fs, err := makeShader(fsSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vs)
		return nil, err
	}

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vs)
	gl.AttachShader(prog, fs)
	for _, attr := range layout.Attributes {
		gl.BindAttribLocation(prog, attr.Location, gl.Str(attr.Name+"\x00"))
	}
	gl.LinkProgram(prog)

	var status int32
	gl.GetProgramiv(prog, gl.LINK_STATUS, &status)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(prog, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen))
		gl.GetProgramInfoLog(prog, logLen, nil, gl.Str(infoLog))
		gl.DeleteProgram(prog)
		return nil, fmt.Errorf("program link error: %s", infoLog)
	}

	for _, attr := range layout.Attributes {
		if loc := gl.GetAttribLocation(prog, gl.Str(attr.Name+"\x00")); loc < 0 {
			gl.DeleteProgram(prog)
			return nil, fmt.Errorf("vertex attribute %q is not active in the program", attr.Name)
		}
	}

	return &Program{handle: prog}, nil
}

// Bind makes the program current. Binding a released program fails; the
// render pass propagates that as its result.
func (p *Program) Bind() error {
	if p == nil || p.handle == 0 {
		return fmt.Errorf("bind program: no program")
	}
	gl.UseProgram(p.handle)
	return nil
}

func (p *Program) Release() {
	if p.handle != 0 {
		gl.DeleteProgram(p.handle)
		p.handle = 0
	}
}

func makeShader(src string, shaderType uint32) (uint32, error) {
	sh := gl.CreateShader(shaderType)
	csrc, free := gl.Strs(src)
	defer free()
	gl.ShaderSource(sh, 1, csrc, nil)
	gl.CompileShader(sh)

	var status int32
	gl.GetShaderiv(sh, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(sh, gl.INFO_LOG_LENGTH, &logLen)
		infoLog := strings.Repeat("\x00", int(logLen))
		gl.GetShaderInfoLog(sh, logLen, nil, gl.Str(infoLog))
		gl.DeleteShader(sh)
		return 0, fmt.Errorf("shader compile error: %s", infoLog)
	}
	return sh, nil
}
