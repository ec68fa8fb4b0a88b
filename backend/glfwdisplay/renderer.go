package glfwdisplay

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/muiengine/softdisplay"
)

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
}
` + "\x00"

// fragmentShaderSource samples the alpha-only framebuffer texture, same
// R-channel-as-alpha convention as the teacher's built-in bitmap font path
// in backend/opengl/renderer.go, simplified to a fixed on/off pixel color
// since this domain has no color channel.
const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;

out vec4 FragColor;

uniform sampler2D fbTexture;

void main() {
    float lit = texture(fbTexture, TexCoord).r;
    FragColor = vec4(vec3(lit), 1.0);
}
` + "\x00"

// blitRenderer draws a softdisplay.Display framebuffer as a single
// magnified textured quad filling the window, replacing the teacher's
// per-vertex draw-list batching (there is no multi-widget-color state to
// batch in a monochrome single-texture target).
type blitRenderer struct {
	shader  uint32
	vao     uint32
	vbo     uint32
	fbTex   uint32
	projLoc int32
	texLoc  int32

	texW, texH int
}

func newBlitRenderer() (*blitRenderer, error) {
	r := &blitRenderer{}

	shader, err := createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	r.shader = shader
	r.projLoc = gl.GetUniformLocation(r.shader, gl.Str("projection\x00"))
	r.texLoc = gl.GetUniformLocation(r.shader, gl.Str("fbTexture\x00"))

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 4*4*4, nil, gl.DYNAMIC_DRAW)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)
	gl.EnableVertexAttribArray(1)
	gl.BindVertexArray(0)

	gl.GenTextures(1, &r.fbTex)
	gl.BindTexture(gl.TEXTURE_2D, r.fbTex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return r, nil
}

// upload expands d's 1bpp rows into an R8 texture, one byte per pixel,
// uploaded fresh each frame — the framebuffer is small enough (8192
// pixels at the demo's default 128x64) that this is simpler than partial
// dirty-rect tracking.
func (r *blitRenderer) upload(d *softdisplay.Display) {
	w, h := d.DisplayWidth(), d.DisplayHeight()
	data := make([]byte, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if d.Pixel(x, y) {
				data[y*w+x] = 255
			}
		}
	}

	gl.BindTexture(gl.TEXTURE_2D, r.fbTex)
	if w != r.texW || h != r.texH {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(w), int32(h), 0, gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(data))
		r.texW, r.texH = w, h
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(data))
	}
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// draw paints the uploaded texture as a single quad filling (winW, winH),
// vertically flipped since the framebuffer's row 0 is the top.
func (r *blitRenderer) draw(winW, winH int) {
	gl.Viewport(0, 0, int32(winW), int32(winH))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.shader)
	proj := orthoMatrix(0, float32(winW), float32(winH), 0, -1, 1)
	gl.UniformMatrix4fv(r.projLoc, 1, false, &proj[0])
	gl.Uniform1i(r.texLoc, 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.fbTex)

	fw, fh := float32(winW), float32(winH)
	verts := [16]float32{
		0, 0, 0, 0,
		fw, 0, 1, 0,
		fw, fh, 1, 1,
		0, fh, 0, 1,
	}
	indices := [6]uint32{0, 1, 2, 0, 2, 3}

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(verts)*4, unsafe.Pointer(&verts[0]))

	var ebo uint32
	gl.GenBuffers(1, &ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(&indices[0]), gl.STREAM_DRAW)
	gl.DrawElements(gl.TRIANGLES, int32(len(indices)), gl.UNSIGNED_INT, nil)
	gl.DeleteBuffers(1, &ebo)

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

func (r *blitRenderer) delete() {
	if r.fbTex != 0 {
		gl.DeleteTextures(1, &r.fbTex)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.shader != 0 {
		gl.DeleteProgram(r.shader)
	}
}
