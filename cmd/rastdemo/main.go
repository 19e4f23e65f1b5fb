// Command rastdemo renders a spinning textured quad and a cloud of
// vertex-colored triangles with the rast software rasterizer, presenting
// the frames either on the terminal or as a PNG file.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/chewxy/math32"

	"github.com/gogpu/rast"
	"github.com/gogpu/rast/arena"
	"github.com/gogpu/rast/fixedloop"
	"github.com/gogpu/rast/prng"
	"github.com/gogpu/rast/term"
)

func main() {
	var (
		width   = flag.Int("width", 128, "framebuffer width in pixels")
		height  = flag.Int("height", 128, "framebuffer height in pixels")
		frames  = flag.Int("frames", 300, "frames to run before exiting")
		seed    = flag.Uint64("seed", 1, "random seed for the triangle cloud")
		hz      = flag.Int("hz", 60, "fixed update rate")
		cfgPath = flag.String("config", "", "optional YAML loop config file")
		output  = flag.String("output", "demo.png", "output file for non-terminal runs")
		useTerm = flag.Bool("term", false, "present on the terminal instead of writing a file")
	)
	flag.Parse()

	cfg := fixedloop.NewConfig(*hz)
	if *cfgPath != "" {
		data, err := os.ReadFile(*cfgPath)
		if err != nil {
			log.Fatalf("Reading config: %v", err)
		}
		if cfg, err = fixedloop.ParseConfig(data); err != nil {
			log.Fatalf("Parsing config: %v", err)
		}
	}

	if *useTerm {
		runTerminal(cfg, *frames, *seed)
		return
	}

	app := newDemoApp(*width, *height, *seed)
	loop := fixedloop.New(&fixedloop.FakeClock{}, cfg)
	loop.Step(app, *frames)
	app.Render(0)

	if err := rast.SavePNG(*output, app.frame); err != nil {
		log.Fatalf("Saving %s: %v", *output, err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

func runTerminal(cfg fixedloop.Config, frames int, seed uint64) {
	canvas, err := term.Open()
	if err != nil {
		log.Fatalf("Opening terminal: %v", err)
	}
	defer canvas.Close()

	w, h, err := canvas.PixelSize()
	if err != nil {
		log.Fatalf("Reading terminal size: %v", err)
	}

	app := newDemoApp(w, h, seed)
	app.canvas = canvas
	loop := fixedloop.New(fixedloop.SystemClock{}, cfg)

	for i := 0; i < frames; i++ {
		loop.Tick(app)
		if key, ok := canvas.PollKey(); ok && (key == 'q' || key == 3) { // q or ctrl-c
			break
		}
		time.Sleep(cfg.FixedDt / 2)
	}
}

// sprite is one spinning triangle of the background cloud.
type sprite struct {
	center rast.Vec2
	radius float32
	angle  float32
	spin   float32
	color  [3][3]float32
}

type demoApp struct {
	frame  *rast.Pixmap
	tex    *rast.Texture
	canvas *term.Canvas

	angle   float32
	sprites *arena.Arena[sprite]
}

func newDemoApp(width, height int, seed uint64) *demoApp {
	app := &demoApp{
		frame:   rast.NewPixmap(width, height),
		tex:     checkerTexture(8, rast.RGB(240, 220, 90), rast.RGB(60, 60, 200)),
		sprites: arena.WithCapacity[sprite](16),
	}

	r := prng.New(seed)
	w := float32(width)
	h := float32(height)
	for i := 0; i < 12; i++ {
		app.sprites.Insert(sprite{
			center: rast.V2(r.Float32()*w, r.Float32()*h),
			radius: 2 + r.Float32()*float32(min(width, height))/8,
			angle:  r.Float32() * 2 * math32.Pi,
			spin:   (r.Float32() - 0.5) * 4,
			color: [3][3]float32{
				{r.Float32(), r.Float32(), r.Float32()},
				{r.Float32(), r.Float32(), r.Float32()},
				{r.Float32(), r.Float32(), r.Float32()},
			},
		})
	}
	return app
}

func (a *demoApp) Update(dt time.Duration) {
	step := float32(dt.Seconds())
	a.angle += step
	a.sprites.Range(func(_ arena.Handle, s *sprite) {
		s.angle += s.spin * step
	})
}

func (a *demoApp) Render(_ float32) {
	a.frame.Clear(rast.RGB(12, 12, 24))

	a.sprites.Range(func(_ arena.Handle, s *sprite) {
		v := make([]rast.Vertex, 3)
		for i := range v {
			phi := s.angle + float32(i)*(2*math32.Pi/3)
			sin, cos := math32.Sincos(phi)
			pos := rast.V3(s.center.X+cos*s.radius, s.center.Y+sin*s.radius, 0)
			v[i] = rast.NewVertex(pos).WithColor(s.color[i][0], s.color[i][1], s.color[i][2])
		}
		rast.DrawTriangleVertexColor(a.frame, v[0], v[1], v[2])
	})

	a.drawQuad()

	if a.canvas != nil {
		if err := a.canvas.Present(a.frame); err != nil {
			rast.Logger().Warn("presenting frame", "err", err)
		}
	}
}

// drawQuad draws the central rotating textured quad as two triangles
// sharing the diagonal.
func (a *demoApp) drawQuad() {
	cx := float32(a.frame.Width()) / 2
	cy := float32(a.frame.Height()) / 2
	r := float32(min(a.frame.Width(), a.frame.Height())) / 3

	corner := func(i int) rast.Vec3 {
		sin, cos := math32.Sincos(a.angle + float32(i)*math32.Pi/2 + math32.Pi/4)
		return rast.V3(cx+cos*r, cy+sin*r, 0)
	}
	v0 := rast.NewVertex(corner(0)).WithUV(0, 0)
	v1 := rast.NewVertex(corner(1)).WithUV(1, 0)
	v2 := rast.NewVertex(corner(2)).WithUV(1, 1)
	v3 := rast.NewVertex(corner(3)).WithUV(0, 1)

	rast.DrawTriangleTextured(a.frame, v0, v1, v2, a.tex)
	rast.DrawTriangleTextured(a.frame, v0, v2, v3, a.tex)
}

// checkerTexture builds an n×n two-color checkerboard.
func checkerTexture(n int, a, b rast.Color) *rast.Texture {
	pix := make([]uint32, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := a
			if (x+y)%2 == 1 {
				c = b
			}
			pix[y*n+x] = c.Pack()
		}
	}
	return rast.NewTexture(pix, n, n)
}
