// Package main is the entry point for the glbind demo, which draws the
// example programs in an SDL2 window.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/glbind/internal/config"
	"github.com/Faultbox/glbind/internal/logger"
	"github.com/Faultbox/glbind/internal/programs"
	"github.com/Faultbox/glbind/internal/window"
	"github.com/Faultbox/glbind/pkg/glprog"
	"github.com/Faultbox/glbind/pkg/glprog/gogl"
	"github.com/Faultbox/glbind/pkg/math"
)

func main() {
	flags := config.DemoFlags(flag.CommandLine)
	flag.Parse()

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== glbind demo ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("demo error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("demo closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(cfg.Window)
	if err != nil {
		return fmt.Errorf("creating window: %w", err)
	}
	defer win.Close()

	ctx, err := gogl.New()
	if err != nil {
		return err
	}
	defer ctx.Close()

	version, renderer := ctx.Version()
	logger.Info("OpenGL initialized",
		zap.String("version", version),
		zap.String("renderer", renderer),
	)

	s := newScene(ctx)
	for win.PollEvents() {
		w, h := win.Size()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.08, 0.08, 0.1, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		if err := s.draw(ctx, float32(win.Ticks())/1000, float32(w)/float32(max(h, 1))); err != nil {
			return err
		}
		win.SwapBuffers()
	}
	return nil
}

// scene owns the demo programs and their buffers.
type scene struct {
	triangle    *programs.Triangle
	triangleBuf *glprog.Buffer[programs.TriangleAttr]

	quad        *programs.Quad
	quadBuf     *glprog.Buffer[programs.QuadAttr]
	quadIndices *glprog.Indices
}

func newScene(ctx glprog.Context) *scene {
	s := &scene{
		triangle: new(programs.Triangle),
		quad:     new(programs.Quad),
	}
	glprog.CreatePrograms(ctx, s.triangle, s.quad)

	s.triangleBuf = s.triangle.PrepareBuffer(ctx, programs.TriangleVertices(), glprog.StaticDraw)
	s.quadBuf = s.quad.PrepareBuffer(ctx, programs.QuadVertices(), glprog.StaticDraw)
	s.quadIndices = glprog.NewIndices(ctx, programs.QuadIndices, glprog.StaticDraw)
	return s
}

// draw renders one frame at time t seconds.
func (s *scene) draw(ctx glprog.Context, t, aspect float32) error {
	transform := math.Ortho(-aspect, aspect, -1, 1, -1, 1).
		Mul(math.Translate(0.55, 0.35, 0)).
		Mul(math.RotateZ(t)).
		Mul(math.Scale(0.3, 0.3, 1)).
		Mul(math.Translate(-0.5, -0.5, 0))
	quad := s.quad.WithUniforms().
		Transform(transform).
		Color(math.RGBA(230, 180, 60, 255))
	if err := s.quad.DrawWithUniforms(ctx, quad, glprog.Triangles, s.quadBuf, glprog.Indexed(s.quadIndices)); err != nil {
		return err
	}

	triangle := s.triangle.WithUniforms().
		Tint(math.Vec4{1, 1, 1, 1}).
		Time(t)
	return s.triangle.DrawWithUniforms(ctx, triangle, glprog.Triangles, s.triangleBuf, glprog.All())
}
