package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Echtzeit-Computergrafik-WS23/glance/internal/config"
	"github.com/Echtzeit-Computergrafik-WS23/glance/pkg/geo"
)

var errUsage = errors.New("usage error")

type tool struct {
	cfg *config.Config
	log *zap.Logger
	out io.Writer
}

func (t *tool) run(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("%w: missing command", errUsage)
	}

	command, args := args[0], args[1:]
	switch command {
	case "info":
		if len(args) != 1 {
			return fmt.Errorf("%w: info <source>", errUsage)
		}
		return t.info(ctx, args[0])
	case "validate":
		if len(args) != 1 {
			return fmt.Errorf("%w: validate <source>", errUsage)
		}
		return t.validate(ctx, args[0])
	case "export":
		if len(args) != 2 {
			return fmt.Errorf("%w: export <source> <out.obj>", errUsage)
		}
		return t.export(ctx, args[0], args[1])
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

// resolve builds a named shape or loads an OBJ source. The returned name
// is the OBJ object name for loaded files.
func (t *tool) resolve(ctx context.Context, source string) (string, *geo.Mesh, error) {
	shapes := t.cfg.Shapes
	switch source {
	case "cube":
		return source, geo.Cube(shapes.Cube.Options()), nil
	case "cylinder":
		return source, geo.Cylinder(shapes.Cylinder.Options()), nil
	case "sphere":
		return source, geo.Sphere(shapes.Sphere.Options()), nil
	case "skybox":
		return source, geo.SkyBox(), nil
	}

	model, err := geo.LoadOBJ(ctx, source, t.log)
	if err != nil {
		return "", nil, err
	}
	return model.Name, model.Mesh, nil
}

func (t *tool) info(ctx context.Context, source string) error {
	name, m, err := t.resolve(ctx, source)
	if err != nil {
		return err
	}

	b := m.Bounds()
	fmt.Fprintf(t.out, "Mesh:      %s\n", name)
	fmt.Fprintf(t.out, "Layout:    %s\n", m.Layout)
	fmt.Fprintf(t.out, "Stride:    %d floats (%d bytes)\n", m.Layout.Stride(), m.Layout.StrideBytes())
	fmt.Fprintf(t.out, "Vertices:  %d\n", m.VertexCount())
	fmt.Fprintf(t.out, "Indices:   %d\n", len(m.Indices))
	fmt.Fprintf(t.out, "Triangles: %d\n", m.TriangleCount())
	fmt.Fprintf(t.out, "Bounds:    (%g, %g, %g) .. (%g, %g, %g)\n",
		b.Min.X, b.Min.Y, b.Min.Z, b.Max.X, b.Max.Y, b.Max.Z)
	return nil
}

func (t *tool) validate(ctx context.Context, source string) error {
	name, m, err := t.resolve(ctx, source)
	if err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	fmt.Fprintf(t.out, "ok: %s (%d vertices, %d triangles)\n", name, m.VertexCount(), m.TriangleCount())
	return nil
}

func (t *tool) export(ctx context.Context, source, dest string) (err error) {
	name, m, err := t.resolve(ctx, source)
	if err != nil {
		return err
	}

	if dest == "-" {
		return geo.WriteOBJ(t.out, name, m)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := geo.WriteOBJ(f, name, m); err != nil {
		return err
	}
	t.log.Info("exported mesh",
		zap.String("source", source),
		zap.String("file", dest),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("triangles", m.TriangleCount()),
	)
	return nil
}
