package geo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"go.uber.org/zap"
)

// Model is an expanded OBJ object.
type Model struct {
	Name string
	*Mesh
}

// LoadOBJ reads an OBJ file from a path or an http(s) URL, then parses and
// expands it. The context bounds the fetch; parsing itself does not block.
func LoadOBJ(ctx context.Context, source string, log *zap.Logger) (*Model, error) {
	if log == nil {
		log = zap.NewNop()
	}

	r, err := open(ctx, source)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	obj, err := ParseOBJ(r, log)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	mesh, err := ExpandOBJ(obj)
	if err != nil {
		return nil, fmt.Errorf("expanding %s: %w", source, err)
	}

	log.Info("loaded OBJ model",
		zap.String("source", source),
		zap.String("name", obj.Name),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
	)
	return &Model{Name: obj.Name, Mesh: mesh}, nil
}

func open(ctx context.Context, source string) (io.ReadCloser, error) {
	if !strings.HasPrefix(source, "http://") && !strings.HasPrefix(source, "https://") {
		f, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("opening OBJ file: %w", err)
		}
		return f, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", source, err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching %s: unexpected status %s", source, resp.Status)
	}
	return resp.Body, nil
}
