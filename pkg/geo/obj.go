package geo

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// Corner is one face corner of an OBJ file: 0-based indices into the
// position, texture coordinate and normal arrays. Two corners are the same
// vertex exactly when all three indices match.
type Corner struct {
	Position int32
	TexCoord int32
	Normal   int32
}

// OBJData is the raw content of a single-object OBJ file.
type OBJData struct {
	Name      string
	Positions []float32 // 3 per vertex
	TexCoords []float32 // 2 per vertex
	Normals   []float32 // 3 per vertex
	Corners   []Corner  // 3 per triangle
	// Warnings lists the lines that were skipped.
	Warnings []string
}

// Directives that are accepted and skipped.
var ignoredDirectives = map[string]bool{
	"mtllib": true,
	"usemtl": true,
	"g":      true,
	"s":      true,
}

// ParseOBJ parses an OBJ file holding one named object with positions,
// texture coordinates, normals and triangulated faces. Comments, materials,
// groups and smoothing groups are ignored. Unknown directives are logged to
// log (which may be nil) and recorded in Warnings.
func ParseOBJ(r io.Reader, log *zap.Logger) (*OBJData, error) {
	if log == nil {
		log = zap.NewNop()
	}

	obj := &OBJData{}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") || ignoredDirectives[fields[0]] {
			continue
		}

		var err error
		switch fields[0] {
		case "o":
			err = obj.parseName(fields[1:])
		case "v":
			obj.Positions, err = appendFloats(obj.Positions, fields[1:], 3)
		case "vt":
			obj.TexCoords, err = appendFloats(obj.TexCoords, fields[1:], 2)
		case "vn":
			obj.Normals, err = appendFloats(obj.Normals, fields[1:], 3)
		case "f":
			err = obj.parseFace(fields[1:])
		default:
			msg := fmt.Sprintf("unexpected OBJ token %q on line %d", fields[0], line)
			obj.Warnings = append(obj.Warnings, msg)
			log.Warn("skipping OBJ line",
				zap.String("token", fields[0]),
				zap.Int("line", line),
			)
		}
		if err != nil {
			return nil, fmt.Errorf("%w (on line %d)", err, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading OBJ: %w", err)
	}

	if obj.Name == "" {
		return nil, ErrMissingObjectName
	}

	log.Debug("parsed OBJ",
		zap.String("name", obj.Name),
		zap.Int("positions", len(obj.Positions)/3),
		zap.Int("texcoords", len(obj.TexCoords)/2),
		zap.Int("normals", len(obj.Normals)/3),
		zap.Int("triangles", len(obj.Corners)/3),
	)
	return obj, nil
}

// ParseOBJBytes parses an OBJ file from memory.
func ParseOBJBytes(data []byte, log *zap.Logger) (*OBJData, error) {
	return ParseOBJ(bytes.NewReader(data), log)
}

// ParseOBJFile parses an OBJ file from disk.
func ParseOBJFile(path string, log *zap.Logger) (*OBJData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening OBJ file: %w", err)
	}
	defer f.Close()
	return ParseOBJ(f, log)
}

func (obj *OBJData) parseName(args []string) error {
	if obj.Name != "" {
		return ErrDuplicateObjectName
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: object directive without a name", ErrMalformedLine)
	}
	obj.Name = strings.Join(args, " ")
	return nil
}

func (obj *OBJData) parseFace(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: face has %d corners", ErrUnsupportedFace, len(args))
	}

	var corners [3]Corner
	for i, arg := range args {
		parts := strings.Split(arg, "/")
		if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
			return fmt.Errorf("%w: corner %q needs position/texcoord/normal indices", ErrUnsupportedFace, arg)
		}

		var err error
		if corners[i].Position, err = resolveIndex(parts[0], len(obj.Positions)/3); err != nil {
			return err
		}
		if corners[i].TexCoord, err = resolveIndex(parts[1], len(obj.TexCoords)/2); err != nil {
			return err
		}
		if corners[i].Normal, err = resolveIndex(parts[2], len(obj.Normals)/3); err != nil {
			return err
		}
	}
	obj.Corners = append(obj.Corners, corners[:]...)
	return nil
}

// resolveIndex converts a 1-based OBJ index to a 0-based one. Negative
// indices count back from the count elements defined so far.
func resolveIndex(s string, count int) (int32, error) {
	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: bad index %q", ErrMalformedLine, s)
	}
	switch {
	case i > 0:
		return int32(i - 1), nil
	case i < 0 && int(-i) <= count:
		return int32(int64(count) + i), nil
	default:
		return 0, fmt.Errorf("%w: index %d does not name an element", ErrMalformedLine, i)
	}
}

// appendFloats parses the first n fields as floats. Extra fields, like the
// optional w of a position, are dropped.
func appendFloats(dst []float32, args []string, n int) ([]float32, error) {
	if len(args) < n {
		return dst, fmt.Errorf("%w: expected %d values, got %d", ErrMalformedLine, n, len(args))
	}
	for _, arg := range args[:n] {
		f, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return dst, fmt.Errorf("%w: bad number %q", ErrMalformedLine, arg)
		}
		dst = append(dst, float32(f))
	}
	return dst, nil
}
