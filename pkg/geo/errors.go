package geo

import "errors"

// Interleaving errors.
var (
	ErrQuantityCount     = errors.New("quantity count does not match array count")
	ErrInvalidQuantity   = errors.New("quantity must be greater than 0")
	ErrLengthNotMultiple = errors.New("array length is not a multiple of its quantity")
	ErrBandMismatch      = errors.New("arrays describe different numbers of vertices")
)

// Mesh errors.
var (
	ErrMalformedMesh    = errors.New("malformed mesh")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrMissingAttribute = errors.New("attribute not present in layout")
)

// OBJ format errors.
var (
	ErrDuplicateObjectName = errors.New("multiple object names defined in OBJ file")
	ErrMissingObjectName   = errors.New("no object name defined in OBJ file")
	ErrMalformedLine       = errors.New("malformed OBJ line")
	ErrUnsupportedFace     = errors.New("only triangulated faces are supported")
)
