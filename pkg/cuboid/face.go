package cuboid

import "fmt"

// Face identifies one of the six panels of a cuboid.
type Face int

const (
	Front Face = iota
	Back
	Left
	Right
	Top
	Bottom
)

// NumFaces is the number of panels in every cuboid.
const NumFaces = 6

// Faces lists every face in construction order.
var Faces = [NumFaces]Face{Front, Back, Left, Right, Top, Bottom}

var faceNames = [NumFaces]string{"front", "back", "left", "right", "top", "bottom"}

func (f Face) String() string {
	if f.Valid() {
		return faceNames[f]
	}
	return fmt.Sprintf("Face(%d)", int(f))
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= Front && f <= Bottom
}

// ParseFace converts a face name ("front", "left", ...) into a Face.
func ParseFace(s string) (Face, error) {
	for i, name := range faceNames {
		if name == s {
			return Face(i), nil
		}
	}
	return 0, fmt.Errorf("invalid face %q, expected front/back/left/right/top/bottom", s)
}
