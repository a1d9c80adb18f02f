package geo

// SkyBoxAttributes returns the eight shared corners of the [-1, 1] cube,
// positions only. The sky is sampled by direction, so no normals or
// texture coordinates are needed.
func SkyBoxAttributes() []float32 {
	return []float32{
		-1, -1, -1,
		+1, -1, -1,
		+1, +1, -1,
		-1, +1, -1,
		-1, -1, +1,
		+1, -1, +1,
		+1, +1, +1,
		-1, +1, +1,
	}
}

// SkyBoxIndices returns the skybox triangles. They wind counter-clockwise
// seen from outside the box; the viewer sits inside, so renderers draw the
// sky with front faces culled instead of back faces.
func SkyBoxIndices() []uint32 {
	return []uint32{
		4, 5, 6, 4, 6, 7, // front
		1, 0, 3, 1, 3, 2, // back
		7, 6, 2, 7, 2, 3, // top
		0, 1, 5, 0, 5, 4, // bottom
		5, 1, 2, 5, 2, 6, // right
		0, 4, 7, 0, 7, 3, // left
	}
}

// SkyBox returns the skybox mesh.
func SkyBox() *Mesh {
	return &Mesh{
		Attributes: SkyBoxAttributes(),
		Indices:    SkyBoxIndices(),
		Layout:     LayoutP,
	}
}
