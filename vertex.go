package polydraw

// Vertex is a 2D point in world coordinates.
type Vertex struct {
	X, Y float64
}

// V is a convenience function to create a Vertex.
func V(x, y float64) Vertex {
	return Vertex{X: x, Y: y}
}

// Add returns the sum of two vertices (translation).
func (v Vertex) Add(w Vertex) Vertex {
	return Vertex{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vertices.
func (v Vertex) Sub(w Vertex) Vertex {
	return Vertex{X: v.X - w.X, Y: v.Y - w.Y}
}

// translate returns a copy of vs shifted by d.
func translate(vs []Vertex, d Vertex) []Vertex {
	out := make([]Vertex, len(vs))
	for i, v := range vs {
		out[i] = v.Add(d)
	}
	return out
}
