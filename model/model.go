// Package model declares the engine-side geometry types. Nothing feeds
// them to the pipeline yet.
package model

import (
	glm "github.com/go-gl/mathgl/mgl32"
)

// Vertex is a model vertex. Declared ahead of the first geometry work,
// the render loop does not consume it.
type Vertex struct {
	Pos glm.Vec3
}
