package parameter

// Level geometry
const (
	// LevelFloorSize is the floor edge length, floor is centered on origin
	LevelFloorSize = 100.0

	// LevelWallSize is the edge length of one maze cell
	LevelWallSize = 4.0

	// LevelWallHeight is the wall height
	LevelWallHeight = 4.0

	// LevelArenaRadius is the wall-free radius around the enemy orbit center
	LevelArenaRadius = 12.0

	// LevelMazeBraiding adds cycles to the maze (0 = perfect maze)
	LevelMazeBraiding = 0.3
)
