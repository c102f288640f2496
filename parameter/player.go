package parameter

// Player movement
const (
	// PlayerMoveStep is the per-frame move delta on each axis while a direction is held
	PlayerMoveStep = 0.25

	// PlayerSwingStep is the bob angle advance per moving frame (radians)
	PlayerSwingStep = 0.15

	// PlayerSwingAmplitude scales sin(swing) into the vertical bob (world units)
	PlayerSwingAmplitude = 0.25

	// PlayerEyesAboveGround lifts the camera above the spawn point
	PlayerEyesAboveGround = 2.0
)

// Player spawn point on the floor
const (
	PlayerStartX = 0.0
	PlayerStartY = 0.0
	PlayerStartZ = -30.0
)
