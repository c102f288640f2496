package parameter

// First-person camera
const (
	// CameraTurnStep is yaw change per look event (radians)
	CameraTurnStep = 0.08

	// CameraPitchStep is pitch change per look event (radians)
	CameraPitchStep = 0.04

	// CameraMaxPitch clamps pitch short of vertical to keep forward defined
	CameraMaxPitch = 1.4
)
