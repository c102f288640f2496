package parameter

// Enemy (Phuck) defaults
const (
	// EnemyCount is the number of enemies spawned per level
	EnemyCount = 3

	// EnemyOrbitRadius is the orbit radius around the arena center
	EnemyOrbitRadius = 4.0

	// EnemyCenterX/Y/Z is the orbit center
	EnemyCenterX = 0.0
	EnemyCenterY = 8.0
	EnemyCenterZ = 0.0

	// EnemyHealth is the starting health
	EnemyHealth = 100.0

	// EnemyHitDamage is health removed per confirmed hit
	EnemyHitDamage = 50.0

	// EnemyBoxSize is the edge length of the enemy bounding cube
	EnemyBoxSize = 2.0

	// FallLerpFactor is the per-tick blend toward ground level while falling
	FallLerpFactor = 0.05

	// FallLandingEpsilon is the height at which a falling enemy counts as landed
	FallLandingEpsilon = 0.01
)
