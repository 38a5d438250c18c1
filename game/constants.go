package game

const (
	// DampingRate is the exponential decay rate applied to velocity each tick.
	DampingRate = float32(4.0)
	// AirDampingMultiplier attenuates damping while airborne, giving reduced
	// air resistance compared to ground friction.
	AirDampingMultiplier = float32(0.1)
	// RunSpeedMultiplier scales acceleration while in the run state.
	RunSpeedMultiplier = float32(2.0)

	// ChaseYawThreshold is the horizontal navigation magnitude above which
	// chase mode yaws the actor directly instead of strafing.
	ChaseYawThreshold = float32(0.3)
	// ChaseTurnRate is the direct-yaw angular speed of chase mode, in radians per second.
	ChaseTurnRate = float32(2.0)

	// ObserverOrbitRate is the angular speed at which navigation input orbits
	// the observer camera offset, in radians per second.
	ObserverOrbitRate = float32(1.5)
	// ObserverSmoothing is the per-second interpolation rate for the observer
	// camera's look-at target and orbit velocity.
	ObserverSmoothing = float32(6.0)

	// NavRunDistance is the distance from the nav-pad center beyond which a
	// touch counts as a run request.
	NavRunDistance = float32(45.0)

	// MinPenetrationDepth is the smallest collision depth worth correcting.
	MinPenetrationDepth = float32(1e-10)
)
