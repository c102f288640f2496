// Package camera implements the first-person view the player moves and aims with
// Yaw 0 looks down -Z, positive yaw turns left, positive pitch looks up
package camera

import (
	"math"

	"github.com/pipejesus/chill-out/parameter"
	"github.com/pipejesus/chill-out/vmath"
)

// Collider rejects positions the camera may not enter
type Collider interface {
	Blocked(pos vmath.Vec3F) bool
}

// Camera holds the eye position and view angles
type Camera struct {
	position vmath.Vec3F
	yaw      float64
	pitch    float64
	collider Collider
}

// New places a camera at pos looking down -Z
func New(pos vmath.Vec3F) *Camera {
	return &Camera{position: pos}
}

// SetCollider installs walls for horizontal moves, nil moves freely
func (c *Camera) SetCollider(col Collider) {
	c.collider = col
}

func (c *Camera) Position() vmath.Vec3F { return c.position }
func (c *Camera) Yaw() float64          { return c.yaw }
func (c *Camera) Pitch() float64        { return c.pitch }

// Forward returns the horizontal unit vector the camera faces
func (c *Camera) Forward() vmath.Vec3F {
	return vmath.V3F(-math.Sin(c.yaw), 0, -math.Cos(c.yaw))
}

// Right returns the horizontal unit vector to the camera's right
func (c *Camera) Right() vmath.Vec3F {
	return vmath.V3F(math.Cos(c.yaw), 0, -math.Sin(c.yaw))
}

// Direction returns the unit view vector including pitch
func (c *Camera) Direction() vmath.Vec3F {
	cp := math.Cos(c.pitch)
	return vmath.V3F(-math.Sin(c.yaw)*cp, math.Sin(c.pitch), -math.Cos(c.yaw)*cp)
}

// Ray returns the aim ray from the eye along the view direction
func (c *Camera) Ray() vmath.Ray {
	return vmath.Ray{Origin: c.position, Direction: c.Direction()}
}

// MoveForward moves d units along the horizontal facing
func (c *Camera) MoveForward(d float64) {
	if d == 0 {
		return
	}
	c.moveBy(vmath.V3FScale(c.Forward(), d))
}

// MoveRight strafes d units perpendicular to the facing
func (c *Camera) MoveRight(d float64) {
	if d == 0 {
		return
	}
	c.moveBy(vmath.V3FScale(c.Right(), d))
}

// SetHeight assigns the eye height directly
func (c *Camera) SetHeight(y float64) {
	c.position.Y = y
}

// Turn adds yaw and pitch deltas, pitch is clamped short of vertical
func (c *Camera) Turn(dYaw, dPitch float64) {
	c.yaw = wrapAngle(c.yaw + dYaw)
	c.pitch = clampPitch(c.pitch + dPitch)
}

// LookAt orients the camera toward target
func (c *Camera) LookAt(target vmath.Vec3F) {
	d := vmath.V3FSub(target, c.position)
	if d.X == 0 && d.Z == 0 {
		c.pitch = clampPitch(math.Copysign(math.Pi/2, d.Y))
		return
	}
	c.yaw = math.Atan2(-d.X, -d.Z)
	c.pitch = clampPitch(math.Atan2(d.Y, math.Hypot(d.X, d.Z)))
}

// moveBy applies a horizontal delta, sliding along walls one axis at a time
func (c *Camera) moveBy(delta vmath.Vec3F) {
	next := vmath.V3FAdd(c.position, delta)
	if c.collider == nil || !c.collider.Blocked(next) {
		c.position = next
		return
	}

	if alongX := vmath.V3F(c.position.X+delta.X, c.position.Y, c.position.Z); !c.collider.Blocked(alongX) {
		c.position = alongX
		return
	}
	if alongZ := vmath.V3F(c.position.X, c.position.Y, c.position.Z+delta.Z); !c.collider.Blocked(alongZ) {
		c.position = alongZ
	}
}

func clampPitch(p float64) float64 {
	return math.Max(-parameter.CameraMaxPitch, math.Min(parameter.CameraMaxPitch, p))
}

// wrapAngle maps a to (-pi, pi]
func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
