// Package player turns button state into camera movement and fire notifications
package player

import (
	"math"

	"github.com/pipejesus/chill-out/actor"
	"github.com/pipejesus/chill-out/command"
	"github.com/pipejesus/chill-out/event"
	"github.com/pipejesus/chill-out/input"
	"github.com/pipejesus/chill-out/parameter"
	"github.com/pipejesus/chill-out/vmath"
)

// Name is the origin stamped on player notifications
const Name = "player"

// CommandFire names the deferred fire action
const CommandFire = "fire"

// Camera is the movement collaborator the controller drives
type Camera interface {
	MoveRight(d float64)
	MoveForward(d float64)
	SetHeight(y float64)
	Position() vmath.Vec3F
	Ray() vmath.Ray
}

type Config struct {
	// Eye position at spawn; Y is the bob baseline
	Eyes vmath.Vec3F

	MoveStep       float64
	SwingStep      float64
	SwingAmplitude float64
}

// DefaultConfig spawns at the level start with eyes above ground
func DefaultConfig() Config {
	return Config{
		Eyes: vmath.V3F(
			parameter.PlayerStartX,
			parameter.PlayerStartY+parameter.PlayerEyesAboveGround,
			parameter.PlayerStartZ,
		),
		MoveStep:       parameter.PlayerMoveStep,
		SwingStep:      parameter.PlayerSwingStep,
		SwingAmplitude: parameter.PlayerSwingAmplitude,
	}
}

// Controller is the player actor
// Observers registered on it receive EventPlayerFire when a fire command runs
type Controller struct {
	actor.Observers

	cfg  Config
	in   *input.State
	cmds *command.Queue
	cam  Camera

	initial  vmath.Vec3F
	velocity vmath.Vec3F
	height   float64
	swing    float64

	fires uint64
}

// New creates a controller reading in and owning cmds
func New(cfg Config, in *input.State, cmds *command.Queue, cam Camera) *Controller {
	return &Controller{
		cfg:     cfg,
		in:      in,
		cmds:    cmds,
		cam:     cam,
		initial: cfg.Eyes,
		height:  cfg.Eyes.Y,
	}
}

// HandleInput drains the activation history and queues one fire command per fire activation
// Returns the number of fire commands queued
func (c *Controller) HandleInput() int {
	queued := 0
	for {
		b, ok := c.in.LastButton()
		if !ok {
			return queued
		}
		if b != input.ButtonFire {
			continue
		}
		if c.cmds.Push(command.Command{Name: CommandFire, Action: c.fire}) {
			queued++
		}
	}
}

// Update runs at most one queued command, then resolves movement and bob
func (c *Controller) Update(dt, elapsed float64) {
	if cmd, ok := c.cmds.Pop(); ok {
		cmd.Invoke()
	}

	step := c.cfg.MoveStep
	c.velocity = vmath.V3F(
		ResolveAxis(c.in.Button(input.ButtonLeft), c.in.Button(input.ButtonRight), step),
		0,
		ResolveAxis(c.in.Button(input.ButtonDown), c.in.Button(input.ButtonUp), step),
	)

	if c.Moving() {
		c.swing += c.cfg.SwingStep
		c.height = c.initial.Y + math.Sin(c.swing)*c.cfg.SwingAmplitude
	}

	c.cam.MoveRight(c.velocity.X)
	c.cam.MoveForward(c.velocity.Z)
	c.cam.SetHeight(c.height)
}

// OnNotify is a no-op, the player reacts to nothing
func (c *Controller) OnNotify(actor.Actor, event.Notification) {}

// fire broadcasts the aim ray to every observer
func (c *Controller) fire(any) {
	c.fires++
	c.Notify(c, event.Notification{
		Type:    event.EventPlayerFire,
		Origin:  Name,
		Payload: event.FirePayload{Ray: c.cam.Ray()},
	})
}

// Moving reports a non-zero resolved velocity
func (c *Controller) Moving() bool {
	return c.velocity.X != 0 || c.velocity.Z != 0
}

// Position returns the camera eye position
func (c *Controller) Position() vmath.Vec3F {
	return c.cam.Position()
}

// Velocity returns this frame's strafe (X) and forward (Z) steps
func (c *Controller) Velocity() vmath.Vec3F { return c.velocity }

func (c *Controller) SwingAngle() float64 { return c.swing }
func (c *Controller) Height() float64     { return c.height }

// Fires returns the number of fire commands executed
func (c *Controller) Fires() uint64 { return c.fires }

// DroppedCommands returns fire activations lost to a full command queue
func (c *Controller) DroppedCommands() uint64 { return c.cmds.Dropped() }
