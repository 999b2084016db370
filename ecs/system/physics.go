package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/scrollin/ecs"
	"github.com/milk9111/scrollin/ecs/component"
	"github.com/sirupsen/logrus"
)

const (
	collisionTypeCharacter cp.CollisionType = iota + 1
	collisionTypeSolid
)

// groundNormalY is how steeply a contact must point down, from the
// character into the surface, to count as ground. Velocities are y-up.
const groundNormalY = -0.5

// PhysicsSystem is the host motion primitive. Each character body is a
// non-rotating dynamic body whose velocity is set from the displacement its
// controller requested; the chipmunk solver resolves it against the static
// level boxes. Space gravity is zero because the controller owns gravity.
type PhysicsSystem struct {
	space *cp.Space
	dt    float64
	log   *logrus.Entry

	bodies          map[ecs.Entity]*bodyInfo
	characterShapes map[*cp.Shape]ecs.Entity
	grounded        map[ecs.Entity]bool
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem(dt float64, log *logrus.Logger) *PhysicsSystem {
	if log == nil {
		log = logrus.StandardLogger()
	}
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	ps := &PhysicsSystem{
		space:           space,
		dt:              dt,
		log:             log.WithField("system", "physics"),
		bodies:          make(map[ecs.Entity]*bodyInfo),
		characterShapes: make(map[*cp.Shape]ecs.Entity),
		grounded:        make(map[ecs.Entity]bool),
	}
	ps.installHandlers()
	return ps
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.cleanupEntities(w)
	ps.syncStatics(w)
	ps.syncCharacters(w)

	clear(ps.grounded)
	ps.space.Step(ps.dt)

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) installHandlers() {
	handler := ps.space.NewCollisionHandler(collisionTypeCharacter, collisionTypeSolid)
	handler.UserData = ps
	handler.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return true
		}
		shapeA, shapeB := arb.Shapes()
		entity, charIsA := sys.characterShapes[shapeA]
		if !charIsA {
			var okB bool
			entity, okB = sys.characterShapes[shapeB]
			if !okB {
				return true
			}
		}

		n := arb.Normal()
		if !charIsA {
			n = n.Neg()
		}
		if n.Y < groundNormalY {
			sys.grounded[entity] = true
		}
		return true
	}
}

func (ps *PhysicsSystem) syncStatics(w *ecs.World) {
	ecs.ForEach2(w, component.StaticBoxComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, box *component.StaticBox, t *component.Transform) {
		if _, ok := ps.bodies[e]; ok {
			return
		}
		x, y := t.Position.X(), t.Position.Y()
		bb := cp.BB{L: x - box.Width/2, B: y - box.Height/2, R: x + box.Width/2, T: y + box.Height/2}
		shape := cp.NewBox2(ps.space.StaticBody, bb, 0)
		shape.SetFriction(0)
		shape.SetElasticity(0)
		shape.SetCollisionType(collisionTypeSolid)
		ps.space.AddShape(shape)

		box.Shape = shape
		ps.bodies[e] = &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	})
}

func (ps *PhysicsSystem) syncCharacters(w *ecs.World) {
	ecs.ForEach2(w, component.CharacterBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, cb *component.CharacterBody, t *component.Transform) {
		info, ok := ps.bodies[e]
		if !ok {
			info = ps.createCharacter(e, cb, t.Position)
		}
		if cb.Body != info.body {
			// the component was replaced; rebind it
			cb.Body, cb.Shape = info.body, info.shape
		}
		info.body.SetVelocity(cb.Velocity.X(), cb.Velocity.Y())
		info.body.SetAngularVelocity(0)
	})
}

func (ps *PhysicsSystem) createCharacter(e ecs.Entity, cb *component.CharacterBody, pos mgl64.Vec3) *bodyInfo {
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(cp.Vector{X: pos.X(), Y: pos.Y()})

	shape := cp.NewBox(body, cb.Width, cb.Height, 0)
	shape.SetFriction(0)
	shape.SetElasticity(0)
	shape.SetCollisionType(collisionTypeCharacter)

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	cb.Body, cb.Shape = body, shape
	cb.Pos = pos
	info := &bodyInfo{body: body, shape: shape}
	ps.bodies[e] = info
	ps.characterShapes[shape] = e
	ps.log.WithFields(logrus.Fields{"entity": e, "x": pos.X(), "y": pos.Y()}).Debug("character body created")
	return info
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.CharacterBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, cb *component.CharacterBody, t *component.Transform) {
		if cb.Body == nil {
			return
		}
		p := cb.Body.Position()
		cb.Pos = mgl64.Vec3{p.X, p.Y, 0}
		cb.Grounded = ps.grounded[e]
		t.Position = cb.Pos
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.bodies {
		if w.IsAlive(e) && (ecs.Has(w, e, component.CharacterBodyComponent) || ecs.Has(w, e, component.StaticBoxComponent)) {
			continue
		}
		ps.space.RemoveShape(info.shape)
		delete(ps.characterShapes, info.shape)
		if !info.static {
			ps.space.RemoveBody(info.body)
		}
		delete(ps.bodies, e)
		delete(ps.grounded, e)
	}
}
