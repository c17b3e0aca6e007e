package kinebox

import (
	"bytes"

	"github.com/akmonengine/kinebox/actor"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	COLLISION_ENTER EventType = iota
	COLLISION_STAY
	COLLISION_EXIT
	ON_REVERSE
)

type pairKey struct {
	boxA *actor.Box
	boxB *actor.Box
}

// makePairKey creates a normalized pair key, ordered by box ID
func makePairKey(boxA, boxB *actor.Box) pairKey {
	if bytes.Compare(boxB.ID[:], boxA.ID[:]) < 0 {
		boxA, boxB = boxB, boxA
	}

	return pairKey{boxA: boxA, boxB: boxB}
}

type EventType uint8

// Event interface - all events implement this
type Event interface {
	Type() EventType
}

// CollisionEnterEvent is sent the first frame a pair overlaps
type CollisionEnterEvent struct {
	BoxA *actor.Box
	BoxB *actor.Box
}

func (e CollisionEnterEvent) Type() EventType { return COLLISION_ENTER }

// CollisionStayEvent is sent every following frame the pair still overlaps
type CollisionStayEvent struct {
	BoxA *actor.Box
	BoxB *actor.Box
}

func (e CollisionStayEvent) Type() EventType { return COLLISION_STAY }

// CollisionExitEvent is sent the first frame a pair stops overlapping
type CollisionExitEvent struct {
	BoxA *actor.Box
	BoxB *actor.Box
}

func (e CollisionExitEvent) Type() EventType { return COLLISION_EXIT }

// ReverseEvent is sent each time Box had its velocity negated because of Other.
// A box can reverse several times in one frame.
type ReverseEvent struct {
	Box      *actor.Box
	Other    *actor.Box
	Velocity mgl64.Vec3 // velocity after the response
}

func (e ReverseEvent) Type() EventType { return ON_REVERSE }

// EventListener - callback for events
type EventListener func(event Event)

// Events manager
type Events struct {
	listeners map[EventType][]EventListener

	// Event buffer to send at flush
	buffer []Event

	// Collision tracking for Enter/Stay/Exit detection
	previousActivePairs map[pairKey]bool
	currentActivePairs  map[pairKey]bool
}

func NewEvents() Events {
	return Events{
		listeners:           make(map[EventType][]EventListener),
		buffer:              make([]Event, 0, 256),
		previousActivePairs: make(map[pairKey]bool),
		currentActivePairs:  make(map[pairKey]bool),
	}
}

// init makes the zero value usable
func (e *Events) init() {
	if e.listeners == nil {
		*e = NewEvents()
	}
}

// Subscribe adds a listener for an event type
func (e *Events) Subscribe(eventType EventType, listener EventListener) {
	e.init()
	e.listeners[eventType] = append(e.listeners[eventType], listener)
}

// recordCollision is called by the sweep for every overlapping ordered pair
func (e *Events) recordCollision(boxA, boxB *actor.Box) {
	e.init()
	e.currentActivePairs[makePairKey(boxA, boxB)] = true
}

func (e *Events) emitReverse(box, other *actor.Box) {
	e.init()
	e.buffer = append(e.buffer, ReverseEvent{Box: box, Other: other, Velocity: box.Velocity})
}

// forget drops every tracked pair involving box
func (e *Events) forget(box *actor.Box) {
	for pair := range e.previousActivePairs {
		if pair.boxA == box || pair.boxB == box {
			delete(e.previousActivePairs, pair)
		}
	}
	for pair := range e.currentActivePairs {
		if pair.boxA == box || pair.boxB == box {
			delete(e.currentActivePairs, pair)
		}
	}
}

// processCollisionEvents compares current and previous pairs to detect Enter/Stay/Exit
func (e *Events) processCollisionEvents() {
	for pair := range e.currentActivePairs {
		if e.previousActivePairs[pair] {
			e.buffer = append(e.buffer, CollisionStayEvent{BoxA: pair.boxA, BoxB: pair.boxB})
		} else {
			e.buffer = append(e.buffer, CollisionEnterEvent{BoxA: pair.boxA, BoxB: pair.boxB})
		}
	}

	for pair := range e.previousActivePairs {
		if !e.currentActivePairs[pair] {
			e.buffer = append(e.buffer, CollisionExitEvent{BoxA: pair.boxA, BoxB: pair.boxB})
		}
	}

	// Swap for next frame and clear current
	e.previousActivePairs, e.currentActivePairs = e.currentActivePairs, e.previousActivePairs
	clear(e.currentActivePairs)
}

// flush sends all buffered events and clears the buffer
func (e *Events) flush() {
	e.init()
	e.processCollisionEvents()

	for _, event := range e.buffer {
		if listeners, ok := e.listeners[event.Type()]; ok {
			for _, listener := range listeners {
				listener(event)
			}
		}
	}
	e.buffer = e.buffer[:0]
}
