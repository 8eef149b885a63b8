package collide

// Collision is one collider-vs-collider contact found during a frame.
type Collision struct {
	Self  *Collider
	Other *Collider
	// FirstContact is true when the pair was not touching last frame.
	FirstContact bool
	// Points holds the boundary crossings when Self computes intersections.
	// It is nil otherwise, and also when one shape encloses the other.
	Points CollisionPoints
}

// CollisionInformation groups every Collision between one collider and one
// other CollisionObject in a single frame.
type CollisionInformation struct {
	Self          *Collider
	Other         CollisionObject
	SelfVelocity  Vec2
	OtherVelocity Vec2
	Collisions    []Collision
}

// FirstContact reports whether any grouped collision is a first contact.
func (ci *CollisionInformation) FirstContact() bool {
	for i := range ci.Collisions {
		if ci.Collisions[i].FirstContact {
			return true
		}
	}
	return false
}

// NotificationKind identifies a notification record.
type NotificationKind uint8

const (
	// NotifyCollision fires once per CollisionInformation, always.
	NotifyCollision NotificationKind = iota
	// NotifyCollisionEnded fires when a contact from last frame is gone.
	NotifyCollisionEnded
	// NotifyOverlap is the per-collision advanced record without points.
	NotifyOverlap
	// NotifyIntersection is the per-collision advanced record with points.
	NotifyIntersection
)

func (k NotificationKind) String() string {
	switch k {
	case NotifyCollision:
		return "Collision"
	case NotifyCollisionEnded:
		return "CollisionEnded"
	case NotifyOverlap:
		return "Overlap"
	case NotifyIntersection:
		return "Intersection"
	default:
		return "Unknown"
	}
}

// Notification is a single record produced by collision resolution.
type Notification struct {
	Kind     NotificationKind
	Collider *Collider
	Other    CollisionObject
	// Collision is set for NotifyOverlap and NotifyIntersection.
	Collision *Collision
	// Info is set for every kind except NotifyCollisionEnded.
	Info *CollisionInformation
}

// NotificationSink consumes drained notifications.
type NotificationSink interface {
	Emit(n Notification)
}

// SinkFunc adapts a plain function to NotificationSink.
type SinkFunc func(n Notification)

// Emit calls f(n).
func (f SinkFunc) Emit(n Notification) { f(n) }

// Outbox accumulates notification records until the frame driver drains them.
type Outbox struct {
	pending []Notification
}

// Push appends records in order.
func (o *Outbox) Push(records ...Notification) {
	o.pending = append(o.pending, records...)
}

// Len returns the number of pending records.
func (o *Outbox) Len() int {
	return len(o.pending)
}

// Pending returns the queued records without removing them. The returned
// slice MUST NOT be retained past the next Push or Drain.
func (o *Outbox) Pending() []Notification {
	return o.pending
}

// Drain hands every pending record to sink in push order, then empties the
// outbox. A nil sink discards them. Returns the number of records drained.
// Records pushed from inside Emit are delivered in the same Drain.
func (o *Outbox) Drain(sink NotificationSink) int {
	n := 0
	for n < len(o.pending) {
		rec := o.pending[n]
		o.pending[n] = Notification{}
		n++
		if sink != nil {
			sink.Emit(rec)
		}
	}
	o.pending = o.pending[:0]
	return n
}

// Flush discards all pending records.
func (o *Outbox) Flush() {
	clear(o.pending)
	o.pending = o.pending[:0]
}
