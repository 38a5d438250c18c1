// Package task implements the externally populated task queue the
// locomotion controller hands control to: an ordered list of (action,
// target) pairs with per-action processor callbacks registered by the
// composing application.
package task

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"
)

// Task is a queued (action, target) pair.
type Task struct {
	Action string
	Target mgl32.Vec3
}

// Processor drives one tick of a task. It returns true once the task is
// complete and should be removed from the queue.
type Processor func(t Task, target mgl32.Vec3, dt float32) bool

// Queue is an ordered task list with a processor registry. While the queue
// is non-empty the controller suppresses input-driven motion and runs the
// front task instead.
type Queue struct {
	registry map[string]Processor
	pending  []Task
	log      *logrus.Entry
}

// NewQueue creates an empty queue logging through the given logger.
func NewQueue(log *logrus.Logger) *Queue {
	return &Queue{
		registry: make(map[string]Processor),
		log:      log.WithField("component", "task"),
	}
}

// Register binds a processor to an action name, replacing any previous one.
func (q *Queue) Register(action string, p Processor) {
	q.registry[action] = p
}

// Push appends a task to the queue.
func (q *Queue) Push(t Task) {
	q.pending = append(q.pending, t)
}

// Pending reports whether any task is queued.
func (q *Queue) Pending() bool {
	return len(q.pending) > 0
}

// Front returns the task at the front of the queue.
func (q *Queue) Front() (Task, bool) {
	if len(q.pending) == 0 {
		return Task{}, false
	}
	return q.pending[0], true
}

// RunFront invokes the processor for the front task. A task whose action has
// no registered processor is dropped. Completed tasks are popped.
func (q *Queue) RunFront(dt float32) {
	if len(q.pending) == 0 {
		return
	}
	front := q.pending[0]
	p, ok := q.registry[front.Action]
	if !ok {
		q.log.WithField("action", front.Action).Warn("dropping task with no registered processor")
		q.pending = q.pending[1:]
		return
	}
	if p(front, front.Target, dt) {
		q.pending = q.pending[1:]
	}
}

// Clear drops every queued task.
func (q *Queue) Clear() {
	q.pending = q.pending[:0]
}
