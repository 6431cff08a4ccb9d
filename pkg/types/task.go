package types

import "time"

// Task is a unit of work worth Value points when completed. Completing an
// uncompleted task credits the owner's balance; uncompleting reverses the
// credit. Refreshing resets Completed without touching balance, so a
// recurring task can be redone while keeping the points already earned.
type Task struct {
	ID          int64     `json:"task_id"`
	OwnerID     int64     `json:"owner_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Due         time.Time `json:"due"`
	Value       int64     `json:"value"` // non-negative, enforced at creation
	Completed   bool      `json:"completed"`
	State       Lifecycle `json:"state"`
}
