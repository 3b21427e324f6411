package models

// Counter backs the sequential ID generator, one row per entity prefix
// (User, Team, Project, Task, AssignProject). The row is incremented inside
// the transaction that inserts the entity, so concurrent creators cannot
// observe the same number.
type Counter struct {
	Prefix string `gorm:"primaryKey"`
	Value  int64  `gorm:"not null;default:0"`
}
