package models

// EntityType identifies one synchronizable collection. Every collection has
// its own local table, its own remote endpoint, and its own watermark row,
// so pipelines for different types never contend with each other.
type EntityType string

const (
	EntityTasks          EntityType = "tasks"
	EntityNotes          EntityType = "notes"
	EntityCalendarEvents EntityType = "calendar_events"
	EntityFiles          EntityType = "files"
)

// AllEntityTypes returns the canonical set of entity types in a stable order.
func AllEntityTypes() []EntityType {
	return []EntityType{EntityTasks, EntityNotes, EntityCalendarEvents, EntityFiles}
}

// Valid reports whether t is one of the known entity types.
func (t EntityType) Valid() bool {
	switch t {
	case EntityTasks, EntityNotes, EntityCalendarEvents, EntityFiles:
		return true
	}
	return false
}

func (t EntityType) String() string {
	return string(t)
}
