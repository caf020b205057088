package model

// All lists every table migrated at startup, in dependency order.
func All() []any {
	return []any{&User{}, &TaskList{}, &Tag{}, &Task{}}
}
