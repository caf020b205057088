package client

// Identifiable is implemented by every cached entity.
type Identifiable interface {
	Identity() uint
}

// Prepend returns a new slice with item first.
func Prepend[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

// Append returns a new slice with item last.
func Append[T any](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	out = append(out, items...)
	return append(out, item)
}

// ReplaceByID returns a copy of items with the entry sharing item's id
// swapped for item. Items is returned unchanged when no entry matches.
func ReplaceByID[T Identifiable](items []T, item T) []T {
	for i := range items {
		if items[i].Identity() == item.Identity() {
			out := make([]T, len(items))
			copy(out, items)
			out[i] = item
			return out
		}
	}
	return items
}

// RemoveByID returns a new slice without any entry whose id is id.
func RemoveByID[T Identifiable](items []T, id uint) []T {
	return RemoveFunc(items, func(item T) bool { return item.Identity() == id })
}

// RemoveFunc returns a new slice without the entries drop reports true for.
func RemoveFunc[T any](items []T, drop func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if !drop(item) {
			out = append(out, item)
		}
	}
	return out
}

// FindByID returns the entry with id, if any.
func FindByID[T Identifiable](items []T, id uint) (T, bool) {
	for _, item := range items {
		if item.Identity() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
