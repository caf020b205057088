package constants

const (
	DefaultListColor = "#3b82f6"
	DefaultTagColor  = "#6b7280"

	DefaultPerPage = 15
	MaxPerPage     = 100
	// MaxPage keeps (page-1)*per_page inside the int range.
	MaxPage = 1<<31 - 1
)
