package domain

// Business validation constants
const (
	MinFullNameLength = 2
	MaxFullNameLength = 200
	MinTopicLength    = 5
	MaxTopicLength    = 500
	MaxNoteLength     = 500
	MaxBioLength      = 2000
	MaxSearchLength   = 100
)

// Default time grid: 07:00 - 20:45 every 75 minutes
const (
	DefaultGridStart           = "07:00"
	DefaultGridEnd             = "20:45"
	DefaultGridIntervalMinutes = 75
)

// DefaultBookingHorizonWeekdays how many weekdays ahead (today included) a student may book
const DefaultBookingHorizonWeekdays = 14

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
