package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 2000
	MaxRoomNameLength    = 100
	MaxBlockReasonLength = 500
	MaxFacilities        = 30
	MinFloor             = -5
	MaxFloor             = 200
)
