package domain

// Permission capability that can be granted to a user
type Permission string

const (
	PermBookRoom             Permission = "book_room"
	PermViewAllSchedules     Permission = "view_all_schedules"
	PermCancelOwnBooking     Permission = "cancel_own_booking"
	PermCancelAnyBooking     Permission = "cancel_any_booking"
	PermManageRooms          Permission = "manage_rooms"
	PermBlockRoomMaintenance Permission = "block_room_maintenance"
	PermManageUsers          Permission = "manage_users"
	PermManageSettings       Permission = "manage_settings"
	PermViewAnalytics        Permission = "view_analytics"
)

// AllPermissions enumerates every known permission
var AllPermissions = []Permission{
	PermBookRoom,
	PermViewAllSchedules,
	PermCancelOwnBooking,
	PermCancelAnyBooking,
	PermManageRooms,
	PermBlockRoomMaintenance,
	PermManageUsers,
	PermManageSettings,
	PermViewAnalytics,
}

// IsValid reports whether the permission is a known value
func (p Permission) IsValid() bool {
	for _, known := range AllPermissions {
		if p == known {
			return true
		}
	}
	return false
}

// Access resolved capabilities of a user
type Access struct {
	Role   Role
	Grants []Permission
}

// Can reports whether the access allows p.
// Admins hold every permission; other roles only what was explicitly granted.
func (a Access) Can(p Permission) bool {
	if a.Role == RoleAdmin {
		return true
	}
	for _, g := range a.Grants {
		if g == p {
			return true
		}
	}
	return false
}

// Effective returns the full permission list the access resolves to
func (a Access) Effective() []Permission {
	result := make([]Permission, 0, len(AllPermissions))
	for _, p := range AllPermissions {
		if a.Can(p) {
			result = append(result, p)
		}
	}
	return result
}
