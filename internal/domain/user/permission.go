package user

type Permission string

const (
	// Attendance
	PermissionAttendanceView   Permission = "attendance.view"
	PermissionAttendanceManage Permission = "attendance.manage"

	// Schedules
	PermissionScheduleView   Permission = "schedule.view"
	PermissionScheduleManage Permission = "schedule.manage"

	// Holidays
	PermissionHolidayView   Permission = "holiday.view"
	PermissionHolidayManage Permission = "holiday.manage"

	// Long absences
	PermissionLeaveView   Permission = "leave.view"
	PermissionLeaveManage Permission = "leave.manage"

	// Employees
	PermissionEmployeeView   Permission = "employee.view"
	PermissionEmployeeManage Permission = "employee.manage"

	// Reports & statistics
	PermissionReportsView Permission = "reports.view"

	// User Management
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionAttendanceView,
		PermissionAttendanceManage,
		PermissionScheduleView,
		PermissionScheduleManage,
		PermissionHolidayView,
		PermissionHolidayManage,
		PermissionLeaveView,
		PermissionLeaveManage,
		PermissionEmployeeView,
		PermissionEmployeeManage,
		PermissionReportsView,
		PermissionUserManage,
	},
	RoleManager: {
		PermissionAttendanceView,
		PermissionAttendanceManage,
		PermissionScheduleView,
		PermissionScheduleManage,
		PermissionHolidayView,
		PermissionHolidayManage,
		PermissionLeaveView,
		PermissionLeaveManage,
		PermissionEmployeeView,
		PermissionEmployeeManage,
		PermissionReportsView,
	},
	RoleViewer: {
		PermissionAttendanceView,
		PermissionScheduleView,
		PermissionHolidayView,
		PermissionLeaveView,
		PermissionEmployeeView,
		PermissionReportsView,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
