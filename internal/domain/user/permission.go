package user

type Permission string

const (
	PermissionEmployeeView   Permission = "employee.view"
	PermissionEmployeeManage Permission = "employee.manage"

	PermissionLeaveView    Permission = "leave.view"
	PermissionLeaveApprove Permission = "leave.approve"

	PermissionRecruitmentView   Permission = "recruitment.view"
	PermissionRecruitmentManage Permission = "recruitment.manage"

	PermissionAttendanceView   Permission = "attendance.view"
	PermissionAttendanceRecord Permission = "attendance.record"

	PermissionWorkView   Permission = "work.view"
	PermissionWorkManage Permission = "work.manage"

	// Salaries are visible to admins and HR managers only
	PermissionRemunerationView Permission = "remuneration.view"

	PermissionUserManage Permission = "user.manage"
)

var viewPermissions = []Permission{
	PermissionEmployeeView,
	PermissionLeaveView,
	PermissionRecruitmentView,
	PermissionAttendanceView,
	PermissionWorkView,
}

var managePermissions = []Permission{
	PermissionEmployeeManage,
	PermissionLeaveApprove,
	PermissionRecruitmentManage,
	PermissionAttendanceRecord,
	PermissionWorkManage,
	PermissionRemunerationView,
}

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin:     append(append(append([]Permission{}, viewPermissions...), managePermissions...), PermissionUserManage),
	RoleHRManager: append(append([]Permission{}, viewPermissions...), managePermissions...),
	RoleViewer:    viewPermissions,
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
