package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleAdmin, PermissionUserManage))
	assert.True(t, HasPermission(RoleHRManager, PermissionLeaveApprove))
	assert.True(t, HasPermission(RoleHRManager, PermissionRemunerationView))
	assert.False(t, HasPermission(RoleHRManager, PermissionUserManage))
	assert.True(t, HasPermission(RoleViewer, PermissionEmployeeView))
	assert.False(t, HasPermission(RoleViewer, PermissionEmployeeManage))
	assert.False(t, HasPermission(RoleViewer, PermissionRemunerationView))
	assert.False(t, HasPermission(Role("owner"), PermissionEmployeeView))
}

func TestCreateUserRequest_Validate(t *testing.T) {
	req := CreateUserRequest{Name: " Ada ", Email: " Ada@Example.com ", Password: "correct-horse"}
	assert.NoError(t, req.Validate())
	assert.Equal(t, "ada@example.com", req.Email)
	assert.Equal(t, string(RoleViewer), req.Role)

	bad := CreateUserRequest{Email: "nope", Password: "short", Role: "owner"}
	err := bad.Validate()
	assert.Error(t, err)
}
