package auth

// Capability names one guarded operation. Every handler checks its capability
// through Allowed/AllowedOrSelf instead of comparing role strings inline, so
// the full authorization surface lives in this one table.
type Capability string

const (
	CapUserCreate     Capability = "users:create"
	CapUserList       Capability = "users:list"
	CapUserRead       Capability = "users:read"
	CapTaskCreate     Capability = "tasks:create"
	CapTaskList       Capability = "tasks:list"
	CapTaskToggle     Capability = "tasks:toggle"
	CapTaskDelete     Capability = "tasks:delete"
	CapProgressRead   Capability = "onboarding:read"
	CapProgressUpdate Capability = "onboarding:update"
	CapTemplateManage Capability = "templates:manage"
	CapTemplateApply  Capability = "templates:apply"
)

const (
	RoleEmployee   = "employee"
	RoleSupervisor = "supervisor"
	RoleManager    = "manager"
	RoleHR         = "hr"
)

// capabilities maps each operation to the roles allowed to perform it on any
// subject. Self-access on top of these is granted via AllowedOrSelf.
var capabilities = map[Capability][]string{
	CapUserCreate:     {RoleHR},
	CapUserList:       {RoleHR, RoleSupervisor, RoleManager},
	CapUserRead:       {RoleHR, RoleSupervisor, RoleManager},
	CapTaskCreate:     {RoleHR, RoleSupervisor, RoleManager},
	CapTaskList:       {RoleHR, RoleSupervisor, RoleManager},
	CapTaskToggle:     {RoleHR, RoleSupervisor, RoleManager},
	CapTaskDelete:     {RoleHR, RoleSupervisor, RoleManager},
	CapProgressRead:   {RoleHR, RoleSupervisor, RoleManager, RoleEmployee},
	CapProgressUpdate: {RoleHR, RoleSupervisor},
	CapTemplateManage: {RoleHR},
	CapTemplateApply:  {RoleHR},
}

// Allowed reports whether the role may perform the capability.
func Allowed(role string, cap Capability) bool {
	roles, exists := capabilities[cap]
	if !exists {
		return false
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// AllowedOrSelf reports whether the caller may perform the capability on the
// subject: either the role is allowed outright, or the caller is the subject.
func AllowedOrSelf(role, callerID, subjectID string, cap Capability) bool {
	if callerID != "" && callerID == subjectID {
		return true
	}
	return Allowed(role, cap)
}
