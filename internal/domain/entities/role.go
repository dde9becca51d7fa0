package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Permission representa uma permissão específica
type Permission string

const (
	// Company permissions
	PermissionCompanyRead    Permission = "companies.read"
	PermissionCompanyWrite   Permission = "companies.write"
	PermissionCompanyArchive Permission = "companies.archive"

	// Task permissions
	PermissionTaskRead  Permission = "tasks.read"
	PermissionTaskWrite Permission = "tasks.write"

	// User permissions
	PermissionUserRead      Permission = "users.read"
	PermissionUserWriteRole Permission = "users.write_role"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionCompanyRead,
		PermissionCompanyWrite,
		PermissionCompanyArchive,
		PermissionTaskRead,
		PermissionTaskWrite,
		PermissionUserRead,
		PermissionUserWriteRole,
	},
	RoleUser: {
		PermissionCompanyRead,
		PermissionCompanyWrite,
		PermissionCompanyArchive,
		PermissionTaskRead,
		PermissionTaskWrite,
		PermissionUserRead,
	},
}

// GetPermissions retorna permissões de um role
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	for _, p := range RolePermissions[r] {
		if p == permission {
			return true
		}
	}
	return false
}
