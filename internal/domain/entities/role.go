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
	// Report permissions
	PermissionReportRead Permission = "denuncias.read"

	// Moderation permissions
	PermissionUserModerate Permission = "usuarios.moderate"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionReportRead,
		PermissionUserModerate,
	},
	RoleUser: {},
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
