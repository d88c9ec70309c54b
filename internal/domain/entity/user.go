package entity

// Roles válidos para User.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER" // magasinier
)

// RootUserID identifica al administrador raíz del dataset inicial; no se puede eliminar.
const RootUserID = "1"

// User operador del tablero. Pass es un hash bcrypt para usuarios creados por la API;
// los snapshots antiguos pueden traer la credencial en texto plano.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Login string `json:"login"`
	Pass  string `json:"pass"`
	Role  string `json:"role"`
}

// IsRoot indica si es el administrador raíz.
func (u *User) IsRoot() bool {
	return u.ID == RootUserID
}

// ValidRole indica si el rol es uno de los soportados.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}
