package models

// Role identifies what a staff user is allowed to do.
type Role string

// Staff roles.
const (
	RoleBackoffice      Role = "Backoffice"
	RoleStationOperator Role = "StationOperator"
)

// Valid reports whether the role is one of the known staff roles.
func (r Role) Valid() bool {
	return r == RoleBackoffice || r == RoleStationOperator
}

// User is a staff identity record stored in the users collection.
type User struct {
	ID           string `bson:"_id,omitempty" json:"id"`
	Email        string `bson:"email" json:"email"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	FullName     string `bson:"fullName" json:"fullName"`
	Role         Role   `bson:"role" json:"role"`
	IsActive     bool   `bson:"isActive" json:"isActive"`
	Version      int64  `bson:"version" json:"-"`
}
