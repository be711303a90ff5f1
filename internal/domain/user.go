package domain

const (
	RoleAdmin    = "admin"
	RoleCustomer = "customer"
)

type User struct {
	ID    string
	Name  string
	Email string
	Role  string
}

func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }
