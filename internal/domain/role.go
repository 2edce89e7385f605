package domain

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role struct {
	value string
}

var (
	RoleEngineer = Role{value: "engineer"}
	RoleManager  = Role{value: "manager"}
	RoleObserver = Role{value: "observer"}
	RoleAdmin    = Role{value: "admin"}
)

// DefaultRole はセルフ登録時に強制される最小権限のロールです
var DefaultRole = RoleObserver

func ParseRole(s string) (Role, error) {
	switch s {
	case RoleEngineer.value:
		return RoleEngineer, nil
	case RoleManager.value:
		return RoleManager, nil
	case RoleObserver.value:
		return RoleObserver, nil
	case RoleAdmin.value:
		return RoleAdmin, nil
	default:
		return Role{}, ErrInvalidRole
	}
}

func (r Role) String() string {
	return r.value
}

func (r Role) IsZero() bool {
	return r.value == ""
}

// In は指定されたロール集合に含まれるかを返します
func (r Role) In(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}
