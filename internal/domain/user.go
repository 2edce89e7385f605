package domain

type User struct {
	id             int64
	username       Username
	email          Email
	hashedPassword string
	role           Role
	active         bool
}

func NewUser(username Username, email Email, hashedPassword string, role Role) (*User, error) {
	if role.IsZero() {
		return nil, ErrInvalidRole
	}
	return &User{
		username:       username,
		email:          email,
		hashedPassword: hashedPassword,
		role:           role,
		active:         true,
	}, nil
}

func ReconstructUser(id int64, username, email, hashedPassword, role string, active bool) (*User, error) {
	name, err := NewUsername(username)
	if err != nil {
		return nil, err
	}
	addr, err := NewEmail(email)
	if err != nil {
		return nil, err
	}
	r, err := ParseRole(role)
	if err != nil {
		return nil, err
	}
	return &User{
		id:             id,
		username:       name,
		email:          addr,
		hashedPassword: hashedPassword,
		role:           r,
		active:         active,
	}, nil
}

func (u *User) ID() int64 {
	return u.id
}

func (u *User) Username() Username {
	return u.username
}

func (u *User) Email() Email {
	return u.email
}

func (u *User) HashedPassword() string {
	return u.hashedPassword
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) IsActive() bool {
	return u.active
}

func (u *User) ChangeRole(role Role) error {
	if role.IsZero() {
		return ErrInvalidRole
	}
	u.role = role
	return nil
}

// Actor は認可判定に渡す認証済み操作者のスナップショットを返します
func (u *User) Actor() *Actor {
	return &Actor{
		ID:       u.id,
		Username: u.username.String(),
		Role:     u.role,
		Active:   u.active,
	}
}
