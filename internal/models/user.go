package models

type User struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// Validate applies the user document schema. An empty username is treated as missing.
func (u *User) Validate() error {
	var v schemaErrors
	if u.Username == "" {
		v.required("username")
	}
	return v.err("User")
}
