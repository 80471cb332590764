package domain

import "golang.org/x/crypto/bcrypt"

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// DefaultCredential is the password assigned to freshly created or reset
// accounts. Users carrying it are flagged as first-login and must change it
// before getting full access.
const DefaultCredential = "RHive12345"

type User struct {
	ID           string
	Username     string
	Email        string
	Name         string
	Avatar       string
	PasswordHash string
	IsFirstLogin bool
	Role         Role
}

// SetPassword stores a bcrypt hash of the credential. Cleartext is never
// persisted or compared.
func (u *User) SetPassword(plain string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *User) CheckPassword(plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plain)) == nil
}

type AddUserInput struct {
	Username string
	Email    string
	Name     string
}
