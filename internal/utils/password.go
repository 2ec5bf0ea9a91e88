package utils

import "golang.org/x/crypto/bcrypt"

// PasswordCost is lowered by tests to keep signup fast.
var PasswordCost = bcrypt.DefaultCost

func HashPassword(pw string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pw), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
