package security

import "golang.org/x/crypto/bcrypt"

type Hasher struct {
	cost  int
	decoy string
}

func NewHasher(cost int) Hasher {
	decoy, _ := bcrypt.GenerateFromPassword([]byte("decoy-password-0"), cost)
	return Hasher{cost: cost, decoy: string(decoy)}
}

// Decoy is a hash of no real password, compared against when the account is unknown so
// both login failures cost the same.
func (h Hasher) Decoy() string {
	return h.decoy
}

func (h Hasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Matches reports whether password is the one hashed. A malformed hash never matches.
func (h Hasher) Matches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// IsPasswordStrong requires at least 8 characters with a letter and a digit.
func IsPasswordStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	hasLetter := false
	hasDigit := false
	for _, c := range password {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
			hasLetter = true
		case '0' <= c && c <= '9':
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}
