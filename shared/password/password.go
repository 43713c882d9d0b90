// Package password holds the client-side password strength rule enforced
// before a registration request is ever sent to the server. Hashing is the
// server's job; the client only refuses obviously weak input.
package password

var specialCharacters = map[rune]struct{}{
	'@': {}, '$': {}, '!': {}, '%': {}, '*': {}, '?': {}, '&': {}, '/': {},
}

const minLength = 5

// Strong reports whether the password satisfies the registration rule:
// minimum length, at least one lowercase, one uppercase, one digit and one
// special character from the allowed set.
func Strong(password string) bool {
	var hasLower, hasUpper, hasDigit, hasSpecial bool

	for _, char := range password {
		switch {
		case char >= 'a' && char <= 'z':
			hasLower = true
		case char >= 'A' && char <= 'Z':
			hasUpper = true
		case char >= '0' && char <= '9':
			hasDigit = true
		default:
			if _, ok := specialCharacters[char]; ok {
				hasSpecial = true
			}
		}
	}

	return len(password) >= minLength && hasLower && hasUpper && hasDigit && hasSpecial
}
