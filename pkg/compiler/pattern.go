package compiler

// Matches reports whether value satisfies pattern. "*" matches anything;
// any other pattern must equal the value exactly. There are no partial
// wildcards and no regex semantics.
func Matches(pattern, value string) bool {
	if pattern == "*" {
		return true
	}
	return pattern == value
}
