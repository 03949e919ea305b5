package domain

// User is a mock account able to log in
type User struct {
	Username string
	Beta     bool
	Company  string
}
