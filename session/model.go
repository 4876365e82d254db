package session

// Record defines a public type used by goConsole APIs.
//
// Record instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Record struct {
	UserID    int64
	FirstName string
	LastName  string
	Email     string

	Role string

	Token string

	SavedAt int64
}

// Empty reports whether the record carries no session at all.
func (r Record) Empty() bool {
	return r.Token == "" && r.UserID == 0
}
