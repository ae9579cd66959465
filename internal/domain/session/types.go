package session

type Status string

const (
	StatusUninitialized Status = "uninitialized"
	StatusLoading       Status = "loading"
	StatusAuthenticated Status = "authenticated"
	StatusAnonymous     Status = "anonymous"
)

func (s Status) String() string {
	return string(s)
}

// IsResolved reports whether restoration has settled.
func (s Status) IsResolved() bool {
	return s == StatusAuthenticated || s == StatusAnonymous
}

// Credential store keys.
const (
	KeyAccess  = "access"
	KeyRefresh = "refresh"
	KeyUser    = "user"
)

// Keys lists every persisted entry; clearing all of them is a logout.
var Keys = []string{KeyAccess, KeyRefresh, KeyUser}
