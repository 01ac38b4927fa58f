package models

// Response is the outcome of a repository write.
// Expected business conditions are reported as a Response, never as an error.
type Response int

const (
	Created Response = iota + 1
	Updated
	Deleted
	Conflict
	NotFound
	BadRequest
)

// String implements fmt.Stringer
func (r Response) String() string {
	switch r {
	case Created:
		return "Created"
	case Updated:
		return "Updated"
	case Deleted:
		return "Deleted"
	case Conflict:
		return "Conflict"
	case NotFound:
		return "NotFound"
	case BadRequest:
		return "BadRequest"
	default:
		return "Unknown"
	}
}

// Success reports whether the response is Created, Updated or Deleted
func (r Response) Success() bool {
	return r == Created || r == Updated || r == Deleted
}

// MarshalText encodes the response by name so JSON output stays readable
func (r Response) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}
