package web

// Error carries an HTTP status alongside the underlying error so that
// repositories can decide the response code without importing gin.
type Error struct {
	Err    error
	Status int
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// NewRequestError wraps err with the status the response should carry.
func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}
