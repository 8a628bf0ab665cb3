package errs

// Error categories. Sentinels in domain and usecase packages are marked with
// exactly one of these so the HTTP layer can map them without knowing every error.
var (
	ErrNotFound        = New("entity not found")
	ErrValidation      = New("validation failed")
	ErrConflict        = New("state conflict")
	ErrUnauthenticated = New("unauthenticated")
	ErrForbidden       = New("forbidden")
)

func NotFound(msg string) error     { return Mark(New(msg), ErrNotFound) }
func Validation(msg string) error   { return Mark(New(msg), ErrValidation) }
func Conflict(msg string) error     { return Mark(New(msg), ErrConflict) }
func Forbidden(msg string) error    { return Mark(New(msg), ErrForbidden) }
func Unauthorized(msg string) error { return Mark(New(msg), ErrUnauthenticated) }
