package contract

// GoalErrorCode identifies why a goal or what-if request was rejected.
type GoalErrorCode string

const (
	GoalErrMissingState   GoalErrorCode = "MISSING_STATE"
	GoalErrInvalidTarget  GoalErrorCode = "INVALID_TARGET"
	GoalErrInvalidCredits GoalErrorCode = "INVALID_CREDITS"
)

type GoalError struct {
	Code    GoalErrorCode
	Message string
}

func (e *GoalError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// InputError reports a course or state field that failed validation.
type InputError struct {
	Field   string
	Value   string
	Message string
}

func (e *InputError) Error() string {
	if e.Value == "" {
		return e.Field + ": " + e.Message
	}
	return e.Field + " " + `"` + e.Value + `"` + ": " + e.Message
}
