package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	// DateTimeFormat is the naive local timestamp used for task due dates.
	DateTimeFormat = "2006-01-02T15:04:05"
)
