package response

const (
	// DateFormat is the format used by Date fields in responses.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the format used by DateTime fields in responses.
	DateTimeFormat = "2006-01-02 15:04:05"
)
