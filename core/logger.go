package core

type (
	// Logger is any service that can log messages.
	// args may hold errors, map[string]interface{} extras and a LogContext.
	Logger interface {
		Debug(msg string, args ...interface{})
		Info(msg string, args ...interface{})
		Warn(msg string, args ...interface{})
		Error(msg string, args ...interface{})
		Fatal(msg string, args ...interface{})
	}

	// LogContext describes the request a log entry belongs to.
	LogContext struct {
		RequestID string
		Method    string
		Path      string
		Role      string
	}
)

func (lc LogContext) Fields() map[string]interface{} {
	flds := make(map[string]interface{}, 4)
	if lc.RequestID != "" {
		flds["request_id"] = lc.RequestID
	}
	if lc.Method != "" {
		flds["method"] = lc.Method
	}
	if lc.Path != "" {
		flds["path"] = lc.Path
	}
	if lc.Role != "" {
		flds["role"] = lc.Role
	}
	return flds
}
