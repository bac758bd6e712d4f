package result

import (
	"fmt"
	"strings"
)

// Status 操作结果的状态
type Status int

const (
	StatusSuccess Status = iota
	StatusInfo
	StatusFailure
)

// Class 失败分类
type Class string

const (
	ClassNone           Class = ""
	ClassNotFound       Class = "not_found"
	ClassNotADirectory  Class = "not_a_directory"
	ClassInvalidUsage   Class = "invalid_usage"
	ClassUnknownCommand Class = "unknown_command"
	ClassIO             Class = "io"
	ClassInternal       Class = "internal"
)

// Status markers prefixed to every rendered result.
const (
	SuccessMarker = "✅"
	FailureMarker = "❌"
	InfoMarker    = "ℹ️"
)

// Result is the uniform return value of every engine operation.
// Callers branch on Status/Class; String() is what a human sees.
type Result struct {
	Status  Status
	Class   Class
	Message string
	Path    string
	Err     error
}

func Success(path string, format string, args ...any) Result {
	return Result{
		Status:  StatusSuccess,
		Message: fmt.Sprintf(format, args...),
		Path:    path,
	}
}

func Info(path string, format string, args ...any) Result {
	return Result{
		Status:  StatusInfo,
		Message: fmt.Sprintf(format, args...),
		Path:    path,
	}
}

func Failure(class Class, err error, format string, args ...any) Result {
	return Result{
		Status:  StatusFailure,
		Class:   class,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

func (r Result) OK() bool {
	return r.Status != StatusFailure
}

func (r Result) Failed() bool {
	return r.Status == StatusFailure
}

func (r Result) Is(class Class) bool {
	return r.Status == StatusFailure && r.Class == class
}

func (r Result) Marker() string {
	switch r.Status {
	case StatusSuccess:
		return SuccessMarker
	case StatusInfo:
		return InfoMarker
	default:
		return FailureMarker
	}
}

func (r Result) String() string {
	return r.Marker() + " " + r.Message
}

// Error lets a failed Result travel through error-returning APIs such as cobra's RunE.
func (r Result) Error() string {
	return r.String()
}

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusInfo:
		return "info"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// ParseStatus 将字符串转换为状态，未知值视为失败
func ParseStatus(s string) Status {
	switch strings.ToLower(s) {
	case "success":
		return StatusSuccess
	case "info":
		return StatusInfo
	default:
		return StatusFailure
	}
}
