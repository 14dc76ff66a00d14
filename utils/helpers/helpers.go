package helpers

import (
	"fmt"
	"os"
	"reflect"
	"runtime/debug"
	"strings"
	"time"

	"github.com/abhissng/axon/utils/constant"
	"github.com/abhissng/axon/utils/types"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// isEmptyPrimitive handles primitive type checks
func isEmptyPrimitive(v reflect.Value) (bool, bool) {
	switch v.Kind() {
	case reflect.String:
		return strings.TrimSpace(v.String()) == "", true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0, true
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0, true
	case reflect.Bool:
		return !v.Bool(), true
	}
	return false, false
}

// isEmptyCollection handles collection type checks
func isEmptyCollection(v reflect.Value) (bool, bool) {
	switch v.Kind() {
	case reflect.Func, reflect.Map, reflect.Slice:
		return v.IsNil() || v.Len() == 0, true
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if !IsEmpty(v.Index(i).Interface()) {
				return false, true
			}
		}
		return true, true
	}
	return false, false
}

// isEmptyStruct handles struct type checks
func isEmptyStruct(v reflect.Value) (bool, bool) {
	if v.Kind() != reflect.Struct {
		return false, false
	}

	// Handle time.Time separately
	if v.Type() == reflect.TypeOf(time.Time{}) {
		return v.Interface().(time.Time).IsZero(), true
	}

	// Check all struct fields recursively
	for i := 0; i < v.NumField(); i++ {
		if !IsEmpty(v.Field(i).Interface()) {
			return false, true
		}
	}
	return true, true
}

// IsEmpty checks if the given interface value represents an empty or zero value.
func IsEmpty[T any](value T) bool {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return true
	}

	// Handle pointer and interface types first
	if v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return true
		}
		return IsEmpty(v.Elem().Interface())
	}

	// Check primitive types
	if isEmpty, ok := isEmptyPrimitive(v); ok {
		return isEmpty
	}

	// Check collection types
	if isEmpty, ok := isEmptyCollection(v); ok {
		return isEmpty
	}

	// Check struct types
	if isEmpty, ok := isEmptyStruct(v); ok {
		return isEmpty
	}

	// Default: Compare with zero value
	return v.Interface() == reflect.Zero(v.Type()).Interface()
}

// FetchErrorStrings returns a slice of strings containing the error messages
func FetchErrorStrings(errs []error) []string {
	errStrings := make([]string, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			errStrings = append(errStrings, err.Error())
		}
	}
	return errStrings
}

// FetchErrorStack returns a string containing the error messages separated by semicolons
func FetchErrorStack(errs []error) string {
	var s strings.Builder
	for _, err := range errs {
		if err != nil {
			s.WriteString(err.Error())
			s.WriteString("; ")
		}
	}
	return s.String()
}

// IsProdEnvironment returns true if Environment is set to "prod" or "production"
func IsProdEnvironment() bool {
	switch GetEnvironment() {
	case "prod", "production":
		return true
	default:
		return false
	}
}

// GetEnvironment resolves the runtime environment from the process environment
// or the loaded configuration, in that order.
func GetEnvironment() string {
	if os.Getenv(constant.Environment) != "" {
		return os.Getenv(constant.Environment)
	}

	if os.Getenv(constant.RunMode) != "" {
		return os.Getenv(constant.RunMode)
	}

	if viper.GetString(constant.Environment) != "" {
		return viper.GetString(constant.Environment)
	}

	return os.Getenv(constant.Environment)
}

// GetServiceName returns the service name from the environment, or a default.
func GetServiceName() string {
	if name := os.Getenv(constant.Service); name != "" {
		return name
	}
	return "axon"
}

// ConvertToTimeDuration converts a value to time.Duration based on the specified unit.
// Supported units: "seconds", "minutes", "milliseconds", "hours".
func ConvertToTimeDuration(value int, unit string) time.Duration {
	switch unit {
	case "seconds":
		return time.Duration(value) * time.Second
	case "minutes":
		return time.Duration(value) * time.Minute
	case "milliseconds":
		return time.Duration(value) * time.Millisecond
	case "hours":
		return time.Duration(value) * time.Hour
	default:
		return 1
	}
}

// IsSuccess reports whether the status represents a successful outcome.
func IsSuccess(status types.Status) bool {
	return strings.EqualFold(status.String(), constant.Success.String())
}

// RecoverException logs the panic value with its stack when non-nil.
// Meant for use inside deferred recover blocks.
func RecoverException(panic interface{}) {
	if panic != nil {
		stack := debug.Stack()
		Println(constant.ERROR, "Exception occured", string(stack))
	}
}

// Println prints a message with the specified log mode and color
func Println(mode types.LogMode, args ...any) {
	var color string
	switch mode {
	case constant.INFO:
		color = constant.GreenColor
	case constant.WARN:
		color = constant.YellowColor
	case constant.ERROR, constant.FATAL:
		color = constant.RedColor
	case constant.DEBUG:
		color = constant.BlueColor
	default:
		color = constant.ResetColor // Default to no color
	}

	// Get current time and format it (e.g., "2025-03-04 15:30:45")
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	fmt.Println(color + "[" + timestamp + "] [" + mode.String() + "] " + fmt.Sprint(args...) + constant.ResetColor)
	if mode == constant.FATAL {
		os.Exit(1)
	}
}

// TailCallerEncoder returns a zapcore.CallerEncoder that keeps only the last
// n path segments of the caller file. n <= 0 falls back to the short encoder.
func TailCallerEncoder(n int) zapcore.CallerEncoder {
	if n <= 0 {
		return zapcore.ShortCallerEncoder
	}
	return func(caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		path := caller.File

		// Scan from the end; stop after hitting n separators (/ or \)
		sep := 0
		i := len(path) - 1
		for ; i >= 0; i-- {
			c := path[i]
			if c == '/' || c == '\\' {
				sep++
				if sep == n {
					break
				}
			}
		}
		start := i + 1
		if start < 0 || start > len(path) {
			start = 0
		}
		tail := path[start:]

		// Normalize only if needed (Windows paths)
		if strings.IndexByte(tail, '\\') >= 0 {
			tail = strings.ReplaceAll(tail, "\\", "/")
		}

		enc.AppendString(fmt.Sprintf("%s:%d", tail, caller.Line))
	}
}
