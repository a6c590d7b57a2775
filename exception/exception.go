// Package exception provides the small error-handling vocabulary used
// throughout ffdh: a single Exception type that can be raised as a
// sentinel, specialized with Apply, and recovered from a panic with Catch.
package exception

import (
	"fmt"
	"runtime"

	log "github.com/golang/glog"
)

// injectable
var DEBUG bool

type Exception struct {
	msg string
}

func (e *Exception) Error() string {
	return e.msg
}

func (e *Exception) Apply(appendage interface{}) *Exception {
	newE := new(Exception)
	newE.msg = fmt.Sprintf("%s %v", e.msg, appendage)
	return newE
}

func New(msg string) *Exception {
	return &Exception{msg: msg}
}

func Detail(err error) string {
	if err != nil && (bool(log.V(1)) || DEBUG) {
		return fmt.Sprintf("(Error:%T::%s)", err, err)
	}
	return ""
}

// Catch reports whether re or *err holds a non-nil failure, promoting re to
// *err when present.
//
// if ( [re] != nil OR [err] !=nil ) then return true
// and set [err] to [re] if [re] != nil
func Catch(re interface{}, err *error) bool {
	var ex error
	if re != nil {
		switch rex := re.(type) {
		case error:
			ex = rex
		default:
			ex = fmt.Errorf("%v", re)
		}
		// print recovered error
		if DEBUG || bool(log.V(1)) {
			buf := make([]byte, 1600)
			n := runtime.Stack(buf, false)
			log.Errorln(ex.Error() + "\n" + string(buf[:n]))
		}
	}
	if ex != nil {
		if err != nil {
			*err = ex
		}
		return true
	}
	return err != nil && *err != nil
}

func Spawn(ePtr *error, format string, args ...interface{}) error {
	var err error
	if err = *ePtr; err == nil {
		return nil
	}
	var e Exception
	e.msg = fmt.Sprintf(format, args...)
	if bool(log.V(1)) {
		e.msg += " " + err.Error()
	}
	*ePtr = &e
	return &e
}
