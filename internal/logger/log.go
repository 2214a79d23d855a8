package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"sync/atomic"

	"github.com/cornelk/hashmap"
)

const (
	ERROR   = 1
	INFO    = 2
	VERBOSE = 3
	DEBUG   = 7
)

var (
	level   int32
	limiter int64
	filter  *regexp.Regexp
	counter *hashmap.HashMap
	std     = log.New(os.Stderr, "", log.LstdFlags)
)

func init() {
	counter = &hashmap.HashMap{}
}

func SetLevel(l int) {
	atomic.StoreInt32(&level, int32(l))
}

func SetLimiter(l int) {
	atomic.StoreInt64(&limiter, int64(l))
}

func SetOutput(w io.Writer) {
	std.SetOutput(w)
}

// SetFilter drops every message not matching pattern.
// An empty pattern removes the filter.
func SetFilter(pattern string) error {
	if pattern == "" {
		filter = nil
		return nil
	}
	reg, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	filter = reg
	return nil
}

func Printf(format string, v ...interface{}) {
	printfAtLevel(INFO, format, v...)
}

func Errorf(format string, v ...interface{}) {
	printfAtLevel(ERROR, format, v...)
}

func Verbosef(format string, v ...interface{}) {
	printfAtLevel(VERBOSE, format, v...)
}

func Debugf(format string, v ...interface{}) {
	printfAtLevel(DEBUG, format, v...)
}

func printfAtLevel(l int, format string, v ...interface{}) {
	if int(atomic.LoadInt32(&level)) < l {
		return
	}
	out := filterOutput(format, v...)
	if out == "" {
		return
	}
	if !limiterAvailable(out) {
		return
	}
	std.Print(out)
}

func limiterAvailable(out string) bool {
	n := atomic.LoadInt64(&limiter)
	if n == 0 {
		return true
	}
	var i int64
	val, _ := counter.GetOrInsert(out, &i)
	actual := (val).(*int64)
	return atomic.AddInt64(actual, 1) <= n
}

func filterOutput(format string, v ...interface{}) string {
	out := fmt.Sprintf(format, v...)
	if filter == nil || filter.MatchString(out) {
		return out
	}
	return ""
}
