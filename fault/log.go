// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

var critical struct {
	sync.Mutex
	log *logger.L
}

// Initialise - open the channel used for last attempt logging
//
// must be called after logger.Initialise
func Initialise() error {
	critical.Lock()
	defer critical.Unlock()

	if nil != critical.log {
		return ErrAlreadyInitialised
	}
	critical.log = logger.New("PANIC")
	return nil
}

// Finalise - flush and release the channel
func Finalise() {
	critical.Lock()
	defer critical.Unlock()

	if nil != critical.log {
		critical.log.Flush()
		critical.log = nil
	}
}

// Criticalf - log a formatted message tagged with the caller's position
func Criticalf(format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(1); ok {
		format = fmt.Sprintf("(%q:%d) %s", file, line, format)
	}
	emit(format, arguments...)
}

// PanicIfError - log and abort the process on a storage level failure
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	emit("%s", s)
	time.Sleep(100 * time.Millisecond) // to allow logging output
	panic(s)
}

func emit(format string, arguments ...interface{}) {
	critical.Lock()
	log := critical.log
	critical.Unlock()

	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
