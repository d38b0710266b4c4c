/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package metadata keeps the per-module log level registry shared by all moduled loggers.
package metadata

import (
	"sync"

	"github.com/hyperledger/aries-bbskeys/spi/log"
)

const defaultLevel = log.INFO

// nolint:gochecknoglobals
var (
	mu     sync.RWMutex
	levels = map[string]log.Level{}
)

// SetLevel sets the log level for the given module.
func SetLevel(module string, level log.Level) {
	mu.Lock()
	defer mu.Unlock()

	levels[module] = level
}

// GetLevel returns the log level of the module, INFO if it was never set.
func GetLevel(module string) log.Level {
	mu.RLock()
	defer mu.RUnlock()

	if l, ok := levels[module]; ok {
		return l
	}

	return defaultLevel
}

// IsEnabledFor reports whether messages at level are logged for module.
func IsEnabledFor(module string, level log.Level) bool {
	return level <= GetLevel(module)
}

// Reset drops every module level. Used by tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()

	levels = map[string]log.Level{}
}
