/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package modlog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const moduleKey = "module"

// ZapLog is the default log.Logger, a sugared zap logger tagged with its module name.
// Level filtering is left to ModLog, so the core accepts everything from DEBUG up.
type ZapLog struct {
	sugar *zap.SugaredLogger
}

// NewZapLog returns a JSON logger writing to stdout with ISO8601 timestamps.
func NewZapLog(module string) *ZapLog {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderCfg), zapcore.Lock(os.Stdout), zap.DebugLevel)

	return NewZapLogWithCore(core, module)
}

// NewZapLogWithCore builds a ZapLog on top of an existing zap core.
func NewZapLogWithCore(core zapcore.Core, module string) *ZapLog {
	logger := zap.New(core, zap.WithCaller(true), zap.AddCallerSkip(3)).With(zap.String(moduleKey, module))

	return &ZapLog{sugar: logger.Sugar()}
}

// Fatalf logs at fatal level and exits the process.
func (l *ZapLog) Fatalf(format string, args ...interface{}) {
	l.sugar.Fatalf(format, args...)
}

// Panicf logs at panic level and panics.
func (l *ZapLog) Panicf(format string, args ...interface{}) {
	l.sugar.Panicf(format, args...)
}

// Debugf logs at debug level.
func (l *ZapLog) Debugf(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

// Infof logs at info level.
func (l *ZapLog) Infof(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

// Warnf logs at warn level.
func (l *ZapLog) Warnf(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

// Errorf logs at error level.
func (l *ZapLog) Errorf(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}
