/*
Copyright 2018 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package zap contains helpers for setting up a new logr.Logger instance
// backed by Zap.
package zap

import (
	"io"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options contains the configuration knobs for the zap-backed logger.
type Options struct {
	// Development tunes the logger for human-readable console output
	// instead of structured JSON.
	Development bool
	// Level is the minimum enabled logging level.
	Level zapcore.LevelEnabler
	// TimeEncoder renders the log timestamp.
	TimeEncoder zapcore.TimeEncoder
	// DestWriter is where log lines go; defaults to os.Stderr.
	DestWriter io.Writer
}

type Opts func(*Options)

// UseOptions replaces the whole option set at once.
func UseOptions(o *Options) Opts {
	return func(dst *Options) {
		*dst = *o
	}
}

func (o *Options) addDefaults() {
	if o.DestWriter == nil {
		o.DestWriter = os.Stderr
	}
	if o.Level == nil {
		o.Level = zapcore.InfoLevel
	}
	if o.TimeEncoder == nil {
		o.TimeEncoder = zapcore.EpochTimeEncoder
	}
}

// NewRaw returns a new zap.Logger configured with the passed Opts.
func NewRaw(opts ...Opts) *zap.Logger {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	o.addDefaults()

	var encCfg zapcore.EncoderConfig
	if o.Development {
		encCfg = zap.NewDevelopmentEncoderConfig()
	} else {
		encCfg = zap.NewProductionEncoderConfig()
	}
	encCfg.EncodeTime = o.TimeEncoder

	var enc zapcore.Encoder
	if o.Development {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(o.DestWriter), o.Level)
	return zap.New(core, zap.ErrorOutput(zapcore.AddSync(os.Stderr)))
}

// New returns a logr.Logger backed by a zap.Logger built from Opts.
func New(opts ...Opts) logr.Logger {
	return zapr.NewLogger(NewRaw(opts...))
}
