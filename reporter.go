// Copyright 2024 The Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dict

import "go.uber.org/zap"

// Reporter is the dictionary's only outward-facing side effect: a fatal
// call on probe-distance overflow (or any detected invariant violation) and
// a warning call on implicit lightweight-iterator invalidation when the
// caller observed no invalidation flag. Injected rather than wired to a
// process-wide singleton, per this package's Design Notes.
type Reporter interface {
	// Fatal reports an unrecoverable internal error. Implementations must
	// not return to the caller.
	Fatal(msg string, fields ...zap.Field)
	// Warn reports a non-fatal condition the caller may want to know about.
	Warn(msg string, fields ...zap.Field)
}

// zapReporter is the default Reporter, backed by a *zap.Logger. Fatal uses
// zap's FatalLevel, which logs and then calls os.Exit(1), matching the
// original's reporter->FatalErrorWithCore contract of terminating the
// process.
type zapReporter struct {
	logger *zap.Logger
}

func defaultReporter() Reporter {
	logger, err := zap.NewProduction()
	if err != nil {
		logger = zap.NewNop()
	}
	return &zapReporter{logger: logger}
}

func (r *zapReporter) Fatal(msg string, fields ...zap.Field) {
	r.logger.Fatal(msg, fields...)
}

func (r *zapReporter) Warn(msg string, fields ...zap.Field) {
	r.logger.Warn(msg, fields...)
}

// NewZapReporter builds a Reporter backed by the supplied logger, for
// callers who want their own zap configuration (sampling, output paths,
// encoder) instead of the production default.
func NewZapReporter(logger *zap.Logger) Reporter {
	return &zapReporter{logger: logger}
}
