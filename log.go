// Copyright (c) 2024 The seqtrie authors
// SPDX-License-Identifier: MIT

package seqtrie

import (
	"os"

	"github.com/rs/zerolog"
)

// logger is the package-level diagnostic sink. The C original wrote a
// fixed line to stderr for every precondition violation; this keeps
// the same "one line per failure" contract but structures the fields
// so a caller can pipe it into whatever log aggregation they already
// run. SetLogger lets embedders redirect it.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
	With().Timestamp().Str("component", "seqtrie").Logger()

// SetLogger replaces the package-level diagnostic sink.
func SetLogger(l zerolog.Logger) {
	logger = l
}

func logFault(code int, detail string) {
	logger.Error().Int("error_code", code).Msg(detail)
}
