package gradmap

import (
	"errors"
	"fmt"
)

// Builder wraps map construction with an error handling strategy suited to
// static tables: by default any error panics, with NoPanic set errors are
// accumulated and reported by [Builder.Err].
type Builder struct {
	NoPanic   bool
	accumErrs []error
}

// Err returns all accumulated errors joined, or nil.
func (bld *Builder) Err() error {
	if len(bld.accumErrs) == 0 {
		return nil
	}
	return errors.Join(bld.accumErrs...)
}

// ClearErrors discards accumulated errors.
func (bld *Builder) ClearErrors() {
	bld.accumErrs = bld.accumErrs[:0]
}

// Build is like [Build]. On error it panics or, with NoPanic set, records the
// error and returns nil.
func (bld *Builder) Build(colors Sequence, name string, gradation int) *Map {
	m, err := Build(colors, name, gradation)
	if err != nil {
		bld.fail(err)
		return nil
	}
	return m
}

// ParseSequence is like [ParseSequence]. On error it panics or, with NoPanic
// set, records the error and returns nil.
func (bld *Builder) ParseSequence(colors ...string) Sequence {
	seq, err := ParseSequence(colors...)
	if err != nil {
		bld.fail(err)
		return nil
	}
	return seq
}

func (bld *Builder) fail(err error) {
	if !bld.NoPanic {
		panic(fmt.Sprintf("gradmap: %s", err))
	}
	bld.accumErrs = append(bld.accumErrs, err)
}
