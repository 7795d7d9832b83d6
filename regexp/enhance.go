package regexp

import "fmt"

// Constructor builds a unicode-aware Regexp from a pattern source and flag
// string.
type Constructor interface {
	Construct(source, flags string) (*Regexp, error)
}

// ConstructorFunc adapts a function to [Constructor].
type ConstructorFunc func(source, flags string) (*Regexp, error)

// Construct calls f(source, flags).
func (f ConstructorFunc) Construct(source, flags string) (*Regexp, error) {
	return f(source, flags)
}

type options struct {
	constructor Constructor
}

// Option configures an [Enhancer].
type Option func(*options)

// WithConstructor replaces the constructor an [Enhancer] delegates to. A nil
// constructor keeps the default, [CompileWithFlags].
func WithConstructor(c Constructor) Option {
	return func(o *options) {
		if c != nil {
			o.constructor = c
		}
	}
}

// Enhancer rebuilds compiled expressions through a [Constructor].
type Enhancer struct {
	constructor Constructor
}

// NewEnhancer returns an Enhancer configured by opts.
func NewEnhancer(opts ...Option) *Enhancer {
	o := options{constructor: ConstructorFunc(CompileWithFlags)}
	for _, opt := range opts {
		opt(&o)
	}

	return &Enhancer{constructor: o.constructor}
}

var defaultEnhancer = NewEnhancer()

// Enhance rebuilds re with unicode support using the default constructor.
// See [Enhancer.Enhance].
func Enhance(re any) (*Regexp, error) {
	return defaultEnhancer.Enhance(re)
}

// MustEnhance is like Enhance but panics if the constructor fails.
func MustEnhance(re any) *Regexp {
	out, err := Enhance(re)
	if err != nil {
		panic(err)
	}
	return out
}

// Enhance passes the source and flags of re to the configured constructor and
// returns its result. re is never modified.
//
// re must satisfy [IsRegexp]; otherwise Enhance panics with a
// *[PreconditionError]. The constructor is always called, even when re
// already matches with unicode semantics.
func (e *Enhancer) Enhance(re any) (*Regexp, error) {
	source, flags, ok := patternOf(re)
	if !ok {
		panic(&PreconditionError{Expr: "(regexp? re)"})
	}

	out, err := e.constructor.Construct(source, flags)
	if err != nil {
		return nil, fmt.Errorf("enhance %q: %w", source, err)
	}

	return out, nil
}
