package di

import (
	"fmt"

	"github.com/samber/do"

	"funlang/internal/context"
)

// Container wraps the do.Injector that assembles one compilation session.
// Every service is a lazy singleton, so all of them share the same
// CompilerContext and therefore the same interner and diagnostics.
type Container struct {
	*do.Injector
}

// NewContainer registers the session services for options
func NewContainer(options *context.CompilerOptions) *Container {
	injector := do.New()

	do.ProvideValue(injector, options)
	do.Provide(injector, provideCompilerContext)
	do.Provide(injector, providePipeline)

	return &Container{
		Injector: injector,
	}
}

func provideCompilerContext(i *do.Injector) (*context.CompilerContext, error) {
	options, err := do.Invoke[*context.CompilerOptions](i)
	if err != nil {
		return nil, err
	}
	return context.New(options), nil
}

func providePipeline(i *do.Injector) (*context.Pipeline, error) {
	ctx, err := do.Invoke[*context.CompilerContext](i)
	if err != nil {
		return nil, err
	}
	return context.NewPipeline(ctx), nil
}

// Session returns the compilation context
func (c *Container) Session() (*context.CompilerContext, error) {
	ctx, err := do.Invoke[*context.CompilerContext](c.Injector)
	if err != nil {
		return nil, fmt.Errorf("failed to get compiler context: %w", err)
	}
	return ctx, nil
}

// Pipeline returns the pipeline bound to the session context
func (c *Container) Pipeline() (*context.Pipeline, error) {
	pipeline, err := do.Invoke[*context.Pipeline](c.Injector)
	if err != nil {
		return nil, fmt.Errorf("failed to get pipeline: %w", err)
	}
	return pipeline, nil
}
