package di

import (
	"testing"

	"funlang/internal/context"
)

func TestContainerSharesSession(t *testing.T) {
	options := &context.CompilerOptions{DropTrailing: true}
	container := NewContainer(options)
	defer container.Shutdown()

	ctx, err := container.Session()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	pipeline, err := container.Pipeline()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if pipeline.Context != ctx {
		t.Errorf("Expected the pipeline to run over the container's session")
	}
	if ctx.Options != options {
		t.Errorf("Expected the session to use the provided options")
	}

	again, _ := container.Session()
	if again != ctx {
		t.Errorf("Expected the session to be a singleton")
	}
}

func TestContainersAreIndependent(t *testing.T) {
	first := NewContainer(&context.CompilerOptions{})
	second := NewContainer(&context.CompilerOptions{})

	a, _ := first.Session()
	b, _ := second.Session()
	if a == b || a.Symbols == b.Symbols {
		t.Errorf("Expected separate containers to build separate sessions")
	}
}
