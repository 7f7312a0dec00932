package hostinfo

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollect(t *testing.T) {
	info, err := Collect(context.Background())
	if err != nil {
		t.Logf("partial host info: %v", err)
	}

	assert.Positive(t, info.LogicalCores)
	assert.Equal(t, Features(), info.CPUFeatures)
}

func TestFeatures(t *testing.T) {
	features := Features()

	seen := make(map[string]bool, len(features))
	for _, f := range features {
		assert.False(t, seen[f], "duplicate feature %s", f)
		seen[f] = true
	}

	if runtime.GOARCH == "amd64" {
		// Every amd64 processor implements SSE2.
		assert.Contains(t, features, "sse2")
	}
}
