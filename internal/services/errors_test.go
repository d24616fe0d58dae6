package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{name: "validation", err: &ValidationError{Field: "title", Reason: "field required"}, want: KindIllFormedInput},
		{name: "upstream", err: &UpstreamError{Provider: "openrouter", Err: errors.New("timeout")}, want: KindUpstream},
		{name: "malformed json", err: malformedJSON(errors.New("unexpected end")), want: KindMalformedJSON},
		{name: "schema mismatch", err: schemaMismatch("score: field required"), want: KindSchemaMismatch},
		{name: "wrapped", err: fmt.Errorf("call: %w", &UpstreamError{Provider: "gemini", Err: errors.New("503")}), want: KindUpstream},
		{name: "unclassified", err: errors.New("boom"), want: ""},
		{name: "nil", err: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}
