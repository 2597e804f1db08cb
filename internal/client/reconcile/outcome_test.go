package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/morvin2701/pixelwalls/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	var syntaxErr error
	{
		var v []int
		syntaxErr = json.Unmarshal([]byte("{"), &v)
	}
	var typeErr error
	{
		var v []int
		typeErr = json.Unmarshal([]byte(`"s"`), &v)
	}

	tests := []struct {
		name string
		err  error
		want FailureKind
	}{
		{"nil", nil, KindNone},
		{"not supported", common.ErrNotSupported, Unavailable},
		{"server unavailable wrapped", fmt.Errorf("list: %w", common.ErrUnavailable), Unavailable},
		{"unauthorized", common.ErrorUnauthorized, Unavailable},
		{"deadline", context.DeadlineExceeded, Unavailable},
		{"quota", common.ErrQuotaExceeded, OperationFailed},
		{"driver", errors.New("database is locked"), OperationFailed},
		{"corrupt", common.ErrCorruptData, Serialization},
		{"json syntax", syntaxErr, Serialization},
		{"json type", typeErr, Serialization},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestFailureKind_String(t *testing.T) {
	assert.Equal(t, "ok", KindNone.String())
	assert.Equal(t, "unavailable", Unavailable.String())
	assert.Equal(t, "operation_failed", OperationFailed.String())
	assert.Equal(t, "serialization", Serialization.String())
	assert.Equal(t, "kind(9)", FailureKind(9).String())
}

func TestChangeConstructors(t *testing.T) {
	w := wp("a", 1)
	assert.Equal(t, ChangeCreate, Created(w).Kind)
	assert.Equal(t, "a", Updated(w).ID)
	assert.Equal(t, Change{Kind: ChangeDelete, ID: "a"}.ID, Deleted("a").ID)
	assert.Equal(t, "none", ChangeNone.String())
	assert.Equal(t, "delete", ChangeDelete.String())
}
