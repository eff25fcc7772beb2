package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidIndexError(t *testing.T) {
	err := &InvalidIndexError{Index: 5, Length: 3}
	assert.Equal(t, "invalid todo index 5 (collection has 3 entries)", err.Error())
}

func TestInvalidIndexErrorMatchesThroughWrapping(t *testing.T) {
	base := &InvalidIndexError{Index: -1, Length: 0}
	wrapped := fmt.Errorf("delete failed: %w", base)

	var iie *InvalidIndexError
	assert.True(t, errors.As(wrapped, &iie))
	assert.Equal(t, -1, iie.Index)
}

func TestUnsupportedFilterError(t *testing.T) {
	err := &UnsupportedFilterError{Field: "priority"}
	assert.Contains(t, err.Error(), "cannot filter by priority")
	assert.Contains(t, err.Error(), "plain text")
}
