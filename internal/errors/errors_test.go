package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapClassifiesStoreErrors(t *testing.T) {
	assert.NoError(t, Map(nil))

	assert.ErrorIs(t, Map(gorm.ErrRecordNotFound), ErrNotFound)
	assert.ErrorIs(t, Map(gorm.ErrDuplicatedKey), ErrConflict)
	assert.ErrorIs(t, Map(context.DeadlineExceeded), ErrStoreUnavailable)
	assert.ErrorIs(t, Map(context.Canceled), ErrStoreUnavailable)
	assert.ErrorIs(t, Map(errors.New("dial tcp: connection refused")), ErrStoreUnavailable)
}

func TestMapPassesTaxonomyThrough(t *testing.T) {
	err := InvalidArgument("user id must be positive")
	assert.Equal(t, err, Map(err))

	wrapped := fmt.Errorf("loading restaurant: %w", ErrNotFound)
	assert.Equal(t, wrapped, Map(wrapped))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, HTTPStatus(nil))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(InvalidArgument("bad")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("missing")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Map(gorm.ErrDuplicatedKey)))
	assert.Equal(t, http.StatusServiceUnavailable, HTTPStatus(Map(errors.New("io failure"))))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("unclassified")))
}
