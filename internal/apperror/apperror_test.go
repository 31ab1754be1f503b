package apperror

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"load", Load(fs.ErrNotExist, "read inventory"), ErrLoad},
		{"save", Save(fs.ErrPermission, "write inventory"), ErrSave},
		{"stock", Stock("insufficient stock for %s", "Chips"), ErrStock},
		{"payment", Payment("short"), ErrPayment},
		{"not found", NotFound("missing"), ErrNotFound},
		{"confirmation", ConfirmationRequired("sure?"), ErrConfirmationRequired},
		{"restock", RestockNotNeeded("plenty"), ErrRestockNotNeeded},
		{"validation", Validation(ReasonInvalidPrice, "price", "bad"), ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.kind)
			assert.ErrorIs(t, fmt.Errorf("wrapped: %w", tt.err), tt.kind)
			for _, other := range []error{ErrLoad, ErrSave, ErrStock, ErrPayment, ErrNotFound,
				ErrConfirmationRequired, ErrRestockNotNeeded, ErrValidation} {
				if other != tt.kind {
					assert.NotErrorIs(t, tt.err, other)
				}
			}
		})
	}
}

func TestErrorMessageAndCause(t *testing.T) {
	err := Save(fs.ErrPermission, "write %s", "inventory.csv")
	assert.Equal(t, "write inventory.csv: permission denied", err.Error())
	assert.ErrorIs(t, err, fs.ErrPermission)

	assert.Equal(t, "insufficient stock for Chips", Stock("insufficient stock for %s", "Chips").Error())
}

func TestReasonOf(t *testing.T) {
	err := fmt.Errorf("add: %w", Validation(ReasonDuplicateName, "name", "exists"))
	reason, ok := ReasonOf(err)
	assert.True(t, ok)
	assert.Equal(t, ReasonDuplicateName, reason)

	_, ok = ReasonOf(errors.New("plain"))
	assert.False(t, ok)
}
