package models

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/argossea/courier/internal/common"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		fields  Fields
		wantErr bool
	}{
		{"all fields", Fields{Name: "Mario", Email: "mario@email.com", Message: "hi"}, false},
		{"empty message is fine", Fields{Name: "Mario", Email: "mario@email.com"}, false},
		{"missing name", Fields{Email: "mario@email.com", Message: "hi"}, true},
		{"missing email", Fields{Name: "Mario", Message: "hi"}, true},
		{"all empty", Fields{}, true},
		{"no format check on email", Fields{Name: "Mario", Email: "not-an-address"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.fields.Validate()
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, errors.Is(err, common.ErrValidation))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNew_CopiesFieldsVerbatim(t *testing.T) {
	now := time.Date(2024, 6, 7, 15, 4, 5, 0, time.UTC)
	m := New(Fields{Name: "Mario", Email: "mario@email.com", Message: "ciao"}, now)

	assert.NotEmpty(t, m.Id)
	assert.Equal(t, "Mario", m.Name)
	assert.Equal(t, "mario@email.com", m.Email)
	assert.Equal(t, "ciao", m.Body)
	assert.Equal(t, "07/06/2024, 15:04:05", m.CreatedAt)
}

func TestNew_IdsAreUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		m := New(Fields{Name: "n", Email: "e"}, time.Now())
		_, dup := seen[m.Id]
		require.False(t, dup, "duplicate id %s", m.Id)
		seen[m.Id] = struct{}{}
	}
}

func TestMessage_JSONShape(t *testing.T) {
	m := Message{Id: "1", Name: "n", Email: "e", Body: "b", CreatedAt: "c"}
	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"1","name":"n","email":"e","message":"b","createdAt":"c"}`, string(b))
}
