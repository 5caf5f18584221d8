package password_test

import (
	"dockhub/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{name: "valid password", input: "dock-door-12"},
		{name: "empty password", input: "", wantErr: password.ErrEmptyPassword},
		{name: "short password", input: "ramp", wantErr: password.ErrTooShort},
		{name: "long password", input: strings.Repeat("d", password.MaxLength+1), wantErr: password.ErrTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.input)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.NotEqual(t, tt.input, hash)
		})
	}
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("dock-door-12")
	require.NoError(t, err)

	assert.NoError(t, password.Verify("dock-door-12", hash))
	assert.ErrorIs(t, password.Verify("dock-door-13", hash), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("", hash), password.ErrInvalidPassword)
	assert.ErrorIs(t, password.Verify("dock-door-12", ""), password.ErrInvalidPassword)
	assert.Error(t, password.Verify("dock-door-12", "not-a-bcrypt-hash"))
}

func TestDecoy(t *testing.T) {
	assert.NotPanics(t, func() { password.Decoy("anything") })
}
