package validation

import (
	"strings"
	"testing"

	"snapdish/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStruct_Credentials(t *testing.T) {
	t.Parallel()

	v := New()

	tests := []struct {
		name    string
		creds   entity.Credentials
		wantErr string
	}{
		{name: "valid", creds: entity.Credentials{Email: "a@b.com", Password: "secret1"}},
		{name: "shortest password", creds: entity.Credentials{Email: "a@b.com", Password: "123456"}},
		{name: "longest password", creds: entity.Credentials{Email: "a@b.com", Password: strings.Repeat("x", 128)}},
		{name: "multibyte password counts characters", creds: entity.Credentials{Email: "a@b.com", Password: "żółćęą"}},
		{name: "password too short", creds: entity.Credentials{Email: "a@b.com", Password: "12345"}, wantErr: "Password must be at least 6 characters"},
		{name: "password too long", creds: entity.Credentials{Email: "a@b.com", Password: strings.Repeat("x", 129)}, wantErr: "Password must be at most 128 characters"},
		{name: "missing domain dot", creds: entity.Credentials{Email: "a@b", Password: "secret1"}, wantErr: "Email must be a valid email address"},
		{name: "missing at", creds: entity.Credentials{Email: "ab.com", Password: "secret1"}, wantErr: "Email must be a valid email address"},
		{name: "whitespace", creds: entity.Credentials{Email: "a b@c.com", Password: "secret1"}, wantErr: "Email must be a valid email address"},
		{name: "empty email", creds: entity.Credentials{Email: "", Password: "secret1"}, wantErr: "Email is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Struct(v, tt.creds)
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestStruct_Ingredient(t *testing.T) {
	t.Parallel()

	v := New()

	require.NoError(t, Struct(v, entity.Ingredient{Name: "Croutons", Calories: 0}))

	err := Struct(v, entity.Ingredient{Name: "", Calories: -5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name is required")
	assert.Contains(t, err.Error(), "Calories must be 0 or greater")
}
