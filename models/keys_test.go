package models

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyBlob_StringRedacts(t *testing.T) {
	blob := KeyBlob("2.aaaa|bbbb|cccc")

	assert.Equal(t, "[redacted]", blob.String())
	assert.NotContains(t, fmt.Sprintf("key=%s", blob), "aaaa")
	assert.Equal(t, "", KeyBlob("").String())
}

func TestKeyBlob_IsZero(t *testing.T) {
	assert.True(t, KeyBlob("").IsZero())
	assert.False(t, KeyBlob("blob").IsZero())
}

func TestAccountEncryptionKeys_IsComplete(t *testing.T) {
	tests := []struct {
		name string
		keys AccountEncryptionKeys
		want bool
	}{
		{name: "both set", keys: AccountEncryptionKeys{EncryptedPrivateKey: "p", EncryptedUserKey: "u"}, want: true},
		{name: "private only", keys: AccountEncryptionKeys{EncryptedPrivateKey: "p"}, want: false},
		{name: "user only", keys: AccountEncryptionKeys{EncryptedUserKey: "u"}, want: false},
		{name: "neither", keys: AccountEncryptionKeys{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.keys.IsComplete())
		})
	}
}
