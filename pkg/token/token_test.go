package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func TestIssueAndVerify(t *testing.T) {
	signed, err := Issue(42, "alice", testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := Verify(signed, testSecret)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestVerifyWrongSecret(t *testing.T) {
	signed, err := Issue(1, "bob", testSecret, time.Hour)
	require.NoError(t, err)

	_, err = Verify(signed, []byte("another-secret"))
	assert.Error(t, err)
}

func TestVerifyExpired(t *testing.T) {
	signed, err := Issue(1, "bob", testSecret, -time.Minute)
	require.NoError(t, err)

	_, err = Verify(signed, testSecret)
	assert.Error(t, err)
}

func TestVerifyGarbage(t *testing.T) {
	_, err := Verify("not-a-token", testSecret)
	assert.Error(t, err)
}

func TestVerifyTampered(t *testing.T) {
	signed, err := Issue(7, "carol", testSecret, time.Hour)
	require.NoError(t, err)

	tampered := signed[:len(signed)-2] + "xx"
	_, err = Verify(tampered, testSecret)
	assert.Error(t, err)
}
