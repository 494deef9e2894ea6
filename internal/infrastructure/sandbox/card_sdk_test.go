package sandbox

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudpayments_bridge/internal/domain/entities"
)

func newTestSDK(t *testing.T) (*CardSDK, *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 1024)
	require.NoError(t, err)
	sdk := NewCardSDK(&key.PublicKey, "04")
	sdk.now = func() time.Time { return time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC) }
	return sdk, key
}

func TestCardSDK_IsValidNumber(t *testing.T) {
	sdk, _ := newTestSDK(t)

	cases := map[string]bool{
		"4242424242424242":    true,
		"4242 4242 4242 4242": true,
		"5555555555554444":    true,
		"4242424242424241":    false,
		"4242-4242-4242-4242": false,
		"42424242":            false,
		"":                    false,
	}
	for number, want := range cases {
		t.Run(number, func(t *testing.T) {
			assert.Equal(t, want, sdk.IsValidNumber(number))
		})
	}
}

func TestCardSDK_IsValidExpiryDate(t *testing.T) {
	sdk, _ := newTestSDK(t)

	cases := map[string]bool{
		"10/26": true,
		"1230":  true,
		"09/26": false,
		"13/30": false,
		"00/30": false,
		"1/30":  false,
		"ab/cd": false,
	}
	for date, want := range cases {
		t.Run(date, func(t *testing.T) {
			assert.Equal(t, want, sdk.IsValidExpiryDate(date))
		})
	}
}

func TestCardSDK_CardCryptogram(t *testing.T) {
	t.Run("builds decryptable cryptogram", func(t *testing.T) {
		sdk, key := newTestSDK(t)

		c, err := sdk.CardCryptogram("4242424242424242", "12/26", "123", "pk_test")
		require.NoError(t, err)

		prefix := "02" + "424242" + "4242" + "2612" + "04"
		require.True(t, strings.HasPrefix(c, prefix), "cryptogram %q", c)

		cipher, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(c, prefix))
		require.NoError(t, err)
		plain, err := rsa.DecryptOAEP(sha1.New(), rand.Reader, key, cipher, nil)
		require.NoError(t, err)
		assert.Equal(t, "4242424242424242@2612@123@pk_test", string(plain))
	})

	errCases := []struct {
		name                        string
		number, date, cvc, publicID string
		want                        entities.CryptogramErrorKind
	}{
		{"bad number", "4242424242424241", "12/26", "123", "pk", entities.CryptogramErrorInvalidCardNumber},
		{"bad date", "4242424242424242", "13/26", "123", "pk", entities.CryptogramErrorInvalidExpiryDate},
		{"bad cvc", "4242424242424242", "12/26", "12a", "pk", entities.CryptogramErrorInvalidCVC},
		{"short cvc", "4242424242424242", "12/26", "12", "pk", entities.CryptogramErrorInvalidCVC},
		{"blank public id", "4242424242424242", "12/26", "123", " ", entities.CryptogramErrorInvalidPublicID},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			sdk, _ := newTestSDK(t)
			_, err := sdk.CardCryptogram(tc.number, tc.date, tc.cvc, tc.publicID)
			require.Error(t, err)
			assert.Equal(t, tc.want, entities.CryptogramErrorKindOf(err))
		})
	}

	t.Run("no key", func(t *testing.T) {
		sdk := NewCardSDK(nil, "04")
		_, err := sdk.CardCryptogram("4242424242424242", "12/26", "123", "pk")
		assert.Equal(t, entities.CryptogramErrorEncryptionFailed, entities.CryptogramErrorKindOf(err))
	})
}
