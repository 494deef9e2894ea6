package sandbox

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha1"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudpayments_bridge/internal/domain/entities"
	"cloudpayments_bridge/internal/usecase/interfaces"
)

const cryptogramFormatVersion = "02"

// CardSDK validates card data and builds cryptograms of the form
// 02 + BIN(6) + last4 + YYMM + keyVersion + base64(RSA-OAEP(number@YYMM@cvc@publicId)).
type CardSDK struct {
	key        *rsa.PublicKey
	keyVersion string
	now        func() time.Time
}

var _ interfaces.ICardSDK = (*CardSDK)(nil)

func NewCardSDK(key *rsa.PublicKey, keyVersion string) *CardSDK {
	return &CardSDK{key: key, keyVersion: keyVersion, now: time.Now}
}

func (s *CardSDK) IsValidNumber(cardNumber string) bool {
	digits := onlyDigits(cardNumber)
	if digits == "" || len(digits) < 13 || len(digits) > 19 {
		return false
	}
	return luhn(digits)
}

func (s *CardSDK) IsValidExpiryDate(expiryDate string) bool {
	month, year, ok := parseExpiry(expiryDate)
	if !ok {
		return false
	}
	now := s.now()
	expiry := time.Date(2000+year, time.Month(month)+1, 1, 0, 0, 0, 0, now.Location())
	return now.Before(expiry)
}

func (s *CardSDK) CardCryptogram(cardNumber, cardDate, cardCVC, publicID string) (string, error) {
	number := onlyDigits(cardNumber)
	if !s.IsValidNumber(number) {
		return "", &entities.CryptogramError{Kind: entities.CryptogramErrorInvalidCardNumber}
	}
	month, year, ok := parseExpiry(cardDate)
	if !ok {
		return "", &entities.CryptogramError{Kind: entities.CryptogramErrorInvalidExpiryDate}
	}
	if cvc := onlyDigits(cardCVC); len(cvc) < 3 || len(cvc) > 4 || cvc != cardCVC {
		return "", &entities.CryptogramError{Kind: entities.CryptogramErrorInvalidCVC}
	}
	if strings.TrimSpace(publicID) == "" {
		return "", &entities.CryptogramError{Kind: entities.CryptogramErrorInvalidPublicID}
	}
	if s.key == nil {
		return "", &entities.CryptogramError{Kind: entities.CryptogramErrorEncryptionFailed, Err: errors.New("no public key")}
	}

	yymm := fmt.Sprintf("%02d%02d", year, month)
	plain := strings.Join([]string{number, yymm, cardCVC, publicID}, "@")
	cipher, err := rsa.EncryptOAEP(sha1.New(), rand.Reader, s.key, []byte(plain), nil)
	if err != nil {
		return "", &entities.CryptogramError{Kind: entities.CryptogramErrorEncryptionFailed, Err: err}
	}

	var b strings.Builder
	b.WriteString(cryptogramFormatVersion)
	b.WriteString(number[:6])
	b.WriteString(number[len(number)-4:])
	b.WriteString(yymm)
	b.WriteString(s.keyVersion)
	b.WriteString(base64.StdEncoding.EncodeToString(cipher))
	return b.String(), nil
}

// parseExpiry accepts MM/YY and MMYY.
func parseExpiry(raw string) (month, year int, ok bool) {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), "/", "")
	if len(raw) != 4 || onlyDigits(raw) != raw {
		return 0, 0, false
	}
	month, _ = strconv.Atoi(raw[:2])
	year, _ = strconv.Atoi(raw[2:])
	if month < 1 || month > 12 {
		return 0, 0, false
	}
	return month, year, true
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ':
		default:
			return ""
		}
	}
	return b.String()
}

func luhn(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
