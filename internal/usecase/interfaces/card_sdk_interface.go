package interfaces

// ICardSDK abstracts the vendor card library (number/expiry validation and
// cryptogram generation).
//
// CardCryptogram must report failures as *entities.CryptogramError so the
// bridge can surface a stable error kind to the caller.
type ICardSDK interface {
	IsValidNumber(cardNumber string) bool
	IsValidExpiryDate(expiryDate string) bool
	CardCryptogram(cardNumber, cardDate, cardCVC, publicID string) (string, error)
}
