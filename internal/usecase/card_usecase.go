package usecase

import (
	"log"

	"cloudpayments_bridge/internal/domain/entities"
)

func (b *BridgeUseCase) isValidNumber(call entities.MethodCall) bool {
	cardNumber, ok := call.StringArgument("cardNumber")
	if !ok {
		return false
	}
	return b.card.IsValidNumber(cardNumber)
}

func (b *BridgeUseCase) isValidExpiryDate(call entities.MethodCall) bool {
	expiryDate, ok := call.StringArgument("expiryDate")
	if !ok {
		return false
	}
	return b.card.IsValidExpiryDate(expiryDate)
}

// cardCryptogram replies {cryptogram, error}. A missing argument yields
// "Missing <name>" without touching the SDK; an SDK failure yields its
// CryptogramErrorKind.
func (b *BridgeUseCase) cardCryptogram(call entities.MethodCall) map[string]any {
	args := make(map[string]string, 4)
	for _, name := range []string{"cardNumber", "cardDate", "cardCVC", "publicId"} {
		v, ok := call.StringArgument(name)
		if !ok {
			log.Printf("[bridge][card] cryptogram missing argument=%s", name)
			return map[string]any{"cryptogram": nil, "error": "Missing " + name}
		}
		args[name] = v
	}

	cryptogram, err := b.card.CardCryptogram(args["cardNumber"], args["cardDate"], args["cardCVC"], args["publicId"])
	if err != nil {
		kind := entities.CryptogramErrorKindOf(err)
		log.Printf("[bridge][card] cryptogram failed kind=%s", kind)
		return map[string]any{"cryptogram": nil, "error": string(kind)}
	}
	log.Printf("[bridge][card] cryptogram ok len=%d", len(cryptogram))
	return map[string]any{"cryptogram": cryptogram, "error": nil}
}
