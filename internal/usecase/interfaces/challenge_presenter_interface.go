package interfaces

import "cloudpayments_bridge/internal/domain/entities"

// IChallengeListener receives the outcome of a 3-D Secure challenge. Exactly
// one method fires, once.
type IChallengeListener interface {
	OnAuthorizationCompleted(md, paRes string)
	OnAuthorizationFailed(html *string)
	OnCancel()
}

// IChallengePresenter shows the 3-D Secure challenge surface owned by the
// vendor SDK.
type IChallengePresenter interface {
	Present(ui IUIContext, req entities.ChallengeRequest, listener IChallengeListener) error
}
