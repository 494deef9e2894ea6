package sandbox

import (
	"errors"
	"log"
	"sync"

	"cloudpayments_bridge/internal/domain/entities"
	"cloudpayments_bridge/internal/usecase/interfaces"
)

var ErrChallengeNotFound = errors.New("no challenge shown for transaction")

type shownChallenge struct {
	activity *Activity
	listener interfaces.IChallengeListener
}

// ChallengePresenter keeps the listener of every shown 3-D Secure challenge
// until the host completes, fails or cancels it.
type ChallengePresenter struct {
	mu         sync.Mutex
	challenges map[string]shownChallenge
}

var _ interfaces.IChallengePresenter = (*ChallengePresenter)(nil)

func NewChallengePresenter() *ChallengePresenter {
	return &ChallengePresenter{challenges: map[string]shownChallenge{}}
}

func (p *ChallengePresenter) Present(ui interfaces.IUIContext, req entities.ChallengeRequest, listener interfaces.IChallengeListener) error {
	a, ok := ui.(*Activity)
	if !ok {
		return ErrUnsupportedUIContext
	}
	p.mu.Lock()
	p.challenges[req.TransactionID] = shownChallenge{activity: a, listener: listener}
	p.mu.Unlock()

	a.show(Surface{Kind: SurfaceThreeDS, TransactionID: req.TransactionID, AcsURL: req.AcsURL})
	log.Printf("[sandbox][3ds] challenge shown ui=%s transaction_id=%s", a.ID(), req.TransactionID)
	return nil
}

func (p *ChallengePresenter) Complete(transactionID, md, paRes string) error {
	l, err := p.take(transactionID)
	if err != nil {
		return err
	}
	l.OnAuthorizationCompleted(md, paRes)
	return nil
}

func (p *ChallengePresenter) Fail(transactionID string, html *string) error {
	l, err := p.take(transactionID)
	if err != nil {
		return err
	}
	l.OnAuthorizationFailed(html)
	return nil
}

func (p *ChallengePresenter) Cancel(transactionID string) error {
	l, err := p.take(transactionID)
	if err != nil {
		return err
	}
	l.OnCancel()
	return nil
}

func (p *ChallengePresenter) take(transactionID string) (interfaces.IChallengeListener, error) {
	p.mu.Lock()
	c, ok := p.challenges[transactionID]
	delete(p.challenges, transactionID)
	p.mu.Unlock()
	if !ok {
		return nil, ErrChallengeNotFound
	}
	c.activity.dismiss(func(s Surface) bool {
		return s.Kind == SurfaceThreeDS && s.TransactionID == transactionID
	})
	return c.listener, nil
}
