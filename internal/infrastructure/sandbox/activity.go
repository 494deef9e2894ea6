package sandbox

import (
	"encoding/json"
	"sync"
	"time"

	"cloudpayments_bridge/internal/usecase/interfaces"
)

type SurfaceKind string

const (
	SurfaceThreeDS      SurfaceKind = "threeDsChallenge"
	SurfacePaymentSheet SurfaceKind = "googlePaySheet"
)

// Surface is a UI element a collaborator put on screen and that waits for a
// host callback.
type Surface struct {
	Kind          SurfaceKind     `json:"kind"`
	ActivityID    string          `json:"activity_id"`
	RequestCode   int             `json:"request_code,omitempty"`
	TransactionID string          `json:"transaction_id,omitempty"`
	AcsURL        string          `json:"acs_url,omitempty"`
	Request       json.RawMessage `json:"request,omitempty"`
	PresentedAt   time.Time       `json:"presented_at"`
}

// Activity is the sandbox UI context. It records the surfaces shown on it so
// the host can inspect and answer them.
type Activity struct {
	id       string
	mu       sync.Mutex
	surfaces []Surface
}

var _ interfaces.IUIContext = (*Activity)(nil)

func NewActivity(id string) *Activity {
	return &Activity{id: id}
}

func (a *Activity) ID() string { return a.id }

// Surfaces returns a copy of the surfaces currently shown.
func (a *Activity) Surfaces() []Surface {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Surface, len(a.surfaces))
	copy(out, a.surfaces)
	return out
}

func (a *Activity) show(s Surface) {
	s.ActivityID = a.id
	if s.PresentedAt.IsZero() {
		s.PresentedAt = time.Now().UTC()
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.surfaces = append(a.surfaces, s)
}

func (a *Activity) dismiss(match func(Surface) bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	kept := a.surfaces[:0]
	for _, s := range a.surfaces {
		if !match(s) {
			kept = append(kept, s)
		}
	}
	a.surfaces = kept
}

// DismissPaymentSheet removes the payment sheet tagged with requestCode.
func (a *Activity) DismissPaymentSheet(requestCode int) {
	a.dismiss(func(s Surface) bool {
		return s.Kind == SurfacePaymentSheet && s.RequestCode == requestCode
	})
}
