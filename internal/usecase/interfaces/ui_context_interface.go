package interfaces

// IUIContext is the hosting UI surface (an activity on Android). It is only
// valid while attached.
type IUIContext interface {
	ID() string
}
