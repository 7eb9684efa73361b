package ui

// TintChangedMsg is sent after the chrome tint changed.
type TintChangedMsg struct {
	TintID string
	Styles Styles
}

// TintSavedMsg reports the result of persisting ui_tint.
type TintSavedMsg struct {
	TintID string
	Err    error
}
