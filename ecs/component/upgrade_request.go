package component

// UpgradeRequest asks the winch to apply new equipment. Zero fields are left
// unchanged. The upgrade system removes the request once applied.
type UpgradeRequest struct {
	RopeLength float64
	WinchSpeed float64
}

var UpgradeRequestComponent = NewComponent[UpgradeRequest]()
