package component

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type BoatTag struct{}

var BoatTagComponent = NewComponent[BoatTag]()

type WaterTag struct{}

var WaterTagComponent = NewComponent[WaterTag]()
