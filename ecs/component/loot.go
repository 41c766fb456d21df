package component

type Loot struct {
	Kind       string
	Value      float64
	Magnetised bool
}

var LootComponent = NewComponent[Loot]()
