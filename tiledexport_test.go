package tiledexport

type testTile struct {
	pos      Position
	ground   uint32
	items    []Item
	blocking bool
}

func (t *testTile) Position() Position { return t.pos }

func (t *testTile) Ground() (uint32, bool) { return t.ground, t.ground != 0 }

func (t *testTile) Items() []Item { return t.items }

func (t *testTile) IsBlocking() bool { return t.blocking }

func ground(x, y, z int, id uint32) *testTile {
	return &testTile{pos: Position{x, y, z}, ground: id}
}
