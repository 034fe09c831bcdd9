package polydraw

import "testing"

func addSquare(c *Controller) {
	for _, v := range []Vertex{{0, 0}, {4, 0}, {4, 4}, {0, 4}} {
		c.AddVertex(v.X, v.Y)
	}
}

func TestController_New(t *testing.T) {
	c := NewController(newFakeScene())
	if c.Current() == nil {
		t.Fatal("Current() = nil")
	}
	if c.Current().Closed() {
		t.Error("initial polygon is closed")
	}
	if len(c.Polygons()) != 0 {
		t.Errorf("Polygons() has %d entries, want 0", len(c.Polygons()))
	}
	if c.IsCopying() {
		t.Error("IsCopying() = true on new controller")
	}
}

func TestController_CompletePolygon(t *testing.T) {
	tests := []struct {
		name       string
		vertices   int
		wantClosed bool
	}{
		{"none", 0, false},
		{"two", 2, false},
		{"three", 3, true},
		{"five", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewController(newFakeScene())
			for i := range tt.vertices {
				c.AddVertex(float64(i), float64(i*i))
			}
			prev := c.Current()

			c.CompletePolygon()

			polys := c.Polygons()
			if len(polys) != 1 {
				t.Fatalf("Polygons() has %d entries, want 1", len(polys))
			}
			if polys[0] != prev {
				t.Error("last polygon is not the previous current polygon")
			}
			if polys[0].Closed() != tt.wantClosed {
				t.Errorf("Closed() = %v, want %v", polys[0].Closed(), tt.wantClosed)
			}
			if c.Current() == prev {
				t.Error("Current() was not replaced")
			}
			if got := c.Current().VertexCount(); got != 0 {
				t.Errorf("new Current() has %d vertices, want 0", got)
			}
		})
	}
}

func TestController_StrictCompletion(t *testing.T) {
	c := NewController(newFakeScene(), WithStrictCompletion())
	c.AddVertex(0, 0)
	c.AddVertex(1, 1)
	prev := c.Current()

	c.CompletePolygon()

	if len(c.Polygons()) != 0 {
		t.Errorf("Polygons() has %d entries, want 0", len(c.Polygons()))
	}
	if c.Current() != prev {
		t.Error("strict completion replaced the current polygon")
	}
	if got := c.Current().VertexCount(); got != 2 {
		t.Errorf("VertexCount() = %d, want 2", got)
	}

	c.AddVertex(2, 0)
	c.CompletePolygon()
	if len(c.Polygons()) != 1 || !c.Polygons()[0].Closed() {
		t.Error("strict completion did not file the closed polygon")
	}
}

func TestController_CopyWithoutPolygons(t *testing.T) {
	s := newFakeScene()
	c := NewController(s)

	c.CopyPolygon()

	if c.IsCopying() {
		t.Error("IsCopying() = true after copy on empty scene")
	}
	if len(c.Polygons()) != 0 {
		t.Errorf("Polygons() has %d entries, want 0", len(c.Polygons()))
	}
	if len(s.all) != 0 {
		t.Errorf("copy built %d artifacts", len(s.all))
	}
}

func TestController_CopyOpenPolygonIgnored(t *testing.T) {
	c := NewController(newFakeScene())
	c.AddVertex(0, 0)
	c.CompletePolygon() // files an open polygon

	c.CopyPolygon()

	if c.IsCopying() {
		t.Error("IsCopying() = true after copying an open polygon")
	}
}

func TestController_AddVertexDroppedWhileCopying(t *testing.T) {
	c := NewController(newFakeScene())
	addSquare(c)
	c.CompletePolygon()
	c.CopyPolygon()
	if !c.IsCopying() {
		t.Fatal("IsCopying() = false after CopyPolygon")
	}

	c.AddVertex(1, 1)
	c.AddVertex(2, 2)

	if got := c.Current().VertexCount(); got != 0 {
		t.Errorf("VertexCount() = %d while copying, want 0", got)
	}
}

func TestController_CopyReentrancyRejected(t *testing.T) {
	s := newFakeScene()
	c := NewController(s)
	addSquare(c)
	c.CompletePolygon()
	c.CopyPolygon()
	first := c.Placement()
	built := len(s.all)

	c.CopyPolygon()

	if c.Placement() != first {
		t.Error("second CopyPolygon replaced the active placement")
	}
	if len(s.all) != built {
		t.Errorf("second CopyPolygon built %d artifacts", len(s.all)-built)
	}
}

func TestController_CloneScenario(t *testing.T) {
	s := newFakeScene()
	c := NewController(s)

	addSquare(c)
	c.CompletePolygon()

	polys := c.Polygons()
	if len(polys) != 1 {
		t.Fatalf("Polygons() has %d entries, want 1", len(polys))
	}
	if polys[0].Fill() == nil || polys[0].Outline() == nil {
		t.Fatal("completed polygon lacks fill or outline")
	}
	if got := c.Current().VertexCount(); got != 0 {
		t.Errorf("Current().VertexCount() = %d, want 0", got)
	}

	c.CopyPolygon()
	if !c.IsCopying() {
		t.Fatal("IsCopying() = false after CopyPolygon")
	}
	pl := c.Placement()
	pl.OnPointerMove(10, 10)
	if got := pl.Position(); got != V(10, 10) {
		t.Errorf("Position() = %v, want (10,10)", got)
	}

	placed := pl.Commit()

	if c.IsCopying() {
		t.Error("IsCopying() = true after Commit")
	}
	polys = c.Polygons()
	if len(polys) != 2 {
		t.Fatalf("Polygons() has %d entries, want 2", len(polys))
	}
	if polys[1] != placed {
		t.Error("Commit did not return the filed polygon")
	}
	if got := polys[1].Fill().Position(); got != V(10, 10) {
		t.Errorf("clone fill position = %v, want (10,10)", got)
	}
	if got := polys[1].Outline().Position(); got != V(10, 10) {
		t.Errorf("clone outline position = %v, want (10,10)", got)
	}
	if got := polys[0].Fill().Position(); got != V(0, 0) {
		t.Errorf("source fill moved to %v", got)
	}
	if got := polys[1].Vertices()[2]; got != V(14, 14) {
		t.Errorf("placed vertex 2 = %v, want (14,14)", got)
	}

	live := s.liveKinds()
	if live["fill"] != 2 || live["outline"] != 2 {
		t.Errorf("live kinds = %v, want 2 fills and 2 outlines", live)
	}

	c.Reset()

	if len(c.Polygons()) != 0 {
		t.Errorf("Polygons() has %d entries after Reset, want 0", len(c.Polygons()))
	}
	if len(s.live) != 0 {
		t.Errorf("%d artifacts still registered after Reset", len(s.live))
	}
	for i, a := range s.all {
		if a.registers != 1 || a.unregisters != 1 {
			t.Errorf("artifact %d (%s): registered %d, unregistered %d, want 1/1",
				i, a.kind, a.registers, a.unregisters)
		}
	}
}

func TestController_ResetCancelsPlacement(t *testing.T) {
	s := newFakeScene()
	c := NewController(s)
	addSquare(c)
	c.CompletePolygon()
	c.CopyPolygon()
	pl := c.Placement()
	pl.OnPointerMove(3, 3)

	c.Reset()

	if c.IsCopying() {
		t.Error("IsCopying() = true after Reset")
	}
	if pl.Active() {
		t.Error("placement still active after Reset")
	}
	if pl.Commit() != nil {
		t.Error("Commit on canceled placement filed a polygon")
	}
	if len(c.Polygons()) != 0 {
		t.Errorf("Polygons() has %d entries, want 0", len(c.Polygons()))
	}
	if len(s.live) != 0 {
		t.Errorf("%d artifacts still registered after Reset", len(s.live))
	}
	s.checkPairing(t)

	// Vertex input works again.
	c.AddVertex(1, 1)
	if got := c.Current().VertexCount(); got != 1 {
		t.Errorf("VertexCount() = %d after Reset, want 1", got)
	}
}

func TestController_ResetDropsPreviewSegments(t *testing.T) {
	s := newFakeScene()
	c := NewController(s)
	c.AddVertex(0, 0)
	c.AddVertex(1, 0)
	c.AddVertex(1, 1)

	c.Reset()

	if len(s.live) != 0 {
		t.Errorf("%d preview segments left after Reset", len(s.live))
	}
	if got := c.Current().VertexCount(); got != 0 {
		t.Errorf("VertexCount() = %d after Reset, want 0", got)
	}
	s.checkPairing(t)
}

func TestController_PolygonsIsCopy(t *testing.T) {
	c := NewController(newFakeScene())
	addSquare(c)
	c.CompletePolygon()

	polys := c.Polygons()
	polys[0] = nil

	if c.Polygons()[0] == nil {
		t.Error("caller mutation leaked into controller")
	}
}
