package polydraw

import "testing"

// fakeArtifact records registration calls so tests can check pairing.
type fakeArtifact struct {
	scene  *fakeScene
	kind   string
	points []Vertex
	pos    Vertex

	registers   int
	unregisters int
}

func (a *fakeArtifact) Register() {
	a.registers++
	a.scene.live[a] = true
}

func (a *fakeArtifact) Unregister() {
	a.unregisters++
	delete(a.scene.live, a)
}

func (a *fakeArtifact) SetPosition(x, y float64) { a.pos = V(x, y) }
func (a *fakeArtifact) Position() Vertex         { return a.pos }

func (a *fakeArtifact) Clone() Artifact {
	c := &fakeArtifact{
		scene:  a.scene,
		kind:   a.kind,
		points: append([]Vertex(nil), a.points...),
		pos:    a.pos,
	}
	a.scene.all = append(a.scene.all, c)
	return c
}

// fakeScene is a Factory that keeps every artifact it ever built.
type fakeScene struct {
	all  []*fakeArtifact
	live map[*fakeArtifact]bool
}

func newFakeScene() *fakeScene {
	return &fakeScene{live: make(map[*fakeArtifact]bool)}
}

func (s *fakeScene) build(kind string, pts []Vertex) Artifact {
	a := &fakeArtifact{scene: s, kind: kind, points: pts}
	s.all = append(s.all, a)
	return a
}

func (s *fakeScene) Segment(from, to Vertex) Artifact { return s.build("segment", []Vertex{from, to}) }
func (s *fakeScene) Fill(vs []Vertex) Artifact        { return s.build("fill", vs) }
func (s *fakeScene) Outline(pts []Vertex) Artifact    { return s.build("outline", pts) }

// liveKinds counts live artifacts per kind.
func (s *fakeScene) liveKinds() map[string]int {
	m := make(map[string]int)
	for a := range s.live {
		m[a.kind]++
	}
	return m
}

// checkPairing fails if any artifact was registered more than once or
// unregistered more often than registered.
func (s *fakeScene) checkPairing(t *testing.T) {
	t.Helper()
	for i, a := range s.all {
		if a.registers > 1 {
			t.Errorf("artifact %d (%s) registered %d times", i, a.kind, a.registers)
		}
		if a.unregisters > a.registers {
			t.Errorf("artifact %d (%s) unregistered %d times, registered %d",
				i, a.kind, a.unregisters, a.registers)
		}
	}
}
