package robot

import "testing"

func TestPositionSign(t *testing.T) {
	cases := []struct {
		in, want Position
	}{
		{Position{5, -3}, Position{1, -1}},
		{Position{0, 7}, Position{0, 1}},
		{Position{-2, 0}, Position{-1, 0}},
		{Position{}, Position{}},
	}
	for _, c := range cases {
		if got := c.in.Sign(); got != c.want {
			t.Fatalf("Sign(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestOwned(t *testing.T) {
	robots := []Robot{{Owner: "a"}, {Owner: "b"}, {Owner: "a"}, {}}
	if got := Owned(robots, "a"); got != 2 {
		t.Fatalf("expected 2 robots owned by a, got %d", got)
	}
	if got := Owned(nil, "a"); got != 0 {
		t.Fatalf("expected 0 for empty roster, got %d", got)
	}
}

func TestCommandTarget(t *testing.T) {
	if to, ok := Target(Move{To: Position{3, 4}}); !ok || to != (Position{3, 4}) {
		t.Fatalf("unexpected move target %v %v", to, ok)
	}
	for _, c := range []Command{CreateNewRobot{}, CollectEnergy{}} {
		if _, ok := Target(c); ok {
			t.Fatalf("%s should not have a target", c.Kind())
		}
	}
}
