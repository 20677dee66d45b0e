package core

import (
	"math"
	"math/rand"
	"testing"

	"pgregory.net/rapid"
)

func TestVec3Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec3
		want Vec3
	}{
		{"unit x", V3(5, 0, 0), V3(1, 0, 0)},
		{"3-4-0", V3(3, 4, 0), V3(0.6, 0.8, 0)},
		{"zero stays zero", V3(0, 0, 0), V3(0, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.in.Normalize()
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 || math.Abs(got.Z-tc.want.Z) > 1e-9 {
				t.Errorf("Normalize(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestBoxContains(t *testing.T) {
	b := NewBox(V3(10, 0, 2), V3(1, 2, 3))

	if !b.Contains(V3(10, 0, 2)) {
		t.Error("box should contain its origin")
	}
	if !b.Contains(b.Min()) || !b.Contains(b.Max()) {
		t.Error("box should contain its corners")
	}
	if b.Contains(V3(11.01, 0, 2)) {
		t.Error("point past +X extent should be outside")
	}
	if b.Contains(V3(10, 0, -1.5)) {
		t.Error("point below -Z extent should be outside")
	}
}

func TestRandomPointInBoxContainment(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		origin := V3(
			rapid.Float64Range(-1000, 1000).Draw(t, "ox"),
			rapid.Float64Range(-1000, 1000).Draw(t, "oy"),
			rapid.Float64Range(-1000, 1000).Draw(t, "oz"),
		)
		extent := V3(
			rapid.Float64Range(0, 500).Draw(t, "ex"),
			rapid.Float64Range(0, 500).Draw(t, "ey"),
			rapid.Float64Range(0, 500).Draw(t, "ez"),
		)
		seed := rapid.Int64().Draw(t, "seed")
		b := NewBox(origin, extent)
		rng := rand.New(rand.NewSource(seed))

		for i := 0; i < 50; i++ {
			p := RandomPointInBox(rng, b)
			if !b.Contains(p) {
				t.Fatalf("sample %v escaped box %v..%v", p, b.Min(), b.Max())
			}
		}
	})
}

func TestRandomPointInBoxDegenerate(t *testing.T) {
	b := NewBox(V3(3, 4, 5), V3(0, 0, 0))
	rng := rand.New(rand.NewSource(1))

	p := RandomPointInBox(rng, b)
	if p != b.Origin {
		t.Errorf("zero-extent box sample = %v, want origin %v", p, b.Origin)
	}
}
