package tumble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tumble/internal/config"
	"github.com/vovakirdan/tumble/internal/core"
)

func TestCatalogPieces(t *testing.T) {
	require.Len(t, Catalog, 7)

	seen := make(map[string]bool)
	for _, tmpl := range Catalog {
		assert.False(t, seen[tmpl.Name], "duplicate piece %s", tmpl.Name)
		seen[tmpl.Name] = true

		polys := tmpl.Polygons(20)
		require.Len(t, polys, 4)
		cells := make(map[Offset]bool)
		for i, p := range polys {
			assert.InDelta(t, 400.0, p.Area(), 1e-9)
			cells[tmpl.Squares[i]] = true
		}
		assert.Len(t, cells, 4, "piece %s overlaps itself", tmpl.Name)
	}
}

func TestSquareCorners(t *testing.T) {
	p := square(Offset{X: -2, Y: -1}, 20)
	assert.Equal(t, core.Polygon{{X: -40, Y: -20}, {X: -20, Y: -20}, {X: -20, Y: 0}, {X: -40, Y: 0}}, p)
}

func TestSpawnerUniform(t *testing.T) {
	const draws = 10000
	s := NewSpawner(99, Catalog)

	counts := make([]int, len(Catalog))
	for range draws {
		i, tmpl := s.Next()
		require.Equal(t, Catalog[i].Name, tmpl.Name)
		counts[i]++
	}

	want := 1.0 / float64(len(Catalog))
	for i, n := range counts {
		assert.InDelta(t, want, float64(n)/draws, 0.02, "piece %s drawn %d times", Catalog[i].Name, n)
	}
}

func TestSpawnerSeeded(t *testing.T) {
	a := NewSpawner(7, Catalog)
	b := NewSpawner(7, Catalog)
	for range 50 {
		i, _ := a.Next()
		j, _ := b.Next()
		require.Equal(t, i, j)
	}
}

func TestSpawnerEmptyCatalogPanics(t *testing.T) {
	assert.Panics(t, func() { NewSpawner(1, nil) })
}

func TestRegistryOrderAndLookup(t *testing.T) {
	w := NewWorld(config.DefaultTumbleConfig().Physics)
	r := NewRegistry()

	wall := &Actor{ID: r.NextID(), Name: "wall"}
	wall.Body = w.AddStatic(wall.ID, []core.Polygon{Quad{X: 0, Width: 10, Height: 10}.Polygon()})
	r.Add(wall)

	polys := Catalog[3].Polygons(20)
	piece := &Actor{ID: r.NextID(), Name: "O", Local: polys}
	piece.Body = w.AddDynamic(piece.ID, 1, core.V(50, 100), polys)
	r.Add(piece)
	r.SetActive(piece)

	assert.Equal(t, WallID, r.All()[0].ID)
	assert.Equal(t, 2, r.Len())
	assert.Same(t, piece, r.Active())

	got, ok := r.Get(1)
	require.True(t, ok)
	assert.Same(t, piece, got)

	_, ok = r.Get(5)
	assert.False(t, ok)

	assert.Panics(t, func() { r.Add(&Actor{ID: 7}) })
	assert.Panics(t, func() { r.SetActive(&Actor{ID: 9}) })
}

func TestActorPolygonsFollowBody(t *testing.T) {
	w := NewWorld(config.DefaultTumbleConfig().Physics)
	polys := []core.Polygon{square(Offset{}, 20)}
	a := &Actor{ID: 1, Local: polys}
	a.Body = w.AddDynamic(1, 1, core.V(100, 200), polys)

	world := a.Polygons()
	require.Len(t, world, 1)
	assert.InDelta(t, 100.0, world[0][0].X, 1e-9)
	assert.InDelta(t, 200.0, world[0][0].Y, 1e-9)
	assert.InDelta(t, 120.0, world[0][2].X, 1e-9)
	assert.InDelta(t, 220.0, world[0][2].Y, 1e-9)
}

func TestMomentSplitsMassByArea(t *testing.T) {
	one := []core.Polygon{square(Offset{}, 20)}
	two := []core.Polygon{square(Offset{}, 20), square(Offset{}, 20)}

	assert.InDelta(t, momentFor(1, one), momentFor(1, two), 1e-9)
	assert.Positive(t, momentFor(1, Catalog[0].Polygons(20)))
}
