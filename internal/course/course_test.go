package course_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Createman8/HogBalls-Upgrade-2.0/internal/course"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBloomington_IsValid(t *testing.T) {
	c := course.Bloomington()
	require.NoError(t, c.Validate())
	assert.Equal(t, 72, c.Par())
	assert.Equal(t, 7, c.Rank(1))
	assert.Equal(t, 1, c.Rank(6))
	assert.Equal(t, 0, c.Rank(19))
	assert.True(t, c.HasTee("Blue"))
	assert.False(t, c.HasTee("Red"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *course.Course)
	}{
		{name: "missing name", mutate: func(c *course.Course) { c.Name = "" }},
		{name: "seventeen holes", mutate: func(c *course.Course) { c.Holes = c.Holes[:17] }},
		{name: "duplicate rank", mutate: func(c *course.Course) { c.Holes[1].Rank = c.Holes[0].Rank }},
		{name: "rank out of range", mutate: func(c *course.Course) { c.Holes[0].Rank = 19 }},
		{name: "duplicate number", mutate: func(c *course.Course) { c.Holes[1].Number = 1 }},
		{name: "par six", mutate: func(c *course.Course) { c.Holes[3].Par = 6 }},
		{name: "no tees", mutate: func(c *course.Course) { c.Tees = nil }},
		{name: "unknown default tee", mutate: func(c *course.Course) { c.DefaultTee = "Red" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := course.Bloomington()
			tt.mutate(&c)
			err := c.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, course.ErrInvalidCourse)
		})
	}
}

func TestLibrary(t *testing.T) {
	lib := course.NewLibrary()

	t.Run("has the built-in course", func(t *testing.T) {
		all := lib.All()
		require.Len(t, all, 1)
		assert.Equal(t, "Bloomington Country Club", lib.Default().Name)

		c, err := lib.Get("Bloomington Country Club")
		require.NoError(t, err)
		assert.Equal(t, "White", c.DefaultTee)
	})

	t.Run("unknown course", func(t *testing.T) {
		_, err := lib.Get("Augusta")
		assert.ErrorIs(t, err, course.ErrCourseNotFound)
	})

	t.Run("rejects invalid course", func(t *testing.T) {
		bad := course.Bloomington()
		bad.Name = "Broken"
		bad.Holes = bad.Holes[:9]
		assert.ErrorIs(t, lib.Add(bad), course.ErrInvalidCourse)
		assert.Len(t, lib.All(), 1)
	})

	t.Run("normalizes hole order", func(t *testing.T) {
		c := course.Bloomington()
		c.Name = "Reversed"
		for i, j := 0, len(c.Holes)-1; i < j; i, j = i+1, j-1 {
			c.Holes[i], c.Holes[j] = c.Holes[j], c.Holes[i]
		}
		require.NoError(t, lib.Add(c))
		got, err := lib.Get("Reversed")
		require.NoError(t, err)
		assert.Equal(t, 1, got.Holes[0].Number)
		assert.Equal(t, 7, got.Holes[0].Rank)
	})
}

const yamlCourse = `name: Pine Valley Nine Twice
default_tee: Back
tees:
  - name: Back
    rating: 70.1
    slope: 128
holes:
  - {number: 1, par: 4, rank: 1}
  - {number: 2, par: 4, rank: 2}
  - {number: 3, par: 3, rank: 3}
  - {number: 4, par: 5, rank: 4}
  - {number: 5, par: 4, rank: 5}
  - {number: 6, par: 4, rank: 6}
  - {number: 7, par: 3, rank: 7}
  - {number: 8, par: 5, rank: 8}
  - {number: 9, par: 4, rank: 9}
  - {number: 10, par: 4, rank: 10}
  - {number: 11, par: 4, rank: 11}
  - {number: 12, par: 3, rank: 12}
  - {number: 13, par: 5, rank: 13}
  - {number: 14, par: 4, rank: 14}
  - {number: 15, par: 4, rank: 15}
  - {number: 16, par: 3, rank: 16}
  - {number: 17, par: 5, rank: 17}
  - {number: 18, par: 4, rank: 18}
`

func TestLibrary_LoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pine.yaml"), []byte(yamlCourse), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`{"name": "Broken", "holes": []}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	lib := course.NewLibrary()
	loaded, err := lib.LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded)

	c, err := lib.Get("Pine Valley Nine Twice")
	require.NoError(t, err)
	assert.Equal(t, 72, c.Par())
	require.NotNil(t, c.Tees[0].Slope)
	assert.Equal(t, 128, *c.Tees[0].Slope)

	_, err = lib.Get("Broken")
	assert.ErrorIs(t, err, course.ErrCourseNotFound)
}

func TestLibrary_LoadFileJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "copy.json")
	body := `{"name":"Json Links","default_tee":"Blue","tees":[{"name":"Blue"}],"holes":[` +
		`{"number":1,"par":4,"rank":18},{"number":2,"par":4,"rank":17},{"number":3,"par":4,"rank":16},` +
		`{"number":4,"par":4,"rank":15},{"number":5,"par":4,"rank":14},{"number":6,"par":4,"rank":13},` +
		`{"number":7,"par":4,"rank":12},{"number":8,"par":4,"rank":11},{"number":9,"par":4,"rank":10},` +
		`{"number":10,"par":4,"rank":9},{"number":11,"par":4,"rank":8},{"number":12,"par":4,"rank":7},` +
		`{"number":13,"par":4,"rank":6},{"number":14,"par":4,"rank":5},{"number":15,"par":4,"rank":4},` +
		`{"number":16,"par":4,"rank":3},{"number":17,"par":4,"rank":2},{"number":18,"par":4,"rank":1}]}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	lib := course.NewLibrary()
	c, err := lib.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 18, c.Rank(1))
	assert.Len(t, lib.All(), 2)
}
