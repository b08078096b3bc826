package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dreamscene/internal/entity"
	"dreamscene/internal/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotFormat(t *testing.T) {
	e := entity.New("hero", "human", "body")
	e.Transform = entity.Transform{
		Position: geom.Vec3{X: 1, Y: 2, Z: 3},
		Scale:    geom.Vec3{X: 2, Y: 2, Z: 2},
	}
	when := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	s := Snapshot([]*entity.Entity{e}, 0x112233, when)
	assert.Equal(t, "2026-08-30T12:00:00Z", s.Timestamp)
	assert.Equal(t, "#112233", s.Background)
	require.Len(t, s.Objects, 1)
	assert.Equal(t, "hero", s.Objects[0].Name)
	assert.Equal(t, float32(3), s.Objects[0].Position.Z)
	assert.Equal(t, float32(2), s.Objects[0].Scale.Y)
}

func TestBackgroundZeroPadded(t *testing.T) {
	s := Snapshot(nil, 0xFF, time.Now())
	assert.Equal(t, "#0000FF", s.Background)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenes", "out.json")
	s := Snapshot(nil, 0xCCCCCC, time.Now())
	require.NoError(t, Save(path, s))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var back Scene
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, "#CCCCCC", back.Background)
}
