package camera

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl32"
)

// Keyframe is a camera pose at a point in time, in seconds.
type Keyframe struct {
	Time     float32
	Position mgl32.Vec3
	Target   mgl32.Vec3
}

// Path is a scripted camera flight through keyframes.
type Path struct {
	keys []Keyframe
}

// NewPath creates a path. Keyframes are sorted by time.
func NewPath(keys ...Keyframe) *Path {
	sorted := append([]Keyframe(nil), keys...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	return &Path{keys: sorted}
}

// Duration returns the time of the last keyframe.
func (p *Path) Duration() float32 {
	if len(p.keys) == 0 {
		return 0
	}
	return p.keys[len(p.keys)-1].Time
}

// Sample interpolates position and target at time t. Times before the
// first or after the last keyframe hold the end pose. ok is false for an
// empty path.
func (p *Path) Sample(t float32) (position, target mgl32.Vec3, ok bool) {
	n := len(p.keys)
	if n == 0 {
		return mgl32.Vec3{}, mgl32.Vec3{}, false
	}
	if t <= p.keys[0].Time {
		return p.keys[0].Position, p.keys[0].Target, true
	}
	if t >= p.keys[n-1].Time {
		return p.keys[n-1].Position, p.keys[n-1].Target, true
	}

	i := sort.Search(n, func(i int) bool { return p.keys[i].Time > t })
	a, b := p.keys[i-1], p.keys[i]
	f := (t - a.Time) / (b.Time - a.Time)
	return lerp(a.Position, b.Position, f), lerp(a.Target, b.Target, f), true
}

func lerp(a, b mgl32.Vec3, f float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(f))
}

// PathPlayer flies an FPSCamera along a Path.
type PathPlayer struct {
	path    *Path
	elapsed float32
	playing bool
}

// NewPathPlayer creates a stopped player for path.
func NewPathPlayer(path *Path) *PathPlayer {
	return &PathPlayer{path: path}
}

// Toggle starts the flight from the beginning, or stops a running one.
func (pp *PathPlayer) Toggle() {
	pp.playing = !pp.playing
	pp.elapsed = 0
}

// Playing reports whether the player is driving the camera.
func (pp *PathPlayer) Playing() bool {
	return pp.playing
}

// Update advances the flight by dt seconds and poses cam. It stops after
// the last keyframe and returns whether it is still playing.
func (pp *PathPlayer) Update(cam *FPSCamera, dt float32) bool {
	if !pp.playing {
		return false
	}
	pp.elapsed += dt
	pos, target, ok := pp.path.Sample(pp.elapsed)
	if !ok {
		pp.playing = false
		return false
	}
	cam.Position = pos
	cam.LookAt(target)
	if pp.elapsed >= pp.path.Duration() {
		pp.playing = false
	}
	return pp.playing
}

// CirclePath circles center at radius, height above it, looking at
// center. It returns to the start after duration seconds. steps below 3
// are raised to 3.
func CirclePath(center mgl32.Vec3, radius, height, duration float32, steps int) *Path {
	steps = max(steps, 3)
	keys := make([]Keyframe, 0, steps+1)
	for i := 0; i <= steps; i++ {
		f := float32(i) / float32(steps)
		s, c := math.Sincos(2 * math.Pi * float64(f))
		keys = append(keys, Keyframe{
			Time:     f * duration,
			Position: center.Add(mgl32.Vec3{radius * float32(c), height, radius * float32(s)}),
			Target:   center,
		})
	}
	return NewPath(keys...)
}
