package starfield

import (
	"math"
	"math/rand/v2"
)

const (
	// streakChance is the per-frame probability of a new shooting star.
	streakChance = 0.005
	streakWidth  = 2.0
	streakHead   = 1.5
)

// Streak is a shooting star. It is advanced by the main loop and dropped
// once its head leaves the surface.
type Streak struct {
	OriginX, OriginY float64
	Angle            float64
	Length           float64
	Speed            float64
	Progress         float64
}

func spawnStreak(w float64, rng *rand.Rand) Streak {
	return Streak{
		OriginX: rng.Float64() * w,
		Length:  between(rng, 40, 120),
		Speed:   between(rng, 5, 15),
		Angle:   between(rng, math.Pi/8, 3*math.Pi/8),
	}
}

func (s *Streak) head() (x, y float64) {
	return s.OriginX + s.Progress*math.Cos(s.Angle), s.OriginY + s.Progress*math.Sin(s.Angle)
}

// advance moves the streak one frame and reports whether it is still visible.
func (s *Streak) advance(w, h float64) bool {
	s.Progress += s.Speed
	x, y := s.head()
	return x <= w && y <= h
}

func (s *Streak) draw(dst Surface) {
	x, y := s.head()
	tailX := x - s.Length*math.Cos(s.Angle)
	tailY := y - s.Length*math.Sin(s.Angle)

	dst.StrokeLine(tailX, tailY, x, y, streakWidth, Linear(tailX, tailY, x, y,
		Stop{Offset: 0, Color: Transparent},
		Stop{Offset: 0.3, Color: violet.WithAlpha(0.8)},
		Stop{Offset: 0.7, Color: indigo.WithAlpha(0.9)},
		Stop{Offset: 1, Color: white},
	))
	dst.FillCircle(x, y, streakHead, Solid(white))
}
