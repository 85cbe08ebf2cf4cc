package renderer

import "time"

// RenderStats contains statistics about a render
type RenderStats struct {
	TotalPixels int           // Number of pixels in the image
	Rays        int           // Rays actually cast
	Hits        int           // Rays that hit an object
	Misses      int           // Rays that fell through to the background
	Duration    time.Duration // Wall time of the render
}

func (s *RenderStats) record(isHit bool) {
	s.Rays++
	if isHit {
		s.Hits++
	} else {
		s.Misses++
	}
}

// Coverage returns the fraction of cast rays that hit something
func (s RenderStats) Coverage() float64 {
	if s.Rays == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Rays)
}
