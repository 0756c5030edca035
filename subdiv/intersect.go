package subdiv

import (
	"sort"

	"github.com/go-dcel/subdivision/geom"
)

// event is one subdivision parameter along a segment, paired with the raw
// (pre-canonicalization) point at that parameter.
type event struct {
	t float64
	p geom.PointD
}

// computeEvents is a quadratic all-pairs fallback to a design-level sweep
// line, appropriate for the input sizes this module is exercised on. For
// every pair of segments it classifies them and
// folds any intersection/touch/collinear-overlap points into both segments'
// event lists, then sorts and merges each list under eps.
func computeEvents(segments []geom.SegmentD, eps float64) [][]geom.PointD {
	events := make([][]event, len(segments))
	for i, s := range segments {
		events[i] = []event{{t: 0, p: s.Start}, {t: 1, p: s.End}}
	}

	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			res := geom.Classify(segments[i], segments[j], eps)
			switch res.Kind {
			case geom.IntersectWithin, geom.EndpointTouch:
				events[i] = append(events[i], event{t: paramOnSegment(segments[i], res.Point), p: res.Point})
				events[j] = append(events[j], event{t: paramOnSegment(segments[j], res.Point), p: res.Point})
			case geom.Collinear:
				for _, pt := range [2]geom.PointD{res.OverlapStart, res.OverlapEnd} {
					events[i] = append(events[i], event{t: paramOnSegment(segments[i], pt), p: pt})
					events[j] = append(events[j], event{t: paramOnSegment(segments[j], pt), p: pt})
				}
			}
		}
	}

	out := make([][]geom.PointD, len(segments))
	for i, list := range events {
		out[i] = mergeEvents(list, eps)
	}
	return out
}

// paramOnSegment projects p onto seg and returns its parameter. p is assumed
// to already lie on (or within eps of) the line through seg; this is only
// ever called with points Classify itself produced.
func paramOnSegment(seg geom.SegmentD, p geom.PointD) float64 {
	v := seg.Vector()
	lenSq := v.LengthSquared()
	if lenSq == 0 {
		return 0
	}
	return p.Sub(seg.Start).Dot(v) / lenSq
}

// mergeEvents sorts events by parameter and merges any whose points lie
// within eps of each other (Euclidean), guaranteeing strictly increasing
// output parameters with no zero-length gaps.
func mergeEvents(list []event, eps float64) []geom.PointD {
	sort.Slice(list, func(i, j int) bool { return list[i].t < list[j].t })

	merged := make([]geom.PointD, 0, len(list))
	merged = append(merged, list[0].p)
	for _, e := range list[1:] {
		last := merged[len(merged)-1]
		if last.Sub(e.p).Length() <= eps {
			continue
		}
		merged = append(merged, e.p)
	}
	// A single surviving point means the segment collapsed entirely under
	// eps; the builder drops it when forming sub-segments.
	return merged
}
