package model

// Heuristic selects the secondary sort key used to order parcels before
// constructive placement. It is a finite tagged variant; dispatch is by
// explicit switch on the tag, never reflection.
type Heuristic int

const (
	// HeuristicVolume orders parcels by descending lx*ly*lz.
	HeuristicVolume Heuristic = iota
	// HeuristicLongestSide orders parcels by descending max(lx, ly, lz).
	HeuristicLongestSide
	// HeuristicArea orders parcels by descending base area lx*ly.
	HeuristicArea
	// HeuristicHeight orders parcels by descending lz.
	HeuristicHeight
)

func (h Heuristic) String() string {
	switch h {
	case HeuristicVolume:
		return "volume"
	case HeuristicLongestSide:
		return "longest_side"
	case HeuristicArea:
		return "area"
	case HeuristicHeight:
		return "height"
	default:
		return "unknown"
	}
}

// Key returns the scalar projection of a parcel's original (unrotated)
// dimensions used for descending-order comparison under this heuristic.
func (h Heuristic) Key(p Parcel) int {
	switch h {
	case HeuristicLongestSide:
		m := p.Length
		if p.Width > m {
			m = p.Width
		}
		if p.Height > m {
			m = p.Height
		}
		return m
	case HeuristicArea:
		return p.Length * p.Width
	case HeuristicHeight:
		return p.Height
	default: // HeuristicVolume
		return p.Length * p.Width * p.Height
	}
}

// Options are the solver's recognized knobs: the secondary sort heuristic,
// whether delivery-zone constraints are enforced, and a verbose flag
// affecting diagnostics only, never the result.
type Options struct {
	Heuristic    Heuristic
	ZonesEnabled bool
	Verbose      bool
}

// DefaultOptions returns the volume heuristic with zones enabled and
// diagnostics off.
func DefaultOptions() Options {
	return Options{
		Heuristic:    HeuristicVolume,
		ZonesEnabled: true,
		Verbose:      false,
	}
}
