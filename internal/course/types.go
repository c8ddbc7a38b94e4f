package course

// HolesPerRound is the number of holes every course must define.
const HolesPerRound = 18

// HoleInfo describes a single hole. Rank is the stroke index, 1 = hardest.
type HoleInfo struct {
	Number   int            `json:"number" yaml:"number"`
	Par      int            `json:"par" yaml:"par"`
	Rank     int            `json:"rank" yaml:"rank"`
	Yardages map[string]int `json:"yardages,omitempty" yaml:"yardages,omitempty"`
}

// TeeSet is a named set of tee boxes with optional rating and slope.
type TeeSet struct {
	Name   string   `json:"name" yaml:"name"`
	Rating *float64 `json:"rating,omitempty" yaml:"rating,omitempty"`
	Slope  *int     `json:"slope,omitempty" yaml:"slope,omitempty"`
}

// Course is an 18-hole layout. Treat it as immutable once validated.
type Course struct {
	Name       string     `json:"name" yaml:"name"`
	Holes      []HoleInfo `json:"holes" yaml:"holes"`
	Tees       []TeeSet   `json:"tees" yaml:"tees"`
	DefaultTee string     `json:"default_tee" yaml:"default_tee"`
}
