package course

// Bloomington returns the built-in Bloomington Country Club layout.
// Yardages are placeholders per tee.
func Bloomington() Course {
	pars := []int{4, 4, 4, 4, 4, 4, 4, 3, 4, 4, 4, 3, 4, 4, 5, 4, 3, 5}
	ranks := []int{7, 11, 15, 3, 13, 1, 5, 17, 9, 6, 14, 18, 4, 8, 2, 12, 10, 16}

	holes := make([]HoleInfo, HolesPerRound)
	for i := range holes {
		holes[i] = HoleInfo{
			Number: i + 1,
			Par:    pars[i],
			Rank:   ranks[i],
			Yardages: map[string]int{
				"White": 350,
				"Blue":  370,
				"Gold":  330,
			},
		}
	}

	return Course{
		Name:  "Bloomington Country Club",
		Holes: holes,
		Tees: []TeeSet{
			{Name: "White", Rating: ptr(69.5), Slope: ptr(125)},
			{Name: "Blue", Rating: ptr(71.2), Slope: ptr(130)},
			{Name: "Gold", Rating: ptr(68.0), Slope: ptr(120)},
		},
		DefaultTee: "White",
	}
}

func ptr[T any](v T) *T {
	return &v
}
