package villagers

type Hobby string

const (
	HobbyEducation Hobby = "Education"
	HobbyFitness   Hobby = "Fitness"
	HobbyFashion   Hobby = "Fashion"
	HobbyNature    Hobby = "Nature"
	HobbyPlay      Hobby = "Play"
	HobbyMusic     Hobby = "Music"
)

// Hobbies is the display order used by NamesByHobby.
var Hobbies = []Hobby{
	HobbyEducation,
	HobbyFitness,
	HobbyFashion,
	HobbyNature,
	HobbyPlay,
	HobbyMusic,
}

// hobbyPosition returns the position of h in Hobbies or -1 when h is not a
// known category.
func hobbyPosition(h string) int {
	for i, hobby := range Hobbies {
		if string(hobby) == h {
			return i
		}
	}
	return -1
}
