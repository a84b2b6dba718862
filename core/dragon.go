package core

// Dragons is an alias type for a slice of Dragon
type Dragons = []Dragon

// Dragon is an entity identified by its name within a realm.
type Dragon struct {
	Name DragonNameString
}

// BuildDragon creates a new Dragon.
func BuildDragon(name DragonNameString) Dragon {
	return Dragon{Name: name}
}

// DragonNames returns the names of the dragons in their original order.
func DragonNames(dragons Dragons) []DragonNameString {
	names := make([]DragonNameString, 0, len(dragons))
	for _, dragon := range dragons {
		names = append(names, dragon.Name)
	}

	return names
}
