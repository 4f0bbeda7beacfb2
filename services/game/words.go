package game

import "math/rand"

// Word pools per topic. Kept small on purpose, the frontend offers the
// same fixed topic list.
var topicWords = map[string][]string{
	"animals": {
		"elephant", "crocodile", "penguin", "dolphin", "kangaroo",
		"flamingo", "hedgehog", "octopus", "chameleon", "armadillo",
		"porcupine", "salamander", "mongoose", "pelican",
	},
	"food": {
		"lasagna", "croissant", "guacamole", "pancake", "meatball",
		"omelette", "gazpacho", "tortilla", "cheesecake", "paella",
		"empanada", "carbonara", "milanesa", "brownie",
	},
	"sports": {
		"badminton", "volleyball", "waterpolo", "taekwondo", "snowboard",
		"marathon", "handball", "triathlon", "climbing", "fencing",
		"rowing", "karate", "cycling", "surfing",
	},
	"places": {
		"lighthouse", "aquarium", "cathedral", "vineyard", "observatory",
		"campsite", "carnival", "monastery", "waterfall", "amphitheater",
		"boulevard", "courtyard", "harbor", "glacier",
	},
	"objects": {
		"umbrella", "telescope", "typewriter", "hourglass", "candlestick",
		"compass", "thermometer", "microscope", "harmonica", "chandelier",
		"binoculars", "stapler", "lantern", "accordion",
	},
	"professions": {
		"firefighter", "astronaut", "carpenter", "librarian", "locksmith",
		"paramedic", "beekeeper", "architect", "plumber", "magician",
		"translator", "lifeguard", "composer", "surgeon",
	},
}

// Topics lists the available topic names
func Topics() []string {
	topics := make([]string, 0, len(topicWords))
	for t := range topicWords {
		topics = append(topics, t)
	}
	return topics
}

// TopicExists reports whether we have a word pool for the topic
func TopicExists(topic string) bool {
	_, ok := topicWords[topic]
	return ok
}

// PickWord picks a random secret word for a topic and returns the whole
// pool so a decoy can be chosen from it
func PickWord(topic string) (string, []string, error) {
	pool, ok := topicWords[topic]
	if !ok {
		return "", nil, ErrUnknownTopic
	}
	return pool[rand.Intn(len(pool))], pool, nil
}
