package catalog

import (
	"fmt"
	"strings"
)

type BodyPart string

const (
	Chest     BodyPart = "Chest"
	Back      BodyPart = "Back"
	Legs      BodyPart = "Legs"
	Shoulders BodyPart = "Shoulders"
	Arms      BodyPart = "Arms"
	Abs       BodyPart = "Abs"
)

func (b BodyPart) IsValid() bool {
	switch b {
	case Chest, Back, Legs, Shoulders, Arms, Abs:
		return true
	default:
		return false
	}
}

// Exercise is immutable reference data; identity is ID.
type Exercise struct {
	ID       string
	Name     string
	BodyPart BodyPart
	Image    string
}

// UnknownExerciseName is shown for log entries whose exercise id is not in the table.
const UnknownExerciseName = "Unknown Exercise"

var bodyParts = []BodyPart{Chest, Back, Legs, Shoulders, Arms, Abs}

const imgBase = "https://images.unsplash.com/"
const imgQuery = "?auto=format&fit=crop&w=400&q=80"

var exercises = []Exercise{
	{ID: "chest_1", Name: "Barbell Bench Press", BodyPart: Chest, Image: imgBase + "photo-1571019614242-c5c5dee9f50b" + imgQuery},
	{ID: "chest_2", Name: "Incline Dumbbell Press", BodyPart: Chest, Image: imgBase + "photo-1581009146145-b5ef050c2e1e" + imgQuery},
	{ID: "chest_3", Name: "Chest Flyes", BodyPart: Chest, Image: imgBase + "photo-1541534741688-6078c6bfb5c5" + imgQuery},

	{ID: "back_1", Name: "Deadlift", BodyPart: Back, Image: imgBase + "photo-1534438327276-14e5300c3a48" + imgQuery},
	{ID: "back_2", Name: "Pull Ups", BodyPart: Back, Image: imgBase + "photo-1598971639058-aba3c1f0b27e" + imgQuery},
	{ID: "back_3", Name: "Lat Pulldowns", BodyPart: Back, Image: imgBase + "photo-1605296867304-46d5465a13f1" + imgQuery},

	{ID: "legs_1", Name: "Back Squats", BodyPart: Legs, Image: imgBase + "photo-1574680096145-d05b474e2158" + imgQuery},
	{ID: "legs_2", Name: "Leg Press", BodyPart: Legs, Image: imgBase + "photo-1583454110551-21f2fa2afe61" + imgQuery},
	{ID: "legs_3", Name: "Leg Curls", BodyPart: Legs, Image: imgBase + "photo-1517836357463-d25dfeac3438" + imgQuery},

	{ID: "shoulders_1", Name: "Overhead Press", BodyPart: Shoulders, Image: imgBase + "photo-1541534401786-2077dee47a1b" + imgQuery},
	{ID: "shoulders_2", Name: "Lateral Raises", BodyPart: Shoulders, Image: imgBase + "photo-1532029831909-d41967280373" + imgQuery},

	{ID: "arms_1", Name: "Bicep Curls", BodyPart: Arms, Image: imgBase + "photo-1581009146145-b5ef050c2e1e" + imgQuery},
	{ID: "arms_2", Name: "Tricep Pushdowns", BodyPart: Arms, Image: imgBase + "photo-1594737625785-a6bad33ff0fd" + imgQuery},

	{ID: "abs_1", Name: "Plank", BodyPart: Abs, Image: imgBase + "photo-1571019613454-1cb2f99b2d8b" + imgQuery},
	{ID: "abs_2", Name: "Crunches", BodyPart: Abs, Image: imgBase + "photo-1517838277536-f5f99be501cd" + imgQuery},
}

// BodyParts returns the closed set of body parts in display order.
func BodyParts() []BodyPart {
	out := make([]BodyPart, len(bodyParts))
	copy(out, bodyParts)
	return out
}

func Exercises() []Exercise {
	out := make([]Exercise, len(exercises))
	copy(out, exercises)
	return out
}

// ForBodyPart returns the exercises tagged with bp, in table order.
func ForBodyPart(bp BodyPart) []Exercise {
	var out []Exercise
	for _, ex := range exercises {
		if ex.BodyPart == bp {
			out = append(out, ex)
		}
	}
	return out
}

func Find(id string) (Exercise, bool) {
	for _, ex := range exercises {
		if ex.ID == id {
			return ex, true
		}
	}
	return Exercise{}, false
}

func ExerciseName(id string) string {
	if ex, ok := Find(id); ok {
		return ex.Name
	}
	return UnknownExerciseName
}

// ParseBodyPart matches input case-insensitively against the closed set.
func ParseBodyPart(input string) (BodyPart, error) {
	s := strings.TrimSpace(input)
	for _, bp := range bodyParts {
		if strings.EqualFold(s, string(bp)) {
			return bp, nil
		}
	}
	return "", fmt.Errorf("invalid body part: %q", input)
}
