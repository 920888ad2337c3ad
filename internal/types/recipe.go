package types

// Goal is the dietary objective that shapes recipe and coaching content.
type Goal string

const (
	GoalPCOSFriendly Goal = "pcos_friendly"
	GoalWeightLoss   Goal = "weight_loss"
	GoalHighProtein  Goal = "high_protein"
	GoalBalanced     Goal = "balanced"
)

// DefaultGoal applies when a request or profile omits the goal.
const DefaultGoal = GoalPCOSFriendly

// Diet is the food restriction category.
type Diet string

const (
	DietVegetarian Diet = "vegetarian"
	DietVegan      Diet = "vegan"
	DietNonVeg     Diet = "non_veg"
)

// DefaultDiet applies when a request or profile omits the diet.
const DefaultDiet = DietVegetarian

// OrDefault substitutes DefaultGoal for an empty goal.
func (g Goal) OrDefault() Goal {
	if g == "" {
		return DefaultGoal
	}
	return g
}

// OrDefault substitutes DefaultDiet for an empty diet.
func (d Diet) OrDefault() Diet {
	if d == "" {
		return DefaultDiet
	}
	return d
}

// Label returns the human-readable form used in prompts and fallback
// recipes. Unknown goals read as balanced.
func (g Goal) Label() string {
	switch g {
	case GoalPCOSFriendly:
		return "PCOS-friendly"
	case GoalWeightLoss:
		return "light & weight-friendly"
	case GoalHighProtein:
		return "high-protein"
	default:
		return "balanced"
	}
}

// Label returns the human-readable form of the diet. Unknown diets read as
// non-vegetarian.
func (d Diet) Label() string {
	switch d {
	case DietVegetarian:
		return "vegetarian"
	case DietVegan:
		return "vegan"
	default:
		return "non-vegetarian"
	}
}

// Nutrition holds approximate macros for a single recipe.
type Nutrition struct {
	Calories float64  `json:"calories"`
	ProteinG float64  `json:"protein_g"`
	CarbsG   float64  `json:"carbs_g"`
	FatG     float64  `json:"fat_g"`
	Tags     []string `json:"tags"`
}

// Recipe is a single suggestion. IDs are unique within one response only;
// a new generation replaces the whole working set.
type Recipe struct {
	ID              int       `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	IngredientsList []string  `json:"ingredientsList"`
	Steps           []string  `json:"steps"`
	ApproxTimeMins  int       `json:"approxTimeMins"`
	Nutrition       Nutrition `json:"nutrition"`
}

// CoachReply is the coach endpoint's response body.
type CoachReply struct {
	Reply string   `json:"reply"`
	Tips  []string `json:"tips"`
}

// Profile is the client-owned durable profile record.
type Profile struct {
	Diet      Diet   `json:"diet"`
	Goal      Goal   `json:"goal"`
	Allergies string `json:"allergies"`
}

// DefaultProfile returns the profile used before the user customises one.
func DefaultProfile() Profile {
	return Profile{Diet: DefaultDiet, Goal: DefaultGoal}
}

// Chat message senders.
const (
	FromUser = "user"
	FromBot  = "bot"
)

// ChatMessage is one entry of the coach chat transcript.
type ChatMessage struct {
	From string `json:"from"`
	Text string `json:"text"`
}
