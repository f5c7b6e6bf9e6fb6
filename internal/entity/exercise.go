package entity

type Exercise struct {
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
	Sets        string `json:"sets"`
}

// exercisesByArea holds one targeted template per body area. Keys cover
// both detected pain areas and catalog test areas.
var exercisesByArea = map[string][]Exercise{
	"neck": {
		{
			Name:        "Gentle Neck Stretches",
			Duration:    "3 minutes",
			Description: "Slowly stretch in all directions",
			Sets:        "Hold each direction 30 seconds",
		},
	},
	"shoulder": {
		{
			Name:        "Cross-Body Shoulder Stretch",
			Duration:    "2 minutes",
			Description: "Gentle stretch to improve mobility",
			Sets:        "4 holds per arm",
		},
	},
	"lower_back": {
		{
			Name:        "Knee-to-Chest Stretch",
			Duration:    "3 minutes",
			Description: "Ease tension in the lower back",
			Sets:        "Hold 30 seconds per leg",
		},
	},
	"hip": {
		{
			Name:        "90/90 Hip Switches",
			Duration:    "3 minutes",
			Description: "Seated rotations through both hips",
			Sets:        "10 slow reps per side",
		},
	},
	"knee": {
		{
			Name:        "Terminal Knee Extensions",
			Duration:    "2 minutes",
			Description: "Controlled straightening against a light band",
			Sets:        "15 reps per leg",
		},
	},
	"ankle": {
		{
			Name:        "Wall Ankle Mobilizations",
			Duration:    "2 minutes",
			Description: "Drive the knee over the toes toward a wall",
			Sets:        "12 reps per side",
		},
	},
	"spine": {
		{
			Name:        "Cat-Cow Flow",
			Duration:    "3 minutes",
			Description: "Segmental rounding and arching",
			Sets:        "10 slow cycles",
		},
	},
	"jaw": {
		{
			Name:        "Controlled Jaw Openings",
			Duration:    "2 minutes",
			Description: "Slow open and close with tongue on palate",
			Sets:        "10 gentle reps",
		},
	},
	"functional": {
		{
			Name:        "Bodyweight Squat Practice",
			Duration:    "4 minutes",
			Description: "Groove the squat pattern with heels down",
			Sets:        "2 sets of 8",
		},
	},
}

// DefaultExercises is the fallback routine when no problem area was
// identified.
var DefaultExercises = []Exercise{
	{
		Name:        "Daily Movement Flow",
		Duration:    "5 minutes",
		Description: "Gentle full-body movement",
		Sets:        "1 flow",
	},
}

func ExercisesForArea(area string) []Exercise {
	return exercisesByArea[area]
}
