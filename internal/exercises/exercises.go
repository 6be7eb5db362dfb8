package exercises

import "sort"

// Exercise describes one supported exercise and what the analysis
// pipeline evaluates about it.
type Exercise struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	MuscleGroup string   `json:"muscleGroup"`
	CameraView  string   `json:"cameraView"`
	Aspects     []string `json:"aspects"`
}

// MuscleGroup is a named group of exercises.
type MuscleGroup struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Exercises []string `json:"exercises"`
}

// UnknownMuscleGroup is assigned when an exercise id is not in the registry.
const UnknownMuscleGroup = "unknown"

var muscleGroups = map[string]MuscleGroup{
	"chest":     {ID: "chest", Name: "Chest", Exercises: []string{"bench_press", "incline_bench_press", "push_up"}},
	"shoulders": {ID: "shoulders", Name: "Shoulders", Exercises: []string{"overhead_press", "lateral_raise", "arnold_press"}},
	"legs":      {ID: "legs", Name: "Legs", Exercises: []string{"squat", "lunge", "bulgarian_split_squat", "romanian_deadlift"}},
	"back":      {ID: "back", Name: "Back", Exercises: []string{"pull_up", "barbell_row", "deadlift"}},
}

var registry = map[string]Exercise{
	"bench_press": {
		ID: "bench_press", Name: "Bench Press", MuscleGroup: "chest", CameraView: "side",
		Aspects: []string{"Bar path", "Elbow angle", "Arch position", "Grip width"},
	},
	"incline_bench_press": {
		ID: "incline_bench_press", Name: "Incline Bench Press", MuscleGroup: "chest", CameraView: "side",
		Aspects: []string{"Bar path", "Elbow angle", "Bench angle", "Grip width"},
	},
	"push_up": {
		ID: "push_up", Name: "Push-up", MuscleGroup: "chest", CameraView: "side",
		Aspects: []string{"Body alignment", "Elbow angle", "Depth", "Hand placement"},
	},
	"overhead_press": {
		ID: "overhead_press", Name: "Overhead Press", MuscleGroup: "shoulders", CameraView: "any",
		Aspects: []string{"Bar path", "Back lean", "Lockout", "Elbow position"},
	},
	"lateral_raise": {
		ID: "lateral_raise", Name: "Lateral Raise", MuscleGroup: "shoulders", CameraView: "any",
		Aspects: []string{"Arm angle", "Shoulder height", "Body swing", "Elbow bend"},
	},
	"arnold_press": {
		ID: "arnold_press", Name: "Arnold Press", MuscleGroup: "shoulders", CameraView: "front",
		Aspects: []string{"Rotation path", "Elbow position", "Lockout", "Posture"},
	},
	"squat": {
		ID: "squat", Name: "Squat", MuscleGroup: "legs", CameraView: "side",
		Aspects: []string{"Knee alignment", "Depth", "Back angle", "Hip hinge"},
	},
	"lunge": {
		ID: "lunge", Name: "Lunge", MuscleGroup: "legs", CameraView: "side",
		Aspects: []string{"Front knee depth", "Torso position", "Back knee", "Stride"},
	},
	"bulgarian_split_squat": {
		ID: "bulgarian_split_squat", Name: "Bulgarian Split Squat", MuscleGroup: "legs", CameraView: "side",
		Aspects: []string{"Knee tracking", "Torso position", "Depth", "Balance"},
	},
	"romanian_deadlift": {
		ID: "romanian_deadlift", Name: "Romanian Deadlift", MuscleGroup: "legs", CameraView: "side",
		Aspects: []string{"Hip hinge", "Back position", "Knee bend", "Bar path"},
	},
	"pull_up": {
		ID: "pull_up", Name: "Pull-up", MuscleGroup: "back", CameraView: "any",
		Aspects: []string{"Full extension", "Chin over bar", "Body swing", "Grip"},
	},
	"barbell_row": {
		ID: "barbell_row", Name: "Barbell Row", MuscleGroup: "back", CameraView: "side",
		Aspects: []string{"Back angle", "Elbow path", "Hip hinge", "Bar path"},
	},
	"deadlift": {
		ID: "deadlift", Name: "Deadlift", MuscleGroup: "back", CameraView: "side",
		Aspects: []string{"Back position", "Hip hinge", "Bar path", "Lockout"},
	},
}

// Lookup returns the exercise for an id.
func Lookup(id string) (Exercise, bool) {
	e, ok := registry[id]
	return e, ok
}

// MuscleGroupFor returns the muscle group for an exercise id, or
// UnknownMuscleGroup for ids not in the registry. Unknown ids are still
// accepted by the analysis pipeline; the ML service reports them as
// unsupported in its feedback.
func MuscleGroupFor(exerciseID string) string {
	if e, ok := registry[exerciseID]; ok {
		return e.MuscleGroup
	}
	return UnknownMuscleGroup
}

// All returns every registered exercise, sorted by id.
func All() []Exercise {
	out := make([]Exercise, 0, len(registry))
	for _, e := range registry {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Groups returns every muscle group, sorted by id.
func Groups() []MuscleGroup {
	out := make([]MuscleGroup, 0, len(muscleGroups))
	for _, g := range muscleGroups {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
