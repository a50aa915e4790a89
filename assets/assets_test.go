package assets

import (
	"testing"

	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
)

// TestMustLoadCourses verifies the authored courses parse with their
// object groups intact and in lexical order.
func TestMustLoadCourses(t *testing.T) {
	loader := NewCourseLoader()
	courses := loader.MustLoadCourses()

	if len(courses) != 2 {
		t.Fatalf("loaded %d courses, want 2", len(courses))
	}
	if courses[0].Name != "river01" {
		t.Errorf("first course = %q, want river01", courses[0].Name)
	}
	if courses[1].Name != "river02" {
		t.Errorf("second course = %q, want river02", courses[1].Name)
	}
}

// TestCourseContents verifies the parsed fields of the first course.
func TestCourseContents(t *testing.T) {
	loader := NewCourseLoader()
	course := loader.MustLoadCourse("courses/river01.tmx")

	if course.Width != 480 || course.Height != 1792 {
		t.Errorf("dimensions = %dx%d, want 480x1792", course.Width, course.Height)
	}
	if course.FrogSpawn.X != 240 || course.FrogSpawn.Y != 56 {
		t.Errorf("frog spawn = (%v, %v), want (240, 56)", course.FrogSpawn.X, course.FrogSpawn.Y)
	}
	if course.GoalY != 1720 {
		t.Errorf("goal = %v, want 1720", course.GoalY)
	}
	if len(course.Pads) != 25 {
		t.Errorf("pad count = %d, want 25", len(course.Pads))
	}
	if len(course.Hazards) != 4 {
		t.Errorf("hazard count = %d, want 4", len(course.Hazards))
	}
	if len(course.Collectibles) != 4 {
		t.Errorf("collectible count = %d, want 4", len(course.Collectibles))
	}
}

// TestCourseKindMapping verifies object types resolve to the right
// tuning kinds, including the anchored flag and travel direction.
func TestCourseKindMapping(t *testing.T) {
	loader := NewCourseLoader()
	course := loader.MustLoadCourse("courses/river01.tmx")

	if course.Pads[0].Kind != cfg.PadNormal {
		t.Errorf("start pad kind = %v, want PadNormal", course.Pads[0].Kind)
	}

	kinds := make(map[cfg.PadKind]int)
	for _, p := range course.Pads {
		kinds[p.Kind]++
	}
	if kinds[cfg.PadMoving] == 0 {
		t.Error("no drifter pads parsed")
	}
	if kinds[cfg.PadCarrier] == 0 {
		t.Error("no raft pads parsed")
	}
	if kinds[cfg.PadLaunch] != 1 {
		t.Errorf("springpad count = %d, want 1", kinds[cfg.PadLaunch])
	}

	snake := course.Hazards[0]
	if snake.Kind != cfg.HazardSnake {
		t.Fatalf("first hazard kind = %v, want HazardSnake", snake.Kind)
	}
	if !snake.Anchored {
		t.Error("snake not anchored")
	}
	if snake.Dir != -1 {
		t.Errorf("snake dir = %v, want -1", snake.Dir)
	}

	log := course.Hazards[1]
	if log.Kind != cfg.HazardLog {
		t.Fatalf("second hazard kind = %v, want HazardLog", log.Kind)
	}
	if log.Anchored {
		t.Error("log should not be anchored")
	}
	if log.Dir != 1 {
		t.Errorf("log dir = %v, want 1", log.Dir)
	}
}
