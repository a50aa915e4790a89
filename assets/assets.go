package assets

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lafriks/go-tiled"
	cfg "github.com/pixelfilm44/StuntFrogsRunner-sub003/config"
)

//go:embed all:courses
var courseFS embed.FS

// FrogSpawn is the frog's start position in an authored course.
type FrogSpawn struct {
	X float64
	Y float64
}

// PadSpawn is one authored pad placement.
type PadSpawn struct {
	X, Y float64
	Kind cfg.PadKind
}

// HazardSpawn is one authored hazard placement. Anchored hazards are
// bound to the nearest pad when the course is built.
type HazardSpawn struct {
	X, Y     float64
	Kind     cfg.HazardKind
	Dir      float64
	Anchored bool
}

// CollectibleSpawn is one authored pickup placement.
type CollectibleSpawn struct {
	X, Y float64
	Kind string // "tadpole", "pot" or "vest"
}

// Course is the parsed authored prologue of a run. Everything past
// GoalY is generated procedurally.
type Course struct {
	Name   string
	Width  int
	Height int

	FrogSpawn    FrogSpawn
	GoalY        float64
	Pads         []PadSpawn
	Hazards      []HazardSpawn
	Collectibles []CollectibleSpawn
}

type CourseLoader struct{}

func NewCourseLoader() *CourseLoader {
	return &CourseLoader{}
}

// MustLoadCourses loads every .tmx course in lexical order.
func (l *CourseLoader) MustLoadCourses() []Course {
	entries, err := courseFS.ReadDir("courses")
	if err != nil {
		panic(fmt.Sprintf("Failed to read courses directory: %v", err))
	}

	var courses []Course
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".tmx" {
			courses = append(courses, l.MustLoadCourse(filepath.Join("courses", entry.Name())))
		}
	}

	if len(courses) == 0 {
		panic("No course files found in assets/courses directory")
	}

	return courses
}

func (l *CourseLoader) MustLoadCourse(path string) Course {
	courseMap, err := tiled.LoadFile(path, tiled.WithFileSystem(courseFS))
	if err != nil {
		panic(err)
	}

	course := Course{
		Name:   strings.TrimSuffix(filepath.Base(path), ".tmx"),
		Width:  courseMap.Width * courseMap.TileWidth,
		Height: courseMap.Height * courseMap.TileHeight,
	}

	for _, og := range courseMap.ObjectGroups {
		switch og.Name {
		case "FrogSpawn":
			for _, o := range og.Objects {
				course.FrogSpawn = FrogSpawn{X: o.X, Y: o.Y}
				break
			}
		case "Pads":
			for _, o := range og.Objects {
				course.Pads = append(course.Pads, PadSpawn{
					X:    o.X,
					Y:    o.Y,
					Kind: cfg.PadKindByName(objectKind(o)),
				})
			}
		case "Hazards":
			for _, o := range og.Objects {
				kind, ok := cfg.HazardKindByName(objectKind(o))
				if !ok {
					continue
				}
				dir := float64(o.Properties.GetInt("dir"))
				if dir == 0 {
					dir = 1
				}
				course.Hazards = append(course.Hazards, HazardSpawn{
					X:        o.X,
					Y:        o.Y,
					Kind:     kind,
					Dir:      dir,
					Anchored: o.Properties.GetBool("anchored"),
				})
			}
		case "Collectibles":
			for _, o := range og.Objects {
				course.Collectibles = append(course.Collectibles, CollectibleSpawn{
					X:    o.X,
					Y:    o.Y,
					Kind: objectKind(o),
				})
			}
		case "Goal":
			for _, o := range og.Objects {
				course.GoalY = o.Y
				break
			}
		}
	}

	// A course with no goal hands over to the generator near its end.
	if course.GoalY == 0 {
		course.GoalY = float64(course.Height) - 80
	}

	return course
}

// objectKind reads the object's class, falling back to the legacy
// type attribute older Tiled versions write.
func objectKind(o *tiled.Object) string {
	if o.Class != "" {
		return o.Class
	}
	return o.Type //nolint:staticcheck // TMX uses type= attribute
}
