package game

import "golang.org/x/exp/rand"

// Roller produces die faces in [1, NumFaces].
type Roller interface {
	Roll() int
}

type randRoller struct {
	rng *rand.Rand
}

// NewRandRoller rolls dice from rng. The roller is as safe for concurrent
// use as rng is.
func NewRandRoller(rng *rand.Rand) Roller {
	return randRoller{rng: rng}
}

// NewSeededRoller returns a reproducible roller.
func NewSeededRoller(seed uint64) Roller {
	return NewRandRoller(rand.New(rand.NewSource(seed)))
}

func (r randRoller) Roll() int {
	return r.rng.Intn(NumFaces) + 1
}

// ScriptedRoller replays fixed faces in order and wraps around when it runs
// out. It makes dice deterministic in tests and replays.
type ScriptedRoller struct {
	Faces []int
	next  int
}

func (r *ScriptedRoller) Roll() int {
	if len(r.Faces) == 0 {
		return WildFace
	}
	face := r.Faces[r.next%len(r.Faces)]
	r.next++
	return face
}
