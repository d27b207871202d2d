package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/Algo-jtx/SoulSpace/internal/server/models"
	"github.com/Algo-jtx/SoulSpace/internal/server/repositories/repomanager"
)

// Technique is a single breath-and-ground exercise.
type Technique struct {
	Name         string `json:"name"`
	Instructions string `json:"instructions"`
	Duration     string `json:"duration"`
}

var breathGroundTechniques = []Technique{
	{
		Name:         "Box Breathing",
		Instructions: "Inhale for 4 counts, hold for 4, exhale for 4, hold for 4. Repeat.",
		Duration:     "2-5 minutes",
	},
	{
		Name:         "4-7-8 Breathing",
		Instructions: "Inhale through your nose for 4 counts, hold for 7, exhale slowly through your mouth for 8.",
		Duration:     "1-3 minutes",
	},
	{
		Name:         "5-4-3-2-1 Grounding",
		Instructions: "Name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell, and 1 you can taste.",
		Duration:     "3-5 minutes",
	},
	{
		Name:         "Body Scan",
		Instructions: "Starting at your toes, slowly move your attention up through your body, noticing each part without judgment.",
		Duration:     "5-10 minutes",
	},
	{
		Name:         "Palm Press",
		Instructions: "Press your palms together firmly for 10 seconds, then release. Notice the warmth and tingling.",
		Duration:     "1 minute",
	},
}

var loopBreakerPrompts = []string{
	"What is one small thing you can do right now that your future self will thank you for?",
	"Name the thought that keeps circling. Is it a fact, or a fear?",
	"If a friend told you they were stuck on this, what would you say to them?",
	"What would this look like if it were easy?",
	"Step away for sixty seconds. What changed when you came back?",
	"What is the smallest next step, not the whole staircase?",
	"Is this thought useful right now, or just loud?",
	"What are three things that went okay today, however small?",
}

// WellnessService serves the read-only wellness content: random soul notes,
// loop-breaker prompts and grounding techniques.
type WellnessService struct {
	repos repomanager.Manager
}

func NewWellnessService(repos repomanager.Manager) *WellnessService {
	return &WellnessService{repos: repos}
}

func (s *WellnessService) RandomSoulNote(ctx context.Context) (*models.SoulNote, error) {
	note, err := s.repos.SoulNotes().Random(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching soul note: %w", err)
	}
	return note, nil
}

func (s *WellnessService) LoopPrompt() string {
	return loopBreakerPrompts[rand.Intn(len(loopBreakerPrompts))]
}

func (s *WellnessService) Techniques() []Technique {
	return breathGroundTechniques
}
