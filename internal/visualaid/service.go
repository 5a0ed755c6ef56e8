package visualaid

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*VisualAid, error)
}

type service struct{}

func NewService() Service {
	return &service{}
}

// Generate builds a blackboard-drawing guide without a model round trip. The
// diagram is a generic labelled frame teachers annotate by hand.
func (s *service) Generate(_ context.Context, req GenerateRequest) (*VisualAid, error) {
	return &VisualAid{
		ID:          fmt.Sprintf("visual-aid-%s", uuid.NewString()),
		Title:       titleFrom(req.Description),
		Description: req.Description,
		Subject:     req.Subject,
		Complexity:  req.Complexity,
		Concepts: []string{
			"Visual representation of concepts",
			"Step-by-step understanding",
			"Clear diagram interpretation",
		},
		Materials: []string{"White chalk", "Colored chalk (optional)", "Ruler", "Eraser"},
		Instructions: []string{
			"Start with the main concept and draw the central element",
			"Add supporting details and labels step by step",
			"Use different colors to highlight important parts",
			"Encourage students to explain what they see",
		},
		BlackboardSteps: []string{
			"Begin by drawing the main shape or structure in the center",
			"Add the primary components with clear, simple lines",
			"Include arrows and connecting lines to show relationships",
			"Label each part clearly with easy-to-read text",
			"Add final details and ask students to explain the diagram",
		},
		SVGContent: renderSVG(req),
	}, nil
}

// titleFrom takes the first three words of the description.
func titleFrom(description string) string {
	words := strings.Fields(description)
	if len(words) > 3 {
		words = words[:3]
	}
	return strings.Join(words, " ")
}

func renderSVG(req GenerateRequest) string {
	label := ""
	if words := strings.Fields(req.Description); len(words) > 0 {
		label = words[0]
	}
	return fmt.Sprintf(`<svg width="400" height="300" viewBox="0 0 400 300" xmlns="http://www.w3.org/2000/svg">
      <rect x="50" y="50" width="300" height="200" fill="none" stroke="black" stroke-width="2"/>
      <circle cx="200" cy="150" r="60" fill="none" stroke="black" stroke-width="2"/>
      <text x="200" y="155" text-anchor="middle" font-family="Arial" font-size="14" fill="black">%s</text>
      <text x="200" y="280" text-anchor="middle" font-family="Arial" font-size="12" fill="black">%s - %s</text>
    </svg>`, label, req.Subject, req.GradeLevel)
}
