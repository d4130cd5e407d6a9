// Package roadmap holds the product roadmap shown below the hero section and
// renders it for the terminal and as a PDF sheet.
package roadmap

import "github.com/akyairhashvil/nebula/internal/models"

const (
	Heading    = "Our Vision for 2025"
	Subheading = "Pioneering the next generation of artificial intelligence"
)

// Phases returns the published roadmap.
func Phases() []models.Phase {
	return []models.Phase{
		{
			Phase:       "Phase 1",
			Title:       "Foundation & Research",
			Description: "Establishing core AI infrastructure and advanced research initiatives",
			Date:        "Q1 2025",
			Features: []string{
				"Advanced Neural Network Development",
				"Quantum Computing Integration Research",
				"Core Infrastructure Setup",
				"Initial AI Model Training",
			},
			Icon: "🧬",
		},
		{
			Phase:       "Phase 2",
			Title:       "AI Model Evolution",
			Description: "Expanding capabilities and implementing breakthrough technologies",
			Date:        "Q2 2025",
			Features: []string{
				"Multi-Modal AI Implementation",
				"Enhanced Natural Language Processing",
				"Real-time Learning Systems",
				"Advanced Pattern Recognition",
			},
			Icon: "🔮",
		},
		{
			Phase:       "Phase 3",
			Title:       "Ecosystem Expansion",
			Description: "Building partnerships and expanding our technological reach",
			Date:        "Q3 2025",
			Features: []string{
				"Global Partnership Network",
				"Developer API Platform Launch",
				"Enterprise Solutions Integration",
				"Community-Driven Development",
			},
			Icon: "🌐",
		},
		{
			Phase:       "Phase 4",
			Title:       "Global Innovation",
			Description: "Revolutionizing AI applications across industries",
			Date:        "Q4 2025",
			Features: []string{
				"Cross-Industry AI Solutions",
				"Autonomous Systems Launch",
				"Advanced Security Protocols",
				"Global Scale Infrastructure",
			},
			Icon: "🚀",
		},
	}
}
