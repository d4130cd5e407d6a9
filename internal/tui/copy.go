package tui

import (
	"github.com/akyairhashvil/nebula/internal/config"
	"github.com/akyairhashvil/nebula/internal/models"
)

var stageCopy = map[models.Stage]models.Copy{
	models.StageCounting: {
		Title:   "Something is Coming",
		Tagline: "The future of AI is about to be redefined",
		Invite:  "Join us as we unveil the next evolution",
	},
	models.StageRevealed: {
		Title:    "Welcome to " + config.BrandName,
		Subtitle: "Experience the next generation of AI",
		Tagline:  "The future of AI is about to be redefined",
		Invite:   "Join us as we unveil the next evolution",
	},
}

var navLinks = []models.Link{
	{Label: "Nebula Core AI", URL: config.BrandLink},
	{Label: "Hans Zimmer", URL: config.PartnerLink},
}

const (
	partnerText     = "In partnership with Hans Zimmer"
	followText      = "Follow us on X"
	emailPrompt     = "Enter your email"
	submitLabel     = "Get Updates"
	thanksText      = "Thank you for subscribing!"
	manualPlayHint  = "press p to play"
	exportedMessage = "Roadmap exported to %s"
)
