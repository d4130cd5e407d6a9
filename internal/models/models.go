package models

// Stage is the presentation branch the landing page is in.
type Stage string

const (
	StageCounting Stage = "counting"
	StageRevealed Stage = "revealed"
)

// Phase is one entry of the product roadmap.
type Phase struct {
	Phase       string
	Title       string
	Description string
	Date        string
	Features    []string
	Icon        string
}

// Link is an outbound link shown in the navbar dropdown or after the reveal.
type Link struct {
	Label string
	URL   string
}

// Copy is the marketing text of the hero section for each stage.
type Copy struct {
	Title    string
	Subtitle string
	Tagline  string
	Invite   string
}
