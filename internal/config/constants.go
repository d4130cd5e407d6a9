package config

import "time"

// Application identity.
const (
	AppName        = "nebula"
	BrandName      = "Nebula AI"
	ConfigFileName = "config.yaml"
)

// Countdown defaults.
const (
	DefaultCountdown = "00:20"
	TickPeriod       = time.Second
)

// Audio defaults.
const (
	DefaultVolume = 0.2
	VolumeStep    = 0.05
	DefaultTrack  = "audio/space-ambient.mp3"
)

// Subscription timing.
const (
	SubmitLatency      = time.Second
	ConfirmationWindow = 3 * time.Second
)

// Outbound links shown in the navbar dropdown and after the reveal.
const (
	BrandLink   = "https://x.com/NebulaCoreAi"
	PartnerLink = "https://x.com/HansZimmer"
)
