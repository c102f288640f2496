package parameter

import "time"

// Audio cues
const (
	// AudioSampleRate is the speaker sample rate
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer size
	AudioBufferDuration = 100 * time.Millisecond

	// AudioFireDuration is the length of the fire blip
	AudioFireDuration = 60 * time.Millisecond

	// AudioHitDuration is the length of the hit buzz
	AudioHitDuration = 150 * time.Millisecond

	// AudioFallDuration is the length of the falling sweep
	AudioFallDuration = 600 * time.Millisecond

	// AudioLandDuration is the length of the landing thud
	AudioLandDuration = 300 * time.Millisecond
)
