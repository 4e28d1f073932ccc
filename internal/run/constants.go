package run

// Campfire choice keys as the game client writes them
const (
	campfireKeyRest  = "REST"
	campfireKeySmith = "SMITH"
)
