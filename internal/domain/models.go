package domain

// Turn is a single conversation turn. Immutable once created.
type Turn struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// RecognitionResult is the outcome of intent recognition for one message.
type RecognitionResult struct {
	Intent     string
	Confidence float64
	Action     ActionID
}

// ActionResult is the outcome of a local action. ShortCircuit means the
// message is the final reply and the inference backend must not be called.
type ActionResult struct {
	Message      string
	ShortCircuit bool
}

// GeoPoint is a latitude/longitude pair supplied by an upstream caller.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// PromptContext carries the per-request context the prompt builder appends
// to the persona block. It is constructed per request and never stored.
type PromptContext struct {
	Surface      Surface
	UserLocation *GeoPoint
	NearbyPoints []string
	LastIntent   string
	LastAction   ActionID
}
