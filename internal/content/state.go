package content

import "time"

// Region identifies one of the two independent display areas.
type Region int

const (
	RegionQuote Region = iota
	RegionRelief
)

// Kind describes what a region currently shows.
type Kind int

const (
	KindEmpty Kind = iota
	KindLoading
	KindQuote
	KindMedia
	KindWarning
	// KindFallback asks the caller to load FallbackTo instead; nothing is shown.
	KindFallback
	KindCompletion
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindQuote:
		return "quote"
	case KindMedia:
		return "media"
	case KindWarning:
		return "warning"
	case KindFallback:
		return "fallback"
	case KindCompletion:
		return "completion"
	default:
		return "empty"
	}
}

// MediaKind distinguishes the two image modalities.
type MediaKind int

const (
	Gif MediaKind = iota
	Meme
)

func (k MediaKind) String() string {
	if k == Meme {
		return "meme"
	}
	return "gif"
}

// Transition is the fade applied when a state replaces the previous one.
type Transition struct {
	FadeIn time.Duration
}

// DisplayState is the complete description of what a region renders.
type DisplayState struct {
	Region      Region
	Kind        Kind
	Icon        string
	Title       string
	Text        string
	Author      string
	ImageURL    string
	ImageAlt    string
	Attribution bool
	// Action is the label of the single button on the card, if any.
	Action     string
	FallbackTo MediaKind
	Transition Transition
}

// HasAttribution reports whether the GIPHY badge must be drawn.
func (s DisplayState) HasAttribution() bool {
	return s.Kind == KindMedia && s.Attribution
}
