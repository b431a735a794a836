// Package content decides what the quote and relief regions display. It never
// touches the terminal; the TUI turns a DisplayState into styled output.
package content

import (
	"time"

	"github.com/alexisbeaulieu97/relax/internal/api"
)

const (
	quoteFade = 600 * time.Millisecond
	mediaFade = 400 * time.Millisecond

	// DefaultAuthor is shown when a quote carries no author.
	DefaultAuthor = "Anonymous"

	GifTitle          = "Take a Moment to Breathe"
	MemeFallbackTitle = "Here's Something to Make You Smile"
	AttributionText   = "Powered by GIPHY"
	StartFreshAction  = "Start Fresh"

	quoteError = "Could not load quote. Please try again."
	gifError   = "Could not load GIF. Please try again."
)

// LoadingQuote is the placeholder shown while a quote request is in flight.
func LoadingQuote() DisplayState {
	return DisplayState{
		Region: RegionQuote,
		Kind:   KindLoading,
		Author: "Loading...",
	}
}

// LoadingMedia is the placeholder shown while a gif or meme request is in flight.
func LoadingMedia(kind MediaKind) DisplayState {
	text := "Loading calming visual..."
	if kind == Meme {
		text = "Loading wholesome meme..."
	}
	return DisplayState{
		Region:     RegionRelief,
		Kind:       KindLoading,
		Text:       text,
		Transition: Transition{FadeIn: mediaFade},
	}
}

// RenderQuote turns a quote fetch outcome into the quote region state.
func RenderQuote(quote api.Quote, err error) DisplayState {
	if err != nil {
		return DisplayState{
			Region: RegionQuote,
			Kind:   KindWarning,
			Icon:   "⚠",
			Text:   quoteError,
		}
	}

	author := quote.Author
	if author == "" {
		author = DefaultAuthor
	}
	return DisplayState{
		Region:     RegionQuote,
		Kind:       KindQuote,
		Text:       quote.Text,
		Author:     author,
		Transition: Transition{FadeIn: quoteFade},
	}
}

// RenderMedia turns a gif or meme fetch outcome into the relief region state.
// A failed meme yields KindFallback naming Gif; the caller requests a gif
// instead of showing an error.
func RenderMedia(kind MediaKind, media api.Media, err error) DisplayState {
	if err != nil {
		if kind == Meme {
			return DisplayState{
				Region:     RegionRelief,
				Kind:       KindFallback,
				FallbackTo: Gif,
			}
		}
		return DisplayState{
			Region: RegionRelief,
			Kind:   KindWarning,
			Icon:   "⚠",
			Text:   gifError,
		}
	}

	state := DisplayState{
		Region:      RegionRelief,
		Kind:        KindMedia,
		ImageURL:    media.URL,
		Attribution: media.IsGiphy(),
		Transition:  Transition{FadeIn: mediaFade},
	}

	switch kind {
	case Meme:
		state.Icon = "☺"
		state.Title = media.Title
		if state.Title == "" {
			state.Title = MemeFallbackTitle
		}
		state.Text = "Sometimes a good laugh is the best medicine."
		state.ImageAlt = "Wholesome Meme"
	default:
		state.Icon = "❀"
		state.Title = GifTitle
		state.Text = "Watch this peaceful visual and let your worries fade away."
		state.ImageAlt = "Calming GIF"
	}
	return state
}

// Completion is the card shown once a breathing session ends.
func Completion() DisplayState {
	return DisplayState{
		Region:     RegionRelief,
		Kind:       KindCompletion,
		Icon:       "✔",
		Title:      "Great Job!",
		Text:       "You've completed your breathing exercise. How do you feel?",
		Action:     StartFreshAction,
		Transition: Transition{FadeIn: mediaFade},
	}
}

// Empty clears a region.
func Empty(region Region) DisplayState {
	return DisplayState{Region: region, Kind: KindEmpty}
}
