package main

import (
	"context"
	"errors"
	"log"
)

// ErrEmptySource is reported for a fit request without an image source
var ErrEmptySource = errors.New("empty image source")

// Geometry is the displayed box of an image inside its container.
// Left is the horizontal offset; the box is always top-aligned.
type Geometry struct {
	Width  float64
	Height float64
	Left   float64
}

// IsEmpty reports whether the geometry has no visible area
func (g Geometry) IsEmpty() bool {
	return g.Width <= 0 || g.Height <= 0
}

// FitWithin scales a native size down into the container keeping the aspect
// ratio. Images that already fit are never scaled up.
func FitWithin(nativeW, nativeH, containerW, containerH float64) Geometry {
	if nativeW <= 0 || nativeH <= 0 || containerW <= 0 || containerH <= 0 {
		return Geometry{}
	}

	if nativeW <= containerW && nativeH <= containerH {
		return Geometry{Width: nativeW, Height: nativeH}
	}

	// Width implied by the height constraint, height implied by the width constraint
	widthCandidate := nativeW * containerH / nativeH
	heightCandidate := nativeH * containerW / nativeW

	g := Geometry{
		Width:  min(widthCandidate, containerW),
		Height: min(heightCandidate, containerH),
	}
	if widthCandidate > containerW {
		g.Left = -(widthCandidate - containerW) / 2
	}
	return g
}

// Decoder discovers the intrinsic size of an image source
type Decoder interface {
	DecodeSize(ctx context.Context, src string) (width, height int, err error)
}

// FitHooks are the view callbacks around one fit request.
// Before runs synchronously inside RequestFit. Apply runs only for the most
// recent request when decoding succeeded. After runs once for every request,
// whatever the outcome.
type FitHooks struct {
	Before func()
	Apply  func(Geometry)
	After  func(Geometry)
}

// Fitter computes image geometry across the asynchronous decode boundary.
// RequestFit and completions both run on the event loop goroutine; only the
// decode itself runs elsewhere.
type Fitter struct {
	decoder Decoder
	poster  Poster
	ctx     context.Context
	cancel  context.CancelFunc

	seq     uint64
	pending int
}

// NewFitter creates a Fitter that decodes with decoder and delivers
// completions through poster
func NewFitter(decoder Decoder, poster Poster) *Fitter {
	ctx, cancel := context.WithCancel(context.Background())
	return &Fitter{
		decoder: decoder,
		poster:  poster,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// RequestFit starts decoding src and returns the sequence number of the request
func (f *Fitter) RequestFit(src string, containerW, containerH int, hooks FitHooks) uint64 {
	f.seq++
	seq := f.seq
	f.pending++

	if hooks.Before != nil {
		hooks.Before()
	}

	go func() {
		w, h, err := 0, 0, ErrEmptySource
		if src != "" {
			w, h, err = f.decoder.DecodeSize(f.ctx, src)
		}
		f.poster.Post(func() {
			f.complete(seq, src, containerW, containerH, w, h, err, hooks)
		})
	}()

	return seq
}

func (f *Fitter) complete(seq uint64, src string, containerW, containerH, w, h int, err error, hooks FitHooks) {
	var geometry Geometry
	f.pending--
	defer func() {
		if hooks.After != nil {
			hooks.After(geometry)
		}
	}()

	if seq != f.seq {
		debugLog("Discarding stale fit #%d for %s (latest #%d)", seq, src, f.seq)
		return
	}
	if err != nil {
		log.Printf("Error: Failed to decode %s: %v", src, err)
		return
	}

	geometry = FitWithin(float64(w), float64(h), float64(containerW), float64(containerH))
	debugLog("Fit #%d %s: %dx%d -> %.1fx%.1f left=%.1f", seq, src, w, h, geometry.Width, geometry.Height, geometry.Left)
	if hooks.Apply != nil {
		hooks.Apply(geometry)
	}
}

// Pending reports whether any request is still waiting for its completion
func (f *Fitter) Pending() bool {
	return f.pending > 0
}

// Latest returns the sequence number of the most recent request
func (f *Fitter) Latest() uint64 {
	return f.seq
}

// Close cancels decodes still in flight
func (f *Fitter) Close() {
	f.cancel()
}
