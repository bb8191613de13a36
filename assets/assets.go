// Package assets loads images and sounds from an assets directory on
// disk. Missing files degrade instead of failing: images fall back to a
// flat-colored placeholder and sounds to a nil player, so the game runs
// with no art installed at all.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

var audioContext = audio.NewContext(sampleRate)

// Dir is the root the loaders resolve relative paths against.
var Dir = "assets"

// LoadImage loads a PNG by assets-relative path.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := os.ReadFile(resolve(path))
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("decode image %q: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadImageOrPlaceholder loads an image, substituting a flat-colored
// rectangle when the file is absent or unreadable.
func LoadImageOrPlaceholder(path string, w, h int, fill color.RGBA) *ebiten.Image {
	img, err := LoadImage(path)
	if err == nil {
		return img
	}
	log.Printf("assets: %s unavailable, using placeholder: %v", path, err)
	if w <= 0 {
		w = 32
	}
	if h <= 0 {
		h = 32
	}
	placeholder := ebiten.NewImage(w, h)
	placeholder.Fill(fill)
	return placeholder
}

// LoadAudioPlayer loads a WAV by assets-relative path and wraps it in a
// player on the shared audio context.
func LoadAudioPlayer(path string) (*audio.Player, error) {
	b, err := os.ReadFile(resolve(path))
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(strings.ToLower(path), ".wav") {
		stream, err := wav.DecodeWithSampleRate(audioContext.SampleRate(), bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("decode wav %q: %w", path, err)
		}
		return audioContext.NewPlayer(stream)
	}

	// raw PCM in the audio context's native format
	return audioContext.NewPlayerFromBytes(b), nil
}

// LoadAudioPlayerOrNil loads a sound, returning nil when the file is
// absent so playback is silently skipped.
func LoadAudioPlayerOrNil(path string) *audio.Player {
	p, err := LoadAudioPlayer(path)
	if err != nil {
		log.Printf("assets: %s unavailable, sound disabled: %v", path, err)
		return nil
	}
	return p
}

func resolve(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		return path
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		s = strings.TrimPrefix(s, "assets/")
	}
	return filepath.Join(Dir, filepath.FromSlash(s))
}
