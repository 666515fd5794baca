package tray

import (
	"bytes"
	"image/color"
	"image/png"
	"runtime"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestIconIsWhiteDiscOnBlue(t *testing.T) {
	img, err := png.Decode(bytes.NewReader(Icon()))
	if err != nil {
		t.Fatalf("decode icon: %v", err)
	}
	if b := img.Bounds(); b.Dx() != iconSize || b.Dy() != iconSize {
		t.Fatalf("icon bounds = %v", b)
	}

	white := color.NRGBAModel.Convert(img.At(32, 32)).(color.NRGBA)
	if white != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Fatalf("center pixel = %+v, want white", white)
	}
	blue := color.NRGBAModel.Convert(img.At(2, 2)).(color.NRGBA)
	if blue != (color.NRGBA{R: 40, G: 90, B: 140, A: 255}) {
		t.Fatalf("corner pixel = %+v, want blue", blue)
	}
	if edge := color.NRGBAModel.Convert(img.At(10, 32)).(color.NRGBA); edge != blue {
		t.Fatalf("pixel left of the disc = %+v, want blue", edge)
	}
}

func TestForwardDeliversEvents(t *testing.T) {
	tr := newTray(zerolog.Nop())
	show := make(chan struct{})
	check := make(chan struct{})
	quit := make(chan struct{})
	go tr.forward(show, check, quit)
	defer tr.Stop()

	show <- struct{}{}
	check <- struct{}{}
	quit <- struct{}{}

	want := []Event{EventShow, EventCheck, EventQuit}
	for _, w := range want {
		select {
		case got := <-tr.Events():
			if got != w {
				t.Fatalf("event = %v, want %v", got, w)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %v", w)
		}
	}
}

func TestEmitDropsWhenFull(t *testing.T) {
	tr := newTray(zerolog.Nop())
	for i := 0; i < cap(tr.events)+3; i++ {
		tr.emit(EventCheck)
	}
	if got := len(tr.events); got != cap(tr.events) {
		t.Fatalf("buffered = %d, want %d", got, cap(tr.events))
	}
}

func TestStopIsIdempotent(t *testing.T) {
	tr := newTray(zerolog.Nop())
	tr.Stop()
	tr.Stop()
}

func TestAvailableWithoutSessionBus(t *testing.T) {
	t.Setenv("DBUS_SESSION_BUS_ADDRESS", "")
	if runtime.GOOS == "linux" && Available() {
		t.Fatal("Available() = true without a session bus on linux")
	}
}
