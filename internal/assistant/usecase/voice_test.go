package usecase

import (
	"context"
	"errors"
	"testing"

	"voice-assistant-backend/internal/assistant"
	"voice-assistant-backend/internal/model"
)

type fakeTranscriber struct {
	transcript string
	err        error
}

func (f *fakeTranscriber) Recognize(_ context.Context, _ []byte) (string, error) {
	return f.transcript, f.err
}

func TestProcessVoice(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("empty audio is rejected", func(t *testing.T) {
		e := newEngine(t, 30)
		e.uc.stt = &fakeTranscriber{}

		_, err := e.uc.ProcessVoice(context.Background(), sc, assistant.VoiceInput{})
		if !errors.Is(err, assistant.ErrEmptyAudio) {
			t.Fatalf("err = %v, want ErrEmptyAudio", err)
		}
	})

	t.Run("empty transcript asks to repeat", func(t *testing.T) {
		e := newEngine(t, 30)
		e.uc.stt = &fakeTranscriber{transcript: ""}

		out, err := e.uc.ProcessVoice(context.Background(), sc, assistant.VoiceInput{Audio: []byte{1, 2, 3}})
		if err != nil {
			t.Fatal(err)
		}
		if out.Response.Response != "I didn't catch that. Could you please repeat?" {
			t.Errorf("Response = %q", out.Response.Response)
		}
		if e.store.Contains("u1") {
			t.Error("unrecognized audio must not create a session")
		}
	})

	t.Run("recognition failure asks to repeat", func(t *testing.T) {
		e := newEngine(t, 30)
		e.uc.stt = &fakeTranscriber{err: errors.New("upstream down")}

		out, err := e.uc.ProcessVoice(context.Background(), sc, assistant.VoiceInput{Audio: []byte{1}})
		if err != nil {
			t.Fatal(err)
		}
		if out.Response.Response != "I didn't catch that. Could you please repeat?" {
			t.Errorf("Response = %q", out.Response.Response)
		}
	})

	t.Run("transcript runs the text pipeline", func(t *testing.T) {
		e := newEngine(t, 30)
		e.uc.stt = &fakeTranscriber{transcript: "hello"}

		out, err := e.uc.ProcessVoice(context.Background(), sc, assistant.VoiceInput{Audio: []byte{1}})
		if err != nil {
			t.Fatal(err)
		}
		if out.Transcript != "hello" {
			t.Errorf("Transcript = %q", out.Transcript)
		}
		if out.Response.Response != "Hi there! I'm Ballsy, your voice assistant. How can I help?" {
			t.Errorf("Response = %q", out.Response.Response)
		}
	})
}
