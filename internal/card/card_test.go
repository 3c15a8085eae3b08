package card

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func testSheet() StyleSheet {
	// Unstyled on purpose so rendered output can be matched as plain text.
	return StyleSheet{
		StyleBorder:      lipgloss.NewStyle(),
		StyleTitle:       lipgloss.NewStyle(),
		StyleSubtitle:    lipgloss.NewStyle(),
		StyleDescription: lipgloss.NewStyle(),
		StyleVote:        lipgloss.NewStyle(),
	}
}

func TestFrameCopiesSheet(t *testing.T) {
	sheet := testSheet()
	frame := newFrame(sheet)

	if len(frame.Styles()) != len(sheet) {
		t.Errorf("expected %d copied styles, got %d", len(sheet), len(frame.Styles()))
	}

	// The copy is a snapshot: a later sheet change must not reach the frame.
	sheet["late-addition"] = lipgloss.NewStyle()
	if _, ok := frame.Styles()["late-addition"]; ok {
		t.Error("frame must not pick up styles added after construction")
	}
}

func TestFrameEmptySheet(t *testing.T) {
	frame := newFrame(nil)
	if len(frame.Styles()) != 0 {
		t.Errorf("expected empty frame, got %d styles", len(frame.Styles()))
	}
	// Unknown style names resolve to the zero style rather than failing.
	_ = frame.style(StyleTitle)
}

func TestRenderFreeformItemFallsBackToPlainCard(t *testing.T) {
	f := NewFactory(testSheet())

	for _, raw := range []string{
		"just some text",
		"{broken json",
		`"bare string"`,
		"42",
		"null",
	} {
		view, err := f.RenderItem(raw, false)
		if err != nil {
			t.Fatalf("RenderItem(%q) failed: %v", raw, err)
		}
		if !strings.Contains(view.Render(60), truncate(raw, 56)) {
			t.Errorf("expected plain card for %q to show the raw string, got:\n%s", raw, view.Render(60))
		}
	}
}

func TestRenderTicketCard(t *testing.T) {
	f := NewFactory(testSheet())

	raw := `{"type":"ticket-card","title":"PROJ-42","subtitle":{"href":"https://tracker/PROJ-42","name":"tracker"},"description":"fix the flaky test"}`
	view, err := f.RenderItem(raw, false)
	if err != nil {
		t.Fatalf("RenderItem failed: %v", err)
	}

	out := view.Render(80)
	for _, want := range []string{"PROJ-42", "tracker", "https://tracker/PROJ-42", "fix the flaky test", "vote"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected rendered ticket card to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRenderSimpleCard(t *testing.T) {
	f := NewFactory(testSheet())

	view, err := f.RenderItem(`{"type":"simple-card","title":"Coffee"}`, false)
	if err != nil {
		t.Fatalf("RenderItem failed: %v", err)
	}

	out := view.Render(40)
	if !strings.Contains(out, "Coffee") {
		t.Errorf("expected title in output, got:\n%s", out)
	}
	if !strings.Contains(out, "vote") {
		t.Errorf("expected live vote affordance, got:\n%s", out)
	}
}

func TestUnrecognizedTypeIsFatal(t *testing.T) {
	f := NewFactory(testSheet())

	if _, err := f.RenderItem(`{"type":"mystery-card","title":"?"}`, false); err == nil {
		t.Error("expected an error for an unrecognized item type")
	}
	// An empty type on a structured item is equally unrecognized.
	if _, err := f.RenderItem(`{"title":"typeless"}`, false); err == nil {
		t.Error("expected an error for a structured item without a type")
	}
}

func TestHideVoteLinksIdempotent(t *testing.T) {
	component, err := newComponent(templateTicket, testSheet())
	if err != nil {
		t.Fatal(err)
	}
	component.setSlot(slotTitle, "x")

	if component.VoteLinksHidden() {
		t.Error("vote links must start visible")
	}

	for i := 0; i < 3; i++ {
		component.HideVoteLinks()
		if !component.VoteLinksHidden() {
			t.Errorf("expected vote links hidden after call %d", i+1)
		}
	}

	if strings.Contains(component.Render(40), "vote") {
		t.Error("hidden vote affordance must not be rendered")
	}
}

func TestVoteHiddenRendering(t *testing.T) {
	f := NewFactory(testSheet())

	view, err := f.RenderItem("plain item", true)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(view.Render(40), "vote") {
		t.Error("voteHidden render must not contain the vote affordance")
	}
	if !view.Component().VoteLinksHidden() {
		t.Error("expected vote links to be hidden")
	}
}

func TestRenderingIsPure(t *testing.T) {
	f := NewFactory(testSheet())
	raw := `{"type":"simple-card","title":"same"}`

	a, err := f.RenderItem(raw, false)
	if err != nil {
		t.Fatal(err)
	}
	b, err := f.RenderItem(raw, false)
	if err != nil {
		t.Fatal(err)
	}

	if a.Component() == b.Component() {
		t.Error("expected independent components per render")
	}
	if a.Render(40) != b.Render(40) {
		t.Error("expected equivalent renders for equal input")
	}

	// Mutating one view must not leak into the other.
	a.Component().HideVoteLinks()
	if b.Component().VoteLinksHidden() {
		t.Error("hiding votes on one view affected another")
	}
}

func TestDecodeTitle(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"freeform text", "freeform text"},
		{`{"type":"simple-card","title":"Tea"}`, "Tea"},
		{`{"type":"ticket-card","title":"PROJ-7"}`, "PROJ-7"},
		{`{"type":"mystery-card"}`, `{"type":"mystery-card"}`},
	}

	for _, tt := range tests {
		if got := DecodeTitle(tt.raw); got != tt.want {
			t.Errorf("DecodeTitle(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestEncodeTicket(t *testing.T) {
	raw, err := EncodeTicket("Title", "https://x", "x", "desc")
	if err != nil {
		t.Fatal(err)
	}

	f := NewFactory(testSheet())
	view, err := f.RenderItem(raw, false)
	if err != nil {
		t.Fatalf("encoded ticket did not render: %v", err)
	}
	out := view.Render(80)
	if !strings.Contains(out, "Title") || !strings.Contains(out, "https://x") {
		t.Errorf("unexpected ticket render:\n%s", out)
	}

	if got := DecodeTitle(raw); got != "Title" {
		t.Errorf("DecodeTitle of encoded ticket = %q, want Title", got)
	}
}
