// Package segment splits normalized document text into per-statement windows.
package segment

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultAnchor matches the per-employee identifier label and number.
const DefaultAnchor = `מספר העובד:\s*(\d{4,})`

// DefaultLookback is how many lines of personal-details header precede the
// identifier on the printed layout.
const DefaultLookback = 5

// Segment is a contiguous line range [Start, End) believed to hold one statement.
type Segment struct {
	// Anchor is the identifier captured on AnchorLine, empty when the
	// document had fewer than two anchors and no split happened.
	Anchor     string
	Lines      []string
	Index      int
	Start      int
	End        int
	AnchorLine int
}

// Text joins the segment lines.
func (s Segment) Text() string {
	return strings.Join(s.Lines, "\n")
}

// Len returns the number of lines in the segment.
func (s Segment) Len() int {
	return s.End - s.Start
}

// Segmenter locates identifier anchors and cuts text around them.
// It holds no mutable state and is safe for concurrent use.
type Segmenter struct {
	anchor   *regexp.Regexp
	lookback int
}

// New compiles anchorExpr (which must have one capture group for the
// identifier) and returns a segmenter with the given lookback.
func New(anchorExpr string, lookback int) (*Segmenter, error) {
	if lookback < 0 {
		return nil, fmt.Errorf("lookback must be >= 0, got %d", lookback)
	}
	re, err := regexp.Compile(anchorExpr)
	if err != nil {
		return nil, fmt.Errorf("failed to compile anchor %q: %w", anchorExpr, err)
	}
	if re.NumSubexp() < 1 {
		return nil, fmt.Errorf("anchor %q has no capture group", anchorExpr)
	}
	return &Segmenter{anchor: re, lookback: lookback}, nil
}

// Default returns a segmenter using DefaultAnchor and DefaultLookback.
func Default() *Segmenter {
	s, err := New(DefaultAnchor, DefaultLookback)
	if err != nil {
		panic(err)
	}
	return s
}

// Lookback returns the configured lookback.
func (s *Segmenter) Lookback() int { return s.lookback }

// Anchor is one identifier occurrence.
type Anchor struct {
	ID   string
	Line int
}

// Anchors returns the first identifier occurrence of every line that has one.
func (s *Segmenter) Anchors(lines []string) []Anchor {
	var anchors []Anchor
	for i, line := range lines {
		if m := s.anchor.FindStringSubmatch(line); m != nil {
			anchors = append(anchors, Anchor{ID: m[1], Line: i})
		}
	}
	return anchors
}

// Split cuts text into one or more segments. With fewer than two anchors the
// whole text is a single segment. Otherwise each anchor opens a segment
// Lookback lines above it, so the header lines preceding an identifier belong
// to that identifier's statement only; the first segment also absorbs
// everything above it.
func (s *Segmenter) Split(text string) []Segment {
	lines := strings.Split(text, "\n")
	anchors := s.Anchors(lines)

	if len(anchors) < 2 {
		seg := Segment{Index: 0, Start: 0, End: len(lines), Lines: lines, AnchorLine: -1}
		if len(anchors) == 1 {
			seg.Anchor = anchors[0].ID
			seg.AnchorLine = anchors[0].Line
		}
		return []Segment{seg}
	}

	bounds := make([]int, len(anchors)+1)
	for i := 1; i < len(anchors); i++ {
		// never step back over the previous anchor's own line
		bounds[i] = max(anchors[i].Line-s.lookback, anchors[i-1].Line+1)
	}
	bounds[len(anchors)] = len(lines)

	segments := make([]Segment, len(anchors))
	for i, a := range anchors {
		start, end := bounds[i], bounds[i+1]
		segments[i] = Segment{
			Index:      i,
			Start:      start,
			End:        end,
			Lines:      lines[start:end:end],
			Anchor:     a.ID,
			AnchorLine: a.Line,
		}
	}
	return segments
}
