package segment

import (
	"fmt"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildText returns n filler lines with identifier anchors at the given lines.
func buildText(n int, anchors map[int]string) string {
	lines := make([]string, n)
	for i := range lines {
		if id, ok := anchors[i]; ok {
			lines[i] = "מספר העובד: " + id
			continue
		}
		lines[i] = fmt.Sprintf("row %02d", i)
	}
	return strings.Join(lines, "\n")
}

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		anchor   string
		errMsg   string
		lookback int
		wantErr  bool
	}{
		{name: "default", anchor: DefaultAnchor, lookback: DefaultLookback},
		{name: "zero lookback", anchor: DefaultAnchor, lookback: 0},
		{name: "invalid regex", anchor: `(\d{4,}`, lookback: 5, wantErr: true, errMsg: "failed to compile anchor"},
		{name: "no capture group", anchor: `\d{4,}`, lookback: 5, wantErr: true, errMsg: "no capture group"},
		{name: "negative lookback", anchor: DefaultAnchor, lookback: -1, wantErr: true, errMsg: "lookback must be"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.anchor, tt.lookback)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.lookback, s.Lookback())
		})
	}
}

func TestSplit_TwoAnchorsLookbackFive(t *testing.T) {
	text := buildText(60, map[int]string{10: "0951", 40: "1234"})

	segs := Default().Split(text)
	require.Len(t, segs, 2)

	assert.Equal(t, 0, segs[0].Start)
	assert.Equal(t, 35, segs[0].End)
	assert.Equal(t, "0951", segs[0].Anchor)
	assert.Equal(t, 10, segs[0].AnchorLine)

	assert.Equal(t, 35, segs[1].Start)
	assert.Equal(t, 60, segs[1].End)
	assert.Equal(t, "1234", segs[1].Anchor)
	assert.Equal(t, 40, segs[1].AnchorLine)

	assert.Equal(t, 35, segs[0].Len())
	assert.Equal(t, "row 00", segs[0].Lines[0])
	assert.Equal(t, "row 35", segs[1].Lines[0])
}

func TestSplit_FewerThanTwoAnchors(t *testing.T) {
	t.Run("no anchor", func(t *testing.T) {
		text := buildText(8, nil)
		segs := Default().Split(text)
		require.Len(t, segs, 1)
		assert.Equal(t, text, segs[0].Text())
		assert.Empty(t, segs[0].Anchor)
		assert.Equal(t, -1, segs[0].AnchorLine)
	})

	t.Run("one anchor", func(t *testing.T) {
		text := buildText(20, map[int]string{12: "7777"})
		segs := Default().Split(text)
		require.Len(t, segs, 1)
		assert.Equal(t, text, segs[0].Text())
		assert.Equal(t, "7777", segs[0].Anchor)
		assert.Equal(t, 0, segs[0].Start)
		assert.Equal(t, 20, segs[0].End)
	})

	t.Run("short id is not an anchor", func(t *testing.T) {
		text := buildText(20, map[int]string{2: "12", 15: "4567"})
		segs := Default().Split(text)
		require.Len(t, segs, 1)
		assert.Equal(t, "4567", segs[0].Anchor)
	})
}

func TestSplit_CountAndUniqueness(t *testing.T) {
	anchorRe := regexp.MustCompile(DefaultAnchor)

	layouts := []map[int]string{
		{3: "1001", 30: "1002"},
		{5: "1001", 20: "1002", 35: "1003", 50: "1004"},
		{0: "1001", 1: "1002", 2: "1003"},
		{6: "1001", 8: "1002", 40: "1003"},
		{10: "1001", 16: "1002", 59: "1003"},
	}

	for i, anchors := range layouts {
		t.Run(fmt.Sprintf("layout %d", i), func(t *testing.T) {
			text := buildText(60, anchors)
			segs := Default().Split(text)
			require.Len(t, segs, len(anchors))

			covered := 0
			for j, seg := range segs {
				assert.Len(t, anchorRe.FindAllString(seg.Text(), -1), 1, "segment %d", j)
				assert.GreaterOrEqual(t, seg.AnchorLine, seg.Start)
				assert.Less(t, seg.AnchorLine, seg.End)
				if j > 0 {
					assert.Equal(t, segs[j-1].End, seg.Start, "segments must be contiguous")
				}
				covered += seg.Len()
			}
			assert.Equal(t, 60, covered)
		})
	}
}

func TestSplit_HeaderBelongsToFollowingSegment(t *testing.T) {
	lines := make([]string, 0, 30)
	for i := 0; i < 30; i++ {
		lines = append(lines, fmt.Sprintf("row %02d", i))
	}
	lines[2] = "מספר העובד: 0001"
	lines[15] = "פרטים אישיים"
	lines[16] = "שם העובד: ישראל ישראלי"
	lines[20] = "מספר העובד: 0002"
	text := strings.Join(lines, "\n")

	segs := Default().Split(text)
	require.Len(t, segs, 2)

	assert.NotContains(t, segs[0].Text(), "פרטים אישיים")
	assert.NotContains(t, segs[0].Text(), "ישראל ישראלי")
	assert.Contains(t, segs[1].Text(), "פרטים אישיים")
	assert.Contains(t, segs[1].Text(), "ישראל ישראלי")
	// trailing rows of the first statement stay with it
	assert.Contains(t, segs[0].Text(), "row 14")
}

func TestSplit_TwoAnchorsOnOneLine(t *testing.T) {
	text := "header\nמספר העובד: 1111 מספר העובד: 2222\nfooter"
	segs := Default().Split(text)
	require.Len(t, segs, 1)
	assert.Equal(t, "1111", segs[0].Anchor)
}

func TestSplit_ZeroLookback(t *testing.T) {
	s, err := New(DefaultAnchor, 0)
	require.NoError(t, err)

	segs := s.Split(buildText(10, map[int]string{2: "1001", 6: "1002"}))
	require.Len(t, segs, 2)
	assert.Equal(t, 6, segs[1].Start)
	assert.Equal(t, "מספר העובד: 1002", segs[1].Lines[0])
}

func TestSplit_SegmentLinesDoNotAlias(t *testing.T) {
	segs := Default().Split(buildText(40, map[int]string{6: "1001", 30: "1002"}))
	require.Len(t, segs, 2)

	segs[0].Lines = append(segs[0].Lines, "appended")
	assert.Equal(t, "row 25", segs[1].Lines[0])
}
