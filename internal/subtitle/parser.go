package subtitle

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ofirgaash1/engsub/internal/domain"
)

// Italic boundaries survive sanitization as private control runes so that
// display building can reconstruct italic spans after tokenization. They are
// stripped from Cue.RawText and kept only in Cue.StyledText.
const (
	italicOn  = "\x0e"
	italicOff = "\x0f"
)

var (
	// Blocks are separated by one or more blank lines, tolerating CRLF.
	blockSplit = regexp.MustCompile(`(?:\r?\n){2,}`)
	lineSplit  = regexp.MustCompile(`\r?\n`)

	// Strict SRT timestamp line: HH:MM:SS,mmm --> HH:MM:SS,mmm.
	timestampLine = regexp.MustCompile(`^(\d{2}):(\d{2}):(\d{2}),(\d{3})\s*-->\s*(\d{2}):(\d{2}):(\d{2}),(\d{3})`)

	italicOpenTag  = regexp.MustCompile(`(?i)<i\s*>`)
	italicCloseTag = regexp.MustCompile(`(?i)</i\s*>`)
	anyTag         = regexp.MustCompile(`<[^<>]*>`)
	bracketCue     = regexp.MustCompile(`\[[^\[\]]*\]`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
	sentinelRun    = regexp.MustCompile("[\x0e\x0f]")
)

// ParseSRT splits raw subtitle file text into discrete timed cues.
//
// Blocks without a valid timestamp line, with empty sanitized text, or with
// an end time before the start time are dropped silently: that is a
// filtering policy for imperfect real-world files (and non-SRT content such
// as JSON), not an error. Parsing clearly non-SRT text therefore yields an
// empty slice. The whole file text is processed in memory; there is no
// streaming mode.
func ParseSRT(text string) []domain.Cue {
	var cues []domain.Cue

	for _, block := range blockSplit.Split(text, -1) {
		lines := trimmedLines(block)

		tsIdx := -1
		var m []string
		for i, line := range lines {
			if m = timestampLine.FindStringSubmatch(line); m != nil {
				tsIdx = i
				break
			}
		}
		if tsIdx < 0 {
			continue
		}

		startMs := timestampToMs(m[1], m[2], m[3], m[4])
		endMs := timestampToMs(m[5], m[6], m[7], m[8])
		if endMs < startMs {
			continue
		}

		// The line immediately preceding the timestamp carries the optional
		// sequence index; malformed or missing indices fall back to parse
		// order, which keeps numbering stable and gap-free.
		index := len(cues)
		if tsIdx > 0 {
			if n, err := strconv.Atoi(lines[tsIdx-1]); err == nil {
				index = n
			}
		}

		styled := sanitizeCueText(strings.Join(lines[tsIdx+1:], " "))
		raw := strings.TrimSpace(sentinelRun.ReplaceAllString(styled, ""))
		if raw == "" {
			continue
		}

		cues = append(cues, domain.Cue{
			Index:      index,
			StartMs:    startMs,
			EndMs:      endMs,
			RawText:    raw,
			StyledText: styled,
		})
	}

	return cues
}

// sanitizeCueText converts italic tags to sentinel runes, strips every other
// angle-bracket tag and square-bracket sound-cue annotation, collapses
// whitespace runs to a single space, and trims.
func sanitizeCueText(text string) string {
	text = italicOpenTag.ReplaceAllString(text, italicOn)
	text = italicCloseTag.ReplaceAllString(text, italicOff)
	text = anyTag.ReplaceAllString(text, "")
	text = bracketCue.ReplaceAllString(text, "")
	text = whitespaceRun.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func trimmedLines(block string) []string {
	var lines []string
	for _, line := range lineSplit.Split(block, -1) {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// timestampToMs converts matched HH, MM, SS, mmm groups to elapsed
// milliseconds from cue-file start. Timestamps have no timezone concept.
func timestampToMs(h, m, s, ms string) int64 {
	hours, _ := strconv.ParseInt(h, 10, 64)
	minutes, _ := strconv.ParseInt(m, 10, 64)
	seconds, _ := strconv.ParseInt(s, 10, 64)
	millis, _ := strconv.ParseInt(ms, 10, 64)
	return hours*3_600_000 + minutes*60_000 + seconds*1_000 + millis
}
