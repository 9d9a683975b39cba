package youtube

import (
	"encoding/xml"
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// timedText covers both caption XML flavours YouTube serves:
// srv1 (<transcript><text start dur>) and srv3 (<timedtext><body><p t d>).
type timedText struct {
	Lines []ttLine `xml:"text"`
	Paras []ttPara `xml:"body>p"`
}

type ttLine struct {
	Start string `xml:"start,attr"`
	Dur   string `xml:"dur,attr"`
	Text  string `xml:",chardata"`
}

type ttPara struct {
	T     int64  `xml:"t,attr"`
	D     int64  `xml:"d,attr"`
	Text  string `xml:",chardata"`
	Spans []struct {
		Text string `xml:",chardata"`
	} `xml:"s"`
}

var htmlTagRe = regexp.MustCompile(`<[^>]+>`)

// cleanCaption decodes entities (captions are often double-escaped) and strips markup.
func cleanCaption(s string) string {
	s = html.UnescapeString(html.UnescapeString(s))
	s = htmlTagRe.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// parseTimedText converts caption XML into segments in document order.
func parseTimedText(data []byte) ([]Segment, error) {
	var tt timedText
	if err := xml.Unmarshal(data, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	segments := make([]Segment, 0, len(tt.Lines)+len(tt.Paras))
	for _, l := range tt.Lines {
		text := cleanCaption(l.Text)
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Start:    parseSeconds(l.Start),
			Duration: parseSeconds(l.Dur),
			Text:     text,
		})
	}
	for _, p := range tt.Paras {
		raw := p.Text
		for _, s := range p.Spans {
			raw += " " + s.Text
		}
		text := cleanCaption(raw)
		if text == "" {
			continue
		}
		segments = append(segments, Segment{
			Start:    time.Duration(p.T) * time.Millisecond,
			Duration: time.Duration(p.D) * time.Millisecond,
			Text:     text,
		})
	}
	return segments, nil
}

func parseSeconds(s string) time.Duration {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return time.Duration(f * float64(time.Second))
}
