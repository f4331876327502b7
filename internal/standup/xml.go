package standup

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

type response struct {
	XMLName xml.Name `xml:"response"`
	Days    []xmlDay `xml:"day"`
}

type xmlDay struct {
	XMLName xml.Name `xml:"day"`
	Date    string   `xml:"date,attr"`
	Content string   `xml:",cdata"`
}

// EncodeXML writes days as a single <response> document.
func EncodeXML(w io.Writer, days []Day) error {
	doc := response{}
	for _, d := range days {
		doc.Days = append(doc.Days, xmlDay{Date: d.Date, Content: d.Content})
	}
	return encode(w, doc)
}

// IsXML reports whether content is a standup XML document (a <response> or a
// single <day>) rather than plain notes.
func IsXML(content string) bool {
	s := strings.TrimLeft(strings.TrimPrefix(content, "\ufeff"), " \t\r\n")
	for _, prefix := range []string{"<?xml", "<response", "<day"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

// ReadDays returns the days held in content: decoded when it is XML, split on
// --- lines otherwise. An XML document without days is ErrNoDays; plain notes
// without a dated section give no days and no error.
func ReadDays(content string) ([]Day, error) {
	if !IsXML(content) {
		return SplitDays(content), nil
	}
	days, err := DecodeXML(strings.NewReader(content))
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, ErrNoDays
	}
	return days, nil
}

// decoding side; CDATA sections arrive as character data
type xmlDayIn struct {
	Date    string `xml:"date,attr"`
	Content string `xml:",chardata"`
}

// DecodeXML reads a <response> document or a single <day> file.
func DecodeXML(r io.Reader) ([]Day, error) {
	dec := xml.NewDecoder(r)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, ErrNoDays
		}
		if err != nil {
			return nil, fmt.Errorf("decode standup xml: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok {
			continue
		}
		switch start.Name.Local {
		case "day":
			var d xmlDayIn
			if err := dec.DecodeElement(&d, &start); err != nil {
				return nil, fmt.Errorf("decode standup xml: %w", err)
			}
			return []Day{toDay(d)}, nil
		case "response":
			var doc struct {
				Days []xmlDayIn `xml:"day"`
			}
			if err := dec.DecodeElement(&doc, &start); err != nil {
				return nil, fmt.Errorf("decode standup xml: %w", err)
			}
			days := make([]Day, 0, len(doc.Days))
			for _, d := range doc.Days {
				days = append(days, toDay(d))
			}
			return days, nil
		default:
			return nil, fmt.Errorf("decode standup xml: unexpected root <%s>", start.Name.Local)
		}
	}
}

func toDay(d xmlDayIn) Day {
	return Day{Date: d.Date, Content: strings.TrimSpace(d.Content)}
}

// WriteDayFiles writes one <YYYYMMDD>.xml file per day into dir and returns
// the paths written. A day with an unparseable date stops the run.
func WriteDayFiles(dir string, days []Day) ([]string, error) {
	if len(days) == 0 {
		return nil, ErrNoDays
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	var paths []string
	for _, d := range days {
		stem, err := FileStem(d.Date)
		if err != nil {
			return paths, err
		}
		path := filepath.Join(dir, stem+".xml")
		if err := writeDay(path, d); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeDay(path string, d Day) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encode(f, xmlDay{Date: d.Date, Content: d.Content}); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func encode(w io.Writer, v any) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
