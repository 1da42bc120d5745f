package sites

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	mpwerrors "github.com/PolarWolf314/mpw/internal/errors"
	"github.com/PolarWolf314/mpw/internal/utils"
)

// Format identifies an on-disk document encoding.
type Format int

const (
	// FormatTOML is the native document format.
	FormatTOML Format = iota
	// FormatXML is the <MasterPassword> document written by the desktop app.
	FormatXML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatXML:
		return "xml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFor picks the format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".xml":
		return FormatXML, nil
	default:
		return 0, fmt.Errorf("%s: %w (use .toml or .xml)", path, mpwerrors.ErrUnsupportedFormat)
	}
}

// Load reads and validates the document at path.
func Load(path string) (*Document, error) {
	format, err := FormatFor(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, mpwerrors.ErrDocumentNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := Unmarshal(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Save validates doc and atomically writes it to path with 0600 permissions.
func Save(path string, doc *Document) error {
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := Marshal(doc, format)
	if err != nil {
		return err
	}
	return utils.WriteFileAtomic(path, data, 0600)
}

// Marshal encodes doc. Cached passwords are never part of the output.
func Marshal(doc *Document, format Format) ([]byte, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	switch format {
	case FormatTOML:
		return marshalTOML(doc)
	case FormatXML:
		return marshalXML(doc)
	default:
		return nil, fmt.Errorf("%s: %w", format, mpwerrors.ErrUnsupportedFormat)
	}
}

// Unmarshal decodes and validates a document.
func Unmarshal(data []byte, format Format) (*Document, error) {
	var (
		doc *Document
		err error
	)
	switch format {
	case FormatTOML:
		doc, err = unmarshalTOML(data)
	case FormatXML:
		doc, err = unmarshalXML(data)
	default:
		return nil, fmt.Errorf("%s: %w", format, mpwerrors.ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, err
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

type tomlDocument struct {
	User  string     `toml:"user"`
	Sites []tomlSite `toml:"sites"`
}

type tomlSite struct {
	Name    string  `toml:"name"`
	Counter *uint32 `toml:"counter,omitempty"`
	Type    string  `toml:"type,omitempty"`
	Login   string  `toml:"login"`
}

func marshalTOML(doc *Document) ([]byte, error) {
	out := tomlDocument{User: doc.User, Sites: make([]tomlSite, len(doc.Sites))}
	for i, s := range doc.Sites {
		out.Sites[i] = tomlSite{Name: s.Name, Counter: &s.Counter, Type: s.Class.String(), Login: s.Login}
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return buf.Bytes(), nil
}

func unmarshalTOML(data []byte) (*Document, error) {
	var in tomlDocument
	if _, err := toml.Decode(string(data), &in); err != nil {
		return nil, fmt.Errorf("%w: %w", mpwerrors.ErrInvalidDocument, err)
	}
	doc := New(in.User)
	for i, s := range in.Sites {
		site := NewSite(s.Name)
		if s.Counter != nil {
			site.Counter = *s.Counter
		}
		if err := site.Class.UnmarshalText([]byte(s.Type)); err != nil {
			return nil, fmt.Errorf("%w: site %d: %w", mpwerrors.ErrInvalidDocument, i+1, err)
		}
		site.Login = s.Login
		doc.Sites = append(doc.Sites, site)
	}
	return doc, nil
}

type xmlDocument struct {
	XMLName  xml.Name  `xml:"MasterPassword"`
	UserName string    `xml:"UserName"`
	Sites    []xmlSite `xml:"Sites>Site"`
}

type xmlSite struct {
	SiteName string `xml:"SiteName"`
	Counter  string `xml:"Counter"`
	Login    string `xml:"Login"`
	Type     string `xml:"Type"`
}

func marshalXML(doc *Document) ([]byte, error) {
	out := xmlDocument{UserName: doc.User, Sites: make([]xmlSite, len(doc.Sites))}
	for i, s := range doc.Sites {
		out.Sites[i] = xmlSite{
			SiteName: s.Name,
			Counter:  strconv.FormatUint(uint64(s.Counter), 10),
			Login:    s.Login,
			Type:     s.Class.String(),
		}
	}
	data, err := xml.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return append([]byte(xml.Header), append(data, '\n')...), nil
}

func unmarshalXML(data []byte) (*Document, error) {
	var in xmlDocument
	if err := xml.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("%w: %w", mpwerrors.ErrInvalidDocument, err)
	}
	doc := New(in.UserName)
	for i, s := range in.Sites {
		site := NewSite(s.SiteName)
		if text := strings.TrimSpace(s.Counter); text != "" {
			counter, err := ParseCounter(text)
			if err != nil {
				return nil, fmt.Errorf("%w: site %d: %w", mpwerrors.ErrInvalidDocument, i+1, err)
			}
			site.Counter = counter
		}
		if err := site.Class.UnmarshalText([]byte(s.Type)); err != nil {
			return nil, fmt.Errorf("%w: site %d: %w", mpwerrors.ErrInvalidDocument, i+1, err)
		}
		site.Login = s.Login
		doc.Sites = append(doc.Sites, site)
	}
	return doc, nil
}

// ParseCounter parses a decimal counter in 1..2^32-1.
func ParseCounter(text string) (uint32, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(text), 10, 32)
	if err != nil || n == 0 {
		return 0, fmt.Errorf("counter %q: %w", text, mpwerrors.ErrInvalidCounter)
	}
	return uint32(n), nil
}
