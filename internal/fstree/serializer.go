package fstree

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

type xmlEntry struct {
	XMLName  xml.Name
	Name     string     `xml:"name,attr"`
	Content  string     `xml:",chardata"`
	Children []xmlEntry `xml:",any"`
}

func toXML(e *Entry) (xmlEntry, error) {
	if e.file {
		data, err := e.Content()
		if err != nil {
			return xmlEntry{}, fmt.Errorf("%s: %w", e.Name, err)
		}
		return xmlEntry{XMLName: xml.Name{Local: "file"}, Name: e.Name, Content: string(data)}, nil
	}

	x := xmlEntry{XMLName: xml.Name{Local: "dir"}, Name: e.Name}
	for _, c := range e.children {
		child, err := toXML(c)
		if err != nil {
			return xmlEntry{}, err
		}
		x.Children = append(x.Children, child)
	}
	return x, nil
}

func fromXML(x xmlEntry) (*Entry, error) {
	switch x.XMLName.Local {
	case "file":
		return NewFile(x.Name, []byte(x.Content)), nil
	case "dir":
		dir := NewDir(x.Name)
		for _, cx := range x.Children {
			child, err := fromXML(cx)
			if err != nil {
				return nil, err
			}
			dir.Add(child)
		}
		return dir, nil
	default:
		return nil, fmt.Errorf("unexpected element <%s>", x.XMLName.Local)
	}
}

// WriteXML encodes the tree as nested <dir> and <file> elements. File content
// is stored as character data, so bytes that are not valid XML text do not
// survive a round trip.
func WriteXML(w io.Writer, root *Entry) error {
	x, err := toXML(root)
	if err != nil {
		return fmt.Errorf("failed to export tree: %w", err)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(x); err != nil {
		return fmt.Errorf("failed to marshal tree: %w", err)
	}
	return enc.Close()
}

// ReadXML decodes a tree written by WriteXML.
func ReadXML(r io.Reader) (*Entry, error) {
	var x xmlEntry
	if err := xml.NewDecoder(r).Decode(&x); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tree: %w", err)
	}
	return fromXML(x)
}

// SaveXML writes the tree to path, creating parent directories.
func SaveXML(root *Entry, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	defer f.Close()

	if err := WriteXML(f, root); err != nil {
		return err
	}
	return f.Close()
}

// LoadXML reads a tree saved by SaveXML.
func LoadXML(path string) (*Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer f.Close()

	return ReadXML(f)
}
