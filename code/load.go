package code

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v2"
)

// Program file extensions.
const (
	// ExtListing is the extension of YAML assembly listings.
	ExtListing = ".yaml"
	// ExtImage is the extension of CBOR program images.
	ExtImage = ".cbc"
)

var cborEncMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Errorf("code: cannot create CBOR encoder: %w", err))
	}
	return em
}()

// UnmarshalYAML reads an instruction written in assembly form.
func (in *Instruction) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	r, err := ParseInstruction(s)
	if err != nil {
		return err
	}
	*in = r
	return nil
}

// MarshalYAML writes an instruction in assembly form.
func (in Instruction) MarshalYAML() (interface{}, error) {
	return in.String(), nil
}

// DecodeListing parses and validates a YAML program listing.
func DecodeListing(data []byte) (*Program, error) {
	var p Program
	if err := yaml.UnmarshalStrict(data, &p); err != nil {
		return nil, fmt.Errorf("cannot parse listing: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// EncodeListing formats a program as a YAML listing.
func EncodeListing(p *Program) ([]byte, error) {
	return yaml.Marshal(p)
}

// DecodeImage parses and validates a CBOR program image.
func DecodeImage(data []byte) (*Program, error) {
	var p Program
	if err := cbor.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("cannot decode image: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// EncodeImage formats a program as a CBOR image.
func EncodeImage(p *Program) ([]byte, error) {
	return cborEncMode.Marshal(p)
}

// Load reads a program file, choosing the format by extension: .cbc files
// are images and anything else is a listing.
func Load(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var p *Program
	if strings.EqualFold(filepath.Ext(path), ExtImage) {
		p, err = DecodeImage(data)
	} else {
		p, err = DecodeListing(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
