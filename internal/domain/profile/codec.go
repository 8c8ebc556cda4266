package profile

import (
	"encoding/json"
	"fmt"
)

// migrations[v] upgrades a decoded document from version v to v+1. raw is
// the original JSON, for steps that need to see keys the current schema dropped.
var migrations = []func(doc *Document, raw []byte) error{
	migrateV0,
}

// v0 documents predate the version field. Some were written when animations
// were a single enableAnimations flag.
func migrateV0(doc *Document, raw []byte) error {
	var legacy struct {
		Settings struct {
			EnableAnimations *bool           `json:"enableAnimations"`
			Animations       json.RawMessage `json:"animations"`
		} `json:"settings"`
	}
	if err := json.Unmarshal(raw, &legacy); err != nil {
		return err
	}
	s := legacy.Settings
	if s.Animations == nil && s.EnableAnimations != nil && !*s.EnableAnimations {
		doc.Settings.Animations = AnimationSettings{ScrollAnimation: ScrollNone, HoverEffect: HoverNone}
	}
	return nil
}

// Decode parses a stored or imported document and brings it to the current
// schema version. Keys missing from older documents take their default values.
func Decode(raw []byte) (*Document, error) {
	var probe struct {
		SchemaVersion *int `json:"schemaVersion"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, fmt.Errorf("decode profile document: %w", err)
	}
	version := 0
	if probe.SchemaVersion != nil {
		version = *probe.SchemaVersion
	}
	if version < 0 || version > CurrentSchemaVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	doc := &Document{Settings: DefaultSettings()}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("decode profile document: %w", err)
	}
	for v := version; v < CurrentSchemaVersion; v++ {
		if err := migrations[v](doc, raw); err != nil {
			return nil, fmt.Errorf("migrate profile document from v%d: %w", v, err)
		}
	}
	doc.SchemaVersion = CurrentSchemaVersion
	doc.normalize()
	doc.EnsureIDs()
	return doc, nil
}

func Encode(doc *Document) ([]byte, error) {
	return json.Marshal(doc)
}

func EncodeIndent(doc *Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}
