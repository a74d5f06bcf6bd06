// Package datafile loads the read-only data the assistant answers from:
// the authorised documents (seed_docs) and the weekly schedule (mock_dates).
//
// Files may be JSON or YAML. Both are normalised to JSON, checked against an
// embedded JSON Schema and fingerprinted before being decoded.
package datafile

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/gowebpki/jcs"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/Eringobraugh/inf80057-assistant-backend/core"
	"github.com/Eringobraugh/inf80057-assistant-backend/core/tutor"
)

// Payload is a data file normalised to JSON.
type Payload struct {
	Path   string
	JSON   []byte
	Digest string // sha256 of the RFC 8785 canonical form
}

// Read reads the file at path, converting YAML to JSON, and fingerprints it.
func Read(path string) (Payload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Payload{}, errors.Wrapf(err, "reading %s", path)
	}
	if isYAMLFile(path) {
		if data, err = yamlToJSON(data); err != nil {
			return Payload{}, errors.Wrapf(err, "converting %s", path)
		}
	}
	digest, err := Digest(data)
	if err != nil {
		return Payload{}, errors.Wrapf(err, "fingerprinting %s", path)
	}
	return Payload{Path: filepath.Clean(path), JSON: data, Digest: digest}, nil
}

// Digest canonicalizes JSON (RFC 8785) and returns its sha256 hex digest.
// Two payloads that only differ in key order or spacing share a digest.
func Digest(data []byte) (string, error) {
	canonical, err := jcs.Transform(data)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

// LoadCorpus reads, validates and decodes a seed_docs file.
func LoadCorpus(path string) ([]tutor.Document, Payload, error) {
	p, err := Read(path)
	if err != nil {
		return nil, Payload{}, err
	}
	if err = validate(docsSchema, p); err != nil {
		return nil, Payload{}, err
	}
	docs := make([]tutor.Document, 0)
	if err = json.Unmarshal(p.JSON, &docs); err != nil {
		return nil, Payload{}, errors.Wrapf(err, "decoding %s", p.Path)
	}
	return docs, p, nil
}

// LoadSchedule reads, validates and decodes a mock_dates file.
func LoadSchedule(path string) ([]tutor.WeekRecord, Payload, error) {
	p, err := Read(path)
	if err != nil {
		return nil, Payload{}, err
	}
	if err = validate(datesSchema, p); err != nil {
		return nil, Payload{}, err
	}
	var dates struct {
		Weeks []tutor.WeekRecord `json:"weeks"`
	}
	if err = json.Unmarshal(p.JSON, &dates); err != nil {
		return nil, Payload{}, errors.Wrapf(err, "decoding %s", p.Path)
	}
	if dates.Weeks == nil {
		dates.Weeks = []tutor.WeekRecord{}
	}
	return dates.Weeks, p, nil
}

// OpenCorpus is LoadCorpus for start up: the service must come up even without its documents,
// so a failed load is logged and yields an empty corpus.
func OpenCorpus(path string, logger core.Logger) ([]tutor.Document, Payload) {
	docs, p, err := LoadCorpus(path)
	if err != nil {
		logger.Warn("corpus unavailable, answering from no documents", err)
		return []tutor.Document{}, Payload{Path: path}
	}
	return docs, p
}

// OpenSchedule is LoadSchedule for start up. A failed load yields an empty schedule.
func OpenSchedule(path string, logger core.Logger) ([]tutor.WeekRecord, Payload) {
	weeks, p, err := LoadSchedule(path)
	if err != nil {
		logger.Warn("schedule unavailable, every week is empty", err)
		return []tutor.WeekRecord{}, Payload{Path: path}
	}
	return weeks, p
}

func isYAMLFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func yamlToJSON(data []byte) ([]byte, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("empty document")
	}
	var v interface{}
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return json.Marshal(v)
}
