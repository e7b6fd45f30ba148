package service

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lshigami/Compass/config"
	"github.com/lshigami/Compass/internal/idutil"
	"github.com/rs/zerolog/log"
)

// PathwayEntry is the descriptive metadata surfaced for a ranked cluster.
type PathwayEntry struct {
	CareerImage string   `json:"careerImage"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Subjects    []string `json:"subjects"`
	Careers     []string `json:"careers"`
	TryThis     string   `json:"tryThis"`
}

// PathwayStore resolves pathway metadata by cluster id, trying both the
// hyphenated and compact id forms. Absence is not an error; the ranking
// degrades to empty descriptive fields.
type PathwayStore interface {
	Lookup(clusterID string) (PathwayEntry, bool)
}

type filePathwayStore struct {
	pathways map[string]PathwayEntry
}

// NewPathwayStore loads the pathway catalog (clusterId -> metadata) once at
// startup. A missing file is logged and yields an empty store.
func NewPathwayStore(cfg *config.Config) (PathwayStore, error) {
	store := &filePathwayStore{pathways: make(map[string]PathwayEntry)}

	raw, err := os.ReadFile(cfg.Data.PathwaysPath)
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.Data.PathwaysPath).Msg("Pathways file not readable; rankings will carry empty metadata")
		return store, nil
	}

	if err := json.Unmarshal(raw, &store.pathways); err != nil {
		return nil, fmt.Errorf("failed to parse pathways file %s: %w", cfg.Data.PathwaysPath, err)
	}

	log.Info().Int("entries", len(store.pathways)).Str("path", cfg.Data.PathwaysPath).Msg("Pathway catalog loaded")
	return store, nil
}

func (s *filePathwayStore) Lookup(clusterID string) (PathwayEntry, bool) {
	for _, form := range idutil.Forms(clusterID) {
		if entry, ok := s.pathways[form]; ok {
			return entry, true
		}
	}
	return PathwayEntry{}, false
}

// StaticPathways is an in-memory PathwayStore for tests and seeding.
type StaticPathways map[string]PathwayEntry

func (p StaticPathways) Lookup(clusterID string) (PathwayEntry, bool) {
	for _, form := range idutil.Forms(clusterID) {
		if entry, ok := p[form]; ok {
			return entry, true
		}
	}
	return PathwayEntry{}, false
}
