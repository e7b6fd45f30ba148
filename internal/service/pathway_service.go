package service

import (
	"fmt"

	"github.com/lshigami/Compass/internal/dto"
	"github.com/lshigami/Compass/internal/idutil"
	"github.com/lshigami/Compass/internal/repository"
	"github.com/rs/zerolog/log"
)

const defaultPathwayLimit = 3

var pathwayLabels = []string{"Primary", "Secondary", "Tertiary"}

// PathwayService ranks a session's clusters by correct-answer count and
// decorates the top ones with catalog metadata.
type PathwayService interface {
	TopPathways(sessionID string, limit int) ([]dto.PathwayViewDTO, error)
}

type pathwayService struct {
	scoreRepo    repository.ScoreRepository
	clusterRepo  repository.ClusterRepository
	pathwayStore PathwayStore
}

func NewPathwayService(scoreRepo repository.ScoreRepository, clusterRepo repository.ClusterRepository, pathwayStore PathwayStore) PathwayService {
	return &pathwayService{scoreRepo: scoreRepo, clusterRepo: clusterRepo, pathwayStore: pathwayStore}
}

// TopPathways returns at most limit ranked pathways, best cluster first. A
// session with no cluster scores yields an empty slice, not an error.
func (s *pathwayService) TopPathways(sessionID string, limit int) ([]dto.PathwayViewDTO, error) {
	if limit <= 0 {
		limit = defaultPathwayLimit
	}

	records, err := s.scoreRepo.FindClusterScores(sessionID)
	if err != nil {
		log.Error().Err(err).Str("sessionID", sessionID).Msg("TopPathways: failed to load cluster scores")
		return nil, fmt.Errorf("failed to load cluster scores for session %s: %w", sessionID, err)
	}
	if len(records) > limit {
		records = records[:limit]
	}

	clusterIDs := make([]string, len(records))
	for i, record := range records {
		clusterIDs[i] = *record.ClusterID
	}
	clusterNames := make(map[string]string)
	if len(clusterIDs) > 0 {
		clusters, err := s.clusterRepo.FindByIDs(clusterIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to load clusters for session %s: %w", sessionID, err)
		}
		for _, cluster := range clusters {
			clusterNames[idutil.Compact(cluster.ClusterID)] = cluster.ClusterName
		}
	}

	pathways := make([]dto.PathwayViewDTO, 0, len(records))
	for rank, record := range records {
		clusterID := *record.ClusterID
		pathname, tag := pathwayOrdinal(rank)
		view := dto.PathwayViewDTO{
			Pathname:    pathname,
			Tag:         tag,
			ClusterID:   clusterID,
			ClusterName: clusterNames[idutil.Compact(clusterID)],
		}
		if entry, ok := s.pathwayStore.Lookup(clusterID); ok {
			view.CareerImage = entry.CareerImage
			view.Title = entry.Title
			view.Subtitle = entry.Subtitle
			view.Description = entry.Description
			view.Skills = entry.Skills
			view.Subjects = entry.Subjects
			view.Careers = entry.Careers
			view.TryThis = entry.TryThis
		} else {
			log.Warn().Str("clusterID", clusterID).Msg("TopPathways: no catalog entry for cluster")
		}
		pathways = append(pathways, view)
	}
	return pathways, nil
}

// pathwayOrdinal returns the rank's wire pair: pathname is the bare ordinal
// ("Primary", "Secondary", "Tertiary", then "Pathway 4", ...) that clients
// branch on, tag is the display banner built from it.
func pathwayOrdinal(rank int) (pathname, tag string) {
	if rank < len(pathwayLabels) {
		return pathwayLabels[rank], fmt.Sprintf("Your %s Pathway", pathwayLabels[rank])
	}
	n := rank + 1
	return fmt.Sprintf("Pathway %d", n), fmt.Sprintf("Your Pathway %d", n)
}
